package subscriber

import (
	"context"
	"sync"
)

// Notifier fans out access-change notifications. The payload is the email
// whose record changed; watchers re-check the store on receipt rather than
// trusting the message body. In this workflow access only ever flips from
// absent/false to true, so a missed message is healed by the next check.
type Notifier interface {
	// Publish announces that email's access record changed.
	Publish(ctx context.Context, email string) error

	// Subscribe returns a channel of changed emails. The channel is closed
	// when ctx ends. Slow consumers may miss messages; they must not block
	// publishers.
	Subscribe(ctx context.Context) (<-chan string, error)
}

// InMemoryNotifier is the single-process Notifier used by tests and
// storeless runs.
type InMemoryNotifier struct {
	mu   sync.Mutex
	subs map[chan string]struct{}
}

func NewInMemoryNotifier() *InMemoryNotifier {
	return &InMemoryNotifier{subs: make(map[chan string]struct{})}
}

func (n *InMemoryNotifier) Publish(_ context.Context, email string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.subs {
		select {
		case ch <- email:
		default:
			// Drop rather than block; watchers re-check on the next event.
		}
	}
	return nil
}

func (n *InMemoryNotifier) Subscribe(ctx context.Context) (<-chan string, error) {
	ch := make(chan string, 16)

	n.mu.Lock()
	n.subs[ch] = struct{}{}
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.mu.Lock()
		delete(n.subs, ch)
		n.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}
