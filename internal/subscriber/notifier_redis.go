package subscriber

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// accessChannel is the single pub/sub channel carrying access changes. The
// message payload is the subscriber email.
const accessChannel = "fixlist:access"

// RedisNotifier distributes access-change notifications across processes via
// Redis pub/sub, so a watcher on one instance observes a grant performed on
// another.
type RedisNotifier struct {
	client *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

func (n *RedisNotifier) Publish(ctx context.Context, email string) error {
	return n.client.Publish(ctx, accessChannel, email).Err()
}

func (n *RedisNotifier) Subscribe(ctx context.Context) (<-chan string, error) {
	pubsub := n.client.Subscribe(ctx, accessChannel)

	// Confirm the subscription before handing out the channel so callers
	// cannot publish past a half-open subscriber.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	out := make(chan string, 16)
	go func() {
		defer close(out)
		defer pubsub.Close()
		in := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-in:
				if !ok {
					return
				}
				select {
				case out <- msg.Payload:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
