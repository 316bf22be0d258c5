// Package leadevent records the lead-capture trail: every subscription,
// access grant, and audit application becomes an append-only event, buffered
// in an outbox and shipped to Kafka by a background worker.
package leadevent

import "time"

// Kind classifies a lead event.
type Kind string

const (
	KindSubscriberCreated    Kind = "subscriber_created"
	KindAccessGranted        Kind = "access_granted"
	KindApplicationSubmitted Kind = "application_submitted"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Kind      Kind      `json:"kind"`
	Email     string    `json:"email"`
}
