// Package subscriber is the durable record of who has been granted catalog
// access, keyed by email, with the subscribe/check protocol on top.
package subscriber

import "time"

// Subscriber is one access record. Email is the natural key: at most one
// record exists per distinct email value, compared exactly as given.
type Subscriber struct {
	Email         string    `json:"email"`
	SubscribedAt  time.Time `json:"subscribedAt"`
	AccessGranted bool      `json:"accessGranted"`

	// SignupDevice is lead metadata derived from the User-Agent of the
	// first subscribe request. Informational only.
	SignupDevice string `json:"signupDevice,omitempty"`
}

// SubscribeResult reports the outcome of an upsert-by-email.
type SubscribeResult struct {
	IsNew     bool `json:"isNew"`
	HasAccess bool `json:"hasAccess"`
}

// AccessStatus is the result of a pure access lookup.
type AccessStatus struct {
	Exists    bool `json:"exists"`
	HasAccess bool `json:"hasAccess"`
}
