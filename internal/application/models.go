// Package application records "free audit" lead applications. Applications
// are append-only: status transitions happen off-platform and never flow
// back through this service.
package application

import (
	"regexp"
	"strings"
	"time"
)

// StatusPending is the status every new application starts in.
const StatusPending = "pending"

// AdSpendBuckets is the closed set of monthly ad-spend labels the form
// offers. The store accepts them verbatim; no numeric parsing happens
// anywhere.
var AdSpendBuckets = []string{
	"$0 to $2,000",
	"$2,001 to $5,000",
	"$5,001 to $10,000",
	"$10,001 and above",
}

// AuditApplication is one lead-capture record. A visitor may submit any
// number of applications; there is deliberately no dedup or rate limit.
type AuditApplication struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand"`
	StoreURL       string    `json:"storeUrl"`
	MonthlyAdSpend string    `json:"monthlyAdSpend"`
	Email          string    `json:"email"`
	SubmittedAt    time.Time `json:"submittedAt"`
	Status         string    `json:"status"`
}

// Fields is the visitor-supplied part of an application.
type Fields struct {
	Name           string `json:"name"`
	Brand          string `json:"brand"`
	StoreURL       string `json:"storeUrl"`
	MonthlyAdSpend string `json:"monthlyAdSpend"`
	Email          string `json:"email"`
}

var schemePrefix = regexp.MustCompile(`(?i)^https?://`)

// NormalizeStoreURL trims surrounding whitespace and prepends https:// when
// the value lacks an http:// or https:// scheme. Empty input stays empty.
func NormalizeStoreURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return url
	}
	if !schemePrefix.MatchString(url) {
		return "https://" + url
	}
	return url
}
