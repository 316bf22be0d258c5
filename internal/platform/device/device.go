// Package device derives a human-readable signup device label from the
// User-Agent header. The label is stored with the subscriber as lead
// metadata; it is never used for fingerprinting or access decisions.
package device

import (
	"strings"

	"github.com/mssola/useragent"
)

// ParseUserAgent returns a short "Browser on OS" display name.
// Empty or unrecognizable input yields "Unknown Device".
func ParseUserAgent(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "Unknown Device"
	}

	ua := useragent.New(raw)

	browser, _ := ua.Browser()
	if browser == "" {
		browser = "Unknown Browser"
	}

	os := ua.OSInfo().Name
	if os == "" {
		os = ua.Platform()
	}
	if os == "" {
		os = "Unknown OS"
	}

	return browser + " on " + os
}
