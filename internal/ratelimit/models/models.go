// Package models holds the rate limit result and bucket key types.
package models

import (
	"fmt"
	"strings"
	"time"
)

// KeyPrefixIP namespaces per-address buckets.
const KeyPrefixIP = "ip"

// Result is the outcome of one bucket check.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter int // seconds; zero when allowed
}

// Key builds the bucket key for a client address. Delimiters in the address
// are escaped so an IPv6 literal or a crafted value cannot land in another
// bucket.
func Key(prefix, identifier string) string {
	return fmt.Sprintf("%s:%s", prefix, sanitizeKeySegment(identifier))
}

// sanitizeKeySegment escapes '_' first, then ':'.
func sanitizeKeySegment(s string) string {
	s = strings.ReplaceAll(s, "_", "__")
	return strings.ReplaceAll(s, ":", "_c")
}

// RetryAfterSeconds rounds the wait up to whole seconds.
func RetryAfterSeconds(allowed bool, resetAt, now time.Time) int {
	if allowed {
		return 0
	}
	wait := resetAt.Sub(now)
	if wait <= 0 {
		return 0
	}
	return int((wait + time.Second - 1) / time.Second)
}
