package cartstore

import (
	"fmt"
	"strings"
	"time"

	"hotel-front/internal/pkg/errs"
)

var ErrUnknownRetention = errs.New("unknown cart retention")

// Retention decides how long a persisted cart outlives its last write.
type Retention string

const (
	// RetentionSession keeps a cart until its session token expires.
	RetentionSession Retention = "session"
	// RetentionFixed keeps a cart for a fixed time after each write.
	RetentionFixed Retention = "fixed"
	// RetentionIndefinite never expires a cart.
	RetentionIndefinite Retention = "indefinite"
)

func ParseRetention(s string) (Retention, error) {
	switch r := Retention(strings.ToLower(strings.TrimSpace(s))); r {
	case RetentionSession, RetentionFixed, RetentionIndefinite:
		return r, nil
	default:
		return "", errs.Mark(fmt.Errorf("cart retention %q", s), ErrUnknownRetention)
	}
}

type Policy struct {
	Retention Retention
	// FixedTTL applies to RetentionFixed.
	FixedTTL time.Duration
	// SessionTTL is the fallback for RetentionSession when the session
	// carries no expiry.
	SessionTTL time.Duration
}

// TTL returns the expiry to apply to a write made at now for a session
// expiring at sessionExpiry. Zero means no expiry.
func (p Policy) TTL(now, sessionExpiry time.Time) time.Duration {
	switch p.Retention {
	case RetentionIndefinite:
		return 0
	case RetentionFixed:
		return p.FixedTTL
	default:
		if sessionExpiry.IsZero() {
			return p.SessionTTL
		}
		if ttl := sessionExpiry.Sub(now); ttl > time.Second {
			return ttl
		}
		// Expiring session: keep the write alive briefly rather than
		// storing it forever.
		return time.Second
	}
}
