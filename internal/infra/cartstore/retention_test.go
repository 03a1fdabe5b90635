//go:build unit

package cartstore_test

import (
	"testing"
	"time"

	"hotel-front/internal/infra/cartstore"
	"hotel-front/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRetention(t *testing.T) {
	for _, in := range []string{"session", " Fixed ", "INDEFINITE"} {
		_, err := cartstore.ParseRetention(in)
		assert.NoError(t, err, in)
	}

	_, err := cartstore.ParseRetention("forever")
	require.Error(t, err)
	assert.True(t, errs.Is(err, cartstore.ErrUnknownRetention))
}

func TestParseBackendKind(t *testing.T) {
	kind, err := cartstore.ParseBackendKind("Redis")
	require.NoError(t, err)
	assert.Equal(t, cartstore.BackendRedis, kind)

	_, err = cartstore.ParseBackendKind("sqlite")
	assert.True(t, errs.Is(err, cartstore.ErrUnknownBackend))
}

func TestPolicyTTL(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		policy  cartstore.Policy
		expiry  time.Time
		wantTTL time.Duration
	}{
		{
			name:    "indefinite never expires",
			policy:  cartstore.Policy{Retention: cartstore.RetentionIndefinite, FixedTTL: time.Hour},
			expiry:  now.Add(time.Hour),
			wantTTL: 0,
		},
		{
			name:    "fixed ignores the session",
			policy:  cartstore.Policy{Retention: cartstore.RetentionFixed, FixedTTL: 48 * time.Hour},
			expiry:  now.Add(time.Hour),
			wantTTL: 48 * time.Hour,
		},
		{
			name:    "session follows the token expiry",
			policy:  cartstore.Policy{Retention: cartstore.RetentionSession, SessionTTL: 12 * time.Hour},
			expiry:  now.Add(90 * time.Minute),
			wantTTL: 90 * time.Minute,
		},
		{
			name:    "session without expiry uses the fallback",
			policy:  cartstore.Policy{Retention: cartstore.RetentionSession, SessionTTL: 12 * time.Hour},
			wantTTL: 12 * time.Hour,
		},
		{
			name:    "expired session keeps a short ttl",
			policy:  cartstore.Policy{Retention: cartstore.RetentionSession, SessionTTL: 12 * time.Hour},
			expiry:  now.Add(-time.Minute),
			wantTTL: time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTTL, tt.policy.TTL(now, tt.expiry))
		})
	}
}
