package ratelimiter

import (
	"testing"
	"time"

	ratelimiter "github.com/d1d2-apps/ewallet-backend/internal/core/domain/rate_limiter"

	"github.com/stretchr/testify/require"
)

func TestWindowKey(t *testing.T) {
	now := time.Date(2024, 3, 1, 14, 25, 0, 0, time.UTC)

	k, d := windowKey("authenticate::ana@example.com", ratelimiter.Hour, now)
	require.Equal(t, "ewallet::authenticate::ana@example.com::h14", k)
	require.Equal(t, time.Hour, d)

	k, d = windowKey("authenticate::ana@example.com", ratelimiter.Minute, now)
	require.Equal(t, "ewallet::authenticate::ana@example.com::m25", k)
	require.Equal(t, time.Minute, d)

	k, d = windowKey("register::ip::192.0.2.1", ratelimiter.Day, now)
	require.Equal(t, "ewallet::register::ip::192.0.2.1::d61", k)
	require.Equal(t, 24*time.Hour, d)
}
