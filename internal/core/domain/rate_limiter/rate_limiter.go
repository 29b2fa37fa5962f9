package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

type Interval struct {
	value int
}

var (
	Minute = Interval{}
	Hour   = Interval{value: 1}
	Day    = Interval{value: 2}
)

func (i Interval) String() string {
	switch i {
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	default:
		return "unknown"
	}
}

type Limit struct {
	Value    uint16
	Interval Interval
}

func (l Limit) String() string {
	return fmt.Sprintf("%d/%s", l.Value, l.Interval)
}

type Result struct {
	IsAllowed bool
}

func Allowed() Result {
	return Result{IsAllowed: true}
}

func NotAllowed() Result {
	return Result{IsAllowed: false}
}

type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, limit Limit) Result
}

// Key joins an operation name with the identity it is limited by,
// e.g. Key("register", "ip", "192.0.2.1") == "register::ip::192.0.2.1".
// Empty parts are kept so that a missing identity still yields a stable key.
func Key(operation string, parts ...string) string {
	return strings.Join(append([]string{operation}, parts...), "::")
}
