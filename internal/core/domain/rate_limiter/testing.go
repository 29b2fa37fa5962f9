package ratelimiter

import (
	"context"
	"sync"
)

type Check struct {
	Key   string
	Limit Limit
}

// FakeRateLimiter allows or denies every check and records what was asked.
// With Counting set it enforces the limit per key instead, ignoring intervals.
type FakeRateLimiter struct {
	IsAllowed bool
	Counting  bool
	Checks    []Check
	hits      map[string]uint16
	lock      sync.Mutex
}

func NewFakeRateLimiter(isAllowed bool) *FakeRateLimiter {
	return &FakeRateLimiter{IsAllowed: isAllowed}
}

func NewCountingFakeRateLimiter() *FakeRateLimiter {
	return &FakeRateLimiter{Counting: true, hits: make(map[string]uint16)}
}

func (rl *FakeRateLimiter) CheckLimit(ctx context.Context, key string, limit Limit) Result {
	rl.lock.Lock()
	defer rl.lock.Unlock()
	rl.Checks = append(rl.Checks, Check{Key: key, Limit: limit})
	if rl.Counting {
		rl.hits[key]++
		if rl.hits[key] > limit.Value {
			return NotAllowed()
		}
		return Allowed()
	}
	if rl.IsAllowed {
		return Allowed()
	}
	return NotAllowed()
}

func (rl *FakeRateLimiter) Keys() []string {
	rl.lock.Lock()
	defer rl.lock.Unlock()
	keys := make([]string, 0, len(rl.Checks))
	for _, check := range rl.Checks {
		keys = append(keys, check.Key)
	}
	return keys
}
