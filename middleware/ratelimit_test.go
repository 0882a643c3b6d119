package middleware

import (
	"testing"
)

func TestTokenBucketExhaustion(t *testing.T) {
	// 3 tokens, negligible refill
	tb := NewTokenBucket(3, 0.0001)

	for i := 0; i < 3; i++ {
		if !tb.Allow() {
			t.Fatalf("request %d rejected with tokens remaining", i+1)
		}
	}
	if tb.Allow() {
		t.Error("request allowed with an empty bucket")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, 3600)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request for key A rejected")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("second request for key A allowed")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("key B throttled by key A's bucket")
	}
}
