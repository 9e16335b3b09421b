package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiter_AllowWithinLimit(t *testing.T) {
	l := New(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !l.Allow("key") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if l.Allow("key") {
		t.Error("fourth attempt should be blocked")
	}
}

func TestLimiter_KeysIndependent(t *testing.T) {
	l := New(1, time.Minute)
	if !l.Allow("a") {
		t.Fatal("first attempt for a should pass")
	}
	if !l.Allow("b") {
		t.Error("first attempt for b should pass despite a being at limit")
	}
}

func TestLimiter_Reset(t *testing.T) {
	l := New(1, time.Minute)
	l.Allow("key")
	if l.Allow("key") {
		t.Fatal("second attempt should be blocked")
	}
	l.Reset("key")
	if !l.Allow("key") {
		t.Error("attempt after Reset should be allowed")
	}
}

func TestLimiter_WindowExpiry(t *testing.T) {
	l := New(1, 10*time.Millisecond)
	l.Allow("key")
	time.Sleep(20 * time.Millisecond)
	if !l.Allow("key") {
		t.Error("attempt after window expiry should be allowed")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		xff    string
		xri    string
		remote string
		want   string
	}{
		{"forwarded-for first entry", "203.0.113.9, 10.0.0.1", "", "10.0.0.2:1234", "203.0.113.9"},
		{"real-ip fallback", "", "203.0.113.7", "10.0.0.2:1234", "203.0.113.7"},
		{"remote addr", "", "", "192.0.2.4:5678", "192.0.2.4"},
		{"remote addr without port", "", "", "192.0.2.4", "192.0.2.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/users/login", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoginLimiter_EmailThrottle(t *testing.T) {
	ll := &LoginLimiter{
		ip:    New(100, time.Minute),
		email: New(2, time.Minute),
	}
	r := httptest.NewRequest("POST", "/users/login", nil)

	for i := 0; i < 2; i++ {
		if ok, _ := ll.Check(r, "User@Example.com"); !ok {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if ok, reason := ll.Check(r, "user@example.com"); ok || reason == "" {
		t.Error("third attempt for the same account should be blocked with a reason")
	}

	ll.ResetEmail("USER@example.com")
	if ok, _ := ll.Check(r, "user@example.com"); !ok {
		t.Error("attempt after ResetEmail should be allowed")
	}
}