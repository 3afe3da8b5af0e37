package main

import (
	"net/http"
	"testing"

	"lg/fitness-plan-go-api/internal/config"
)

func TestRateLimitPlanRoute(t *testing.T) {
	router, mock := setupPlanTest(t, func(cfg *config.Config) { cfg.RateLimitPerMin = 2 })
	mock.set(http.StatusOK, openAIChatResponse("Day 1"))

	for i := 0; i < 2; i++ {
		if w := doRequest(router, "POST", "/api/plan", metricPlanBody, nil); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d: %s", i+1, w.Code, w.Body.String())
		}
	}

	w := doRequest(router, "POST", "/api/plan", metricPlanBody, nil)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d: %s", w.Code, w.Body.String())
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
	if n := mock.callCount(); n != 2 {
		t.Errorf("OpenAI called %d times, want 2", n)
	}

	// The estimator route is not limited.
	if w := doRequest(router, "POST", "/api/tdee", tdeeBody, nil); w.Code != http.StatusOK {
		t.Errorf("expected /api/tdee to stay open, got %d", w.Code)
	}
}

func TestClientLimiterPerClient(t *testing.T) {
	l, err := newClientLimiter(1, 2)
	if err != nil {
		t.Fatalf("newClientLimiter: %v", err)
	}
	if !l.allow("10.0.0.1") {
		t.Fatal("first request from 10.0.0.1 should pass")
	}
	if l.allow("10.0.0.1") {
		t.Fatal("second request from 10.0.0.1 should be limited")
	}
	if !l.allow("10.0.0.2") {
		t.Fatal("other clients have their own bucket")
	}

	// A third client evicts 10.0.0.1, which then starts with a fresh bucket.
	l.allow("10.0.0.3")
	if !l.allow("10.0.0.1") {
		t.Error("evicted client should get a fresh bucket")
	}
}
