package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.LeetCode.GraphQLEndpoint != "https://leetcode.com/graphql/" {
		t.Errorf("unexpected default endpoint: %s", cfg.LeetCode.GraphQLEndpoint)
	}
	if cfg.LeetCode.HTTPTimeout != 10*time.Second {
		t.Errorf("expected default timeout 10s, got %v", cfg.LeetCode.HTTPTimeout)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("expected default cache TTL 5m, got %v", cfg.Cache.TTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LEETCODE_GRAPHQL_ENDPOINT", "http://localhost:1234/graphql")
	t.Setenv("LEETCODE_HTTP_TIMEOUT", "2s")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.LeetCode.GraphQLEndpoint != "http://localhost:1234/graphql" {
		t.Errorf("unexpected endpoint: %s", cfg.LeetCode.GraphQLEndpoint)
	}
	if cfg.LeetCode.HTTPTimeout != 2*time.Second {
		t.Errorf("expected timeout 2s, got %v", cfg.LeetCode.HTTPTimeout)
	}
	if cfg.Cache.TTL != 30*time.Second {
		t.Errorf("expected cache TTL 30s, got %v", cfg.Cache.TTL)
	}
}

func TestGetEnvFallsBackOnBadValue(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	if got := GetEnv("PORT", 8080).(int); got != 8080 {
		t.Errorf("expected fallback 8080, got %d", got)
	}

	t.Setenv("CACHE_TTL", "soon")

	if got := GetEnv("CACHE_TTL", 5*time.Minute).(time.Duration); got != 5*time.Minute {
		t.Errorf("expected fallback 5m, got %v", got)
	}
}
