package transmission

import (
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client, err := New(Config{
		URL:            "http://localhost:9091/transmission/rpc",
		Username:       "admin",
		Password:       "secret",
		RequestTimeout: 10 * time.Second,
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	if client.client.Timeout != 10*time.Second {
		t.Errorf("Expected timeout 10s, got %v", client.client.Timeout)
	}

	if client.authHeader != "Basic YWRtaW46c2VjcmV0" {
		t.Errorf("Unexpected precomputed auth header: %q", client.authHeader)
	}
}

func TestNewClientDefaults(t *testing.T) {
	client, err := New(Config{URL: "http://localhost:9091/transmission/rpc"})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	if client.client.Timeout != DefaultRequestTimeout {
		t.Errorf("Expected default timeout %v, got %v", DefaultRequestTimeout, client.client.Timeout)
	}

	if client.authHeader != "" {
		t.Error("No credentials should mean no Authorization header")
	}

	if client.limiter != nil {
		t.Error("No rate limit should mean no limiter")
	}

	if client.logger == nil {
		t.Error("Logger should default to a no-op logger")
	}
}

func TestNewClientRequiresURL(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("Expected an error for a missing URL")
	}
}

func TestNewClientSeedsSessionID(t *testing.T) {
	client, err := New(Config{
		URL:       "http://localhost:9091/transmission/rpc",
		SessionID: "seeded",
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	if client.SessionID() != "seeded" {
		t.Errorf("Expected seeded session ID, got %q", client.SessionID())
	}
}

func TestNewClientRateLimiter(t *testing.T) {
	client, err := New(Config{
		URL:               "http://localhost:9091/transmission/rpc",
		RequestsPerSecond: 5,
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	if client.limiter == nil {
		t.Fatal("Expected a limiter when RequestsPerSecond is set")
	}

	if limit := float64(client.limiter.Limit()); limit != 5 {
		t.Errorf("Expected limit 5, got %v", limit)
	}
}
