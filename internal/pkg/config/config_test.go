package config

import (
	"os"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Clear environment variables that might interfere.
	os.Clearenv()

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Check a few default values.
	if config.ServerPort != "8080" {
		t.Errorf("expected ServerPort to be '8080', got %s", config.ServerPort)
	}
	if config.QueueCapacity != 1000 {
		t.Errorf("expected QueueCapacity to be 1000, got %d", config.QueueCapacity)
	}
	if config.GeoTimeoutSeconds != 2 {
		t.Errorf("expected GeoTimeoutSeconds to be 2, got %d", config.GeoTimeoutSeconds)
	}
	if config.AnalyticsURL != "http://localhost:9200/_bulk" {
		t.Errorf("expected AnalyticsURL to be 'http://localhost:9200/_bulk', got %s", config.AnalyticsURL)
	}
	if config.LogLevel != "info" {
		t.Errorf("expected LogLevel to be 'info', got %s", config.LogLevel)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	// Set environment variables.
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("QUEUE_CAPACITY", "500")
	os.Setenv("GEO_SERVICE_URL", "http://geo.internal/lookup")
	os.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if config.ServerPort != "9090" {
		t.Errorf("expected ServerPort to be '9090', got %s", config.ServerPort)
	}
	if config.QueueCapacity != 500 {
		t.Errorf("expected QueueCapacity to be 500, got %d", config.QueueCapacity)
	}
	if config.GeoServiceURL != "http://geo.internal/lookup" {
		t.Errorf("expected GeoServiceURL to be 'http://geo.internal/lookup', got %s", config.GeoServiceURL)
	}
	if config.LogLevel != "debug" {
		t.Errorf("expected LogLevel to be 'debug', got %s", config.LogLevel)
	}

	// Clean up environment variables after test.
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("QUEUE_CAPACITY")
	os.Unsetenv("GEO_SERVICE_URL")
	os.Unsetenv("LOG_LEVEL")
}
