package config

import (
	"strings"
	"testing"

	"fleetworks/fleetenv/internal/config"
)

func TestGet_KeyLength_NotSet(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "get", "key-length")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "not set") {
		t.Errorf("expected 'not set', got: %s", stdout)
	}
}

func TestGet_SimulatorURL_Set(t *testing.T) {
	path := setupTestConfig(t)

	cfg := &config.Config{SimulatorURL: "http://10.0.0.5:9001"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, stderr := execConfig(t, "get", "--key", "simulator-url")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "http://10.0.0.5:9001") {
		t.Errorf("expected simulator URL, got: %s", stdout)
	}
}

func TestGet_ListsAllWhenNotInteractive(t *testing.T) {
	path := setupTestConfig(t)
	if err := (&config.Config{AppCode: "fleet-prod"}).SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, _ := execConfig(t, "get")

	for _, want := range []string{"app-code: fleet-prod", "output-dir: (not set)", "key-length: (not set)"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestGet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "get", "bogus-key")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}

func TestGet_ConflictingKeys(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "get", "app-id", "--key", "app-code")

	if !strings.Contains(stderr, "conflicting keys") {
		t.Errorf("expected conflict error, got: %s", stderr)
	}
}

func TestGet_PositionalAndFlagAgree(t *testing.T) {
	path := setupTestConfig(t)
	if err := (&config.Config{AppID: "fleet-prod"}).SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, stderr := execConfig(t, "get", "APP-ID", "--key", "app-id")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if stdout != "fleet-prod\n" {
		t.Errorf("expected fleet-prod, got: %q", stdout)
	}
}
