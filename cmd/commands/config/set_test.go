package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/cfzone/internal/config"
)

// setupTestConfig points the config package at a temp file and returns its path.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestSet_RequestTimeout(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "request-timeout", "30")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"30"`) {
		t.Errorf("expected confirmation with value, got: %s", stdout)
	}

	// Verify it was persisted.
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.RequestTimeoutSeconds != 30 {
		t.Errorf("expected RequestTimeoutSeconds 30, got %d", cfg.RequestTimeoutSeconds)
	}
}

func TestSet_RequestTimeout_NotANumber(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "request-timeout", "soon")

	if !strings.Contains(stderr, "not a non-negative integer") {
		t.Errorf("expected parse error, got: %s", stderr)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}

func TestSet_ZoneType_Normalized(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "default-zone-type", "PARTIAL")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"partial"`) {
		t.Errorf("expected normalized zone type, got: %s", stdout)
	}
}

func TestSet_ZoneType_Invalid(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "default-zone-type", "secondary")

	if !strings.Contains(stderr, "zone type must be full or partial") {
		t.Errorf("expected zone type error, got: %s", stderr)
	}
}
