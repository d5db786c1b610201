package config

import (
	"fmt"
	"strconv"
	"strings"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "request-timeout").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save). It rejects values that
	// fail to parse.
	Set func(cfg *Config, value string) error
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "request-timeout",
		Description: "Per-request HTTP timeout in seconds (0 uses the built-in default)",
		Get:         func(cfg *Config) string { return strconv.Itoa(cfg.RequestTimeoutSeconds) },
		Set: func(cfg *Config, v string) error {
			n, err := parseNonNegativeInt(v)
			if err != nil {
				return err
			}
			cfg.RequestTimeoutSeconds = n
			return nil
		},
	},
	{
		Name:        "skip-verify",
		Description: "Skip credential verification when opening a session (true/false)",
		Get:         func(cfg *Config) string { return strconv.FormatBool(cfg.SkipVerify) },
		Set: func(cfg *Config, v string) error {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("config: %q is not a boolean", v)
			}
			cfg.SkipVerify = b
			return nil
		},
	},
	{
		Name:        "poll-interval",
		Description: "Zone activation poll interval in seconds (0 uses the built-in default)",
		Get:         func(cfg *Config) string { return strconv.Itoa(cfg.PollIntervalSeconds) },
		Set: func(cfg *Config, v string) error {
			n, err := parseNonNegativeInt(v)
			if err != nil {
				return err
			}
			cfg.PollIntervalSeconds = n
			return nil
		},
	},
	{
		Name:        "activation-timeout",
		Description: "Zone activation wait deadline in minutes (0 uses the built-in default)",
		Get:         func(cfg *Config) string { return strconv.Itoa(cfg.ActivationTimeoutMinutes) },
		Set: func(cfg *Config, v string) error {
			n, err := parseNonNegativeInt(v)
			if err != nil {
				return err
			}
			cfg.ActivationTimeoutMinutes = n
			return nil
		},
	},
	{
		Name:        "default-zone-type",
		Description: "Zone type used when --type is not specified (full or partial)",
		Get:         func(cfg *Config) string { return cfg.DefaultZoneType },
		Set: func(cfg *Config, v string) error {
			v = strings.ToLower(strings.TrimSpace(v))
			if v != "" && v != "full" && v != "partial" {
				return fmt.Errorf("config: zone type must be full or partial, got %q", v)
			}
			cfg.DefaultZoneType = v
			return nil
		},
	},
}

func parseNonNegativeInt(v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("config: %q is not a non-negative integer", v)
	}
	return n, nil
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
