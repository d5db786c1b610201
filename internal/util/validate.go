package util

import (
	"fmt"
	"regexp"
	"strings"
)

// validLabelChars matches only alphanumeric characters and hyphens.
var validLabelChars = regexp.MustCompile(`^[a-zA-Z0-9\-]+$`)

// NormalizeDomain lowercases and strips any trailing dot from a domain name.
func NormalizeDomain(d string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(d), "."))
}

// ValidateDomainName checks that a registrable domain name conforms to
// RFC 1123 hostname rules:
//   - At least two labels separated by periods (e.g. "example.com")
//   - At most 253 characters overall
//   - Each label is 1-63 characters of alphanumerics and hyphens
//   - No label starts or ends with a hyphen
func ValidateDomainName(name string) error {
	if len(name) > 253 {
		return fmt.Errorf("domain name must be at most 253 characters, got %d", len(name))
	}

	labels := strings.Split(name, ".")
	if len(labels) < 2 {
		return fmt.Errorf("domain name %q must contain at least two labels (e.g. example.com)", name)
	}

	for _, label := range labels {
		if len(label) == 0 {
			return fmt.Errorf("domain name %q contains an empty label", name)
		}
		if len(label) > 63 {
			return fmt.Errorf("domain label %q must be at most 63 characters, got %d", label, len(label))
		}
		if !validLabelChars.MatchString(label) {
			return fmt.Errorf("domain label %q contains invalid characters (only a-z, A-Z, 0-9, and hyphens are allowed)", label)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("domain label %q must not start or end with a hyphen", label)
		}
	}

	return nil
}
