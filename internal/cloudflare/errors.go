package cloudflare

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for API-level failure classification. The request layer
// wraps these so callers can branch with errors.Is without parsing
// provider error codes themselves.
var (
	// ErrZoneAlreadyExists indicates the zone is already registered in the
	// account (codes 1061, 10006).
	ErrZoneAlreadyExists = errors.New("zone already exists")

	// ErrInvalidRequestHeaders indicates malformed or rejected auth headers
	// (codes 6003, 6103, or a chained 6111).
	ErrInvalidRequestHeaders = errors.New("invalid request headers")

	// ErrIdenticalRecordExists indicates a duplicate DNS record (code 81058).
	ErrIdenticalRecordExists = errors.New("an identical record already exists")

	// ErrDNSRecordInvalid indicates the provider rejected the record
	// contents (code 9002).
	ErrDNSRecordInvalid = errors.New("dns record is invalid")

	// ErrExceededZonesLimit indicates the account hit its zone quota
	// (code 1118).
	ErrExceededZonesLimit = errors.New("account has exceeded the limit for adding zones")

	// ErrUserCredsInvalid indicates credential verification found no
	// usable identity.
	ErrUserCredsInvalid = errors.New("user credentials are invalid")

	// ErrActivationTimeout indicates a zone did not become active within
	// the polling deadline.
	ErrActivationTimeout = errors.New("zone activation timed out")

	// ErrNoNameServers indicates the provider returned fewer than two
	// nameservers for a registered zone. This is fatal and non-retryable.
	ErrNoNameServers = errors.New("zone was assigned fewer than two name servers")
)

// Session lifecycle errors.
var (
	// ErrCredentialConfig indicates an invalid Credential construction.
	ErrCredentialConfig = errors.New("invalid credential configuration")

	// ErrSessionNotOpen indicates an operation was attempted before Open.
	ErrSessionNotOpen = errors.New("session not open")

	// ErrSessionClosed indicates the session was closed; closed sessions
	// cannot be reopened.
	ErrSessionClosed = errors.New("session closed")
)

// Error is a single entry from the envelope's error list.
type Error struct {
	Code       int     `json:"code"`
	Message    string  `json:"message"`
	ErrorChain []Error `json:"error_chain,omitempty"`
}

// APIError is the catch-all for provider failures that match no known
// classification rule. The raw error list is preserved for diagnostics.
type APIError struct {
	Errors []Error
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return "cloudflare: unknown error"
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, entry := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("[%d] %s", entry.Code, entry.Message))
	}
	return "cloudflare: " + strings.Join(msgs, "; ")
}

// classifyRule pairs a predicate with the sentinel it maps to.
type classifyRule struct {
	match    func(Error) bool
	sentinel error
}

// classifyRules is evaluated in order; the first rule that matches any
// entry in the error list wins.
var classifyRules = []classifyRule{
	{codeIn(1061, 10006), ErrZoneAlreadyExists},
	{headerRejected, ErrInvalidRequestHeaders},
	{codeIn(81058), ErrIdenticalRecordExists},
	{codeIn(9002), ErrDNSRecordInvalid},
	{codeIn(1118), ErrExceededZonesLimit},
}

func codeIn(codes ...int) func(Error) bool {
	return func(e Error) bool {
		for _, c := range codes {
			if e.Code == c {
				return true
			}
		}
		return false
	}
}

// headerRejected matches codes 6003 and 6103, and any error whose chain
// contains code 6111.
func headerRejected(e Error) bool {
	if e.Code == 6003 || e.Code == 6103 {
		return true
	}
	for _, chained := range e.ErrorChain {
		if chained.Code == 6111 {
			return true
		}
	}
	return false
}

// classify maps an envelope error list to a typed error. Unmatched lists
// come back as an *APIError carrying the full raw list.
func classify(errs []Error) error {
	for _, rule := range classifyRules {
		for _, e := range errs {
			if rule.match(e) {
				return fmt.Errorf("%w: %s", rule.sentinel, e.Message)
			}
		}
	}
	return &APIError{Errors: errs}
}
