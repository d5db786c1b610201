// Package cloudflare implements a session-oriented client for the
// Cloudflare v4 REST API, covering the domain onboarding workflow: zone
// registration, DNS record creation, and activation polling.
//
// A Client must be opened before use and closed when done:
//
//	c, err := cloudflare.NewClient(cloudflare.TokenCredential(token))
//	if err != nil { ... }
//	if err := c.Open(ctx); err != nil { ... }
//	defer c.Close()
//
// Open verifies the credential against the API by default. A closed
// client cannot be reopened; create a new one instead. A Client is not
// safe for concurrent mutation; callers that share one across goroutines
// must synchronize, or use one client per goroutine.
package cloudflare

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-logr/logr"
)

const (
	// BaseURL is the Cloudflare v4 API root.
	BaseURL = "https://api.cloudflare.com/client/v4/"

	// DefaultTimeout bounds a single HTTP request. The activation poller
	// keeps its own overall deadline on top of this.
	DefaultTimeout = 10 * time.Second
)

// Session lifecycle states. Closed is terminal.
const (
	stateUnopened = iota
	stateOpen
	stateClosed
)

// Client is an authenticated session against the Cloudflare API.
type Client struct {
	cred    Credential
	timeout time.Duration
	verify  bool
	baseURL string
	log     logr.Logger

	state      int
	httpClient *http.Client

	// Resolved account id, cached for the session's lifetime. Absence
	// ("" with accountResolved set) is cached too and never refreshed.
	accountID       string
	accountResolved bool
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithVerifyOnOpen controls whether Open verifies the credential against
// the API before returning. Enabled by default.
func WithVerifyOnOpen(verify bool) Option {
	return func(c *Client) {
		c.verify = verify
	}
}

// WithLogger sets the logger used for request/response tracing.
// The default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient returns an unopened Client for the given credential.
// It fails with ErrCredentialConfig when the credential populates both
// auth variants or neither.
func NewClient(cred Credential, opts ...Option) (*Client, error) {
	if err := cred.validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cred:    cred,
		timeout: DefaultTimeout,
		verify:  true,
		baseURL: BaseURL,
		log:     logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Open establishes the HTTP session and, unless disabled via
// WithVerifyOnOpen(false), verifies the credential. If verification
// fails the session is released before returning, so a failed Open
// needs no matching Close.
func (c *Client) Open(ctx context.Context) error {
	switch c.state {
	case stateOpen:
		return fmt.Errorf("cloudflare: session already open")
	case stateClosed:
		return fmt.Errorf("cloudflare: cannot reopen: %w", ErrSessionClosed)
	}

	c.httpClient = &http.Client{Timeout: c.timeout}
	c.state = stateOpen
	c.log.Info("session opened", "auth", c.cred.Method())

	if c.verify {
		if err := c.verifyAuth(ctx); err != nil {
			c.Close()
			return err
		}
	}
	return nil
}

// Close releases the session. It is idempotent and safe to call on an
// unopened client. A closed client is terminal and cannot be reopened.
func (c *Client) Close() {
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
		c.httpClient = nil
		c.log.Info("session closed")
	}
	c.state = stateClosed
}

// verifyAuth checks the credential against the identity endpoints:
// GET user/tokens/verify for tokens, GET user for global keys.
func (c *Client) verifyAuth(ctx context.Context) error {
	if c.cred.isToken() {
		status, err := c.VerifyToken(ctx)
		if err != nil {
			return err
		}
		c.log.Info("api token verified", "id", status.ID, "status", status.Status)
		return nil
	}

	env, err := c.do(ctx, http.MethodGet, "user", nil, nil, false)
	if err != nil {
		return err
	}
	if !env.Success || env.resultAbsent() {
		return fmt.Errorf("%w: email or global key rejected", ErrUserCredsInvalid)
	}
	var u struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Result, &u); err != nil {
		return fmt.Errorf("cloudflare: decode user: %w", err)
	}
	c.log.Info("global api key verified", "user", u.ID)
	return nil
}

// TokenStatus is the result of the token verification endpoint.
type TokenStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// VerifyToken checks the API token against GET user/tokens/verify.
// It fails with ErrUserCredsInvalid when the API reports no usable
// identity for the token.
func (c *Client) VerifyToken(ctx context.Context) (*TokenStatus, error) {
	env, err := c.do(ctx, http.MethodGet, "user/tokens/verify", nil, nil, false)
	if err != nil {
		return nil, err
	}
	if !env.Success || env.resultAbsent() {
		return nil, fmt.Errorf("%w: api token rejected", ErrUserCredsInvalid)
	}

	var status TokenStatus
	if err := json.Unmarshal(env.Result, &status); err != nil {
		return nil, fmt.Errorf("cloudflare: decode token status: %w", err)
	}
	return &status, nil
}
