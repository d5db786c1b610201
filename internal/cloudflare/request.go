package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// envelope is the standard API response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Errors  []Error         `json:"errors"`
	Result  json.RawMessage `json:"result"`

	// raw is the whole response body, kept so callers can fall back to
	// it when the envelope carries no result field.
	raw []byte
}

// resultAbsent reports whether the envelope carried no usable result.
func (e *envelope) resultAbsent() bool {
	return len(e.Result) == 0 || string(e.Result) == "null"
}

// result returns the result payload, or the whole envelope body when the
// response carries no result field.
func (e *envelope) result() json.RawMessage {
	if e.resultAbsent() {
		return e.raw
	}
	return e.Result
}

// do issues one API call over the open session and decodes the response
// envelope. The body is decoded as JSON regardless of the declared
// Content-Type — the API occasionally mislabels it.
//
// When expectSuccess is set and the envelope reports failure, the error
// list is classified into the package's sentinel errors; unmatched
// failures come back as *APIError with the raw list preserved.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, expectSuccess bool) (*envelope, error) {
	switch c.state {
	case stateClosed:
		return nil, fmt.Errorf("cloudflare: %s %s: %w", method, path, ErrSessionClosed)
	case stateUnopened:
		return nil, fmt.Errorf("cloudflare: %s %s: %w", method, path, ErrSessionNotOpen)
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("cloudflare: encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	endpoint := strings.TrimRight(c.baseURL, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("cloudflare: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.cred.apply(req.Header)

	c.log.V(1).Info("api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cloudflare: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cloudflare: read response: %w", err)
	}

	c.log.V(1).Info("api response", "status", resp.StatusCode, "body", string(data))

	env := &envelope{raw: data}
	if err := json.Unmarshal(data, env); err != nil {
		return nil, fmt.Errorf("cloudflare: decode response: %w", err)
	}

	if expectSuccess && !env.Success {
		return nil, classify(env.Errors)
	}
	return env, nil
}

// doJSON issues a call that must succeed and unmarshals the result
// payload into out. A nil out discards the result.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	env, err := c.do(ctx, method, path, query, body, true)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.result(), out); err != nil {
		return fmt.Errorf("cloudflare: decode result: %w", err)
	}
	return nil
}
