package cloudflare

import (
	"fmt"
	"net/http"
)

// Credential describes how a Client authenticates against the API.
// Exactly one of the two variants is populated: a scoped API token, or
// the legacy email + Global API Key pair. Construct values with
// TokenCredential or GlobalKeyCredential; the zero value is invalid.
type Credential struct {
	token string
	email string
	key   string
}

// TokenCredential returns a Credential for a scoped API token.
// The token needs Zone:Edit, DNS:Edit, and User:Read permissions.
func TokenCredential(token string) Credential {
	return Credential{token: token}
}

// GlobalKeyCredential returns a Credential for an email + Global API Key pair.
func GlobalKeyCredential(email, key string) Credential {
	return Credential{email: email, key: key}
}

// validate checks that exactly one auth variant is populated.
func (cr Credential) validate() error {
	hasToken := cr.token != ""
	hasGlobal := cr.email != "" || cr.key != ""

	if hasToken && hasGlobal {
		return fmt.Errorf("%w: specify either an API token or an email + global key pair, not both", ErrCredentialConfig)
	}
	if !hasToken && (cr.email == "" || cr.key == "") {
		return fmt.Errorf("%w: need either an API token or an email + global key pair", ErrCredentialConfig)
	}
	return nil
}

// isToken reports whether the token variant is populated.
func (cr Credential) isToken() bool {
	return cr.token != ""
}

// Method returns "token" or "global-key" for display and logging.
func (cr Credential) Method() string {
	if cr.isToken() {
		return "token"
	}
	return "global-key"
}

// apply sets the auth headers for this credential on a request.
func (cr Credential) apply(h http.Header) {
	if cr.isToken() {
		h.Set("Authorization", "Bearer "+cr.token)
		return
	}
	h.Set("X-Auth-Email", cr.email)
	h.Set("X-Auth-Key", cr.key)
}
