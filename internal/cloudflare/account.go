package cloudflare

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type account struct {
	ID string `json:"id"`
}

type userIdentity struct {
	ID       string    `json:"id"`
	Account  *account  `json:"account"`
	Accounts []account `json:"accounts"`
}

// DefaultAccountID resolves the account id new zones are created under.
//
// Resolution order: an account embedded on the user record, then the
// first entry of the user's account list, then the first entry of a
// separate accounts listing. When none of those yields an id the empty
// string is returned; a missing account is optional context for zone
// creation, not a failure.
//
// Whatever is resolved (including absence) is cached for the session's
// lifetime; the cached value is never refreshed.
func (c *Client) DefaultAccountID(ctx context.Context) (string, error) {
	if c.accountResolved {
		return c.accountID, nil
	}

	env, err := c.do(ctx, http.MethodGet, "user", nil, nil, false)
	if err != nil {
		return "", err
	}
	if !env.Success || env.resultAbsent() {
		return "", fmt.Errorf("%w: email or global key rejected", ErrUserCredsInvalid)
	}

	var u userIdentity
	if err := json.Unmarshal(env.Result, &u); err != nil {
		return "", fmt.Errorf("cloudflare: decode user: %w", err)
	}

	var id string
	switch {
	case u.Account != nil && u.Account.ID != "":
		id = u.Account.ID
	case len(u.Accounts) > 0:
		id = u.Accounts[0].ID
	default:
		var accounts []account
		if err := c.doJSON(ctx, http.MethodGet, "accounts", nil, nil, &accounts); err != nil {
			return "", err
		}
		if len(accounts) > 0 {
			id = accounts[0].ID
		}
	}

	c.accountID = id
	c.accountResolved = true
	c.log.V(1).Info("resolved default account", "id", id)
	return id, nil
}
