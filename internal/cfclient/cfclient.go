// Package cfclient assembles configured API clients from stored
// credentials and user configuration, so commands share one way of
// opening a session.
package cfclient

import (
	"errors"
	"fmt"
	"io"

	"nathanbeddoewebdev/cfzone/internal/cloudflare"
	"nathanbeddoewebdev/cfzone/internal/config"
	"nathanbeddoewebdev/cfzone/internal/services/auth"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// New builds an unopened client from the credentials in store and the
// user's configuration. The caller opens and closes it.
func New(store auth.Store, cfg *config.Config, log logr.Logger) (*cloudflare.Client, error) {
	creds, err := auth.Load(store)
	if err != nil {
		if errors.Is(err, auth.ErrCredentialsNotFound) {
			return nil, fmt.Errorf("no credentials stored; run 'cfzone auth login' first")
		}
		return nil, err
	}

	var cred cloudflare.Credential
	if creds.Token != "" {
		cred = cloudflare.TokenCredential(creds.Token)
	} else {
		cred = cloudflare.GlobalKeyCredential(creds.Email, creds.Key)
	}

	opts := []cloudflare.Option{
		cloudflare.WithLogger(log),
		cloudflare.WithVerifyOnOpen(!cfg.SkipVerify),
	}
	if d := cfg.RequestTimeout(); d > 0 {
		opts = append(opts, cloudflare.WithTimeout(d))
	}

	return cloudflare.NewClient(cred, opts...)
}

// NewLogger returns a logger writing to w. Verbose enables session
// lifecycle events and request/response tracing; otherwise everything
// is discarded.
func NewLogger(w io.Writer, verbose bool) logr.Logger {
	if !verbose {
		return logr.Discard()
	}
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: 1})
}
