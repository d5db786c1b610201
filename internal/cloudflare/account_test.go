package cloudflare

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestDefaultAccountID_FromUserAccount(t *testing.T) {
	srv := newCFRouter(t, map[string]http.HandlerFunc{
		"GET /user": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, cfSuccessEnvelope(map[string]any{
				"id":      "user-1",
				"account": map[string]any{"id": "acct-embedded"},
			}))
		},
	})
	c := newTestClient(t, srv.URL)

	id, err := c.DefaultAccountID(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != "acct-embedded" {
		t.Errorf("account id = %q, want %q", id, "acct-embedded")
	}
}

func TestDefaultAccountID_FromUserAccountsList(t *testing.T) {
	srv := newCFRouter(t, map[string]http.HandlerFunc{
		"GET /user": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, cfSuccessEnvelope(map[string]any{
				"id": "user-1",
				"accounts": []any{
					map[string]any{"id": "acct-first"},
					map[string]any{"id": "acct-second"},
				},
			}))
		},
	})
	c := newTestClient(t, srv.URL)

	id, err := c.DefaultAccountID(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != "acct-first" {
		t.Errorf("account id = %q, want %q", id, "acct-first")
	}
}

func TestDefaultAccountID_FallbackToAccountsEndpoint(t *testing.T) {
	srv := newCFRouter(t, map[string]http.HandlerFunc{
		"GET /user": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, cfSuccessEnvelope(map[string]any{"id": "user-1"}))
		},
		"GET /accounts": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, cfSuccessEnvelope([]any{
				map[string]any{"id": "acct-listed"},
			}))
		},
	})
	c := newTestClient(t, srv.URL)

	id, err := c.DefaultAccountID(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != "acct-listed" {
		t.Errorf("account id = %q, want %q", id, "acct-listed")
	}
}

func TestDefaultAccountID_CachedAfterFirstCall(t *testing.T) {
	userCalls := 0
	srv := newCFRouter(t, map[string]http.HandlerFunc{
		"GET /user": func(w http.ResponseWriter, r *http.Request) {
			userCalls++
			writeJSON(w, cfSuccessEnvelope(map[string]any{
				"id":      "user-1",
				"account": map[string]any{"id": "acct-1"},
			}))
		},
	})
	c := newTestClient(t, srv.URL)

	for i := 0; i < 3; i++ {
		id, err := c.DefaultAccountID(context.Background())
		if err != nil {
			t.Fatalf("call %d: expected no error, got %v", i, err)
		}
		if id != "acct-1" {
			t.Errorf("call %d: account id = %q, want %q", i, id, "acct-1")
		}
	}
	if userCalls != 1 {
		t.Errorf("expected 1 API call, got %d", userCalls)
	}
}

func TestDefaultAccountID_AbsenceCached(t *testing.T) {
	userCalls, accountsCalls := 0, 0
	srv := newCFRouter(t, map[string]http.HandlerFunc{
		"GET /user": func(w http.ResponseWriter, r *http.Request) {
			userCalls++
			writeJSON(w, cfSuccessEnvelope(map[string]any{"id": "user-1"}))
		},
		"GET /accounts": func(w http.ResponseWriter, r *http.Request) {
			accountsCalls++
			writeJSON(w, cfSuccessEnvelope([]any{}))
		},
	})
	c := newTestClient(t, srv.URL)

	for i := 0; i < 2; i++ {
		id, err := c.DefaultAccountID(context.Background())
		if err != nil {
			t.Fatalf("call %d: expected no error, got %v", i, err)
		}
		if id != "" {
			t.Errorf("call %d: account id = %q, want empty", i, id)
		}
	}
	if userCalls != 1 || accountsCalls != 1 {
		t.Errorf("expected 1 call each, got user=%d accounts=%d", userCalls, accountsCalls)
	}
}

func TestDefaultAccountID_InvalidCreds(t *testing.T) {
	srv := newCFRouter(t, map[string]http.HandlerFunc{
		"GET /user": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			writeJSON(w, cfErrorEnvelope(9103, "Unknown X-Auth-Key or X-Auth-Email"))
		},
	})
	c := newTestClient(t, srv.URL)

	_, err := c.DefaultAccountID(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrUserCredsInvalid) {
		t.Errorf("expected ErrUserCredsInvalid, got: %v", err)
	}
}
