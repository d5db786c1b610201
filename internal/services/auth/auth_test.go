package auth

import (
	"errors"
	"testing"
)

func TestSaveToken_ClearsGlobalKeyPair(t *testing.T) {
	s := NewMockStore()
	if err := SaveGlobalKey(s, "user@example.com", "global-key"); err != nil {
		t.Fatalf("SaveGlobalKey: %v", err)
	}
	if err := SaveToken(s, "api-token-value"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}

	creds, err := Load(s)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if creds.Token != "api-token-value" || creds.Email != "" || creds.Key != "" {
		t.Errorf("Load = %+v, want token only", creds)
	}
	if creds.Method() != "token" {
		t.Errorf("Method = %q, want token", creds.Method())
	}
}

func TestSaveGlobalKey_ClearsToken(t *testing.T) {
	s := NewMockStore()
	if err := SaveToken(s, "api-token-value"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	if err := SaveGlobalKey(s, "user@example.com", "global-key"); err != nil {
		t.Fatalf("SaveGlobalKey: %v", err)
	}

	creds, err := Load(s)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if creds.Token != "" || creds.Email != "user@example.com" || creds.Key != "global-key" {
		t.Errorf("Load = %+v, want global key pair only", creds)
	}
	if creds.Method() != "global-key" {
		t.Errorf("Method = %q, want global-key", creds.Method())
	}
}

func TestLoad_NothingStored(t *testing.T) {
	_, err := Load(NewMockStore())
	if !errors.Is(err, ErrCredentialsNotFound) {
		t.Errorf("expected ErrCredentialsNotFound, got: %v", err)
	}
}

func TestClear(t *testing.T) {
	s := NewMockStore()
	if err := SaveToken(s, "api-token-value"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	if err := Clear(s); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := Load(s); !errors.Is(err, ErrCredentialsNotFound) {
		t.Errorf("expected ErrCredentialsNotFound after Clear, got: %v", err)
	}
	if err := Clear(s); !errors.Is(err, ErrCredentialsNotFound) {
		t.Errorf("expected ErrCredentialsNotFound on second Clear, got: %v", err)
	}
}
