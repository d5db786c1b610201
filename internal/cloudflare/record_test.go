package cloudflare

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func TestAddRecord_HappyPath(t *testing.T) {
	var capturedBody map[string]any
	srv := newCFRouter(t, map[string]http.HandlerFunc{
		"POST /zones/zone-1/dns_records": func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&capturedBody)
			writeJSON(w, cfSuccessEnvelope(map[string]any{
				"id":      "rec-new",
				"type":    "A",
				"name":    "www.example.com",
				"content": "1.2.3.4",
				"ttl":     1,
			}))
		},
	})
	c := newTestClient(t, srv.URL)

	rec, err := c.AddRecord(context.Background(), "zone-1", RecordOpts{
		Type:    "a",
		Name:    "www.example.com",
		Content: "1.2.3.4",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if rec.ID != "rec-new" {
		t.Errorf("rec.ID = %q, want %q", rec.ID, "rec-new")
	}

	// Type is normalized to upper case, TTL defaults to automatic.
	if capturedBody["type"] != "A" {
		t.Errorf("request body type = %v, want A", capturedBody["type"])
	}
	if capturedBody["ttl"] != float64(1) {
		t.Errorf("request body ttl = %v, want 1", capturedBody["ttl"])
	}
	if _, present := capturedBody["proxied"]; present {
		t.Errorf("expected no proxied field, got %v", capturedBody["proxied"])
	}
}

func TestAddRecord_AllOptions(t *testing.T) {
	var capturedBody map[string]any
	srv := newCFRouter(t, map[string]http.HandlerFunc{
		"POST /zones/zone-1/dns_records": func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&capturedBody)
			writeJSON(w, cfSuccessEnvelope(map[string]any{
				"id": "rec-mx", "type": "MX", "name": "example.com", "content": "mail.example.com", "ttl": 3600,
			}))
		},
	})
	c := newTestClient(t, srv.URL)

	_, err := c.AddRecord(context.Background(), "zone-1", RecordOpts{
		Type:     "mx",
		Name:     "example.com",
		Content:  "mail.example.com",
		TTL:      3600,
		Proxied:  boolPtr(false),
		Priority: intPtr(10),
		Comment:  "mail server",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if capturedBody["type"] != "MX" {
		t.Errorf("request body type = %v, want MX", capturedBody["type"])
	}
	if capturedBody["ttl"] != float64(3600) {
		t.Errorf("request body ttl = %v, want 3600", capturedBody["ttl"])
	}
	if capturedBody["proxied"] != false {
		t.Errorf("request body proxied = %v, want false", capturedBody["proxied"])
	}
	if capturedBody["priority"] != float64(10) {
		t.Errorf("request body priority = %v, want 10", capturedBody["priority"])
	}
	if capturedBody["comment"] != "mail server" {
		t.Errorf("request body comment = %v, want %q", capturedBody["comment"], "mail server")
	}
}

func TestAddRecord_ExtraOverridesModeledFields(t *testing.T) {
	var capturedBody map[string]any
	srv := newCFRouter(t, map[string]http.HandlerFunc{
		"POST /zones/zone-1/dns_records": func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&capturedBody)
			writeJSON(w, cfSuccessEnvelope(map[string]any{
				"id": "rec-srv", "type": "SRV", "name": "_sip._tcp.example.com",
			}))
		},
	})
	c := newTestClient(t, srv.URL)

	_, err := c.AddRecord(context.Background(), "zone-1", RecordOpts{
		Type:    "srv",
		Name:    "_sip._tcp.example.com",
		Content: "ignored",
		TTL:     300,
		Extra: map[string]any{
			"ttl": 60,
			"data": map[string]any{
				"service": "_sip", "proto": "_tcp", "priority": 1, "weight": 5, "port": 5060, "target": "sip.example.com",
			},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if capturedBody["ttl"] != float64(60) {
		t.Errorf("request body ttl = %v, want 60 (extra wins)", capturedBody["ttl"])
	}
	data, ok := capturedBody["data"].(map[string]any)
	if !ok || data["port"] != float64(5060) {
		t.Errorf("request body data = %v, want srv data with port 5060", capturedBody["data"])
	}
}

func TestAddRecord_Duplicate(t *testing.T) {
	srv := newCFRouter(t, map[string]http.HandlerFunc{
		"POST /zones/zone-1/dns_records": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			writeJSON(w, cfErrorEnvelope(81058, "An identical record already exists"))
		},
	})
	c := newTestClient(t, srv.URL)

	_, err := c.AddRecord(context.Background(), "zone-1", RecordOpts{Type: "A", Name: "www", Content: "1.2.3.4"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrIdenticalRecordExists) {
		t.Errorf("expected ErrIdenticalRecordExists, got: %v", err)
	}
}

func TestAddRecord_Invalid(t *testing.T) {
	srv := newCFRouter(t, map[string]http.HandlerFunc{
		"POST /zones/zone-1/dns_records": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			writeJSON(w, cfErrorEnvelope(9002, "DNS record content is invalid"))
		},
	})
	c := newTestClient(t, srv.URL)

	_, err := c.AddRecord(context.Background(), "zone-1", RecordOpts{Type: "A", Name: "www", Content: "not-an-ip"})
	if !errors.Is(err, ErrDNSRecordInvalid) {
		t.Errorf("expected ErrDNSRecordInvalid, got: %v", err)
	}
}
