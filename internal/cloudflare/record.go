package cloudflare

import (
	"context"
	"net/http"
	"strings"
)

// Record is a DNS record as the API reports it.
type Record struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
	TTL     int    `json:"ttl"`
	Proxied bool   `json:"proxied"`
}

// RecordOpts describes a DNS record to create. Type is normalized to
// upper case; a zero TTL means automatic (the API's TTL 1).
type RecordOpts struct {
	Type    string
	Name    string
	Content string
	TTL     int
	Proxied *bool
	// Priority applies to record types that carry one, such as MX.
	Priority *int
	Comment  string

	// Extra is merged into the request payload verbatim, for record
	// fields not modeled above. Keys here override the modeled fields.
	Extra map[string]any
}

// AddRecord creates a DNS record in the zone. Duplicate records fail
// with ErrIdenticalRecordExists; records the provider rejects fail with
// ErrDNSRecordInvalid.
func (c *Client) AddRecord(ctx context.Context, zoneID string, opts RecordOpts) (*Record, error) {
	ttl := opts.TTL
	if ttl == 0 {
		ttl = 1
	}

	payload := map[string]any{
		"type":    strings.ToUpper(opts.Type),
		"name":    opts.Name,
		"content": opts.Content,
		"ttl":     ttl,
	}
	if opts.Proxied != nil {
		payload["proxied"] = *opts.Proxied
	}
	if opts.Priority != nil {
		payload["priority"] = *opts.Priority
	}
	if opts.Comment != "" {
		payload["comment"] = opts.Comment
	}
	for k, v := range opts.Extra {
		payload[k] = v
	}

	var rec Record
	if err := c.doJSON(ctx, http.MethodPost, "zones/"+zoneID+"/dns_records", nil, payload, &rec); err != nil {
		return nil, err
	}
	c.log.Info("dns record created", "zone", zoneID, "type", rec.Type, "name", rec.Name)
	return &rec, nil
}
