package cloudflare

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// Zone is a registered domain as the API reports it.
type Zone struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	NameServers []string `json:"name_servers"`
}

// ZoneCreateOpts tunes zone creation. The zero value creates a full
// (Cloudflare-hosted DNS) zone without record scanning.
type ZoneCreateOpts struct {
	// JumpStart asks the provider to scan for existing DNS records on
	// the domain and import them.
	JumpStart bool

	// Type is the zone type, "full" or "partial". Empty means "full".
	Type string
}

// CreateZone registers a new zone. The default account id is resolved
// and attached to the request when one is available.
func (c *Client) CreateZone(ctx context.Context, name string, opts ZoneCreateOpts) (*Zone, error) {
	accountID, err := c.DefaultAccountID(ctx)
	if err != nil {
		return nil, err
	}

	zoneType := opts.Type
	if zoneType == "" {
		zoneType = "full"
	}

	payload := map[string]any{
		"name":       name,
		"jump_start": opts.JumpStart,
		"type":       zoneType,
	}
	if accountID != "" {
		payload["account"] = map[string]string{"id": accountID}
	}

	var zone Zone
	if err := c.doJSON(ctx, http.MethodPost, "zones", nil, payload, &zone); err != nil {
		return nil, err
	}
	c.log.Info("zone created", "name", zone.Name, "id", zone.ID)
	return &zone, nil
}

// ListZones lists zones in the account, optionally filtered by exact
// domain name.
func (c *Client) ListZones(ctx context.Context, name string) ([]Zone, error) {
	var query url.Values
	if name != "" {
		query = url.Values{"name": []string{name}}
	}

	var zones []Zone
	if err := c.doJSON(ctx, http.MethodGet, "zones", query, nil, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

// GetZone fetches a single zone by id.
func (c *Client) GetZone(ctx context.Context, zoneID string) (*Zone, error) {
	var zone Zone
	if err := c.doJSON(ctx, http.MethodGet, "zones/"+zoneID, nil, nil, &zone); err != nil {
		return nil, err
	}
	return &zone, nil
}

// RegisterOpts tunes RegisterDomain.
type RegisterOpts struct {
	// FailIfExists propagates ErrZoneAlreadyExists instead of looking up
	// the existing zone.
	FailIfExists bool

	// JumpStart and Type are passed through to zone creation.
	JumpStart bool
	Type      string
}

// Registration is the outcome of RegisterDomain: the zone id and the
// nameservers the domain must be delegated to.
type Registration struct {
	ZoneID      string
	NameServers []string
}

// RegisterDomain registers a domain as a zone, idempotently by default:
// when the zone already exists it is looked up by name and returned as
// if freshly created. Note the lookup takes the first zone matching the
// name, so accounts holding several same-named zones (for example a
// pending duplicate next to an active one) may resolve to either.
//
// A zone reported with fewer than two nameservers fails with
// ErrNoNameServers; delegation needs at least two.
func (c *Client) RegisterDomain(ctx context.Context, domain string, opts RegisterOpts) (*Registration, error) {
	zone, err := c.CreateZone(ctx, domain, ZoneCreateOpts{JumpStart: opts.JumpStart, Type: opts.Type})
	if err != nil {
		if !errors.Is(err, ErrZoneAlreadyExists) || opts.FailIfExists {
			return nil, err
		}

		zones, lookupErr := c.ListZones(ctx, domain)
		if lookupErr != nil {
			return nil, lookupErr
		}
		if len(zones) == 0 {
			return nil, fmt.Errorf("cloudflare: zone %q reported as existing but not found", domain)
		}
		zone = &zones[0]
		c.log.Info("zone already registered", "name", zone.Name, "id", zone.ID)
	}

	if len(zone.NameServers) < 2 {
		return nil, fmt.Errorf("%w: zone %s has %d", ErrNoNameServers, zone.Name, len(zone.NameServers))
	}

	return &Registration{ZoneID: zone.ID, NameServers: zone.NameServers}, nil
}
