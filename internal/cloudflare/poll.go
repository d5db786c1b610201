package cloudflare

import (
	"context"
	"fmt"
	"time"
)

const (
	// DefaultPollInterval is the delay between activation checks.
	DefaultPollInterval = 15 * time.Second

	// DefaultActivationTimeout bounds how long WaitUntilActive polls
	// before giving up. Nameserver delegation can take a while to
	// propagate, so the default is generous.
	DefaultActivationTimeout = 30 * time.Minute
)

const zoneStatusActive = "active"

// ZoneStatus fetches the zone's current status string.
func (c *Client) ZoneStatus(ctx context.Context, zoneID string) (string, error) {
	zone, err := c.GetZone(ctx, zoneID)
	if err != nil {
		return "", err
	}
	return zone.Status, nil
}

// WaitUntilActive polls the zone until its status becomes "active",
// then returns nil. It checks immediately, so an already-active zone
// returns without sleeping. Once the elapsed time exceeds timeout it
// fails with ErrActivationTimeout; a non-positive timeout allows at
// most the initial check. A non-positive interval falls back to
// DefaultPollInterval.
//
// Cancelling ctx aborts the wait mid-sleep with the context's error.
func (c *Client) WaitUntilActive(ctx context.Context, zoneID string, interval, timeout time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	start := time.Now()
	for {
		status, err := c.ZoneStatus(ctx, zoneID)
		if err != nil {
			return err
		}
		if status == zoneStatusActive {
			c.log.Info("zone active", "zone", zoneID, "waited", time.Since(start).Round(time.Second))
			return nil
		}
		c.log.V(1).Info("zone not active yet", "zone", zoneID, "status", status)

		if time.Since(start) > timeout {
			return fmt.Errorf("%w: zone %s still %q after %s", ErrActivationTimeout, zoneID, status, timeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}
