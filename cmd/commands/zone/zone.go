package zone

import (
	"context"
	"fmt"

	"nathanbeddoewebdev/cfzone/internal/cfclient"
	"nathanbeddoewebdev/cfzone/internal/cloudflare"
	"nathanbeddoewebdev/cfzone/internal/config"
	"nathanbeddoewebdev/cfzone/internal/services/auth"

	"github.com/spf13/cobra"
)

// NewCommand returns the "zone" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zone",
		Short: "Register and inspect zones",
		Long: `Register domains as zones and inspect their activation status.

A freshly registered zone stays "pending" until the domain's nameservers
are switched to the ones Cloudflare assigns; "zone wait" polls until the
zone becomes active.`,
	}

	cmd.AddCommand(RegisterCommand())
	cmd.AddCommand(StatusCommand())
	cmd.AddCommand(WaitCommand())
	cmd.AddCommand(ListCommand())

	return cmd
}

// openClient builds and opens an API client from stored credentials and
// user configuration. The caller closes it.
func openClient(cmd *cobra.Command) (*cloudflare.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	log := cfclient.NewLogger(cmd.ErrOrStderr(), verbose)

	client, err := cfclient.New(auth.DefaultStore(), cfg, log)
	if err != nil {
		return nil, nil, err
	}
	if err := client.Open(cmd.Context()); err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}

// resolveZone finds a zone by exact domain name.
func resolveZone(ctx context.Context, client *cloudflare.Client, name string) (*cloudflare.Zone, error) {
	zones, err := client.ListZones(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(zones) == 0 {
		return nil, fmt.Errorf("no zone found for %q", name)
	}
	return &zones[0], nil
}
