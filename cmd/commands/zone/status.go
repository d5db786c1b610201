package zone

import (
	"fmt"

	"nathanbeddoewebdev/cfzone/internal/styles"
	"nathanbeddoewebdev/cfzone/internal/util"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <domain>",
		Short: "Show a zone's activation status",
		Long: `Show a zone's current status and assigned nameservers.

Example:
  cfzone zone status example.com`,
		Args:         cobra.ExactArgs(1),
		RunE:         runStatus,
		SilenceUsage: true,
	}

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	domain := util.NormalizeDomain(args[0])
	if err := util.ValidateDomainName(domain); err != nil {
		return err
	}

	client, _, err := openClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	zone, err := resolveZone(cmd.Context(), client, domain)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", styles.Label.Render("Zone:"), zone.Name)
	fmt.Fprintf(out, "%s %s\n", styles.Label.Render("ID:"), zone.ID)
	fmt.Fprintf(out, "%s %s\n", styles.Label.Render("Status:"), styles.StatusIndicator(zone.Status))
	fmt.Fprintf(out, "%s\n", styles.Label.Render("Nameservers:"))
	for _, ns := range zone.NameServers {
		fmt.Fprintf(out, "  %s\n", styles.AccentText.Render(ns))
	}
	return nil
}
