package zone

import (
	"fmt"
	"os"
	"time"

	"nathanbeddoewebdev/cfzone/internal/config"
	"nathanbeddoewebdev/cfzone/internal/styles"
	"nathanbeddoewebdev/cfzone/internal/util"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func WaitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wait <domain>",
		Short: "Block until a zone becomes active",
		Long: `Poll a zone until its status becomes "active".

Activation happens once the domain's nameserver delegation propagates,
which can take minutes to hours depending on the registrar.

Examples:
  cfzone zone wait example.com
  cfzone zone wait example.com --interval 30 --timeout 60`,
		Args:         cobra.ExactArgs(1),
		RunE:         runWait,
		SilenceUsage: true,
	}

	cmd.Flags().Int("interval", 0, "Poll interval in seconds")
	cmd.Flags().Int("timeout", 0, "Wait deadline in minutes")

	return cmd
}

func runWait(cmd *cobra.Command, args []string) error {
	domain := util.NormalizeDomain(args[0])
	if err := util.ValidateDomainName(domain); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	interval, timeout := waitSettings(cmd, cfg)

	client, _, err := openClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	zone, err := resolveZone(cmd.Context(), client, domain)
	if err != nil {
		return err
	}

	return waitForZone(cmd, zone.ID, domain, interval, timeout)
}

// waitForZone polls a zone on its own session, with a spinner when
// attached to a terminal.
func waitForZone(cmd *cobra.Command, zoneID, domain string, interval, timeout time.Duration) error {
	client, _, err := openClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := cmd.Context()

	if term.IsTerminal(int(os.Stdout.Fd())) {
		accessible := os.Getenv("ACCESSIBLE") != ""
		var waitErr error
		spinErr := spinner.New().
			Title(fmt.Sprintf("Waiting for %s to become active...", domain)).
			Accessible(accessible).
			Output(cmd.ErrOrStderr()).
			Action(func() {
				waitErr = client.WaitUntilActive(ctx, zoneID, interval, timeout)
			}).
			Run()
		if spinErr != nil {
			return spinErr
		}
		err = waitErr
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "Waiting for %s to become active (checking every %s)...\n", domain, interval)
		err = client.WaitUntilActive(ctx, zoneID, interval, timeout)
	}

	if err != nil {
		return fmt.Errorf("waiting for %s: %w", domain, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s is %s\n",
		styles.SuccessText.Render("✓"), domain, styles.StatusIndicator("active"))
	return nil
}
