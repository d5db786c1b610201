package zone

import (
	"context"
	"fmt"
	"os"
	"time"

	"nathanbeddoewebdev/cfzone/internal/auditlog"
	"nathanbeddoewebdev/cfzone/internal/cfclient"
	"nathanbeddoewebdev/cfzone/internal/cloudflare"
	"nathanbeddoewebdev/cfzone/internal/config"
	"nathanbeddoewebdev/cfzone/internal/services/auth"
	"nathanbeddoewebdev/cfzone/internal/styles"
	"nathanbeddoewebdev/cfzone/internal/util"

	"github.com/charmbracelet/huh"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// registerConcurrency bounds parallel registrations when several
// domains are given at once.
const registerConcurrency = 4

func RegisterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register [domain]...",
		Short: "Register domains as zones",
		Long: `Register one or more domains as zones.

Registration is idempotent: a domain that is already registered is
looked up and reported with its existing zone ID and nameservers. Pass
--fail-if-exists to treat an existing zone as an error instead.

After registering, point the domain's nameservers at the ones printed
and run "cfzone zone wait" (or pass --wait) for activation.

Examples:
  cfzone zone register example.com
  cfzone zone register example.com another.io
  cfzone zone register example.com --jump-start --wait
  cfzone zone register example.com --type partial --fail-if-exists`,
		RunE:         runRegister,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("fail-if-exists", false, "Fail when the zone is already registered")
	cmd.Flags().Bool("jump-start", false, "Ask Cloudflare to scan and import existing DNS records")
	cmd.Flags().String("type", "", "Zone type: full or partial (default from config, else full)")
	cmd.Flags().Bool("wait", false, "Block until each zone becomes active")
	cmd.Flags().Int("interval", 0, "Activation poll interval in seconds (with --wait)")
	cmd.Flags().Int("timeout", 0, "Activation wait deadline in minutes (with --wait)")

	return cmd
}

type registerResult struct {
	domain string
	reg    *cloudflare.Registration
	err    error
}

func runRegister(cmd *cobra.Command, args []string) error {
	failIfExists, _ := cmd.Flags().GetBool("fail-if-exists")
	jumpStart, _ := cmd.Flags().GetBool("jump-start")
	zoneType, _ := cmd.Flags().GetString("type")
	wait, _ := cmd.Flags().GetBool("wait")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if zoneType == "" {
		zoneType = cfg.DefaultZoneType
	}

	domains := args
	if len(domains) == 0 {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("at least one domain is required")
		}
		domain, formErr := registerForm(&jumpStart, &wait)
		if formErr != nil {
			return formErr
		}
		domains = []string{domain}
	}

	for i, d := range domains {
		domains[i] = util.NormalizeDomain(d)
		if err := util.ValidateDomainName(domains[i]); err != nil {
			return err
		}
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	log := cfclient.NewLogger(cmd.ErrOrStderr(), verbose)
	store := auth.DefaultStore()

	opts := cloudflare.RegisterOpts{
		FailIfExists: failIfExists,
		JumpStart:    jumpStart,
		Type:         zoneType,
	}

	// Each registration runs on its own client; a Client is not safe
	// for concurrent use.
	results := make([]registerResult, len(domains))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(registerConcurrency)
	for i, domain := range domains {
		g.Go(func() error {
			start := time.Now()
			reg, err := registerOne(ctx, store, cfg, log, domain, opts)
			results[i] = registerResult{domain: domain, reg: reg, err: err}
			meta := auditlog.Metadata{Zone: domain, ResourceType: auditlog.ResourceZone, ResourceName: domain}
			if reg != nil {
				meta.ResourceID = reg.ZoneID
			}
			auditlog.Record("cfzone zone register", os.Args[1:], meta, err, start)
			return nil
		})
	}
	g.Wait()

	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %v\n", styles.ErrorText.Render("✗"), res.domain, res.err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s registered (zone %s)\n",
			styles.SuccessText.Render("✓"), res.domain, res.reg.ZoneID)
		fmt.Fprintln(cmd.OutOrStdout(), "  Point the domain at these nameservers:")
		for _, ns := range res.reg.NameServers {
			fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", styles.AccentText.Render(ns))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d registrations failed", failed, len(domains))
	}

	if !wait {
		return nil
	}

	interval, timeout := waitSettings(cmd, cfg)
	for _, res := range results {
		if err := waitForZone(cmd, res.reg.ZoneID, res.domain, interval, timeout); err != nil {
			return err
		}
	}
	return nil
}

// registerOne opens a dedicated session and registers a single domain.
func registerOne(
	ctx context.Context,
	store auth.Store,
	cfg *config.Config,
	log logr.Logger,
	domain string,
	opts cloudflare.RegisterOpts,
) (*cloudflare.Registration, error) {
	client, err := cfclient.New(store, cfg, log)
	if err != nil {
		return nil, err
	}
	if err := client.Open(ctx); err != nil {
		return nil, err
	}
	defer client.Close()

	return client.RegisterDomain(ctx, domain, opts)
}

// registerForm collects a domain interactively when none was given.
func registerForm(jumpStart, wait *bool) (string, error) {
	var domain string
	accessible := os.Getenv("ACCESSIBLE") != ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Domain to register").
				Placeholder("example.com").
				Validate(func(s string) error {
					return util.ValidateDomainName(util.NormalizeDomain(s))
				}).
				Value(&domain),
			huh.NewConfirm().
				Title("Scan and import existing DNS records?").
				Value(jumpStart),
			huh.NewConfirm().
				Title("Wait for the zone to become active?").
				Value(wait),
		),
	).WithAccessible(accessible)

	if err := form.Run(); err != nil {
		return "", err
	}
	return util.NormalizeDomain(domain), nil
}

// waitSettings resolves the poll interval and deadline from flags, then
// config, then the client defaults.
func waitSettings(cmd *cobra.Command, cfg *config.Config) (interval, timeout time.Duration) {
	intervalSec, _ := cmd.Flags().GetInt("interval")
	timeoutMin, _ := cmd.Flags().GetInt("timeout")

	interval = time.Duration(intervalSec) * time.Second
	if interval <= 0 {
		interval = cfg.PollInterval()
	}
	if interval <= 0 {
		interval = cloudflare.DefaultPollInterval
	}

	timeout = time.Duration(timeoutMin) * time.Minute
	if timeout <= 0 {
		timeout = cfg.ActivationTimeout()
	}
	if timeout <= 0 {
		timeout = cloudflare.DefaultActivationTimeout
	}
	return interval, timeout
}
