package record

import (
	"fmt"
	"os"
	"time"

	"nathanbeddoewebdev/cfzone/internal/auditlog"
	"nathanbeddoewebdev/cfzone/internal/cloudflare"
	"nathanbeddoewebdev/cfzone/internal/util"

	"github.com/spf13/cobra"
)

// AddCommand returns the "record add" subcommand.
func AddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <domain>",
		Short: "Add a DNS record",
		Long: `Add a DNS record to the given domain's zone.

The record type is case-insensitive. TTL 0 means automatic.

Examples:
  cfzone record add example.com --type A --name www --content 1.2.3.4
  cfzone record add example.com --type A --name www --content 1.2.3.4 --proxied
  cfzone record add example.com --type MX --name @ --content mail.example.com --priority 10
  cfzone record add example.com --type TXT --name _dmarc --content "v=DMARC1; p=none"`,
		Args:         cobra.ExactArgs(1),
		RunE:         runAdd,
		SilenceUsage: true,
	}

	cmd.Flags().String("type", "", "Record type (A, AAAA, CNAME, MX, TXT, etc.) [required]")
	cmd.Flags().String("name", "@", "Record name (@ or empty for the zone apex)")
	cmd.Flags().String("content", "", "Record content (IP address, hostname, text value, etc.) [required]")
	cmd.Flags().Int("ttl", 0, "Time-to-live in seconds (0 = automatic)")
	cmd.Flags().Int("priority", 0, "Record priority (for MX, SRV, etc.)")
	cmd.Flags().Bool("proxied", false, "Proxy the record through Cloudflare")
	cmd.Flags().String("comment", "", "Optional comment stored with the record")

	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("content")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	domain := util.NormalizeDomain(args[0])
	if err := util.ValidateDomainName(domain); err != nil {
		return err
	}

	recordType, _ := cmd.Flags().GetString("type")
	name, _ := cmd.Flags().GetString("name")
	content, _ := cmd.Flags().GetString("content")
	ttl, _ := cmd.Flags().GetInt("ttl")
	comment, _ := cmd.Flags().GetString("comment")

	// The apex shorthand "@" (or an empty name) means the zone itself.
	if name == "" || name == "@" {
		name = domain
	}

	opts := cloudflare.RecordOpts{
		Type:    recordType,
		Name:    name,
		Content: content,
		TTL:     ttl,
		Comment: comment,
	}
	if cmd.Flags().Changed("proxied") {
		proxied, _ := cmd.Flags().GetBool("proxied")
		opts.Proxied = &proxied
	}
	if cmd.Flags().Changed("priority") {
		priority, _ := cmd.Flags().GetInt("priority")
		opts.Priority = &priority
	}

	client, err := openClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	zone, err := resolveZone(cmd.Context(), client, domain)
	if err != nil {
		return err
	}

	start := time.Now()
	rec, err := client.AddRecord(cmd.Context(), zone.ID, opts)
	meta := auditlog.Metadata{Zone: domain, ResourceType: auditlog.ResourceRecord, ResourceName: name}
	if rec != nil {
		meta.ResourceID = rec.ID
	}
	auditlog.Record("cfzone record add", os.Args[1:], meta, err, start)
	if err != nil {
		return fmt.Errorf("adding record: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created record %s (%s %s -> %s)\n",
		rec.ID, rec.Type, rec.Name, rec.Content)
	return nil
}
