package zone

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"nathanbeddoewebdev/cfzone/internal/styles"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [name]",
		Short: "List zones in the account",
		Long: `List zones in the account, optionally filtered by exact name.

Examples:
  cfzone zone list
  cfzone zone list example.com
  cfzone zone list -o json`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runZoneList,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runZoneList(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	name := ""
	if len(args) == 1 {
		name = args[0]
	}

	client, _, err := openClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	zones, err := client.ListZones(cmd.Context(), name)
	if err != nil {
		return err
	}

	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(zones)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	if len(zones) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No zones found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATUS\tID\tNAMESERVERS")
	for _, zone := range zones {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			zone.Name,
			styles.StatusIndicator(zone.Status),
			zone.ID,
			strings.Join(zone.NameServers, ", "),
		)
	}
	w.Flush()
	return nil
}
