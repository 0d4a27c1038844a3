package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/jbrowse-plugin-kit/plugin-setup/internal/naming"
	"github.com/spf13/cobra"
)

func newNamesCmd() *cobra.Command {
	var (
		asJSON bool
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "names <package-name>...",
		Short: "Print the identifiers derived from package names",
		Long: `Show the safe package name and plugin class name setup would derive.

Example:
  plugin-setup names @acme/jbrowse-plugin-cool-tool`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all := make([]naming.Names, 0, len(args))
			for _, raw := range args {
				all = append(all, naming.Derive(raw, prefix))
			}

			if asJSON {
				out, err := json.MarshalIndent(all, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling names: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PACKAGE\tSAFE NAME\tPLUGIN CLASS")
			for _, n := range all {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", n.Raw, n.Safe, n.Class)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print names as JSON")
	cmd.Flags().StringVar(&prefix, "prefix", naming.DefaultClassPrefix, "Prefix stripped before deriving the class name")
	return cmd
}
