package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect setup settings",
	}
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var flags projectFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as YAML",
		Long:  `Print settings after merging built-in defaults, the project's settings file and PLUGIN_SETUP_* environment variables.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, settings, err := flags.resolve()
			if err != nil {
				return err
			}
			out, err := settings.Marshal()
			if err != nil {
				return fmt.Errorf("marshaling settings: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
