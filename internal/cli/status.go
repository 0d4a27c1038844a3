package cli

import (
	"fmt"

	"github.com/jbrowse-plugin-kit/plugin-setup/internal/setup"
	"github.com/spf13/cobra"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var flags projectFlags

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report derived names and whether setup has run",
		Long:  `Inspect package.json without writing anything: derived names, setup state, manifest warnings and where the CI workflow lives.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, settings, err := flags.resolve()
			if err != nil {
				return err
			}
			report, err := setup.New(root, settings, opts.logger).Inspect()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", styles.Title.Render("Project"), root)
			fmt.Fprintf(w, "  package name:  %s\n", report.Names.Raw)
			fmt.Fprintf(w, "  safe name:     %s\n", report.Names.Safe)
			fmt.Fprintf(w, "  plugin class:  %s\n", report.Names.Class)
			if report.RepoURL != "" {
				fmt.Fprintf(w, "  repository:    %s\n", report.RepoURL)
			} else {
				fmt.Fprintf(w, "  repository:    %s\n", styles.Muted.Render("(none recognized)"))
			}

			if report.AlreadyRun {
				fmt.Fprintf(w, "  %s setup has been run\n", tagOK)
			} else {
				fmt.Fprintf(w, "  %s setup has not been run\n", tagSkip)
			}
			switch {
			case report.Workflow.DestinationPresent:
				fmt.Fprintf(w, "  %s CI workflow installed at %s\n", tagOK, settings.Workflow.Destination)
			case report.Workflow.SourcePresent:
				fmt.Fprintf(w, "  %s CI workflow waiting at %s\n", tagSkip, settings.Workflow.Source)
			default:
				fmt.Fprintf(w, "  %s no CI workflow found\n", tagWarn)
			}
			for _, warning := range report.Warnings {
				fmt.Fprintf(w, "  %s %s\n", tagWarn, warning)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
