package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jbrowse-plugin-kit/plugin-setup/internal/config"
	"github.com/jbrowse-plugin-kit/plugin-setup/internal/scaffold"
	"github.com/spf13/cobra"
)

func newCreateCmd(opts *rootOptions) *cobra.Command {
	var (
		name       string
		repository string
		runAfter   bool
	)

	cmd := &cobra.Command{
		Use:   "create <dir>",
		Short: "Scaffold a new plugin project from the built-in template",
		Long: `Write the plugin template project into an empty directory.

Without --name the package keeps the template's name and setup refuses to run
until "yarn init" (or "npm init") renames it. With --name, --setup personalizes
the project immediately.

Examples:
  plugin-setup create my-plugin
  plugin-setup create my-plugin --name jbrowse-plugin-my-plugin \
      --repository https://github.com/me/jbrowse-plugin-my-plugin --setup`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if runAfter && name == "" {
				return fmt.Errorf("--setup requires --name")
			}
			outDir, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving output directory: %w", err)
			}

			result, err := scaffold.Generate(scaffold.NewData(name, repository), outDir)
			if err != nil {
				return err
			}
			opts.logger.Debug("scaffolded project", "dir", outDir, "files", len(result.Files))
			printCreateResult(cmd.OutOrStdout(), result)

			if runAfter {
				fmt.Fprintln(cmd.OutOrStdout())
				settings, err := config.Load(outDir, "")
				if err != nil {
					return err
				}
				return runSetup(cmd, opts, outDir, settings)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "\nNext steps:")
			fmt.Fprintf(cmd.OutOrStdout(), "  1. cd %s\n", args[0])
			if name == "" {
				fmt.Fprintln(cmd.OutOrStdout(), `  2. Run "yarn init" (or "npm init") to name your plugin`)
				fmt.Fprintln(cmd.OutOrStdout(), "  3. Run 'plugin-setup setup'")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "  2. Run 'plugin-setup setup'")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Package name written to package.json")
	cmd.Flags().StringVar(&repository, "repository", "", "Repository URL written to package.json")
	cmd.Flags().BoolVar(&runAfter, "setup", false, "Run setup after scaffolding (requires --name)")
	return cmd
}

func printCreateResult(w io.Writer, result *scaffold.Result) {
	fmt.Fprintf(w, "Created plugin template at %s/\n", result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s %s\n", tagOK, f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
}
