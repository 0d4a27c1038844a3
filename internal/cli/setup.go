package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jbrowse-plugin-kit/plugin-setup/internal/branding"
	"github.com/jbrowse-plugin-kit/plugin-setup/internal/config"
	"github.com/jbrowse-plugin-kit/plugin-setup/internal/setup"
	"github.com/spf13/cobra"
)

// projectFlags locate the project and its settings file.
type projectFlags struct {
	dir        string
	configFile string
}

func (f *projectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.dir, "dir", "C", "", "Project directory (default: $"+branding.EnvVar("DIR")+" or current directory)")
	cmd.Flags().StringVar(&f.configFile, "config", "", "Settings file (default: <dir>/"+branding.ConfigFile()+")")
}

// resolve returns the absolute project root and its settings.
func (f *projectFlags) resolve() (string, *config.Settings, error) {
	dir := f.dir
	if dir == "" {
		dir = os.Getenv(branding.EnvVar("DIR"))
	}
	if dir == "" {
		dir = "."
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, fmt.Errorf("resolving project directory: %w", err)
	}
	settings, err := config.Load(root, f.configFile)
	if err != nil {
		return "", nil, err
	}
	return root, settings, nil
}

func newSetupCmd(opts *rootOptions) *cobra.Command {
	var flags projectFlags

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Personalize a freshly cloned plugin template",
		Long: `Derive the plugin class name from package.json and rewrite the template
placeholders in package.json, src/index.ts, jbrowse_config.json, the Cypress
fixture and README.md. On first run the CI workflow is moved into
.github/workflows/. Running setup again changes nothing.

Run "yarn init" (or "npm init") first so package.json carries your own name.

Examples:
  plugin-setup setup
  plugin-setup setup --dir ../my-plugin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, settings, err := flags.resolve()
			if err != nil {
				return err
			}
			return runSetup(cmd, opts, root, settings)
		},
	}
	flags.register(cmd)
	return cmd
}

func runSetup(cmd *cobra.Command, opts *rootOptions, root string, settings *config.Settings) error {
	in := setup.New(root, settings, opts.logger)
	result, err := in.Run(cmd.Context())
	if result != nil {
		printSetupResult(cmd.OutOrStdout(), root, result)
	}
	if err != nil {
		return err
	}
	if result.AlreadyRun {
		fmt.Fprintln(cmd.OutOrStdout(), "\nSetup had already been run; files are up to date.")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "\nSetup complete.")
	}
	return nil
}

func printSetupResult(w io.Writer, root string, result *setup.Result) {
	fmt.Fprintf(w, "%s %s (plugin %s)\n",
		styles.Title.Render("Setting up"), result.Names.Raw, result.Names.Class)
	for _, step := range result.Steps {
		rel := displayPath(root, step.Path)
		switch step.Status {
		case setup.StatusUpdated:
			fmt.Fprintf(w, "  %s %s\n", tagOK, rel)
		case setup.StatusUnchanged:
			fmt.Fprintf(w, "  %s %s (unchanged)\n", tagSame, rel)
		default:
			fmt.Fprintf(w, "  %s %s (%s)\n", tagSkip, rel, step.Detail)
		}
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  %s %s\n", tagWarn, warning)
	}
	if result.BadgeURL == "" {
		fmt.Fprintf(w, "  %s no GitHub repository in package.json; README badge not added\n", tagWarn)
	}
}

func displayPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
