package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/jbrowse-plugin-kit/plugin-setup/internal/branding"
	"github.com/jbrowse-plugin-kit/plugin-setup/internal/logger"
	"github.com/jbrowse-plugin-kit/plugin-setup/internal/setup"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// rootOptions carries global flags and the logger they produce.
type rootOptions struct {
	verbose bool
	logJSON bool
	noColor bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: logger.Discard()}

	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` turns a fresh copy of the ` + branding.TemplateRepo() + `
project into your own plugin: it derives the plugin class name from package.json,
renames the template placeholders, points the development configs at your build,
titles the README and installs the CI workflow.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = logger.Init(cmd.ErrOrStderr(), logger.Options{
				Verbose: opts.verbose,
				JSON:    opts.logJSON,
				NoColor: opts.noColor || os.Getenv("NO_COLOR") != "",
			})
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "Emit logs as JSON")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored log output")

	cmd.AddCommand(
		newSetupCmd(opts),
		newCreateCmd(opts),
		newStatusCmd(opts),
		newNamesCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

func printError(w io.Writer, err error) {
	if errors.Is(err, setup.ErrNotInitialized) {
		fmt.Fprintln(w, styles.Warning.Render(err.Error()))
		return
	}
	fmt.Fprintln(w, styles.Error.Render("Error: "+err.Error()))
}
