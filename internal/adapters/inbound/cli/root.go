package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/nextcheck/nextcheck/internal/adapters/outbound/config"
	"github.com/nextcheck/nextcheck/internal/adapters/outbound/gitinfo"
	"github.com/nextcheck/nextcheck/internal/adapters/outbound/history"
	"github.com/nextcheck/nextcheck/internal/adapters/outbound/logging"
	"github.com/nextcheck/nextcheck/internal/application"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	ro := &rootOptions{}
	vo := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "nextcheck [path]",
		Short: "Validate Next.js project structure",
		Long: `nextcheck checks a Next.js + TypeScript project against structural conventions:
required and recommended directories, file naming under components/, lib/ and
tests/, and required config files. Run without a subcommand it validates the
given path (default: the current directory) and exits 1 if any check fails.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			l := logging.New(cmd.ErrOrStderr(), ro.verbose)
			cmd.SetContext(logging.WithLogger(cmd.Context(), l))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, ro, vo)
		},
	}

	cmd.PersistentFlags().StringVar(&ro.configFile, "config", "", "config file (default <path>/.nextcheck.yaml)")
	cmd.PersistentFlags().BoolVar(&ro.verbose, "verbose", false, "log walk decisions to stderr")
	vo.bind(cmd)

	cmd.AddCommand(newValidateCmd(ro))
	cmd.AddCommand(newFixCmd(ro))
	cmd.AddCommand(newRulesCmd(ro))
	cmd.AddCommand(newHistoryCmd(ro))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd(ro))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context) int {
	err := fang.Execute(ctx, newRootCmd(),
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
		fang.WithErrorHandler(handleError),
	)
	return ExitCode(err)
}

func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Silent {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

func versionString() string {
	return fmt.Sprintf("%s (%s)", version, commit)
}

func logger(cmd *cobra.Command) *slog.Logger {
	return logging.FromContext(cmd.Context())
}

// validateService wires the config loader for cmd: the --config file, then
// any config-backed flags cmd defines.
func (ro *rootOptions) validateService(cmd *cobra.Command) *application.ValidateService {
	log := logger(cmd)
	loader := config.New(
		config.WithFile(ro.configFile),
		config.WithFlags(cmd.Flags()),
		config.WithLogger(log),
	)
	return application.NewValidateService(loader, log)
}

func (ro *rootOptions) historyService(cmd *cobra.Command) *application.HistoryService {
	return application.NewHistoryService(history.New(), gitinfo.New(), logger(cmd))
}

// targetPath returns the project path argument, or the working directory.
func targetPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return wd, nil
}
