package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nextcheck/nextcheck/internal/adapters/outbound/tui"
	"github.com/nextcheck/nextcheck/internal/adapters/outbound/watch"
	"github.com/nextcheck/nextcheck/internal/application"
	"github.com/nextcheck/nextcheck/internal/domain"
)

type validateOptions struct {
	jsonOutput bool
	pretty     bool
	record     bool
	watch      bool
}

// bind registers the validate flags. max-depth, ignore and check-imports are
// config-backed: the loader reads them from the flag set when set.
func (o *validateOptions) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.BoolVar(&o.jsonOutput, "json", false, "Output the report as JSON")
	fs.BoolVar(&o.pretty, "pretty", false, "Styled terminal output")
	fs.BoolVar(&o.record, "record", false, "Append a run summary to .nextcheck/history/runs.json")
	fs.BoolVar(&o.watch, "watch", false, "Re-validate when files change")
	fs.Bool("check-imports", false, "Also check the tsconfig @/* alias and deep relative imports")
	fs.Int("max-depth", 0, "Limit how deep naming checks descend (0 = unlimited)")
	fs.StringSlice("ignore", nil, "Glob of project paths skipped by naming checks (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("json", "pretty")
}

func newValidateCmd(ro *rootOptions) *cobra.Command {
	vo := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a project's structure",
		Long:  "Check required and recommended directories, file naming and required files. Exits 1 if any check fails.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, ro, vo)
		},
	}
	vo.bind(cmd)

	return cmd
}

func runValidate(cmd *cobra.Command, args []string, ro *rootOptions, vo *validateOptions) error {
	path, err := targetPath(args)
	if err != nil {
		return err
	}

	svc := ro.validateService(cmd)
	var hist *application.HistoryService
	if vo.record {
		hist = ro.historyService(cmd)
	}

	if vo.watch {
		return watchValidate(cmd, path, svc, hist, vo)
	}

	passed, err := validateOnce(cmd, path, svc, hist, vo)
	if err != nil {
		return err
	}
	if !passed {
		return validationFailed()
	}
	return nil
}

func validateOnce(cmd *cobra.Command, path string, svc *application.ValidateService, hist *application.HistoryService, vo *validateOptions) (bool, error) {
	report, err := svc.Run(path)
	if err != nil {
		return false, fmt.Errorf("validation failed: %w", err)
	}

	if hist != nil {
		if _, err := hist.Record(path, report); err != nil {
			logger(cmd).Warn("recording run failed", "err", err)
		}
	}

	if err := renderReport(cmd.OutOrStdout(), report, vo); err != nil {
		return false, err
	}
	return report.Passed, nil
}

func watchValidate(cmd *cobra.Command, path string, svc *application.ValidateService, hist *application.HistoryService, vo *validateOptions) error {
	log := logger(cmd)

	if _, err := validateOnce(cmd, path, svc, hist, vo); err != nil {
		log.Error("validation failed", "err", err)
	}

	cfg := watchConfig(path, svc, log)
	cfg.OnChange = func(_ context.Context, changed []string) error {
		log.Debug("re-validating", "changed", changed)
		fmt.Fprintln(cmd.OutOrStdout())
		_, err := validateOnce(cmd, path, svc, hist, vo)
		return err
	}

	w, err := watch.New(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Watching for changes. Press Ctrl+C to stop.")
	return w.Run(cmd.Context())
}

// watchConfig builds the watcher settings for path. Paths excluded from the
// naming checks by naming.ignore do not trigger a re-run either.
func watchConfig(path string, svc *application.ValidateService, log *slog.Logger) watch.Config {
	cfg := watch.Config{BaseDir: path, Logger: log}
	rules, err := svc.Rules(path)
	if err != nil {
		log.Warn("watching without configured ignores", "err", err)
		return cfg
	}
	cfg.Ignore = rules.Ignore
	return cfg
}

func renderReport(w io.Writer, report *domain.Report, vo *validateOptions) error {
	switch {
	case vo.jsonOutput:
		return renderJSON(w, report)
	case vo.pretty:
		fmt.Fprint(w, tui.RenderPretty(report))
	default:
		fmt.Fprint(w, tui.RenderPlain(report))
	}
	return nil
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
