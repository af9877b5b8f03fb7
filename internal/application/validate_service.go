package application

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nextcheck/nextcheck/internal/domain"
	"github.com/nextcheck/nextcheck/internal/domain/structure"
)

// ValidateService orchestrates a validation run:
// load config -> compile rules -> open project -> run checks -> aggregate.
type ValidateService struct {
	configLoader domain.ConfigLoader
	logger       *slog.Logger
}

func NewValidateService(configLoader domain.ConfigLoader, logger *slog.Logger) *ValidateService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ValidateService{configLoader: configLoader, logger: logger}
}

// Rules resolves the effective rule set for a project.
func (s *ValidateService) Rules(projectPath string) (domain.RuleSet, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return domain.RuleSet{}, fmt.Errorf("loading config: %w", err)
	}
	rules, err := cfg.Compile()
	if err != nil {
		return domain.RuleSet{}, fmt.Errorf("compiling rules: %w", err)
	}
	return rules, nil
}

// Run validates the project at projectPath with its configured rules.
func (s *ValidateService) Run(projectPath string) (*domain.Report, error) {
	rules, err := s.Rules(projectPath)
	if err != nil {
		return nil, err
	}
	return s.RunWithRules(projectPath, rules)
}

// RunWithRules validates the project at projectPath with an explicit rule
// set. The project tree is only read.
func (s *ValidateService) RunWithRules(projectPath string, rules domain.RuleSet) (*domain.Report, error) {
	p, err := OpenProject(projectPath)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("validating project", "root", p.Root, "display_root", p.DisplayRoot)

	checker := structure.NewChecker(rules, s.logger)

	dirs := checker.Directories(p)

	naming, err := checker.Naming(p)
	if err != nil {
		return nil, fmt.Errorf("checking file naming: %w", err)
	}

	files := checker.RequiredFiles(p)

	var imports *domain.ValidationResult
	if rules.CheckImports {
		res, err := checker.ImportPaths(p)
		if err != nil {
			return nil, fmt.Errorf("checking import paths: %w", err)
		}
		imports = &res
	}

	report := domain.NewReport(projectPath, dirs, naming, files, imports)
	s.logger.Debug("validation finished",
		"passed", report.Passed,
		"errors", report.ErrorCount(),
		"warnings", report.WarningCount(),
	)
	return report, nil
}

// OpenProject builds a read-only view of the directory at projectPath.
// Messages name files relative to the working directory, matching how a
// user typed the path. The path need not exist: every entry of a missing
// project is reported as missing.
func OpenProject(projectPath string) (domain.Project, error) {
	abs, err := filepath.Abs(projectPath)
	if err != nil {
		return domain.Project{}, fmt.Errorf("resolving path: %w", err)
	}
	return domain.Project{
		FS:          os.DirFS(abs),
		Root:        abs,
		DisplayRoot: displayRoot(abs),
	}, nil
}

func displayRoot(abs string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return abs
	}
	rel, err := filepath.Rel(cwd, abs)
	if err != nil {
		return abs
	}
	if rel == "." {
		return ""
	}
	return rel
}
