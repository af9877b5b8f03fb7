package application

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/nextcheck/nextcheck/internal/domain"
	"github.com/nextcheck/nextcheck/internal/domain/structure"
)

// FixService orchestrates the fix pipeline:
// validate -> create missing directories -> plan renames -> re-validate.
// Only directory creation is applied by default; renames are applied when
// FixOptions.Rename is set.
type FixService struct {
	validate *ValidateService
	logger   *slog.Logger
}

func NewFixService(validate *ValidateService, logger *slog.Logger) *FixService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FixService{validate: validate, logger: logger}
}

func (s *FixService) PlanFixes(projectPath string, opts domain.FixOptions) (*domain.FixPlan, error) {
	// 1. Resolve rules and the starting point
	rules, err := s.validate.Rules(projectPath)
	if err != nil {
		return nil, err
	}
	before, err := s.validate.RunWithRules(projectPath, rules)
	if err != nil {
		return nil, fmt.Errorf("validating project: %w", err)
	}

	p, err := OpenProject(projectPath)
	if err != nil {
		return nil, err
	}
	checker := structure.NewChecker(rules, s.logger)

	plan := &domain.FixPlan{
		Applied:      []domain.AppliedFix{},
		Instructions: []domain.Instruction{},
		ErrorsBefore: before.ErrorCount(),
	}

	// 2. Missing directories
	required, optional := checker.MissingDirectories(p)
	for _, dir := range required {
		plan.Applied = append(plan.Applied, s.createDir(p, dir, "required directory", opts))
	}
	for _, dir := range optional {
		plan.Applied = append(plan.Applied, s.createDir(p, dir, "recommended directory", opts))
	}

	// 3. Naming violations become rename instructions
	violations, err := checker.NamingViolations(p)
	if err != nil {
		return nil, fmt.Errorf("checking file naming: %w", err)
	}
	for _, v := range violations {
		plan.Instructions = append(plan.Instructions, s.rename(p, v, opts))
	}

	// 4. Re-validate when something changed on disk
	plan.ErrorsAfter = plan.ErrorsBefore
	if !opts.DryRun && changed(plan) {
		after, err := s.validate.RunWithRules(projectPath, rules)
		if err != nil {
			return nil, fmt.Errorf("re-validating project: %w", err)
		}
		plan.ErrorsAfter = after.ErrorCount()
	}

	return plan, nil
}

func (s *FixService) createDir(p domain.Project, dir, kind string, opts domain.FixOptions) domain.AppliedFix {
	fix := domain.AppliedFix{
		Type:        domain.FixCreateDir,
		Path:        dir + "/",
		Description: fmt.Sprintf("Create %s %s/", kind, p.Display(dir)),
	}
	if opts.DryRun {
		return fix
	}
	if err := os.MkdirAll(filepath.Join(p.Root, filepath.FromSlash(dir)), 0o755); err != nil {
		s.logger.Warn("creating directory failed", "path", dir, "err", err)
		return fix
	}
	fix.Done = true
	return fix
}

func (s *FixService) rename(p domain.Project, v structure.Violation, opts domain.FixOptions) domain.Instruction {
	inst := domain.Instruction{
		Type:    domain.FixRename,
		File:    v.Path,
		Rule:    v.Rule.Name,
		Message: v.Rule.Violation(p.Display(v.Path)),
	}

	name, ok := structure.Suggest(v.Rule, path.Base(v.Path))
	if !ok {
		return inst
	}
	inst.Target = path.Join(path.Dir(v.Path), name)

	if opts.DryRun || !opts.Rename {
		return inst
	}

	// Never clobber an existing file. Case-only renames on case-insensitive
	// filesystems resolve to the source itself, so compare against it.
	from := filepath.Join(p.Root, filepath.FromSlash(v.Path))
	to := filepath.Join(p.Root, filepath.FromSlash(inst.Target))
	if info, err := os.Stat(to); err == nil {
		src, serr := os.Stat(from)
		if serr != nil || !os.SameFile(info, src) {
			s.logger.Warn("rename target exists, skipping", "from", v.Path, "to", inst.Target)
			return inst
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("stat failed, skipping rename", "path", inst.Target, "err", err)
		return inst
	}

	if err := os.Rename(from, to); err != nil {
		s.logger.Warn("rename failed", "from", v.Path, "to", inst.Target, "err", err)
		return inst
	}
	inst.Applied = true
	return inst
}

func changed(plan *domain.FixPlan) bool {
	for _, f := range plan.Applied {
		if f.Done {
			return true
		}
	}
	for _, i := range plan.Instructions {
		if i.Applied {
			return true
		}
	}
	return false
}
