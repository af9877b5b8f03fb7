// Package structure implements the project structure checks: required and
// optional directories, file naming, required files and import paths.
package structure

import (
	"io/fs"
	"log/slog"

	"github.com/nextcheck/nextcheck/internal/domain"
)

// Checker runs the structure checks for one RuleSet. It never writes to the
// project it inspects.
type Checker struct {
	rules  domain.RuleSet
	logger *slog.Logger
}

// NewChecker returns a Checker. A nil logger discards output.
func NewChecker(rules domain.RuleSet, logger *slog.Logger) *Checker {
	return &Checker{rules: rules, logger: loggerOrDiscard(logger)}
}

// Rules returns the rule set the checker was built with.
func (c *Checker) Rules() domain.RuleSet { return c.rules }

func (c *Checker) walkOptions() WalkOptions {
	return WalkOptions{
		Ignore:   c.rules.Ignore,
		MaxDepth: c.rules.MaxDepth,
		Logger:   c.logger,
	}
}

// exists reports whether name is present in fsys. Like a plain existence
// probe, any stat failure counts as absent; unexpected failures are logged.
func (c *Checker) exists(fsys fs.FS, name string) bool {
	_, err := fs.Stat(fsys, name)
	if err == nil {
		return true
	}
	if !isMissing(err) {
		c.logger.Debug("stat failed, treating as missing", "path", name, "err", err)
	}
	return false
}
