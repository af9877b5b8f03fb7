package structure

import (
	"fmt"
	"strings"

	"github.com/nextcheck/nextcheck/internal/domain"
)

// RequiredFiles reports missing required files as errors, accepting an
// alternate extension for names ending in .js, and missing recommended files
// as warnings.
func (c *Checker) RequiredFiles(p domain.Project) domain.ValidationResult {
	var errs, warnings []string

	for _, name := range c.rules.RequiredFiles {
		if c.exists(p.FS, name) {
			continue
		}
		found := false
		for _, alt := range Alternatives(name, c.rules.AlternateExtensions) {
			if c.exists(p.FS, alt) {
				c.logger.Debug("required file satisfied by alternative", "file", name, "alternative", alt)
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, fmt.Sprintf("Missing required file: %s", name))
		}
	}

	for _, name := range c.rules.RecommendedFiles {
		if !c.exists(p.FS, name) {
			warnings = append(warnings, fmt.Sprintf("Recommended file missing: %s", name))
		}
	}

	return domain.NewResult(errs, warnings)
}

// Alternatives returns the names that may stand in for a missing file: its
// .js suffix replaced by each extension. Other names have no alternatives.
func Alternatives(name string, exts []string) []string {
	if !strings.HasSuffix(name, ".js") {
		return nil
	}
	base := strings.TrimSuffix(name, ".js")
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		out = append(out, base+ext)
	}
	return out
}
