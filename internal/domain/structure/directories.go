package structure

import (
	"fmt"

	"github.com/nextcheck/nextcheck/internal/domain"
)

// Directories reports missing required directories as errors and missing
// optional directories as warnings.
func (c *Checker) Directories(p domain.Project) domain.ValidationResult {
	var errs, warnings []string

	for _, dir := range c.rules.RequiredDirs {
		if !c.exists(p.FS, dir) {
			errs = append(errs, fmt.Sprintf("Missing required directory: %s/", dir))
		}
	}

	for _, dir := range c.rules.OptionalDirs {
		if !c.exists(p.FS, dir) {
			warnings = append(warnings, fmt.Sprintf("Recommended directory missing: %s/", dir))
		}
	}

	return domain.NewResult(errs, warnings)
}

// MissingDirectories returns required then optional directories that do not
// exist, in configuration order.
func (c *Checker) MissingDirectories(p domain.Project) (required, optional []string) {
	for _, dir := range c.rules.RequiredDirs {
		if !c.exists(p.FS, dir) {
			required = append(required, dir)
		}
	}
	for _, dir := range c.rules.OptionalDirs {
		if !c.exists(p.FS, dir) {
			optional = append(optional, dir)
		}
	}
	return required, optional
}
