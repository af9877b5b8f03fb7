package domain

// ValidationResult is the outcome of a single check. Passed is true iff
// Errors is empty; warnings never affect it.
type ValidationResult struct {
	Passed   bool     `json:"passed"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// NewResult builds a ValidationResult whose Passed flag agrees with errors.
func NewResult(errors, warnings []string) ValidationResult {
	if errors == nil {
		errors = []string{}
	}
	if warnings == nil {
		warnings = []string{}
	}
	return ValidationResult{
		Passed:   len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

// Check section titles, in report order.
const (
	SectionDirectories = "Directory Structure"
	SectionNaming      = "File Naming"
	SectionFiles       = "Required Files"
	SectionImports     = "Import Paths"
)

// Section is a named check result as it appears in a report.
type Section struct {
	Name   string           `json:"name"`
	Result ValidationResult `json:"result"`
}

// Report is the aggregate outcome of one validation run.
type Report struct {
	Path        string            `json:"path"`
	Directories ValidationResult  `json:"directories"`
	Naming      ValidationResult  `json:"naming"`
	Files       ValidationResult  `json:"files"`
	Imports     *ValidationResult `json:"imports,omitempty"`
	Passed      bool              `json:"passed"`
}

// NewReport assembles a report and computes the overall pass flag as the
// logical AND of every included check.
func NewReport(path string, dirs, naming, files ValidationResult, imports *ValidationResult) *Report {
	r := &Report{
		Path:        path,
		Directories: dirs,
		Naming:      naming,
		Files:       files,
		Imports:     imports,
	}
	r.Passed = dirs.Passed && naming.Passed && files.Passed
	if imports != nil {
		r.Passed = r.Passed && imports.Passed
	}
	return r
}

// Sections returns the report's checks in display order.
func (r *Report) Sections() []Section {
	sections := []Section{
		{Name: SectionDirectories, Result: r.Directories},
		{Name: SectionNaming, Result: r.Naming},
		{Name: SectionFiles, Result: r.Files},
	}
	if r.Imports != nil {
		sections = append(sections, Section{Name: SectionImports, Result: *r.Imports})
	}
	return sections
}

// ErrorCount returns the number of errors across all sections.
func (r *Report) ErrorCount() int {
	n := 0
	for _, s := range r.Sections() {
		n += len(s.Result.Errors)
	}
	return n
}

// WarningCount returns the number of warnings across all sections.
func (r *Report) WarningCount() int {
	n := 0
	for _, s := range r.Sections() {
		n += len(s.Result.Warnings)
	}
	return n
}

// StatusLabel renders a pass flag the way reports print it.
func StatusLabel(passed bool) string {
	if passed {
		return "PASSED"
	}
	return "FAILED"
}
