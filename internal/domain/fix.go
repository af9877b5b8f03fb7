package domain

// Fix types.
const (
	FixCreateDir = "create_dir"
	FixRename    = "rename"
)

// FixPlan lists the safe fixes that were (or would be) applied and the
// renames that bring files in line with the naming rules.
type FixPlan struct {
	Applied      []AppliedFix  `json:"applied"`
	Instructions []Instruction `json:"instructions"`
	ErrorsBefore int           `json:"errors_before"`
	ErrorsAfter  int           `json:"errors_after"`
}

type AppliedFix struct {
	Type        string `json:"type"`
	Path        string `json:"path"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// Instruction describes a rename. Target is empty when no compliant name
// could be derived.
type Instruction struct {
	Type    string `json:"type"`
	File    string `json:"file"`
	Target  string `json:"target,omitempty"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
	Applied bool   `json:"applied"`
}

type FixOptions struct {
	DryRun bool `json:"dry_run"`
	Rename bool `json:"rename"`
}
