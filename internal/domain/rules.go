package domain

import (
	"regexp"
	"slices"
)

// Naming rule identifiers.
const (
	RuleComponent = "component"
	RuleUtility   = "utility"
	RuleHook      = "hook"
	RuleStore     = "store"
	RuleTest      = "test"
)

// NamingRule is a file-name pattern bound to the message reported when a
// file fails it.
type NamingRule struct {
	Name    string
	Pattern *regexp.Regexp
	Message string
}

// Matches reports whether name satisfies the rule.
func (r NamingRule) Matches(name string) bool {
	return r.Pattern != nil && r.Pattern.MatchString(name)
}

// Violation formats the error reported for path.
func (r NamingRule) Violation(path string) string {
	return r.Message + ": " + path
}

// RuleSet is the compiled, immutable form of Config that every check
// receives explicitly.
type RuleSet struct {
	RequiredDirs        []string
	OptionalDirs        []string
	RequiredFiles       []string
	RecommendedFiles    []string
	AlternateExtensions []string

	Component NamingRule
	Utility   NamingRule
	Hook      NamingRule
	Store     NamingRule
	Test      NamingRule

	ExemptDirs   []string
	Ignore       []string
	MaxDepth     int
	CheckImports bool
}

// DefaultRuleSet returns the built-in Next.js conventions.
func DefaultRuleSet() RuleSet {
	rs, err := DefaultConfig().Compile()
	if err != nil {
		panic("domain: default config does not compile: " + err.Error())
	}
	return rs
}

// NamingRules lists the five naming rules in a stable order.
func (rs RuleSet) NamingRules() []NamingRule {
	return []NamingRule{rs.Component, rs.Utility, rs.Hook, rs.Store, rs.Test}
}

// IsExemptDir reports whether a components/ subdirectory with this name is
// skipped entirely.
func (rs RuleSet) IsExemptDir(name string) bool {
	return slices.Contains(rs.ExemptDirs, name)
}

var ruleMessages = map[string]string{
	RuleComponent: "Component file should be PascalCase",
	RuleUtility:   "Utility file should be kebab-case",
	RuleHook:      "Hook file should be use-*.ts",
	RuleStore:     "Store file should be *-store.ts",
	RuleTest:      "Test file should be kebab-case.test.ts(x)",
}

// RulesView is the serializable form of a RuleSet.
type RulesView struct {
	RequiredDirs        []string          `json:"required_dirs"`
	OptionalDirs        []string          `json:"optional_dirs"`
	RequiredFiles       []string          `json:"required_files"`
	RecommendedFiles    []string          `json:"recommended_files"`
	AlternateExtensions []string          `json:"alternate_extensions"`
	Naming              map[string]string `json:"naming"`
	ExemptDirs          []string          `json:"exempt_dirs"`
	Ignore              []string          `json:"ignore,omitempty"`
	MaxDepth            int               `json:"max_depth"`
	CheckImports        bool              `json:"check_imports"`
}

// View converts rs for JSON output. Patterns appear as their source text.
func (rs RuleSet) View() RulesView {
	naming := make(map[string]string, 5)
	for _, r := range rs.NamingRules() {
		if r.Pattern != nil {
			naming[r.Name] = r.Pattern.String()
		}
	}
	return RulesView{
		RequiredDirs:        rs.RequiredDirs,
		OptionalDirs:        rs.OptionalDirs,
		RequiredFiles:       rs.RequiredFiles,
		RecommendedFiles:    rs.RecommendedFiles,
		AlternateExtensions: rs.AlternateExtensions,
		Naming:              naming,
		ExemptDirs:          rs.ExemptDirs,
		Ignore:              rs.Ignore,
		MaxDepth:            rs.MaxDepth,
		CheckImports:        rs.CheckImports,
	}
}
