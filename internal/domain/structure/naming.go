package structure

import (
	"path"
	"strings"

	"github.com/nextcheck/nextcheck/internal/domain"
)

// Violation is a file whose name fails its naming rule.
type Violation struct {
	Path string // slash-separated, relative to the project root
	Rule domain.NamingRule
}

// NamingTrees returns the subtrees checked for naming compliance and the
// rule dispatch used inside each.
func NamingTrees(rules domain.RuleSet) []RuleTree {
	return []RuleTree{
		{
			Tree: Tree{Root: "components", Skip: rules.IsExemptDir},
			Select: func(_, name string) (domain.NamingRule, bool) {
				if strings.HasSuffix(name, ".tsx") && !strings.HasSuffix(name, ".test.tsx") {
					return rules.Component, true
				}
				return domain.NamingRule{}, false
			},
		},
		{
			Tree: Tree{Root: "lib"},
			Select: func(parent, name string) (domain.NamingRule, bool) {
				if !strings.HasSuffix(name, ".ts") || strings.HasSuffix(name, ".test.ts") {
					return domain.NamingRule{}, false
				}
				switch parent {
				case "hooks":
					return rules.Hook, true
				case "stores":
					return rules.Store, true
				default:
					return rules.Utility, true
				}
			},
		},
		{
			Tree: Tree{Root: "tests"},
			Select: func(_, name string) (domain.NamingRule, bool) {
				if strings.HasSuffix(name, ".test.ts") || strings.HasSuffix(name, ".test.tsx") {
					return rules.Test, true
				}
				return domain.NamingRule{}, false
			},
		},
	}
}

// NamingViolations walks every naming tree and returns the files that fail
// their rule, in traversal order.
func (c *Checker) NamingViolations(p domain.Project) ([]Violation, error) {
	var out []Violation
	for _, rt := range NamingTrees(c.rules) {
		err := WalkRules(p.FS, rt, c.walkOptions(), func(rel string, rule domain.NamingRule) {
			if !rule.Matches(path.Base(rel)) {
				out = append(out, Violation{Path: rel, Rule: rule})
			}
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Naming reports every naming violation as an error. It never produces
// warnings. Only filesystem faults while listing are returned as errors.
func (c *Checker) Naming(p domain.Project) (domain.ValidationResult, error) {
	violations, err := c.NamingViolations(p)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	var errs []string
	for _, v := range violations {
		errs = append(errs, v.Rule.Violation(p.Display(v.Path)))
	}
	return domain.NewResult(errs, nil), nil
}
