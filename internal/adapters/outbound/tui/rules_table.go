package tui

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/nextcheck/nextcheck/internal/domain"
)

// RenderRules writes the effective rule set as a table.
func RenderRules(w io.Writer, rules domain.RuleSet) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Check", "Rule", "Value", "Severity"})

	for _, d := range rules.RequiredDirs {
		t.AppendRow(table.Row{domain.SectionDirectories, "directory", d + "/", "error"})
	}
	for _, d := range rules.OptionalDirs {
		t.AppendRow(table.Row{domain.SectionDirectories, "directory", d + "/", "warning"})
	}
	t.AppendSeparator()

	for _, r := range rules.NamingRules() {
		t.AppendRow(table.Row{domain.SectionNaming, r.Name, r.Pattern.String(), "error"})
	}
	if len(rules.ExemptDirs) > 0 {
		t.AppendRow(table.Row{domain.SectionNaming, "exempt dirs", strings.Join(rules.ExemptDirs, ", "), "-"})
	}
	if len(rules.Ignore) > 0 {
		t.AppendRow(table.Row{domain.SectionNaming, "ignore", strings.Join(rules.Ignore, ", "), "-"})
	}
	if rules.MaxDepth > 0 {
		t.AppendRow(table.Row{domain.SectionNaming, "max depth", rules.MaxDepth, "-"})
	}
	t.AppendSeparator()

	for _, f := range rules.RequiredFiles {
		t.AppendRow(table.Row{domain.SectionFiles, "file", f, "error"})
	}
	for _, f := range rules.RecommendedFiles {
		t.AppendRow(table.Row{domain.SectionFiles, "file", f, "warning"})
	}
	if len(rules.AlternateExtensions) > 0 {
		t.AppendRow(table.Row{domain.SectionFiles, ".js alternatives", strings.Join(rules.AlternateExtensions, ", "), "-"})
	}

	if rules.CheckImports {
		t.AppendSeparator()
		t.AppendRow(table.Row{domain.SectionImports, "tsconfig alias", "@/*", "warning"})
		t.AppendRow(table.Row{domain.SectionImports, "relative depth", "../../ or deeper", "warning"})
	}

	t.Render()
}
