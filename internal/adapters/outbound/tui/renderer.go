// Package tui renders validation reports, rule tables and run history for
// the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nextcheck/nextcheck/internal/domain"
)

// ── warm palette ──
var (
	accent = lipgloss.Color("#D97706") // amber
	fg     = lipgloss.Color("#E8E6E3") // warm light gray
	dim    = lipgloss.Color("#6B7280") // muted gray
	faint  = lipgloss.Color("#3F3F46") // very dim
	pass   = lipgloss.Color("#22C55E") // green
	danger = lipgloss.Color("#EF4444") // red
	warn   = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(pass)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warn)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warn).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

const ruleWidth = 50

// RenderPlain renders a report in the stable plain-text layout:
//
//	Validating project structure: <path>
//
//	## <section>
//	Status: PASSED|FAILED
//	...
//	==================================================
//	Overall: PASSED|FAILED
func RenderPlain(r *domain.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Validating project structure: %s\n\n", r.Path)

	for _, s := range r.Sections() {
		fmt.Fprintf(&b, "\n## %s\n", s.Name)
		fmt.Fprintf(&b, "Status: %s\n", domain.StatusLabel(s.Result.Passed))

		if len(s.Result.Errors) > 0 {
			b.WriteString("\nErrors:\n")
			for _, e := range s.Result.Errors {
				fmt.Fprintf(&b, "  - %s\n", e)
			}
		}
		if len(s.Result.Warnings) > 0 {
			b.WriteString("\nWarnings:\n")
			for _, w := range s.Result.Warnings {
				fmt.Fprintf(&b, "  - %s\n", w)
			}
		}
	}

	fmt.Fprintf(&b, "\n%s\n", strings.Repeat("=", ruleWidth))
	fmt.Fprintf(&b, "Overall: %s\n", domain.StatusLabel(r.Passed))

	return b.String()
}

// RenderPretty renders a report with colour and a summary box.
func RenderPretty(r *domain.Report) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("nextcheck")
	subtitle := dimStyle.Render(r.Path)
	status := statusStyle(r.Passed).Bold(true).Render(domain.StatusLabel(r.Passed))
	counts := dimStyle.Render(fmt.Sprintf("%d errors  %d warnings", r.ErrorCount(), r.WarningCount()))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + status + "  " + counts))
	b.WriteString("\n\n")

	// ── Sections ──
	for i, s := range r.Sections() {
		renderSection(&b, s)
		if i < len(r.Sections())-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")
	b.WriteString("  " + titleStyle.Render("Overall") + "  " + status + "\n\n")

	return b.String()
}

func renderSection(b *strings.Builder, s domain.Section) {
	icon := passStyle.Render("●")
	if !s.Result.Passed {
		icon = failStyle.Render("●")
	} else if len(s.Result.Warnings) > 0 {
		icon = warnStyle.Render("●")
	}

	fmt.Fprintf(b, "  %s %s  %s\n", icon, titleStyle.Render(padRight(s.Name, 24)),
		statusStyle(s.Result.Passed).Render(domain.StatusLabel(s.Result.Passed)))

	for _, e := range s.Result.Errors {
		fmt.Fprintf(b, "    %s %s\n", errorTagStyle.Render("error"), dimStyle.Render(e))
	}
	for _, w := range s.Result.Warnings {
		fmt.Fprintf(b, "    %s %s\n", warnTagStyle.Render("warn "), dimStyle.Render(w))
	}
}

func statusStyle(passed bool) lipgloss.Style {
	if passed {
		return passStyle
	}
	return failStyle
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats run history for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", ruleWidth)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			statusStyle(e.Passed).Render(padRight(domain.StatusLabel(e.Passed), 6)),
			dimStyle.Render(fmt.Sprintf("%d errors  %d warnings", e.Errors, e.Warnings)),
		)

		if i > 0 {
			diff := e.Errors - entries[i-1].Errors
			if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			} else if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
