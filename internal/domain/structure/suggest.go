package structure

import (
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
	"github.com/nextcheck/nextcheck/internal/domain"
)

// Suggest derives a name that satisfies rule from a non-compliant file name.
// ok is false when no compliant name can be derived or the name is already
// compliant.
func Suggest(rule domain.NamingRule, name string) (string, bool) {
	var out string

	switch rule.Name {
	case domain.RuleComponent:
		out = pascal(words(strings.TrimSuffix(name, ".tsx"))) + ".tsx"
	case domain.RuleUtility:
		out = kebab(words(strings.TrimSuffix(name, ".ts"))) + ".ts"
	case domain.RuleHook:
		w := words(strings.TrimSuffix(name, ".ts"))
		if len(w) > 0 && strings.EqualFold(w[0], "use") {
			w = w[1:]
		}
		if len(w) == 0 {
			return "", false
		}
		out = "use-" + kebab(w) + ".ts"
	case domain.RuleStore:
		w := words(strings.TrimSuffix(name, ".ts"))
		if len(w) > 0 && strings.EqualFold(w[len(w)-1], "store") {
			w = w[:len(w)-1]
		}
		if len(w) == 0 {
			return "", false
		}
		out = kebab(w) + "-store.ts"
	case domain.RuleTest:
		ext := ".test.ts"
		if strings.HasSuffix(name, ".test.tsx") {
			ext = ".test.tsx"
		}
		out = kebab(words(strings.TrimSuffix(name, ext))) + ext
	default:
		return "", false
	}

	if out == name || !rule.Matches(out) {
		return "", false
	}
	return out, true
}

// words splits a base name into alphanumeric words on case changes and
// separators. Digit runs stay attached to the word before them.
func words(base string) []string {
	var out []string
	for _, tok := range camelcase.Split(base) {
		if !isAlnum(tok) {
			continue
		}
		if isDigits(tok) && len(out) > 0 {
			out[len(out)-1] += tok
			continue
		}
		out = append(out, tok)
	}
	return out
}

func kebab(w []string) string {
	lower := make([]string, len(w))
	for i, s := range w {
		lower[i] = strings.ToLower(s)
	}
	return strings.Join(lower, "-")
}

func pascal(w []string) string {
	var b strings.Builder
	for _, s := range w {
		r := []rune(strings.ToLower(s))
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

func isAlnum(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
