package domain

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Config holds the user-facing configuration loaded from .nextcheck.yaml,
// the environment and flags. It is compiled into a RuleSet before use.
type Config struct {
	Directories DirectoryConfig `koanf:"directories" yaml:"directories" json:"directories"`
	Files       FileConfig      `koanf:"files"       yaml:"files"       json:"files"`
	Naming      NamingConfig    `koanf:"naming"      yaml:"naming"      json:"naming"`
	Checks      ChecksConfig    `koanf:"checks"      yaml:"checks"      json:"checks"`
}

type DirectoryConfig struct {
	Required []string `koanf:"required" yaml:"required" json:"required"`
	Optional []string `koanf:"optional" yaml:"optional" json:"optional"`
}

type FileConfig struct {
	Required            []string `koanf:"required"             yaml:"required"             json:"required"`
	Recommended         []string `koanf:"recommended"          yaml:"recommended"          json:"recommended"`
	AlternateExtensions []string `koanf:"alternate_extensions" yaml:"alternate_extensions" json:"alternate_extensions"`
}

// NamingConfig carries the naming patterns as regular expression source.
type NamingConfig struct {
	Component  string   `koanf:"component"   yaml:"component"   json:"component"`
	Utility    string   `koanf:"utility"     yaml:"utility"     json:"utility"`
	Hook       string   `koanf:"hook"        yaml:"hook"        json:"hook"`
	Store      string   `koanf:"store"       yaml:"store"       json:"store"`
	Test       string   `koanf:"test"        yaml:"test"        json:"test"`
	ExemptDirs []string `koanf:"exempt_dirs" yaml:"exempt_dirs" json:"exempt_dirs"`
	Ignore     []string `koanf:"ignore"      yaml:"ignore"      json:"ignore,omitempty"`
	MaxDepth   int      `koanf:"max_depth"   yaml:"max_depth"   json:"max_depth"`
}

type ChecksConfig struct {
	ImportPaths bool `koanf:"import_paths" yaml:"import_paths" json:"import_paths"`
}

// DefaultConfig returns the conventions of a shadcn-style Next.js app.
func DefaultConfig() Config {
	return Config{
		Directories: DirectoryConfig{
			Required: []string{"app", "components", "lib"},
			Optional: []string{
				"components/ui",
				"components/layout",
				"components/features",
				"lib/api",
				"lib/hooks",
				"lib/stores",
				"lib/types",
				"lib/utils",
				"lib/validation",
				"tests",
				"stories",
			},
		},
		Files: FileConfig{
			Required: []string{
				"package.json",
				"tsconfig.json",
				"next.config.js",
				"tailwind.config.ts",
			},
			Recommended: []string{
				"vitest.config.ts",
				".eslintrc.json",
				".prettierrc",
				"components.json",
			},
			AlternateExtensions: []string{".mjs", ".ts"},
		},
		Naming: NamingConfig{
			Component:  `^[A-Z][a-zA-Z0-9]*\.tsx$`,
			Utility:    `^[a-z][a-z0-9-]*\.ts$`,
			Hook:       `^use-[a-z][a-z0-9-]*\.ts$`,
			Store:      `^[a-z][a-z0-9-]*-store\.ts$`,
			Test:       `^[a-z][a-z0-9-]*\.test\.(ts|tsx)$`,
			ExemptDirs: []string{"ui"},
		},
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	// 1. directory and file entries must be clean relative paths
	lists := []struct {
		key   string
		items []string
	}{
		{"directories.required", c.Directories.Required},
		{"directories.optional", c.Directories.Optional},
		{"files.required", c.Files.Required},
		{"files.recommended", c.Files.Recommended},
	}
	for _, l := range lists {
		for i, p := range l.items {
			if err := validateRelPath(p); err != nil {
				return fmt.Errorf("%s[%d]: %w", l.key, i, err)
			}
		}
	}

	// 2. alternate extensions look like ".ext"
	for i, ext := range c.Files.AlternateExtensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") || strings.Contains(ext, "/") {
			return fmt.Errorf("files.alternate_extensions[%d] = %q (must look like .ext)", i, ext)
		}
	}

	// 3. every naming pattern is present and compiles
	for _, p := range c.Naming.patterns() {
		name, src := p[0], p[1]
		if src == "" {
			return fmt.Errorf("naming.%s must not be empty", name)
		}
		if _, err := regexp.Compile(src); err != nil {
			return fmt.Errorf("naming.%s: %w", name, err)
		}
	}

	// 4. exempt dirs are single path elements
	for i, d := range c.Naming.ExemptDirs {
		if d == "" || strings.ContainsAny(d, `/\`) {
			return fmt.Errorf("naming.exempt_dirs[%d] = %q (must be a bare directory name)", i, d)
		}
	}

	// 5. ignore globs must parse
	for i, g := range c.Naming.Ignore {
		if !doublestar.ValidatePattern(g) {
			return fmt.Errorf("naming.ignore[%d] = %q is not a valid glob", i, g)
		}
	}

	if c.Naming.MaxDepth < 0 {
		return fmt.Errorf("naming.max_depth must be >= 0 (got %d)", c.Naming.MaxDepth)
	}

	return nil
}

// Compile validates c and turns it into a RuleSet.
func (c Config) Compile() (RuleSet, error) {
	if err := c.Validate(); err != nil {
		return RuleSet{}, err
	}

	rule := func(name, src string) NamingRule {
		return NamingRule{Name: name, Pattern: regexp.MustCompile(src), Message: ruleMessages[name]}
	}

	return RuleSet{
		RequiredDirs:        cleanAll(c.Directories.Required),
		OptionalDirs:        cleanAll(c.Directories.Optional),
		RequiredFiles:       cleanAll(c.Files.Required),
		RecommendedFiles:    cleanAll(c.Files.Recommended),
		AlternateExtensions: append([]string(nil), c.Files.AlternateExtensions...),
		Component:           rule(RuleComponent, c.Naming.Component),
		Utility:             rule(RuleUtility, c.Naming.Utility),
		Hook:                rule(RuleHook, c.Naming.Hook),
		Store:               rule(RuleStore, c.Naming.Store),
		Test:                rule(RuleTest, c.Naming.Test),
		ExemptDirs:          append([]string(nil), c.Naming.ExemptDirs...),
		Ignore:              append([]string(nil), c.Naming.Ignore...),
		MaxDepth:            c.Naming.MaxDepth,
		CheckImports:        c.Checks.ImportPaths,
	}, nil
}

// patterns pairs each rule name with its source, in a fixed order.
func (n NamingConfig) patterns() [][2]string {
	return [][2]string{
		{RuleComponent, n.Component},
		{RuleUtility, n.Utility},
		{RuleHook, n.Hook},
		{RuleStore, n.Store},
		{RuleTest, n.Test},
	}
}

func validateRelPath(p string) error {
	if p == "" {
		return fmt.Errorf("empty path")
	}
	clean := path.Clean(strings.TrimSuffix(p, "/"))
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("path %q must stay inside the project", p)
	}
	return nil
}

func cleanAll(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, path.Clean(strings.TrimSuffix(p, "/")))
	}
	return out
}
