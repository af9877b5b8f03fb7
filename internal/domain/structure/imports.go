package structure

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"regexp"
	"strings"

	"github.com/nextcheck/nextcheck/internal/domain"
	"github.com/tidwall/jsonc"
)

const (
	tsconfigFile = "tsconfig.json"
	pathAlias    = "@/*"
)

// importRoots are the source trees scanned for deep relative imports.
var importRoots = []string{"app", "components", "lib"}

// deepRelativeImport matches an import specifier that climbs two or more
// directories, in static imports, dynamic imports and require calls.
var deepRelativeImport = regexp.MustCompile(`(?:\bfrom\s*|\bimport\s*\(\s*|\bimport\s+|\brequire\s*\(\s*)["'](?:\.\./){2,}`)

type tsconfig struct {
	CompilerOptions struct {
		Paths map[string][]string `json:"paths"`
	} `json:"compilerOptions"`
}

// ImportPaths checks that tsconfig.json declares the @/* alias and that
// sources under app/, components/ and lib/ use it instead of climbing
// relative imports. An unparsable tsconfig.json is an error; everything
// else is advisory. A missing tsconfig.json is left to RequiredFiles.
func (c *Checker) ImportPaths(p domain.Project) (domain.ValidationResult, error) {
	var errs, warnings []string

	data, err := fs.ReadFile(p.FS, tsconfigFile)
	switch {
	case err == nil:
		var cfg tsconfig
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			errs = append(errs, fmt.Sprintf("Invalid tsconfig.json: %v", err))
		} else if _, ok := cfg.CompilerOptions.Paths[pathAlias]; !ok {
			warnings = append(warnings, `tsconfig.json has no "@/*" path alias`)
		}
	case isMissing(err):
		c.logger.Debug("no tsconfig.json, skipping alias check")
	default:
		return domain.ValidationResult{}, fmt.Errorf("reading %s: %w", tsconfigFile, err)
	}

	for _, root := range importRoots {
		err := Walk(p.FS, Tree{Root: root}, c.walkOptions(), func(rel string, d fs.DirEntry) error {
			if !isSource(d.Name()) {
				return nil
			}
			lines, err := deepImportLines(p.FS, rel)
			if err != nil {
				return err
			}
			for _, n := range lines {
				warnings = append(warnings, fmt.Sprintf("Deep relative import (use @/ alias): %s:%d", p.Display(rel), n))
			}
			return nil
		})
		if err != nil {
			return domain.ValidationResult{}, err
		}
	}

	return domain.NewResult(errs, warnings), nil
}

func isSource(name string) bool {
	if strings.HasSuffix(name, ".d.ts") {
		return false
	}
	return strings.HasSuffix(name, ".ts") || strings.HasSuffix(name, ".tsx")
}

func deepImportLines(fsys fs.FS, name string) ([]int, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	// No line length cap: generated and minified sources can hold
	// megabyte-long lines.
	var lines []int
	r := bufio.NewReader(f)
	for n := 1; ; n++ {
		line, err := r.ReadString('\n')
		if line != "" && deepRelativeImport.MatchString(line) {
			lines = append(lines, n)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
	}
}
