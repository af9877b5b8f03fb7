package structure

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/nextcheck/nextcheck/internal/domain"
)

// Tree is one subtree of the project to traverse.
type Tree struct {
	// Root is the slash-separated path of the subtree, relative to the project.
	Root string
	// Skip reports whether a directory with this name is neither visited nor
	// descended into. nil skips nothing.
	Skip func(name string) bool
}

// Selector picks the naming rule for a file from the name of its immediate
// parent directory. ok is false when the file is not subject to any rule.
type Selector func(parent, name string) (rule domain.NamingRule, ok bool)

// RuleTree binds a Tree to the rule selection used inside it.
type RuleTree struct {
	Tree
	Select Selector
}

// WalkOptions applies to every tree walked in a run.
type WalkOptions struct {
	// Ignore holds doublestar patterns matched against project-relative paths.
	Ignore []string
	// MaxDepth bounds how many directory levels below Root are descended.
	// Zero means unbounded.
	MaxDepth int
	Logger   *slog.Logger
}

// Walk visits every non-directory entry under tree.Root in lexical order.
// A missing root, or one that is not a directory, is not an error: the tree
// simply contributes nothing. This holds when the project root itself is
// missing or is a file. Symlinks are reported as files and never
// followed, so traversal always terminates. Errors listing a directory are
// returned.
func Walk(fsys fs.FS, tree Tree, opts WalkOptions, visit func(rel string, d fs.DirEntry) error) error {
	logger := loggerOrDiscard(opts.Logger)

	info, err := fs.Stat(fsys, tree.Root)
	if err != nil {
		if isMissing(err) {
			return nil
		}
		return fmt.Errorf("inspecting %s: %w", tree.Root, err)
	}
	if !info.IsDir() {
		logger.Debug("tree root is not a directory, skipping", "root", tree.Root)
		return nil
	}

	return fs.WalkDir(fsys, tree.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("listing %s: %w", p, err)
		}
		if p == tree.Root {
			return nil
		}

		if ignored(opts.Ignore, p) {
			logger.Debug("ignored by pattern", "path", p)
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if tree.Skip != nil && tree.Skip(d.Name()) {
				logger.Debug("skipping exempt directory", "path", p)
				return fs.SkipDir
			}
			if opts.MaxDepth > 0 && depth(tree.Root, p) > opts.MaxDepth {
				logger.Debug("max depth reached, not descending", "path", p, "max_depth", opts.MaxDepth)
				return fs.SkipDir
			}
			return nil
		}

		return visit(p, d)
	})
}

// WalkRules walks rt and calls visit for every file the selector assigns a
// rule to.
func WalkRules(fsys fs.FS, rt RuleTree, opts WalkOptions, visit func(rel string, rule domain.NamingRule)) error {
	return Walk(fsys, rt.Tree, opts, func(rel string, d fs.DirEntry) error {
		parent := path.Base(path.Dir(rel))
		if rule, ok := rt.Select(parent, d.Name()); ok {
			visit(rel, rule)
		}
		return nil
	})
}

func depth(root, p string) int {
	rel := strings.TrimPrefix(p, root+"/")
	return strings.Count(rel, "/") + 1
}

func ignored(patterns []string, p string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, p); ok {
			return true
		}
	}
	return false
}

// isMissing reports whether err means the path is absent. ENOTDIR is what a
// project root that is a regular file yields for every entry below it.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}
