package domain

import (
	"io/fs"
	"path/filepath"
)

// ConfigLoader resolves the effective configuration for a project.
type ConfigLoader interface {
	Load(projectPath string) (Config, error)
}

// RunHistory persists validation run summaries.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}

// GitInfo reads repository metadata for a project.
type GitInfo interface {
	CommitHash(projectPath string) (string, error)
}

// Project is a validation target. FS is rooted at the project directory and
// is only ever read. DisplayRoot is prepended to project-relative paths in
// messages so they read relative to the working directory.
type Project struct {
	FS          fs.FS
	Root        string
	DisplayRoot string
}

// Display converts a slash-separated project-relative path to the form used
// in error messages.
func (p Project) Display(rel string) string {
	if p.DisplayRoot == "" {
		return filepath.FromSlash(rel)
	}
	return filepath.Join(p.DisplayRoot, filepath.FromSlash(rel))
}
