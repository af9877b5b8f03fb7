package structure_test

import (
	"io/fs"
	"testing/fstest"

	"github.com/nextcheck/nextcheck/internal/domain"
	"github.com/nextcheck/nextcheck/internal/domain/structure"
)

func dir() *fstest.MapFile  { return &fstest.MapFile{Mode: fs.ModeDir | 0o755} }
func file() *fstest.MapFile { return &fstest.MapFile{Data: []byte("export {}\n")} }

func project(fsys fs.FS) domain.Project {
	return domain.Project{FS: fsys, Root: "."}
}

func defaultChecker() *structure.Checker {
	return structure.NewChecker(domain.DefaultRuleSet(), nil)
}

// failingFS fails to list one directory.
type failingFS struct {
	fstest.MapFS
	fail string
}

func (f failingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if name == f.fail {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrPermission}
	}
	return f.MapFS.ReadDir(name)
}
