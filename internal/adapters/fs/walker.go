// Package fs provides file system adapters for walking and hashing recipe trees.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file below root as a path relative to root.
// VCS directories are always skipped; ignores are matched against base names.
// A walk error is yielded once and ends the iteration.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path == root {
				return nil
			}

			if skip, action := w.shouldSkip(d, ignores); skip {
				return action
			}

			if !d.Type().IsRegular() {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if !yield(filepath.ToSlash(rel), nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

// shouldSkip reports whether d is excluded. For directories the action is filepath.SkipDir.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj") {
		return true, filepath.SkipDir
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}
