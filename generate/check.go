package generate

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/teranos/schemagen/errors"
	"github.com/teranos/schemagen/output"
)

// CheckResult reports whether the files under a directory match what the
// current token stream generates.
type CheckResult struct {
	UpToDate bool
	// Differ lists files whose content differs, relative to the directory.
	Differ []string
	// Missing lists files that would be generated but do not exist.
	Missing []string
}

// Err returns an error wrapping errors.ErrOutOfDate when the check failed.
func (r *CheckResult) Err() error {
	if r.UpToDate {
		return nil
	}
	return errors.WithHint(
		errors.Wrapf(errors.ErrOutOfDate, "%d differing, %d missing", len(r.Differ), len(r.Missing)),
		"run 'schemagen generate' to update them")
}

// Check generates into a temporary directory and compares the result with
// dir.
func (p *Pipeline) Check(dir string, paths ...string) (*CheckResult, error) {
	res, err := p.RunFiles(paths...)
	if err != nil {
		return nil, err
	}

	tempDir, err := os.MkdirTemp("", "schemagen-check-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp directory")
	}
	defer os.RemoveAll(tempDir)

	if err := output.WriteFiles(tempDir, res.Files); err != nil {
		return nil, err
	}
	return CompareDirectories(tempDir, dir)
}

// CompareDirectories compares every file under generated with the file at
// the same relative path under existing.
func CompareDirectories(generated, existing string) (*CheckResult, error) {
	result := &CheckResult{}
	err := filepath.WalkDir(generated, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(generated, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		want, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", path)
		}
		have, err := os.ReadFile(filepath.Join(existing, filepath.FromSlash(rel)))
		switch {
		case os.IsNotExist(err):
			result.Missing = append(result.Missing, rel)
		case err != nil:
			return errors.Wrapf(err, "failed to read %s", rel)
		case !bytes.Equal(want, have):
			result.Differ = append(result.Differ, rel)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to compare directories")
	}

	sort.Strings(result.Differ)
	sort.Strings(result.Missing)
	result.UpToDate = len(result.Differ) == 0 && len(result.Missing) == 0
	return result, nil
}
