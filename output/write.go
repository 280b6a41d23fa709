package output

import (
	"os"
	"path/filepath"

	"github.com/teranos/schemagen/errors"
	"github.com/teranos/schemagen/logger"
)

// WriteFiles writes files under dir, creating directories as needed.
func WriteFiles(dir string, files []File) error {
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errors.Wrapf(err, "failed to create directory for %s", path)
		}
		if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
		logger.Debugw("Wrote unit",
			logger.FieldPath, path,
			logger.FieldSize, len(f.Content))
	}
	return nil
}
