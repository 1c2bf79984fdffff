package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mediacheck/mediacheck/internal/domain"
)

// FileScanner implements domain.FileEnumerator by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Enumerate returns every regular file below rootPath in walk order.
// Directories whose name matches one of excludeDirs are pruned; the root itself is never pruned.
func (s *FileScanner) Enumerate(rootPath string, excludeDirs ...string) ([]string, error) {
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRoot, rootPath)
	}

	skip := make(map[string]bool, len(excludeDirs))
	for _, p := range excludeDirs {
		skip[strings.TrimSuffix(p, "/")] = true
	}

	var files []string
	err = filepath.WalkDir(rootPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != rootPath && skip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
