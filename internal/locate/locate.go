package locate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrRootNotFound is returned when the scan root does not exist. It is the
// only fatal error a run can hit before touching files.
var ErrRootNotFound = errors.New("scan root not found")

// FSLocator discovers candidate template files on the local filesystem.
type FSLocator struct {
	extensions  []string
	excludeDirs []string
}

// NewFSLocator creates a locator matching the given extensions (".ejs" form)
// and skipping any path that contains one of excludeDirs as a segment.
func NewFSLocator(extensions, excludeDirs []string) *FSLocator {
	return &FSLocator{extensions: extensions, excludeDirs: excludeDirs}
}

// FindCandidates walks root recursively and returns matching file paths in
// sorted order, so processing and report output are reproducible.
func (l *FSLocator) FindCandidates(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("stat scan root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}

	var candidates []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree: log and keep walking, per-file errors must
			// not abort the run.
			log.Warn().Err(err).Str("path", path).Msg("Skipping unreadable path")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if l.excluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if l.excludedPath(path) {
			return nil
		}
		if l.matchesExtension(d.Name()) {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Strings(candidates)
	return candidates, nil
}

func (l *FSLocator) matchesExtension(name string) bool {
	ext := filepath.Ext(name)
	for _, want := range l.extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

func (l *FSLocator) excluded(segment string) bool {
	for _, dir := range l.excludeDirs {
		if segment == dir {
			return true
		}
	}
	return false
}

// excludedPath guards against excluded segments anywhere in the path, not
// just directories the walk descended through (covers symlinked layouts).
func (l *FSLocator) excludedPath(path string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if l.excluded(segment) {
			return true
		}
	}
	return false
}
