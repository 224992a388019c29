package discovery

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Walker discovers helper and suite files under a test base directory.
// Discovery is re-run on every verification pass; nothing is cached.
type Walker struct {
	reserved map[string]bool
}

// NewWalker creates a Walker that excludes the given reserved first-level
// subdirectories from suite discovery.
func NewWalker(reserved []string) *Walker {
	reservedMap := make(map[string]bool)
	for _, dir := range reserved {
		reservedMap[dir] = true
	}
	return &Walker{reserved: reservedMap}
}

// Helpers returns every file under {basePath}/helpers, recursively, with no
// extension filter. A missing helpers directory yields an empty result.
// Reserved names are not excluded here; they only apply to suite discovery.
func (w *Walker) Helpers(basePath string) []string {
	return walk(filepath.Join(basePath, "helpers"), nil, func(path string) bool {
		return true
	})
}

// SuiteFiles returns the .rb files under {basePath}/{suiteName}, recursively,
// excluding directories and anything under a reserved first-level
// subdirectory. A missing suite directory yields an empty result.
func (w *Walker) SuiteFiles(basePath, suiteName string) []string {
	return walk(filepath.Join(basePath, suiteName), w.reserved, func(path string) bool {
		return strings.HasSuffix(path, ".rb")
	})
}

// walk lists the files under root that pass the keep predicate. Missing or
// unreadable directories degrade to an empty result rather than an error,
// mirroring permissive glob semantics.
func walk(root string, reserved map[string]bool, keep func(path string) bool) []string {
	var files []string

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		if d.IsDir() {
			// Only first-level directories can be reserved: the path
			// relative to root has no separator exactly when the
			// directory sits immediately under root.
			rel, relErr := filepath.Rel(root, path)
			if relErr == nil && reserved[rel] {
				return filepath.SkipDir
			}
			return nil
		}

		if keep(path) {
			files = append(files, path)
		}
		return nil
	})

	return files
}
