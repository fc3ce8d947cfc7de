package executor

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
)

// WriteFiles writes plugin output into dir and returns the written paths in
// name order. Names must stay inside dir.
func WriteFiles(dir string, files map[string][]byte) ([]string, error) {
	names := slices.Sorted(maps.Keys(files))

	for _, name := range names {
		if !filepath.IsLocal(name) {
			return nil, fmt.Errorf("plugin returned unsafe file name: %q", name)
		}
	}

	written := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { // #nosec G301 -- output directory is user-chosen
			return written, fmt.Errorf("failed to create directory for %s: %w", name, err)
		}
		if err := os.WriteFile(path, files[name], 0o644); err != nil { // #nosec G306 -- exported palettes are not secret
			return written, fmt.Errorf("failed to write %s: %w", name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
