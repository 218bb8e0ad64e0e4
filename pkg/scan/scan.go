// Package scan expands user-supplied paths into the list of regular
// files to process.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Expand turns paths into an ordered, deduplicated list of regular
// files. Directories are walked recursively; paths that do not exist
// are treated as glob patterns. The result is in sorted path order so
// batch output is deterministic.
func Expand(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		switch {
		case err == nil && info.IsDir():
			walkErr := filepath.WalkDir(path, func(sub string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.Type().IsRegular() {
					add(sub)
				}
				return nil
			})
			if walkErr != nil {
				return nil, walkErr
			}

		case err == nil:
			if info.Mode().IsRegular() {
				add(path)
			}

		default:
			matches, globErr := filepath.Glob(path)
			if globErr != nil {
				return nil, globErr
			}
			for _, match := range matches {
				st, statErr := os.Stat(match)
				if statErr == nil && st.Mode().IsRegular() {
					add(match)
				}
			}
		}
	}

	sort.Strings(files)
	return files, nil
}
