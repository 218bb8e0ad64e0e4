// Package plan computes date-stamped rename operations: new filenames
// that carry the file's reconciled date.
package plan

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Operation represents a planned rename from source to destination.
type Operation struct {
	SourcePath      string
	DestinationPath string
}

// Stamped computes a destination path for path that carries date as a
// "(YYYY-MM-DD)" stamp before the extension, in the same directory.
//
// Files whose stem already contains the stamp text are left alone
// (ok=false). If the stamped name is already taken in the existingFiles
// map, a suffix _N is appended before the extension, where N starts
// at 1.
func Stamped(path string, date time.Time, existingFiles map[string]bool) (string, bool) {
	stamp := date.UTC().Format("2006-01-02")

	dir := filepath.Dir(path)
	filename := filepath.Base(path)
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	if strings.Contains(stem, stamp) {
		return "", false
	}

	name := fmt.Sprintf("%s (%s)%s", stem, stamp, ext)
	return resolveCollision(dir, name, existingFiles), true
}

// resolveCollision returns a path in dir not yet claimed in
// existingFiles, appending _1, _2, ... before the extension until one
// is free. The chosen path is recorded in existingFiles.
func resolveCollision(dir string, filename string, existingFiles map[string]bool) string {
	basePath := filepath.Join(dir, filename)

	if existingFiles == nil {
		existingFiles = make(map[string]bool)
	}

	if !existingFiles[basePath] {
		existingFiles[basePath] = true
		return basePath
	}

	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		if !existingFiles[candidate] {
			existingFiles[candidate] = true
			return candidate
		}
	}
}

// Plan computes rename operations for the sources that have a known
// reconciled date. Sources with no date, or already stamped, are
// skipped.
func Plan(sources []string, dates map[string]time.Time) []Operation {
	existingFiles := make(map[string]bool)
	operations := make([]Operation, 0, len(sources))

	for _, src := range sources {
		date, ok := dates[src]
		if !ok || date.IsZero() {
			continue
		}

		dest, ok := Stamped(src, date, existingFiles)
		if !ok || dest == src {
			continue
		}

		operations = append(operations, Operation{
			SourcePath:      src,
			DestinationPath: dest,
		})
	}

	return operations
}
