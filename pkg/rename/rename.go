// Package rename executes planned rename operations with per-file
// isolated results.
package rename

import (
	"errors"
	"fmt"
	"os"

	"github.com/jjclark1982/date-scraper-go/pkg/plan"
)

var (
	// ErrDestinationExists is returned when the destination path is already taken.
	ErrDestinationExists = errors.New("destination file already exists")
)

// Result contains the outcome of one rename operation.
type Result struct {
	Operation plan.Operation
	Success   bool
	Error     error
}

// Execute performs the rename operations. A failure renames nothing
// for that operation and never aborts the rest of the batch.
func Execute(operations []plan.Operation) []Result {
	results := make([]Result, 0, len(operations))

	for _, op := range operations {
		result := Result{Operation: op}

		if _, err := os.Stat(op.DestinationPath); err == nil {
			result.Error = ErrDestinationExists
			results = append(results, result)
			continue
		} else if !os.IsNotExist(err) {
			result.Error = fmt.Errorf("stat destination: %w", err)
			results = append(results, result)
			continue
		}

		if err := os.Rename(op.SourcePath, op.DestinationPath); err != nil {
			result.Error = fmt.Errorf("rename: %w", err)
			results = append(results, result)
			continue
		}

		result.Success = true
		results = append(results, result)
	}

	return results
}
