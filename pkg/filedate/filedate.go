// Package filedate aggregates all date evidence for one file and
// reconciles it into a single earliest plausible date, which can be
// written back as the file's modification time.
package filedate

import (
	"context"
	"os"
	"time"

	"github.com/jjclark1982/date-scraper-go/pkg/evidence"
	"github.com/jjclark1982/date-scraper-go/pkg/reconcile"
)

// Options configures Scan.
type Options struct {
	// Tools locates optional host tools; nil uses the host PATH with
	// the default per-tool timeout.
	Tools evidence.Toolbox

	// Now supplies the reference wall clock for plausibility checks;
	// nil uses time.Now.
	Now func() time.Time
}

// Record holds one file's gathered evidence and its reconciled date.
// It is computed once per file; the only mutation path is the
// filesystem-side mtime rewrite.
type Record struct {
	Path  string
	Dates evidence.Mapping

	// Earliest is the reconciled earliest plausible date, zero when no
	// plausible evidence exists.
	Earliest time.Time
}

// Scan gathers evidence from every extractor for path and reconciles
// the earliest plausible date. Extractors are independent: a missing
// tool or unreadable metadata source contributes nothing; only a
// failed stat fails the file.
func Scan(ctx context.Context, path string, opts Options) (*Record, error) {
	tools := opts.Tools
	if tools == nil {
		tools = evidence.HostToolbox{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	dates := evidence.Mapping{}
	dates.Merge(evidence.FromFilename(path))

	fsDates, err := evidence.FromFilesystem(ctx, path, tools)
	if err != nil {
		return nil, err
	}
	dates.Merge(fsDates)

	dates.Merge(evidence.FromXattr(ctx, path, tools))
	dates.Merge(evidence.FromMedia(ctx, path, tools))
	dates.Merge(evidence.FromImage(path))

	return &Record{
		Path:     path,
		Dates:    dates,
		Earliest: reconcile.Earliest(dates, now()),
	}, nil
}

// RewriteMtime sets the file's modification time to the reconciled
// earliest date, keeping the recorded access time (or the current time
// when none was recorded). It reports whether a write happened:
// without an earliest date, or with an mtime already equal to it, the
// rewrite is a no-op.
func (r *Record) RewriteMtime() (bool, error) {
	if r.Earliest.IsZero() {
		return false, nil
	}
	if mtime, ok := r.Dates[evidence.LabelModified]; ok && mtime.Equal(r.Earliest) {
		return false, nil
	}

	atime, ok := r.Dates[evidence.LabelAccessed]
	if !ok {
		atime = time.Now()
	}
	if err := os.Chtimes(r.Path, atime, r.Earliest); err != nil {
		return false, err
	}
	return true, nil
}
