package evidence

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// FromFilesystem reads the file's access, modification and change
// times from its status, UTC-normalized. On hosts exposing GetFileInfo
// (macOS) the creation time is queried as well.
//
// A failed stat is the one evidence error that fails the whole file:
// without file status there is nothing to scan.
func FromFilesystem(ctx context.Context, path string, tools Toolbox) (Mapping, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	m := Mapping{LabelModified: info.ModTime().UTC()}
	if atime, ctime, ok := statTimes(info); ok {
		m[LabelAccessed] = atime.UTC()
		m[LabelChanged] = ctime.UTC()
	}

	if tools != nil && tools.Look("GetFileInfo") {
		out, runErr := tools.Run(ctx, "GetFileInfo", "-d", path)
		if runErr == nil {
			if t, perr := dateparse.ParseIn(strings.TrimSpace(string(out)), time.Local); perr == nil {
				m[LabelCreated] = t.UTC()
			}
		}
	}

	return m, nil
}
