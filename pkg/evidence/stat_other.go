//go:build !linux && !darwin

package evidence

import (
	"io/fs"
	"time"
)

// Platforms without a known Stat_t layout contribute mtime only.
func statTimes(info fs.FileInfo) (atime, ctime time.Time, ok bool) {
	return time.Time{}, time.Time{}, false
}
