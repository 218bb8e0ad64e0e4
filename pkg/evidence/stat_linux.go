//go:build linux

package evidence

import (
	"io/fs"
	"syscall"
	"time"
)

func statTimes(info fs.FileInfo) (atime, ctime time.Time, ok bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	atime = time.Unix(int64(st.Atim.Sec), int64(st.Atim.Nsec))
	ctime = time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	return atime, ctime, true
}
