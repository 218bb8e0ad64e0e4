//go:build darwin

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
	atime = time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec)
	ctime = time.Unix(st.Ctimespec.Sec, st.Ctimespec.Nsec)
	return atime, ctime, true
}
