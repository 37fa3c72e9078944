//go:build darwin || freebsd

package iteminfo

import (
	"os"
	"syscall"
	"time"
)

func fillTimes(_ string, info os.FileInfo, d *Details) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}
	d.Accessed = time.Unix(st.Atimespec.Unix())
	d.Created = time.Unix(st.Birthtimespec.Unix())
	d.HasCreated = true
}
