//go:build linux

package iteminfo

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

func fillTimes(path string, info os.FileInfo, d *Details) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_STATX_SYNC_AS_STAT, unix.STATX_ATIME|unix.STATX_BTIME, &stx)
	if err == nil {
		if stx.Mask&unix.STATX_ATIME != 0 {
			d.Accessed = time.Unix(stx.Atime.Sec, int64(stx.Atime.Nsec))
		}
		// Birth time is only reported by filesystems that record it
		if stx.Mask&unix.STATX_BTIME != 0 {
			d.Created = time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec))
			d.HasCreated = true
		}
		return
	}

	// statx is missing on old kernels and some sandboxes
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		d.Accessed = time.Unix(st.Atim.Unix())
	}
}
