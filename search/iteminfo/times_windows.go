//go:build windows

package iteminfo

import (
	"os"
	"syscall"
	"time"
)

func fillTimes(_ string, info os.FileInfo, d *Details) {
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return
	}
	d.Accessed = time.Unix(0, attrs.LastAccessTime.Nanoseconds())
	d.Created = time.Unix(0, attrs.CreationTime.Nanoseconds())
	d.HasCreated = true
}
