package report

import (
	"time"

	"github.com/dustin/go-humanize"
)

// TimeLayout is the RFC 2822 date layout used for detail timestamps.
const TimeLayout = time.RFC1123Z

// FormatTime renders t in UTC, e.g. "Mon, 02 Jan 2006 15:04:05 +0000".
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// FormatSize renders a byte count with decimal units, e.g. "1.2 MB".
func FormatSize(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.Bytes(uint64(size))
}
