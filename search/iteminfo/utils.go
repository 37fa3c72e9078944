package iteminfo

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ResolveSymlinks resolves symlinks in the given path and returns
// the final resolved path, whether it's a directory, and any error.
func ResolveSymlinks(path string) (string, bool, error) {
	for hops := 0; ; hops++ {
		if hops > maxSymlinkHops {
			return path, false, fmt.Errorf("too many levels of symbolic links: %s", path)
		}

		info, err := os.Lstat(path)
		if err != nil {
			return path, false, fmt.Errorf("could not stat path: %s, %w", path, err)
		}

		if info.Mode()&os.ModeSymlink == 0 {
			return path, IsDirectory(info), nil
		}

		target, err := os.Readlink(path)
		if err != nil {
			return path, false, fmt.Errorf("could not read symlink: %s, %w", path, err)
		}

		// Relative targets resolve against the symlink's directory
		if filepath.IsAbs(target) {
			path = target
		} else {
			path = filepath.Join(filepath.Dir(path), target)
		}
	}
}

const maxSymlinkHops = 40

// IsDirectory determines if a path should be treated as a directory
func IsDirectory(fileInfo os.FileInfo) bool {
	return fileInfo.IsDir()
}

// Stat extracts detail metadata for path, following symlinks.
func Stat(path string) (Details, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Details{}, err
	}

	kind := FileKind
	if IsDirectory(info) {
		kind = DirectoryKind
	}

	d := Details{
		Kind:     kind,
		Size:     info.Size(),
		Modified: info.ModTime(),
		Accessed: info.ModTime(),
	}
	fillTimes(path, info, &d)
	return d, nil
}

// NewRecord builds the structured record for an entry.
func NewRecord(name, path string, d Details) Record {
	rec := Record{
		FileType: d.Kind.Code(),
		Name:     name,
		Path:     path,
		Size:     d.Size,
		Modified: UnixSeconds(d.Modified),
		Accessed: UnixSeconds(d.Accessed),
	}
	if d.HasCreated {
		created := UnixSeconds(d.Created)
		rec.Created = &created
	}
	return rec
}

// UnixSeconds converts t to seconds since the unix epoch, clamping earlier times to zero.
func UnixSeconds(t time.Time) int64 {
	secs := t.Unix()
	if secs < 0 {
		return 0
	}
	return secs
}
