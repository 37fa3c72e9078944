package search

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

var (
	linuxSystemPaths = []string{"/proc", "/dev", "/sys"}
	externalFSTypes  = map[string]struct{}{
		"nfs":        {},
		"nfs4":       {},
		"cifs":       {},
		"smbfs":      {},
		"smb2":       {},
		"smb3":       {},
		"fuse.cifs":  {},
		"fuse.smb":   {},
		"fuse.smb3":  {},
		"fuse.nfs":   {},
		"fuse.ceph":  {},
		"fuse.iscsi": {},
	}
	externalMountsOnce  sync.Once
	externalMountPoints map[string]string
	externalMountsErr   error
)

// isSystemPath reports whether path is a pseudo filesystem or a network mount
// that --skip-system prunes. Always false off linux.
func isSystemPath(path string) bool {
	if runtime.GOOS != "linux" {
		return false
	}
	path = filepath.Clean(path)
	for _, protected := range linuxSystemPaths {
		if underPath(path, protected) {
			return true
		}
	}
	mounts, _ := getExternalMountPoints()
	return isExternalMount(path, mounts)
}

func isExternalMount(path string, mounts map[string]string) bool {
	for mountPoint := range mounts {
		if mountPoint == "" || mountPoint == "/" {
			continue
		}
		if underPath(path, mountPoint) {
			return true
		}
	}
	return false
}

func underPath(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+string(os.PathSeparator))
}

// getExternalMountPoints loads the mount table once. The map is usable even
// when an error is returned. Off linux there is no table to read.
func getExternalMountPoints() (map[string]string, error) {
	if runtime.GOOS != "linux" {
		return nil, nil
	}
	externalMountsOnce.Do(func() {
		externalMountPoints, externalMountsErr = loadExternalMountPoints("/proc/self/mountinfo")
	})
	return externalMountPoints, externalMountsErr
}

func loadExternalMountPoints(mountinfo string) (map[string]string, error) {
	mounts := make(map[string]string)

	file, err := os.Open(mountinfo)
	if err != nil {
		return mounts, fmt.Errorf("read mountinfo: %w", err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		mountPoint, fsType, source, ok := parseMountInfo(scanner.Text())
		if !ok {
			continue
		}
		if isExternalFilesystem(fsType, source) {
			mounts[mountPoint] = fsType
		}
	}
	if err := scanner.Err(); err != nil {
		return mounts, fmt.Errorf("scan mountinfo: %w", err)
	}
	return mounts, nil
}

func parseMountInfo(line string) (mountPoint, fsType, source string, ok bool) {
	parts := strings.Split(line, " - ")
	if len(parts) != 2 {
		return "", "", "", false
	}

	pre := strings.Fields(parts[0])
	post := strings.Fields(parts[1])
	if len(pre) < 5 || len(post) < 2 {
		return "", "", "", false
	}

	mountPoint = filepath.Clean(decodeMountPath(pre[4]))
	fsType = strings.ToLower(post[0])
	source = strings.ToLower(post[1])
	return mountPoint, fsType, source, true
}

// decodeMountPath undoes the octal escapes the kernel uses in mountinfo.
func decodeMountPath(raw string) string {
	decoded := strings.ReplaceAll(raw, "\\040", " ")
	decoded = strings.ReplaceAll(decoded, "\\011", "\t")
	decoded = strings.ReplaceAll(decoded, "\\012", "\n")
	decoded = strings.ReplaceAll(decoded, "\\134", "\\")
	return decoded
}

func isExternalFilesystem(fsType, source string) bool {
	if _, ok := externalFSTypes[fsType]; ok {
		return true
	}
	if strings.Contains(fsType, "iscsi") || strings.Contains(source, "iscsi") {
		return true
	}
	return strings.HasPrefix(source, "//")
}
