package iteminfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o644))

	mtime := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	d, err := Stat(path)
	require.NoError(t, err)

	assert.Equal(t, FileKind, d.Kind)
	assert.Equal(t, int64(10), d.Size)
	assert.True(t, d.Modified.Equal(mtime), "modified = %v", d.Modified)
	assert.True(t, d.Accessed.Equal(mtime), "accessed = %v", d.Accessed)
}

func TestStatDirectory(t *testing.T) {
	d, err := Stat(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DirectoryKind, d.Kind)
}

func TestStatFollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.Mkdir(target, 0o755))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	d, err := Stat(link)
	require.NoError(t, err)
	assert.Equal(t, DirectoryKind, d.Kind)
}

func TestStatBrokenSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), link))

	_, err := Stat(link)
	assert.Error(t, err)
}

func TestNewRecord(t *testing.T) {
	modified := time.Unix(1_600_000_000, 500)
	accessed := time.Unix(1_600_000_100, 0)

	t.Run("with creation time", func(t *testing.T) {
		rec := NewRecord("a.txt", "/root/a.txt", Details{
			Kind:       FileKind,
			Size:       42,
			Modified:   modified,
			Accessed:   accessed,
			Created:    time.Unix(1_500_000_000, 0),
			HasCreated: true,
		})

		assert.Equal(t, "f", rec.FileType)
		assert.Equal(t, "a.txt", rec.Name)
		assert.Equal(t, "/root/a.txt", rec.Path)
		assert.Equal(t, int64(42), rec.Size)
		assert.Equal(t, int64(1_600_000_000), rec.Modified)
		assert.Equal(t, int64(1_600_000_100), rec.Accessed)
		require.NotNil(t, rec.Created)
		assert.Equal(t, int64(1_500_000_000), *rec.Created)
	})

	t.Run("without creation time", func(t *testing.T) {
		rec := NewRecord("sub", "/root/sub", Details{Kind: DirectoryKind, Modified: modified, Accessed: accessed})
		assert.Equal(t, "d", rec.FileType)
		assert.Nil(t, rec.Created)
	})
}

func TestUnixSecondsNeverNegative(t *testing.T) {
	assert.Equal(t, int64(0), UnixSeconds(time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, int64(0), UnixSeconds(time.Time{}))
	assert.Equal(t, int64(86400), UnixSeconds(time.Unix(86400, 0)))
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "file", FileKind.String())
	assert.Equal(t, "directory", DirectoryKind.String())
	assert.Equal(t, "f", FileKind.Code())
	assert.Equal(t, "d", DirectoryKind.Code())
}
