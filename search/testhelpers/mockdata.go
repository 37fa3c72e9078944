package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// MockFileSystem creates a temporary directory structure for testing
type MockFileSystem struct {
	Root string
	t    *testing.T
}

// NewMockFileSystem creates a new mock filesystem in a temp directory.
// The root's base name is "fsearch-test-" plus digits, so tests can rely on
// it not matching patterns such as "b" or ".txt".
func NewMockFileSystem(t *testing.T) *MockFileSystem {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "fsearch-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	m := &MockFileSystem{
		Root: tempDir,
		t:    t,
	}
	t.Cleanup(m.Cleanup)
	return m
}

// Cleanup removes the temporary directory
func (m *MockFileSystem) Cleanup() {
	// Restore permissions so RemoveAll can descend into locked directories
	_ = filepath.WalkDir(m.Root, func(path string, d os.DirEntry, err error) error {
		if err == nil && d.IsDir() {
			_ = os.Chmod(path, 0o755)
		}
		return nil
	})
	if err := os.RemoveAll(m.Root); err != nil {
		m.t.Errorf("Failed to cleanup temp dir: %v", err)
	}
}

// Path returns the absolute path of rel inside the mock filesystem
func (m *MockFileSystem) Path(rel string) string {
	return filepath.Join(m.Root, rel)
}

// CreateDir creates a directory in the mock filesystem
func (m *MockFileSystem) CreateDir(path string) {
	m.t.Helper()
	if err := os.MkdirAll(m.Path(path), 0o755); err != nil {
		m.t.Fatalf("Failed to create directory %s: %v", path, err)
	}
}

// CreateFile creates a file with the given content
func (m *MockFileSystem) CreateFile(path string, content string) {
	m.t.Helper()
	fullPath := m.Path(path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		m.t.Fatalf("Failed to create parent dir for %s: %v", path, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		m.t.Fatalf("Failed to create file %s: %v", path, err)
	}
}

// CreateSymlink creates a symbolic link; target is relative to the root
func (m *MockFileSystem) CreateSymlink(target, linkPath string) {
	m.t.Helper()
	fullLink := m.Path(linkPath)

	if err := os.MkdirAll(filepath.Dir(fullLink), 0o755); err != nil {
		m.t.Fatalf("Failed to create parent dir for symlink %s: %v", linkPath, err)
	}

	if err := os.Symlink(m.Path(target), fullLink); err != nil {
		m.t.Fatalf("Failed to create symlink %s -> %s: %v", linkPath, target, err)
	}
}

// CreateSmallTree creates a three-entry tree with one hidden file:
// a.txt, .secret and sub/b.txt
func (m *MockFileSystem) CreateSmallTree() {
	m.CreateFile("a.txt", "alpha")
	m.CreateFile(".secret", "hidden")
	m.CreateFile("sub/b.txt", "bravo")
}

// CreateStandardTestStructure creates a larger tree with nested and hidden entries
func (m *MockFileSystem) CreateStandardTestStructure() {
	m.CreateFile("documents/readme.txt", "This is a readme file")
	m.CreateFile("documents/notes.txt", "These are notes")
	m.CreateFile("documents/Report.pdf", "PDF content")

	m.CreateFile("photos/image1.jpg", "JPEG data")
	m.CreateFile("photos/image2.png", "PNG data")

	m.CreateFile("code/main.go", "package main\n")
	m.CreateFile("code/utils.go", "package main\n")

	m.CreateFile("documents/archive/old.txt", "Old document")
	m.CreateFile("documents/archive/2023/jan.txt", "January data")
	m.CreateFile("documents/archive/2023/feb.txt", "February data")

	m.CreateFile(".config", "config data")
	m.CreateFile(".cache/thumbs/readme.txt", "cached readme")
	m.CreateFile("documents/.git/HEAD", "ref: refs/heads/main")

	m.CreateDir("empty")
}
