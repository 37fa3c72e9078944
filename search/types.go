package search

import (
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/mordilloSan/fsearch/search/iteminfo"
)

// Entry is a single node visited during a walk.
type Entry struct {
	Path  string // root joined with the relative segments
	Name  string // base name
	IsDir bool   // directory as reported by the walk; symlinks are never directories here
	Depth int    // 0 for the root
}

// Kind reports the node kind known without a stat call.
func (e Entry) Kind() iteminfo.Kind {
	if e.IsDir {
		return iteminfo.DirectoryKind
	}
	return iteminfo.FileKind
}

// Details stats the entry. Symlinks are followed, so a dangling link fails here.
func (e Entry) Details() (iteminfo.Details, error) {
	return iteminfo.Stat(e.Path)
}

// Hidden reports whether the entry's base name marks it hidden.
func (e Entry) Hidden() bool {
	return IsHiddenName(e.Name)
}

func newEntry(path string, isDir bool, depth int) Entry {
	return Entry{
		Path:  path,
		Name:  filepath.Base(path),
		IsDir: isDir,
		Depth: depth,
	}
}

// Config is the immutable configuration of a single search run.
type Config struct {
	Root          string   // resolved, absolute
	Pattern       *Pattern // nil means match everything
	Detail        bool
	Structured    bool
	IncludeHidden bool

	Exclude    []glob.Glob // matched against base names; excluded entries are pruned
	MaxDepth   int         // 0 = unlimited
	SkipSystem bool        // prune pseudo filesystems and network mounts (linux)
}

// Stats summarizes a completed run.
type Stats struct {
	Visited uint64
	Matched uint64
	Dirs    uint64
	Files   uint64
	Errors  uint64
}

// StreamingWriter receives matched entries as they are discovered.
type StreamingWriter interface {
	Write(entry Entry) error
}
