package search

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
)

// Walker produces a depth-first, pre-order sequence of entries rooted at a path.
type Walker struct {
	root     string
	maxDepth int
	skip     func(Entry) bool
}

// NewWalker returns a walker over root. skip is consulted for every entry below
// the root; a skipped entry is neither yielded nor descended into. maxDepth
// limits descent (0 = unlimited).
func NewWalker(root string, maxDepth int, skip func(Entry) bool) *Walker {
	return &Walker{
		root:     root,
		maxDepth: maxDepth,
		skip:     skip,
	}
}

// Walk returns the entry sequence. Per-node failures are yielded as errors and
// the walk continues; only context cancellation ends it early. Siblings are
// visited in lexical order.
func (w *Walker) Walk(ctx context.Context) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		// The root is followed when it is a symlink
		info, err := os.Stat(w.root)
		if err != nil {
			yield(newEntry(w.root, false, 0), fmt.Errorf("stat %s: %w", w.root, err))
			return
		}

		root := newEntry(w.root, info.IsDir(), 0)
		if !yield(root, nil) {
			return
		}
		if root.IsDir {
			w.walkDir(ctx, root, yield)
		}
	}
}

// walkDir returns false once the consumer stopped or the context ended.
func (w *Walker) walkDir(ctx context.Context, dir Entry, yield func(Entry, error) bool) bool {
	if err := ctx.Err(); err != nil {
		yield(dir, err)
		return false
	}
	if w.maxDepth > 0 && dir.Depth >= w.maxDepth {
		return true
	}

	// ReadDir returns whatever it managed to read alongside the error
	children, err := os.ReadDir(dir.Path)
	if err != nil {
		if !yield(dir, fmt.Errorf("read directory %s: %w", dir.Path, err)) {
			return false
		}
	}

	for _, d := range children {
		child := newEntry(filepath.Join(dir.Path, d.Name()), d.IsDir(), dir.Depth+1)
		if w.skip != nil && w.skip(child) {
			continue
		}
		if !yield(child, nil) {
			return false
		}
		if child.IsDir && !w.walkDir(ctx, child, yield) {
			return false
		}
	}
	return true
}
