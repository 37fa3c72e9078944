package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/mordilloSan/go_logger/logger"
)

var (
	// ErrNoWriter is returned when Run is called without a writer.
	ErrNoWriter = errors.New("search requires a writer")
)

// Searcher runs one walk-match-report pass over a configured root.
type Searcher struct {
	cfg    Config
	walker *Walker
}

// New creates a searcher for cfg. The config is not modified afterwards.
func New(cfg Config) *Searcher {
	s := &Searcher{cfg: cfg}
	s.walker = NewWalker(cfg.Root, cfg.MaxDepth, s.shouldSkip)
	return s
}

// Config returns the run configuration.
func (s *Searcher) Config() Config {
	return s.cfg
}

// Run walks the tree and streams every matching entry to w. Per-entry I/O
// failures are counted and logged (text mode only) without stopping
// the walk. Run returns early only on cancellation or a writer error.
func (s *Searcher) Run(ctx context.Context, w StreamingWriter) (Stats, error) {
	var stats Stats
	if w == nil {
		return stats, ErrNoWriter
	}

	s.debugf("starting search at [%s] pattern=%q includeHidden=%t", s.cfg.Root, s.cfg.Pattern.String(), s.cfg.IncludeHidden)
	if s.cfg.SkipSystem {
		if _, err := getExternalMountPoints(); err != nil {
			s.warnf("network mounts will not be skipped: %v", err)
		}
	}

	for entry, err := range s.walker.Walk(ctx) {
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return stats, ctxErr
			}
			stats.Errors++
			s.warnf("%v", err)
			continue
		}

		stats.Visited++
		if entry.IsDir {
			stats.Dirs++
		} else {
			stats.Files++
		}

		if !Matches(entry, s.cfg.Pattern, s.cfg.IncludeHidden) {
			continue
		}
		stats.Matched++

		if err := w.Write(entry); err != nil {
			return stats, fmt.Errorf("write %s: %w", entry.Path, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return stats, err
	}

	s.debugf("completed search at [%s]: %d directories, %d files, %d matched, %d errors",
		s.cfg.Root, stats.Dirs, stats.Files, stats.Matched, stats.Errors)
	return stats, nil
}

// Nothing is logged in structured mode: the logger may write to stdout, which
// then carries the document alone.
func (s *Searcher) debugf(format string, args ...any) {
	if s.cfg.Structured {
		return
	}
	logger.Debugf(format, args...)
}

func (s *Searcher) warnf(format string, args ...any) {
	if s.cfg.Structured {
		return
	}
	logger.Warnf(format, args...)
}

// shouldSkip is the prune predicate handed to the walker.
func (s *Searcher) shouldSkip(e Entry) bool {
	if e.Depth == 0 {
		return false
	}

	if e.IsDir && s.cfg.SkipSystem && isSystemPath(e.Path) {
		return true
	}

	// Skip hidden files and directories unless includeHidden is true
	if e.Hidden() && !s.cfg.IncludeHidden {
		return true
	}

	for _, g := range s.cfg.Exclude {
		if g.Match(e.Name) {
			return true
		}
	}
	return false
}
