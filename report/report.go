// Package report turns matched entries into output: streamed text lines, or a
// single structured document written after the walk.
package report

import (
	"io"

	"github.com/mordilloSan/fsearch/search"
)

// Format selects the encoding of structured output.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

// Options selects one of the four output shapes, plus presentation details.
type Options struct {
	Detail     bool
	Structured bool
	Format     Format // structured only
	Color      bool   // text only
}

// Reporter receives matched entries during the walk. Flush must be called once
// the walk is complete.
type Reporter interface {
	search.StreamingWriter
	Flush() error
}

// New returns the reporter for opts writing to out.
func New(out io.Writer, opts Options) Reporter {
	if opts.Structured {
		return NewStructuredWriter(out, opts.Detail, opts.Format)
	}
	return NewTextWriter(out, opts.Detail, opts.Color)
}
