package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mordilloSan/fsearch/search"
	"github.com/mordilloSan/fsearch/search/iteminfo"
)

// StructuredWriter accumulates matches and serializes them as one document on Flush.
type StructuredWriter struct {
	out    io.Writer
	detail bool
	format Format

	paths   []string
	records []iteminfo.Record
	flushed bool
}

// NewStructuredWriter returns a writer that emits a list of paths, or a list of
// records when detail is set.
func NewStructuredWriter(out io.Writer, detail bool, format Format) *StructuredWriter {
	return &StructuredWriter{
		out:     out,
		detail:  detail,
		format:  format,
		paths:   make([]string, 0),
		records: make([]iteminfo.Record, 0),
	}
}

// Write appends the entry. In detail mode an entry that can no longer be
// stat'ed is dropped without error.
func (w *StructuredWriter) Write(entry search.Entry) error {
	if !w.detail {
		w.paths = append(w.paths, entry.Path)
		return nil
	}

	// Nothing is logged here; stdout carries only the document
	d, err := entry.Details()
	if err != nil {
		return nil
	}
	w.records = append(w.records, iteminfo.NewRecord(entry.Name, entry.Path, d))
	return nil
}

// Len returns the number of accumulated results.
func (w *StructuredWriter) Len() int {
	if w.detail {
		return len(w.records)
	}
	return len(w.paths)
}

// Flush writes the document. Only the first call writes.
func (w *StructuredWriter) Flush() error {
	if w.flushed {
		return nil
	}
	w.flushed = true

	var doc any = w.paths
	if w.detail {
		doc = w.records
	}

	switch w.format {
	case YAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w.out)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
