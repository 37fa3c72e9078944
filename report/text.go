package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mordilloSan/go_logger/logger"

	"github.com/mordilloSan/fsearch/search"
)

const createdUnavailable = "unavailable"

// TextWriter prints each match as soon as it is written.
type TextWriter struct {
	out    io.Writer
	detail bool

	dirStyle   *color.Color
	labelStyle *color.Color
}

// NewTextWriter returns a writer printing one path per line, or a detail block
// per entry when detail is set.
func NewTextWriter(out io.Writer, detail, colored bool) *TextWriter {
	w := &TextWriter{
		out:        out,
		detail:     detail,
		dirStyle:   color.New(color.FgBlue, color.Bold),
		labelStyle: color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{w.dirStyle, w.labelStyle} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return w
}

// Write prints the entry. In detail mode an entry that can no longer be
// stat'ed is dropped without error.
func (w *TextWriter) Write(entry search.Entry) error {
	if !w.detail {
		_, err := fmt.Fprintln(w.out, w.stylePath(entry))
		return err
	}

	d, err := entry.Details()
	if err != nil {
		logger.Debugf("dropping %s from detail output: %v", entry.Path, err)
		return nil
	}

	created := createdUnavailable
	if d.HasCreated {
		created = FormatTime(d.Created)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(w.stylePath(entry))
	b.WriteString("\n")
	w.field(&b, "Filetype", d.Kind.String())
	w.field(&b, "Name", entry.Name)
	w.field(&b, "Size", FormatSize(d.Size))
	w.field(&b, "Modified", FormatTime(d.Modified))
	w.field(&b, "Accessed", FormatTime(d.Accessed))
	w.field(&b, "Created", created)

	_, err = io.WriteString(w.out, b.String())
	return err
}

// Flush is a no-op; text is never buffered.
func (w *TextWriter) Flush() error {
	return nil
}

func (w *TextWriter) stylePath(entry search.Entry) string {
	if entry.IsDir {
		return w.dirStyle.Sprint(entry.Path)
	}
	return entry.Path
}

func (w *TextWriter) field(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "\t%s %s\n", w.labelStyle.Sprint(label+":"), value)
}
