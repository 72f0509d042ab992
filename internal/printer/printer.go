// Package printer renders and writes generated headers.
package printer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"
)

const (
	timestampLayout      = "2006-01-02 15:04:05"
	timestampMicroLayout = "2006-01-02 15:04:05.000000"
)

// FormatTimestamp formats t as date, a space, then time, with six
// fractional digits unless the microsecond part is zero.
func FormatTimestamp(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(timestampLayout)
	}
	return t.Format(timestampMicroLayout)
}

// Printer writes generated headers that share one generation timestamp.
type Printer struct {
	stamp string
	count atomic.Int64
}

// New creates a Printer stamping files with generated.
func New(generated time.Time) *Printer {
	return &Printer{stamp: FormatTimestamp(generated)}
}

// Stamp returns the formatted generation timestamp.
func (p *Printer) Stamp() string {
	return p.stamp
}

// Render writes the banner comment followed by one #include per path.
func (p *Printer) Render(w io.Writer, includes ...string) error {
	if _, err := fmt.Fprintf(w, "/* This file was auto-generated by scripts on %s */\n", p.stamp); err != nil {
		return err
	}
	for _, inc := range includes {
		if _, err := fmt.Fprintf(w, "#include \"%s\"\n", inc); err != nil {
			return err
		}
	}
	return nil
}

// WriteForwarding writes a forwarding header at path, replacing any
// existing file.
func (p *Printer) WriteForwarding(path, include string) error {
	return p.writeFile(path, include)
}

// WriteAggregate writes a header at path that includes every entry of
// includes in order.
func (p *Printer) WriteAggregate(path string, includes []string) error {
	return p.writeFile(path, includes...)
}

func (p *Printer) writeFile(path string, includes ...string) error {
	var buf bytes.Buffer
	if err := p.Render(&buf, includes...); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	p.count.Add(1)
	return nil
}

// GetCount returns the number of files written
func (p *Printer) GetCount() int64 {
	return p.count.Load()
}
