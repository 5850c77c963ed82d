package lint

import (
	"fmt"
	"io"
	"strings"
)

type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityInternal
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityInternal:
		return "INTERNAL ERROR"
	}
	return "Unknown"
}

// Finding is one diagnostic produced while scanning a file.
type Finding struct {
	Severity   Severity
	Message    string
	File       string
	Line       int
	Column     int
	SourceLine string
}

// Sink receives findings as they are produced.
type Sink interface {
	Emit(Finding)
}

// TextSink renders findings as plain text:
//
//	ERROR: Logger statement has 1 format specifiers but 0 argument(s).
//	At line 12 of 'app/views.py':
//	    logger.debug('user: %s')
//
// followed by a blank separator line. It also tallies findings by severity
// so callers can derive an exit code.
type TextSink struct {
	w        io.Writer
	errors   int
	warnings int
}

func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (t *TextSink) Emit(f Finding) {
	switch f.Severity {
	case SeverityWarning:
		t.warnings++
	default:
		t.errors++
	}
	fmt.Fprintf(t.w, "%s: %s\n", f.Severity, f.Message)
	fmt.Fprintf(t.w, "At line %d of '%s':\n", f.Line, f.File)
	fmt.Fprintf(t.w, "    %s\n\n", strings.TrimRight(f.SourceLine, " \t\r\n"))
}

func (t *TextSink) Errors() int {
	return t.errors
}

func (t *TextSink) Warnings() int {
	return t.warnings
}

// RecordSink collects findings in order.
type RecordSink struct {
	Findings []Finding
}

func (r *RecordSink) Emit(f Finding) {
	r.Findings = append(r.Findings, f)
}
