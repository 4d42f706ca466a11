// Package output provides the logger and terminal styling used by shipit.
package output

import (
	"fmt"
	"io"
	"os"
)

// Splog provides structured logging and output
type Splog struct {
	writer    io.Writer
	errWriter io.Writer
}

// NewSplog creates a new splog instance writing to stdout/stderr
func NewSplog() *Splog {
	return &Splog{
		writer:    os.Stdout,
		errWriter: os.Stderr,
	}
}

// NewSplogWithWriters creates a splog instance with custom writers, used in tests
func NewSplogWithWriters(out, errOut io.Writer) *Splog {
	return &Splog{
		writer:    out,
		errWriter: errOut,
	}
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Success writes a success message
func (s *Splog) Success(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, Success("✓ ")+format+"\n", args...)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, Warning("⚠ ")+format+"\n", args...)
}

// Error writes a clearly marked error message to the diagnostic stream
func (s *Splog) Error(format string, args ...interface{}) {
	fmt.Fprintf(s.errWriter, Failure("error: ")+format+"\n", args...)
}

// Header writes a styled section header
func (s *Splog) Header(format string, args ...interface{}) {
	fmt.Fprintln(s.writer, Header(fmt.Sprintf(format, args...)))
}

// Detail writes dimmed secondary detail
func (s *Splog) Detail(format string, args ...interface{}) {
	fmt.Fprintln(s.writer, Dim(fmt.Sprintf(format, args...)))
}

// Tip writes a tip message
func (s *Splog) Tip(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "💡 "+format+"\n", args...)
}

// Newline writes a newline
func (s *Splog) Newline() {
	fmt.Fprintln(s.writer)
}

// Page writes pre-formatted output
func (s *Splog) Page(content string) {
	fmt.Fprint(s.writer, content)
}
