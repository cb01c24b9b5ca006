package wit

import (
	"fmt"
	"strings"
)

// SyntaxError describes a single lexical or syntactic error encountered
// while processing a WIT file, carrying enough information to report it
// per §4.1: "(line, column, message)".
type SyntaxError struct {
	Line    int
	Column  int
	Msg     string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

// ErrorList accumulates [SyntaxError] values across an entire file so
// the front end can report every error found rather than stopping at
// the first one.
type ErrorList struct {
	Errors []*SyntaxError
}

// Add appends a new error at pos with the given message.
func (el *ErrorList) Add(pos Position, format string, args ...any) {
	el.Errors = append(el.Errors, &SyntaxError{
		Line:   pos.Line,
		Column: pos.Column,
		Msg:    fmt.Sprintf(format, args...),
	})
}

// Err returns el as an error if it contains any entries, or nil otherwise.
func (el *ErrorList) Err() error {
	if len(el.Errors) == 0 {
		return nil
	}
	return el
}

func (el *ErrorList) Error() string {
	var b strings.Builder
	for i, e := range el.Errors {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

// Severity classifies a [Diagnostic] raised outside the lexer/parser
// stage (the builder, type mapper, resolver, and emitter all report
// through Diagnostic rather than SyntaxError, since their findings are
// non-fatal per §4.6/§7).
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is a single non-fatal finding surfaced by the builder, type
// mapper, resolver, or emitter: an unresolved type reference, a
// dependency cycle, a sanitization collision, or an unsupported
// construct (§7 error kinds 4-6).
type Diagnostic struct {
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// Warnf appends a warning-level [Diagnostic] to diags.
func Warnf(diags *[]Diagnostic, format string, args ...any) {
	*diags = append(*diags, Diagnostic{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)})
}

// Errorf appends an error-level [Diagnostic] to diags.
func Errorf(diags *[]Diagnostic, format string, args ...any) {
	*diags = append(*diags, Diagnostic{Severity: SeverityError, Message: fmt.Sprintf(format, args...)})
}
