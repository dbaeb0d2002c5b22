package types

import (
	"fmt"
	"strings"
)

// Severity classifies how bad a diagnostic is.
// Lower values are more severe.
type Severity int

const (
	// SeverityFatal aborts generation immediately.
	SeverityFatal Severity = iota
	// SeverityError fails generation after all diagnostics are collected.
	SeverityError
	// SeverityWarning is reported but does not fail generation.
	SeverityWarning
	// SeverityInfo is purely informational.
	SeverityInfo
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return "fatal"
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Fails returns true if a diagnostic of this severity fails generation.
func (s Severity) Fails() bool {
	return s <= SeverityError
}

// Diagnostic is a message from the lexer, parser, rule table, or manifest
// loader. Spans are byte offsets into the source the component was given;
// they are converted to line/column positions at the public boundary.
type Diagnostic struct {
	Severity Severity
	Code     string // e.g. "empty-declaration", "unparity"
	Span     Span
	Message  string
}

// String returns "[severity] code: message".
func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(d.Severity.String())
	b.WriteString("] ")
	b.WriteString(d.Code)
	b.WriteString(": ")
	b.WriteString(d.Message)
	return b.String()
}

// AnyFails reports whether any diagnostic in the slice fails generation.
func AnyFails(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity.Fails() {
			return true
		}
	}
	return false
}
