package gen

import (
	"fmt"
	"strings"

	"github.com/yaecgen/ecgen/internal/types"
)

// Severity classifies how bad a diagnostic is. Lower values are more severe.
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
	return types.Severity(s).String()
}

// Fails returns true if a diagnostic of this severity fails generation.
func (s Severity) Fails() bool {
	return s <= SeverityError
}

// Diagnostic codes, stable across releases. Tests and callers branch on
// these rather than on message text.
const (
	// DiagEmptyDeclaration: zero pairs were supplied.
	DiagEmptyDeclaration = types.DiagEmptyDeclaration
	// DiagUnparity: a symbolic name without its message, or vice versa.
	DiagUnparity = types.DiagUnparity
	// DiagUnsupportedArity: more pairs than the configured ceiling.
	DiagUnsupportedArity = types.DiagUnsupportedArity
	// DiagDuplicateMember: the same symbolic name declared twice.
	DiagDuplicateMember = types.DiagDuplicateMember
)

// Diagnostic is a problem found while parsing or generating.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Source   string // manifest or invocation name, empty if not applicable
	Line     int    // 1-based, 0 if not applicable
	Column   int    // 1-based, 0 if not applicable
}

// String returns "[severity] source:line:col: code: message" with location
// parts omitted when zero.
func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(d.Severity.String())
	b.WriteString("] ")
	if d.Source != "" {
		b.WriteString(d.Source)
		if d.Line > 0 {
			fmt.Fprintf(&b, ":%d", d.Line)
			if d.Column > 0 {
				fmt.Fprintf(&b, ":%d", d.Column)
			}
		}
		b.WriteString(": ")
	}
	b.WriteString(d.Code)
	b.WriteString(": ")
	b.WriteString(d.Message)
	return b.String()
}

// GenerationError reports that generation failed. It carries every collected
// diagnostic; no artifact is produced alongside it.
type GenerationError struct {
	Diagnostics []Diagnostic
}

// Error returns the first failing diagnostic, plus a count of the rest.
func (e *GenerationError) Error() string {
	var first *Diagnostic
	failing := 0
	for i := range e.Diagnostics {
		if e.Diagnostics[i].Severity.Fails() {
			if first == nil {
				first = &e.Diagnostics[i]
			}
			failing++
		}
	}
	if first == nil {
		return "generation failed"
	}
	if failing == 1 {
		return first.String()
	}
	return fmt.Sprintf("%s (and %d more)", first, failing-1)
}

// HasCode reports whether any diagnostic carries the given code.
func (e *GenerationError) HasCode(code string) bool {
	for _, d := range e.Diagnostics {
		if d.Code == code {
			return true
		}
	}
	return false
}
