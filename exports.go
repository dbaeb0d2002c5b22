// Package ecgen generates coupled error-code enumerations and message
// conversion tables from a single declarative invocation, so the enum and
// its parallel string table cannot drift apart.
package ecgen

import "github.com/yaecgen/ecgen/gen"

// Type aliases for the public API - all types come from the gen subpackage.

// Expansion is the full output of one invocation: an enum and its table.
type Expansion = gen.Expansion

// EnumDecl is the ordered member list of one generated enumeration.
type EnumDecl = gen.EnumDecl

// MessageTable is the conversion table declaration.
type MessageTable = gen.MessageTable

// TableEntry is one designated initializer of the conversion table.
type TableEntry = gen.TableEntry

// CodePair is one (symbolic name, message) tuple.
type CodePair = gen.CodePair

// TypeSpec holds the two spellings of the enum's base name.
type TypeSpec = gen.TypeSpec

// Unit is the output of one manifest.
type Unit = gen.Unit

// Diagnostic is a problem found while parsing or generating.
type Diagnostic = gen.Diagnostic

// Severity classifies how bad a diagnostic is.
type Severity = gen.Severity

// GenerationError reports that generation failed, carrying every diagnostic.
type GenerationError = gen.GenerationError

// HeaderConfig configures MacroHeader.
type HeaderConfig = gen.HeaderConfig

// Severity constants.
const (
	SeverityFatal   = gen.SeverityFatal
	SeverityError   = gen.SeverityError
	SeverityWarning = gen.SeverityWarning
	SeverityInfo    = gen.SeverityInfo
)

// Diagnostic codes for the rule table failures.
const (
	DiagEmptyDeclaration = gen.DiagEmptyDeclaration
	DiagUnparity         = gen.DiagUnparity
	DiagUnsupportedArity = gen.DiagUnsupportedArity
	DiagDuplicateMember  = gen.DiagDuplicateMember
)

// MacroHeader renders a self-contained C preprocessor implementation of the
// generator for consumers who want the expansion to happen in their own
// C compiler instead.
func MacroHeader(cfg HeaderConfig) (string, error) {
	return gen.MacroHeader(cfg)
}
