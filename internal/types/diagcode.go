package types

// Diagnostic codes emitted by the parser, rule table, and manifest loader.
// Centralizing these prevents silent breakage from typos in string literals.

// Rule table diagnostic codes.
const (
	DiagEmptyDeclaration = "empty-declaration"
	DiagUnparity         = "unparity"
	DiagUnsupportedArity = "unsupported-arity"
	DiagDuplicateMember  = "duplicate-member"
)

// Lexer and parser diagnostic codes.
const (
	DiagParseError        = "parse-error"
	DiagIdentifierEmpty   = "identifier-empty"
	DiagBadIdentifierCase = "bad-identifier-case"
)

// Manifest and preprocessor diagnostic codes.
const (
	DiagDuplicateKey           = "duplicate-key"
	DiagEmptyReference         = "empty-reference"
	DiagIllegalReferenceSymbol = "illegal-reference-symbol"
	DiagUnknownKey             = "unknown-key"
	DiagMissingMessage         = "missing-message"
	DiagRepeatOverflow         = "repeat-overflow"
	DiagUnknownTag             = "unknown-tag"
)

// Fixed messages for the rule table failures. These are part of the tool's
// contract: the same malformed input always produces the same text.
const (
	MsgNoMembers = "no member was specified for this enum type"
	MsgUnparity  = "argument count does not pair evenly into name/message tuples"
)

// DiagCodeInfo describes a diagnostic code and the phase that emits it.
type DiagCodeInfo struct {
	Code  string
	Phase string
}

// AllDiagnosticCodes returns all known diagnostic codes grouped by phase.
func AllDiagnosticCodes() []DiagCodeInfo {
	return []DiagCodeInfo{
		// Rule table
		{Code: DiagEmptyDeclaration, Phase: "rules"},
		{Code: DiagUnparity, Phase: "rules"},
		{Code: DiagUnsupportedArity, Phase: "rules"},
		{Code: DiagDuplicateMember, Phase: "rules"},
		// Parser
		{Code: DiagParseError, Phase: "parser"},
		{Code: DiagIdentifierEmpty, Phase: "parser"},
		{Code: DiagBadIdentifierCase, Phase: "parser"},
		// Manifest
		{Code: DiagDuplicateKey, Phase: "manifest"},
		{Code: DiagEmptyReference, Phase: "manifest"},
		{Code: DiagIllegalReferenceSymbol, Phase: "manifest"},
		{Code: DiagUnknownKey, Phase: "manifest"},
		{Code: DiagMissingMessage, Phase: "manifest"},
		{Code: DiagRepeatOverflow, Phase: "manifest"},
		{Code: DiagUnknownTag, Phase: "manifest"},
	}
}
