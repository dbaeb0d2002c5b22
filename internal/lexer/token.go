// Package lexer provides tokenization for textual ecgen invocations.
package lexer

import (
	"github.com/yaecgen/ecgen/internal/types"
)

// Token is a token with kind and source span.
type Token struct {
	Kind TokenKind
	Span types.Span
}

// NewToken creates a new token.
func NewToken(kind TokenKind, span types.Span) Token {
	return Token{Kind: kind, Span: span}
}

// TokenKind identifies a token type.
type TokenKind int

const (
	// TokError is a lexical error.
	TokError TokenKind = iota
	// TokEOF is end of input.
	TokEOF

	// TokLowercaseIdent is an identifier starting with a lowercase letter
	// or underscore (enum base names).
	TokLowercaseIdent
	// TokUppercaseIdent is an identifier starting with an uppercase letter
	// (member prefixes, symbolic names).
	TokUppercaseIdent

	// TokQuotedString is a double-quoted string literal (messages).
	TokQuotedString

	// TokComma is ','.
	TokComma
)

// String returns a short name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokError:
		return "error"
	case TokEOF:
		return "eof"
	case TokLowercaseIdent:
		return "lowercase-ident"
	case TokUppercaseIdent:
		return "uppercase-ident"
	case TokQuotedString:
		return "quoted-string"
	case TokComma:
		return "comma"
	default:
		return "unknown"
	}
}
