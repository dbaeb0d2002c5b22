package lexer

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/yaecgen/ecgen/internal/types"
)

// Lexer tokenizes the textual invocation form:
//
//	hello, HELLO, HI, "HI"
//
// Tokens are identifiers, quoted strings, and commas. Whitespace between
// tokens is insignificant.
type Lexer struct {
	source      []byte
	pos         int
	diagnostics []types.Diagnostic
	types.Logger
}

// New returns a Lexer that tokenizes the given source bytes.
// Pass nil for logger to disable logging.
func New(source []byte, logger *slog.Logger) *Lexer {
	l := &Lexer{
		source: source,
		Logger: types.Logger{L: logger},
	}
	l.Log(slog.LevelDebug, "lexer initialized", slog.Int("bytes", len(source)))
	return l
}

// Diagnostics returns a copy of all collected diagnostics.
func (l *Lexer) Diagnostics() []types.Diagnostic {
	return slices.Clone(l.diagnostics)
}

// Tokenize consumes all source text and returns the token stream
// along with any diagnostics generated during lexing.
func (l *Lexer) Tokenize() ([]Token, []types.Diagnostic) {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokEOF {
			break
		}
	}
	l.Log(slog.LevelDebug, "tokenization complete",
		slog.Int("tokens", len(tokens)),
		slog.Int("diagnostics", len(l.diagnostics)))
	return tokens, l.diagnostics
}

// NextToken advances the lexer and returns the next token.
// Returns TokEOF when all input is consumed.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	start := types.ByteOffset(l.pos)
	b, ok := l.peek()
	if !ok {
		return NewToken(TokEOF, types.NewSpan(start, start))
	}

	var tok Token
	switch {
	case b == ',':
		l.advance()
		tok = NewToken(TokComma, types.NewSpan(start, types.ByteOffset(l.pos)))
	case b == '"':
		tok = l.lexQuotedString()
	case isIdentStart(b):
		tok = l.lexIdentifier()
	default:
		l.advance()
		span := types.NewSpan(start, types.ByteOffset(l.pos))
		l.emit(types.DiagParseError, span, fmt.Sprintf("unexpected character %q", b))
		tok = NewToken(TokError, span)
	}

	if l.TraceEnabled() {
		l.Trace("token",
			slog.String("kind", tok.Kind.String()),
			slog.Int("start", int(tok.Span.Start)),
			slog.Int("end", int(tok.Span.End)))
	}
	return tok
}

// Text returns the source text covered by the token's span.
func (l *Lexer) Text(tok Token) string {
	return string(l.source[tok.Span.Start:tok.Span.End])
}

func (l *Lexer) lexIdentifier() Token {
	start := types.ByteOffset(l.pos)
	first, _ := l.advance()
	for {
		b, ok := l.peek()
		if !ok || !isIdentPart(b) {
			break
		}
		l.advance()
	}
	span := types.NewSpan(start, types.ByteOffset(l.pos))
	if first >= 'A' && first <= 'Z' {
		return NewToken(TokUppercaseIdent, span)
	}
	return NewToken(TokLowercaseIdent, span)
}

// lexQuotedString consumes a double-quoted string literal. Backslash escapes
// the next byte; the escape is resolved later when the literal is unquoted.
func (l *Lexer) lexQuotedString() Token {
	start := types.ByteOffset(l.pos)
	l.advance() // opening quote
	for {
		b, ok := l.advance()
		if !ok {
			span := types.NewSpan(start, types.ByteOffset(l.pos))
			l.emit(types.DiagParseError, span, "unterminated string literal")
			return NewToken(TokError, span)
		}
		switch b {
		case '\\':
			l.advance()
		case '"':
			return NewToken(TokQuotedString, types.NewSpan(start, types.ByteOffset(l.pos)))
		case '\n':
			span := types.NewSpan(start, types.ByteOffset(l.pos))
			l.emit(types.DiagParseError, span, "newline in string literal")
			return NewToken(TokError, span)
		}
	}
}

func (l *Lexer) emit(code string, span types.Span, message string) {
	l.diagnostics = append(l.diagnostics, types.Diagnostic{
		Severity: types.SeverityError,
		Code:     code,
		Span:     span,
		Message:  message,
	})
}

func (l *Lexer) peek() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	return l.source[l.pos], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	b := l.source[l.pos]
	l.pos++
	return b, true
}

func (l *Lexer) skipWhitespace() {
	for {
		b, ok := l.peek()
		if !ok {
			return
		}
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			l.advance()
		} else {
			return
		}
	}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}
