// Package parser parses textual ecgen invocations into an AST.
//
// The grammar is a single comma-separated list:
//
//	lowercaseName , UPPERCASE_NAME [, token]...
//
// where each token is an identifier or a quoted string. The parser checks
// token shapes and list punctuation only; emptiness, parity, and arity of
// the variadic tokens are the rule table's concern.
package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/yaecgen/ecgen/internal/ast"
	"github.com/yaecgen/ecgen/internal/lexer"
	"github.com/yaecgen/ecgen/internal/types"
)

// Parser converts a token stream into an Invocation with diagnostics.
type Parser struct {
	source      []byte
	lex         *lexer.Lexer
	cur         lexer.Token
	diagnostics []types.Diagnostic
	types.Logger
}

// New returns a Parser over the given invocation source.
// Pass nil for logger to disable logging.
func New(source []byte, logger *slog.Logger) *Parser {
	var lexLogger *slog.Logger
	if logger != nil {
		lexLogger = logger.With(slog.String("component", "lexer"))
	}
	lex := lexer.New(source, lexLogger)
	p := &Parser{
		source: source,
		lex:    lex,
		Logger: types.Logger{L: logger},
	}
	p.cur = lex.NextToken()
	p.Log(slog.LevelDebug, "parser initialized")
	return p
}

// Parse consumes the whole source and returns the invocation along with all
// diagnostics from both lexing and parsing. The invocation is non-nil even
// when diagnostics are present, but callers must treat error-severity
// diagnostics as fatal to generation.
func (p *Parser) Parse() (*ast.Invocation, []types.Diagnostic) {
	inv := &ast.Invocation{}

	inv.Spec.Lower, inv.Spec.LowerSpan = p.parseName(false)
	p.expectComma()
	inv.Spec.Upper, inv.Spec.UpperSpan = p.parseName(true)

	for p.cur.Kind == lexer.TokComma {
		p.next()
		arg, ok := p.parseArg()
		if !ok {
			break
		}
		inv.Args = append(inv.Args, arg)
	}

	if p.cur.Kind != lexer.TokEOF {
		p.emit(types.DiagParseError, p.cur.Span,
			fmt.Sprintf("expected ',' or end of invocation, got %s", p.describe(p.cur)))
	}

	diags := append(p.lex.Diagnostics(), p.diagnostics...)
	p.Log(slog.LevelDebug, "parse complete",
		slog.Int("args", len(inv.Args)),
		slog.Int("diagnostics", len(diags)))
	return inv, diags
}

// parseName parses one of the two TypeSpec names. A name in the wrong case
// is accepted with a warning; anything other than an identifier is an error.
func (p *Parser) parseName(wantUpper bool) (string, types.Span) {
	tok := p.cur
	switch tok.Kind {
	case lexer.TokLowercaseIdent, lexer.TokUppercaseIdent:
		p.next()
		name := p.text(tok)
		p.validateNameCase(name, tok, wantUpper)
		return name, tok.Span
	case lexer.TokEOF:
		p.emit(types.DiagIdentifierEmpty, tok.Span, "missing type name")
		return "", tok.Span
	default:
		p.emit(types.DiagParseError, tok.Span,
			fmt.Sprintf("expected identifier, got %s", p.describe(tok)))
		p.next()
		return "", tok.Span
	}
}

func (p *Parser) validateNameCase(name string, tok lexer.Token, wantUpper bool) {
	if wantUpper && tok.Kind != lexer.TokUppercaseIdent {
		p.warn(types.DiagBadIdentifierCase, tok.Span,
			fmt.Sprintf("%q should be an uppercase name", name))
	}
	if !wantUpper && tok.Kind != lexer.TokLowercaseIdent {
		p.warn(types.DiagBadIdentifierCase, tok.Span,
			fmt.Sprintf("%q should be a lowercase name", name))
	}
}

// parseArg parses one variadic token: an identifier or a quoted string.
func (p *Parser) parseArg() (ast.Arg, bool) {
	tok := p.cur
	switch tok.Kind {
	case lexer.TokLowercaseIdent, lexer.TokUppercaseIdent:
		p.next()
		return ast.Arg{Text: p.text(tok), Span: tok.Span}, true
	case lexer.TokQuotedString:
		p.next()
		return ast.Arg{Text: unquote(p.text(tok)), IsString: true, Span: tok.Span}, true
	case lexer.TokEOF:
		p.emit(types.DiagParseError, tok.Span, "trailing comma in invocation")
		return ast.Arg{}, false
	default:
		p.emit(types.DiagParseError, tok.Span,
			fmt.Sprintf("expected identifier or string, got %s", p.describe(tok)))
		p.next()
		return ast.Arg{}, false
	}
}

func (p *Parser) expectComma() {
	if p.cur.Kind == lexer.TokComma {
		p.next()
		return
	}
	p.emit(types.DiagParseError, p.cur.Span,
		fmt.Sprintf("expected ',', got %s", p.describe(p.cur)))
}

func (p *Parser) next() {
	p.cur = p.lex.NextToken()
}

func (p *Parser) text(tok lexer.Token) string {
	return string(p.source[tok.Span.Start:tok.Span.End])
}

func (p *Parser) describe(tok lexer.Token) string {
	if tok.Kind == lexer.TokEOF {
		return "end of invocation"
	}
	return fmt.Sprintf("%s %q", tok.Kind, p.text(tok))
}

func (p *Parser) emit(code string, span types.Span, message string) {
	p.diagnostics = append(p.diagnostics, types.Diagnostic{
		Severity: types.SeverityError,
		Code:     code,
		Span:     span,
		Message:  message,
	})
}

func (p *Parser) warn(code string, span types.Span, message string) {
	p.diagnostics = append(p.diagnostics, types.Diagnostic{
		Severity: types.SeverityWarning,
		Code:     code,
		Span:     span,
		Message:  message,
	})
}

// unquote strips the surrounding double quotes from a string literal and
// resolves backslash escapes. The lexer guarantees the literal is well
// formed, so this never fails.
func unquote(literal string) string {
	body := literal[1 : len(literal)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' && i+1 < len(body) {
			i++
			switch body[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(body[i])
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
