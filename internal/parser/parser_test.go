package parser

import (
	"testing"

	"github.com/yaecgen/ecgen/internal/ast"
	"github.com/yaecgen/ecgen/internal/testutil"
	"github.com/yaecgen/ecgen/internal/types"
)

func parse(t *testing.T, source string) (*ast.Invocation, []types.Diagnostic) {
	t.Helper()
	return New([]byte(source), nil).Parse()
}

func parseClean(t *testing.T, source string) *ast.Invocation {
	t.Helper()
	inv, diags := parse(t, source)
	for _, d := range diags {
		if d.Severity.Fails() {
			t.Fatalf("unexpected diagnostic: %s", d)
		}
	}
	return inv
}

func TestTypeSpec(t *testing.T) {
	inv := parseClean(t, "hello, HELLO")
	testutil.Equal(t, "hello", inv.Spec.Lower, "lower name")
	testutil.Equal(t, "HELLO", inv.Spec.Upper, "upper name")
	testutil.Len(t, inv.Args, 0, "args")
}

func TestSinglePair(t *testing.T) {
	inv := parseClean(t, `hello, HELLO, HI, "HI"`)
	testutil.Len(t, inv.Args, 2, "args")
	testutil.Equal(t, "HI", inv.Args[0].Text, "name arg")
	testutil.False(t, inv.Args[0].IsString, "name arg kind")
	testutil.Equal(t, "HI", inv.Args[1].Text, "message arg")
	testutil.True(t, inv.Args[1].IsString, "message arg kind")
}

func TestMultiplePairs(t *testing.T) {
	inv := parseClean(t, `codes, CODES, A, "msg-a", B, "msg-b"`)
	testutil.SliceEqual(t, []string{"A", "msg-a", "B", "msg-b"}, inv.ArgTexts(), "arg texts")
}

func TestStringEscapes(t *testing.T) {
	inv := parseClean(t, `m, M, X, "say \"hi\"\n"`)
	testutil.Equal(t, "say \"hi\"\n", inv.Args[1].Text, "unquoted message")
}

func TestOddArgCountParsesClean(t *testing.T) {
	// Parity is the rule table's job, not the parser's.
	inv := parseClean(t, "hello, HELLO, HI")
	testutil.Len(t, inv.Args, 1, "args")
}

func TestBadCaseWarnings(t *testing.T) {
	_, diags := parse(t, "HELLO, hello")
	testutil.Len(t, diags, 2, "diagnostics")
	for _, d := range diags {
		testutil.Equal(t, types.DiagBadIdentifierCase, d.Code, "diagnostic code")
		testutil.Equal(t, types.SeverityWarning, d.Severity, "severity")
	}
}

func TestMissingComma(t *testing.T) {
	_, diags := parse(t, "hello HELLO")
	testutil.True(t, len(diags) >= 1, "diagnostics present")
	testutil.Equal(t, types.DiagParseError, diags[0].Code, "diagnostic code")
}

func TestTrailingComma(t *testing.T) {
	_, diags := parse(t, "hello, HELLO, HI,")
	testutil.True(t, len(diags) >= 1, "diagnostics present")
	testutil.Contains(t, diags[0].Message, "trailing comma", "diagnostic message")
}

func TestEmptySource(t *testing.T) {
	_, diags := parse(t, "")
	testutil.True(t, len(diags) >= 1, "diagnostics present")
	testutil.Equal(t, types.DiagIdentifierEmpty, diags[0].Code, "diagnostic code")
}

func TestLexErrorsSurface(t *testing.T) {
	_, diags := parse(t, `hello, HELLO, HI, "oops`)
	found := false
	for _, d := range diags {
		if d.Code == types.DiagParseError {
			found = true
		}
	}
	testutil.True(t, found, "lexer diagnostic surfaced")
}
