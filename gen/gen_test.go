package gen

import (
	"testing"

	"github.com/yaecgen/ecgen/internal/testutil"
)

var helloSpec = TypeSpec{Lower: "hello", Upper: "HELLO"}

func TestSinglePairExpansion(t *testing.T) {
	e := NewExpansion(helloSpec, "", []CodePair{{Name: "HI", Message: "HI"}})

	testutil.Equal(t, "enum hello_error_codes {HELLO_HI};", e.Enum.Render(), "enum")
	testutil.Equal(t, `const char *hello_conversion_table[] = {[HELLO_HI] = "HI"};`,
		e.Table.Render(), "table")
}

func TestTwoPairExpansion(t *testing.T) {
	e := NewExpansion(helloSpec, "", []CodePair{
		{Name: "A", Message: "msg-a"},
		{Name: "B", Message: "msg-b"},
	})

	testutil.SliceEqual(t, []string{"HELLO_A", "HELLO_B"}, e.Enum.Members, "members")
	testutil.Equal(t, "enum hello_error_codes {HELLO_A, HELLO_B};", e.Enum.Render(), "enum")
	testutil.Equal(t,
		`const char *hello_conversion_table[] = {[HELLO_A] = "msg-a", [HELLO_B] = "msg-b"};`,
		e.Table.Render(), "table")
}

func TestCorrespondence(t *testing.T) {
	pairs := []CodePair{
		{Name: "FIRST", Message: "one"},
		{Name: "SECOND", Message: "two"},
		{Name: "THIRD", Message: "three"},
	}
	e := NewExpansion(helloSpec, "", pairs)

	testutil.Len(t, e.Enum.Members, 3, "members")
	testutil.Len(t, e.Table.Entries, 3, "entries")
	for i := range pairs {
		testutil.Equal(t, e.Enum.Members[i], e.Table.Entries[i].Member,
			"slot %d member", i)
		testutil.Equal(t, pairs[i].Message, e.Table.Entries[i].Message,
			"slot %d message", i)
	}
}

func TestMemberPrefix(t *testing.T) {
	e := NewExpansion(helloSpec, "YA_", []CodePair{{Name: "HI", Message: "HI"}})
	testutil.Equal(t, "YA_HELLO_HI", e.Enum.Members[0], "prefixed member")
	testutil.Equal(t, "YA_HELLO_HI", e.Table.Entries[0].Member, "prefixed slot")
}

func TestExpansionRender(t *testing.T) {
	e := NewExpansion(helloSpec, "", []CodePair{{Name: "HI", Message: "HI"}})
	want := "enum hello_error_codes {HELLO_HI};\n" +
		"const char *hello_conversion_table[] = {[HELLO_HI] = \"HI\"};\n"
	testutil.Equal(t, want, e.Render(), "rendered expansion")
}

func TestRenderIdempotent(t *testing.T) {
	pairs := []CodePair{{Name: "A", Message: "a"}, {Name: "B", Message: "b"}}
	first := NewExpansion(helloSpec, "", pairs).Render()
	second := NewExpansion(helloSpec, "", pairs).Render()
	testutil.Equal(t, first, second, "byte-identical re-render")
}

func TestUnitRender(t *testing.T) {
	u := &Unit{
		Preamble: "/* generated */",
		Expansions: []*Expansion{
			NewExpansion(TypeSpec{Lower: "net", Upper: "NET"},
				"", []CodePair{{Name: "DOWN", Message: "link down"}}),
			NewExpansion(TypeSpec{Lower: "io", Upper: "IO"},
				"", []CodePair{{Name: "EOF", Message: "end of file"}}),
		},
	}
	want := "/* generated */\n\n" +
		"enum net_error_codes {NET_DOWN};\n" +
		"const char *net_conversion_table[] = {[NET_DOWN] = \"link down\"};\n" +
		"\n" +
		"enum io_error_codes {IO_EOF};\n" +
		"const char *io_conversion_table[] = {[IO_EOF] = \"end of file\"};\n"
	testutil.Equal(t, want, u.Render(), "rendered unit")
}

func TestQuoteC(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"HI", `"HI"`},
		{"", `""`},
		{`say "hi"`, `"say \"hi\""`},
		{"a\\b", `"a\\b"`},
		{"line\nbreak", `"line\nbreak"`},
		{"tab\there", `"tab\there"`},
		{"bell\x07", `"bell\007"`},
	}
	for _, c := range cases {
		testutil.Equal(t, c.want, QuoteC(c.in), "QuoteC(%q)", c.in)
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityError,
		Code:     DiagUnparity,
		Message:  "odd token count",
		Source:   "codes.yaml",
		Line:     7,
		Column:   3,
	}
	testutil.Equal(t, "[error] codes.yaml:7:3: unparity: odd token count", d.String(), "full form")

	d = Diagnostic{Severity: SeverityError, Code: DiagEmptyDeclaration, Message: "empty"}
	testutil.Equal(t, "[error] empty-declaration: empty", d.String(), "no location")
}

func TestGenerationError(t *testing.T) {
	err := &GenerationError{Diagnostics: []Diagnostic{
		{Severity: SeverityWarning, Code: "bad-identifier-case", Message: "case"},
		{Severity: SeverityError, Code: DiagUnparity, Message: "odd token count"},
	}}
	testutil.Contains(t, err.Error(), DiagUnparity, "error text names the failing code")
	testutil.True(t, err.HasCode(DiagUnparity), "HasCode positive")
	testutil.False(t, err.HasCode(DiagEmptyDeclaration), "HasCode negative")
}
