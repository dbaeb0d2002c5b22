// Package integration runs whole manifests through the public API.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaecgen/ecgen"
)

const fullManifest = `
prefix: YA_
output: codes.h
max_pairs: 4
preamble: |
  /* generated by ecgen - do not edit */
keys:
  - key: project
    value: acme
enums:
  - lowercase_name: net
    uppercase_name: NET
    members:
      - {name: DOWN, message: "link down"}
      - {name: RESET, message: "connection reset by @{project}"}
  - lowercase_name: io
    uppercase_name: IO
    tags: [NO_PREFIX]
    members:
      - {name: EOF, message: "end of file"}
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "codes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGenerateFromFile(t *testing.T) {
	path := writeManifest(t, fullManifest)

	unit, err := ecgen.Generate(ecgen.File(path))
	require.NoError(t, err)
	require.Equal(t, "codes.yaml", unit.SourceName)
	require.Equal(t, "codes.h", unit.Output)
	require.Len(t, unit.Expansions, 2)

	want := "/* generated by ecgen - do not edit */\n\n" +
		"enum net_error_codes {YA_NET_DOWN, YA_NET_RESET};\n" +
		`const char *net_conversion_table[] = {[YA_NET_DOWN] = "link down", [YA_NET_RESET] = "connection reset by acme"};` + "\n" +
		"\n" +
		"enum io_error_codes {IO_EOF};\n" +
		`const char *io_conversion_table[] = {[IO_EOF] = "end of file"};` + "\n"
	require.Equal(t, want, unit.Render())
}

func TestGenerateIdempotent(t *testing.T) {
	path := writeManifest(t, fullManifest)

	first, err := ecgen.Generate(ecgen.File(path))
	require.NoError(t, err)
	second, err := ecgen.Generate(ecgen.File(path))
	require.NoError(t, err)
	require.Equal(t, first.Render(), second.Render(),
		"same manifest must render byte-identical output")
}

func TestGenerateMissingFile(t *testing.T) {
	_, err := ecgen.Generate(ecgen.File(filepath.Join(t.TempDir(), "nope.yaml")))
	require.Error(t, err)
}

func TestGenerateFailureCarriesAllDiagnostics(t *testing.T) {
	path := writeManifest(t, `
enums:
  - lowercase_name: a
    uppercase_name: A
    members: []
  - lowercase_name: b
    uppercase_name: B
    members:
      - name: ONLY
`)
	_, err := ecgen.Generate(ecgen.File(path))
	require.Error(t, err)

	genErr, ok := err.(*ecgen.GenerationError)
	require.True(t, ok, "error is a *GenerationError")
	require.True(t, genErr.HasCode(ecgen.DiagEmptyDeclaration))
	require.True(t, genErr.HasCode(ecgen.DiagUnparity))
}

func TestExpansionMatchesEnumOrdinals(t *testing.T) {
	expansion, err := ecgen.Expand("hello", "HELLO",
		"A", "msg-a", "B", "msg-b", "C", "msg-c")
	require.NoError(t, err)

	require.Equal(t, []string{"HELLO_A", "HELLO_B", "HELLO_C"}, expansion.Enum.Members)
	for i, entry := range expansion.Table.Entries {
		require.Equal(t, expansion.Enum.Members[i], entry.Member,
			"table slot %d designates enum member %d", i, i)
	}
}

func TestMacroHeaderRoundTrip(t *testing.T) {
	header, err := ecgen.MacroHeader(ecgen.HeaderConfig{
		Name:         "YA_ECGEN",
		MemberPrefix: "YA_",
		MaxPairs:     4,
	})
	require.NoError(t, err)

	// The generated family must express the same fixed messages the tool
	// itself reports for the two malformed-input cases.
	require.Contains(t, header, "No member was specified for this enum type")
	require.Contains(t, header, "Error code doesn't have its message pair")
	require.Contains(t, header, "#define YA_ECGEN(lowercase_name, UPPERCASE_NAME, ...)")
}
