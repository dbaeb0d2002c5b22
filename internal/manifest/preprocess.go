package manifest

import (
	"fmt"
	"strings"

	"github.com/yaecgen/ecgen/internal/types"
)

// Substitute resolves @{key} references in s against the key table.
// A backslash embeds the next sigil literally: \@ yields @, \\ yields \.
// A backslash before any other byte is kept as-is.
//
// Errors: a bare @ not opening a reference, an empty reference @{}, a
// non-identifier byte inside the braces, an unterminated reference, or a
// reference to a key the table does not have.
func Substitute(s string, keys map[string]string) (string, *types.Diagnostic) {
	if !strings.ContainsAny(s, "@\\") {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			if i+1 < len(s) && (s[i+1] == '@' || s[i+1] == '\\') {
				i++
				b.WriteByte(s[i])
			} else {
				b.WriteByte(c)
			}
		case '@':
			if i+1 >= len(s) || s[i+1] != '{' {
				return "", substituteError(types.DiagIllegalReferenceSymbol,
					`bare "@" does not open a key reference; escape it as "\@"`)
			}
			name, rest, diag := scanReference(s[i+2:])
			if diag != nil {
				return "", diag
			}
			value, ok := keys[name]
			if !ok {
				return "", substituteError(types.DiagUnknownKey,
					fmt.Sprintf("reference to unknown key %q", name))
			}
			b.WriteString(value)
			i = len(s) - len(rest) - 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// scanReference reads a key name up to the closing brace. body starts just
// past "@{". It returns the name and the remainder of the string after the
// closing brace.
func scanReference(body string) (name, rest string, diag *types.Diagnostic) {
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '}' {
			if i == 0 {
				return "", "", substituteError(types.DiagEmptyReference,
					"empty key reference")
			}
			return body[:i], body[i+1:], nil
		}
		if !isKeyByte(c) {
			return "", "", substituteError(types.DiagIllegalReferenceSymbol,
				fmt.Sprintf("illegal character %q in key reference", c))
		}
	}
	return "", "", substituteError(types.DiagIllegalReferenceSymbol,
		"unterminated key reference")
}

func isKeyByte(c byte) bool {
	return c == '_' || c == '-' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func substituteError(code, message string) *types.Diagnostic {
	return &types.Diagnostic{
		Severity: types.SeverityError,
		Code:     code,
		Span:     types.Synthetic,
		Message:  message,
	}
}
