// Package gen holds the public output model of ecgen: the enum declaration,
// the message conversion table, and their rendered C forms.
package gen

import (
	"strings"
)

// TypeSpec holds the two spellings of the enum's base name. Lower names the
// generated declarations, Upper prefixes every member. The generator does
// not verify the two denote the same logical type.
type TypeSpec struct {
	Lower string
	Upper string
}

// CodePair is one (symbolic name, message) tuple describing an enum member
// and its associated text. The message is stored unquoted; rendering adds
// C quoting.
type CodePair struct {
	Name    string
	Message string
}

// EnumDecl is the ordered member list of one generated enumeration.
// Ordinals are implicit: member i has value i.
type EnumDecl struct {
	Name    string // <lower>_error_codes
	Members []string
}

// Render emits the enum declaration:
//
//	enum hello_error_codes {HELLO_HI, HELLO_BYE};
func (d EnumDecl) Render() string {
	var b strings.Builder
	b.WriteString("enum ")
	b.WriteString(d.Name)
	b.WriteString(" {")
	b.WriteString(strings.Join(d.Members, ", "))
	b.WriteString("};")
	return b.String()
}

// TableEntry is one designated initializer of the conversion table.
type TableEntry struct {
	Member  string
	Message string
}

// MessageTable is the conversion table declaration. Entries are designated
// by member, so the array's length is the highest ordinal plus one and any
// unreferenced slot holds a null pointer.
type MessageTable struct {
	Name    string // <lower>_conversion_table
	Entries []TableEntry
}

// Render emits the table declaration:
//
//	const char *hello_conversion_table[] = {[HELLO_HI] = "HI"};
func (t MessageTable) Render() string {
	var b strings.Builder
	b.WriteString("const char *")
	b.WriteString(t.Name)
	b.WriteString("[] = {")
	for i, e := range t.Entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		b.WriteString(e.Member)
		b.WriteString("] = ")
		b.WriteString(QuoteC(e.Message))
	}
	b.WriteString("};")
	return b.String()
}

// Expansion is the full output of one invocation: an enum and its table,
// both driven from the identical pair list so that the table's slot i always
// holds the message of enum member i.
type Expansion struct {
	Spec  TypeSpec
	Pairs []CodePair
	Enum  EnumDecl
	Table MessageTable
}

// NewExpansion runs both generator passes over the same pair list. The
// prefix, when non-empty, is spliced in front of every member identifier.
func NewExpansion(spec TypeSpec, prefix string, pairs []CodePair) *Expansion {
	e := &Expansion{
		Spec:  spec,
		Pairs: pairs,
		Enum: EnumDecl{
			Name:    spec.Lower + "_error_codes",
			Members: make([]string, len(pairs)),
		},
		Table: MessageTable{
			Name:    spec.Lower + "_conversion_table",
			Entries: make([]TableEntry, len(pairs)),
		},
	}
	for i, p := range pairs {
		member := prefix + spec.Upper + "_" + p.Name
		e.Enum.Members[i] = member
		e.Table.Entries[i] = TableEntry{Member: member, Message: p.Message}
	}
	return e
}

// Render emits the enum followed by the table, each on its own line. The
// order is fixed: the table designates members the enum must declare first.
func (e *Expansion) Render() string {
	return e.Enum.Render() + "\n" + e.Table.Render() + "\n"
}

// Unit is the output of one manifest: a preamble and any number of
// expansions, plus every diagnostic produced along the way.
type Unit struct {
	SourceName  string // manifest name, for messages
	Output      string // output path suggested by the manifest, may be empty
	Preamble    string
	Expansions  []*Expansion
	Diagnostics []Diagnostic
}

// Render emits the whole unit: preamble first, then each expansion separated
// by a blank line.
func (u *Unit) Render() string {
	var b strings.Builder
	if u.Preamble != "" {
		b.WriteString(u.Preamble)
		if !strings.HasSuffix(u.Preamble, "\n") {
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	for i, e := range u.Expansions {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Render())
	}
	return b.String()
}

// QuoteC renders s as a C string literal. Control bytes use octal escapes,
// which unlike hex escapes cannot swallow a following hex digit.
func QuoteC(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if c < 0x20 || c == 0x7f {
				b.WriteString(octalEscape(c))
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func octalEscape(c byte) string {
	return string([]byte{'\\', '0' + (c >> 6), '0' + ((c >> 3) & 7), '0' + (c & 7)})
}
