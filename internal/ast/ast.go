// Package ast defines the parsed form of an ecgen invocation.
package ast

import (
	"github.com/yaecgen/ecgen/internal/types"
)

// TypeSpec holds the two spellings of the enum's base name: the lowercase
// form names the conversion table, the uppercase form prefixes every member.
// The generator does not verify the two denote the same logical type; that
// is a caller contract.
type TypeSpec struct {
	Lower     string
	Upper     string
	LowerSpan types.Span
	UpperSpan types.Span
}

// Arg is one variadic token of the invocation: either a symbolic name
// (identifier) or a message (string literal, stored unquoted).
type Arg struct {
	Text     string
	IsString bool
	Span     types.Span
}

// Invocation is one parsed generator invocation: a TypeSpec followed by a
// flat list of variadic tokens. Pairing and arity are not checked here;
// that is the rule table's job.
type Invocation struct {
	Spec TypeSpec
	Args []Arg
}

// ArgTexts returns the flat token texts in declaration order.
func (inv *Invocation) ArgTexts() []string {
	texts := make([]string, len(inv.Args))
	for i, a := range inv.Args {
		texts[i] = a.Text
	}
	return texts
}
