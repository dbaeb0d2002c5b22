// Package manifest loads declarative generation manifests.
//
// A manifest is a YAML document describing one output unit: an optional
// preamble, named text fragments (keys), and any number of enum
// declarations. Example:
//
//	prefix: YA_
//	output: hello.h
//	max_pairs: 4
//	preamble: |
//	  /* generated - do not edit */
//	keys:
//	  - key: greeting
//	    value: HI
//	enums:
//	  - lowercase_name: hello
//	    uppercase_name: HELLO
//	    members:
//	      - name: HI
//	        message: "@{greeting}"
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/yaecgen/ecgen/internal/types"
)

// Manifest is the root document.
type Manifest struct {
	Prefix   string `yaml:"prefix"`
	Output   string `yaml:"output"`
	MaxPairs int    `yaml:"max_pairs"`
	Preamble string `yaml:"preamble"`
	Keys     []Key  `yaml:"keys"`
	Enums    []Enum `yaml:"enums"`
}

// Key is a named text fragment, referenced elsewhere as @{key}.
type Key struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Enum declares one enum/table pair.
type Enum struct {
	LowercaseName string   `yaml:"lowercase_name"`
	UppercaseName string   `yaml:"uppercase_name"`
	Tags          []string `yaml:"tags"`
	Members       []Member `yaml:"members"`
}

// Member is one (name, message) declaration. Message is a pointer so a
// member that forgot its message can be told apart from one with an empty
// message; the latter is deliberately not rejected.
type Member struct {
	Name    string  `yaml:"name"`
	Message *string `yaml:"message"`
}

// TagNoPrefix suppresses the manifest-level member prefix for one enum.
const TagNoPrefix = "NO_PREFIX"

// Parse decodes a manifest strictly: unknown fields are errors.
func Parse(src []byte, logger *slog.Logger) (*Manifest, []types.Diagnostic) {
	log := types.Logger{L: logger}

	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, []types.Diagnostic{{
				Severity: types.SeverityError,
				Code:     types.DiagParseError,
				Span:     types.Synthetic,
				Message:  "manifest is empty",
			}}
		}
		return nil, []types.Diagnostic{{
			Severity: types.SeverityError,
			Code:     types.DiagParseError,
			Span:     types.Synthetic,
			Message:  fmt.Sprintf("manifest: %v", err),
		}}
	}

	log.Log(slog.LevelDebug, "manifest parsed",
		slog.Int("keys", len(m.Keys)),
		slog.Int("enums", len(m.Enums)))
	return &m, nil
}

// KeyTable builds the reference table from the manifest's keys, rejecting
// duplicates.
func (m *Manifest) KeyTable() (map[string]string, []types.Diagnostic) {
	table := make(map[string]string, len(m.Keys))
	var diags []types.Diagnostic
	for _, k := range m.Keys {
		if _, dup := table[k.Key]; dup {
			diags = append(diags, types.Diagnostic{
				Severity: types.SeverityError,
				Code:     types.DiagDuplicateKey,
				Span:     types.Synthetic,
				Message:  fmt.Sprintf("key %q declared more than once", k.Key),
			})
			continue
		}
		table[k.Key] = k.Value
	}
	return table, diags
}

// NoPrefix reports whether the enum opts out of the member prefix.
func (e *Enum) NoPrefix() bool {
	for _, tag := range e.Tags {
		if tag == TagNoPrefix {
			return true
		}
	}
	return false
}

// CheckTags emits a warning for each tag this tool does not know.
func (e *Enum) CheckTags() []types.Diagnostic {
	var diags []types.Diagnostic
	for _, tag := range e.Tags {
		if tag != TagNoPrefix {
			diags = append(diags, types.Diagnostic{
				Severity: types.SeverityWarning,
				Code:     types.DiagUnknownTag,
				Span:     types.Synthetic,
				Message:  fmt.Sprintf("enum %q: unknown tag %q", e.LowercaseName, tag),
			})
		}
	}
	return diags
}

// Flatten turns the members into the flat token list the rule table
// validates, resolving @{key} references in messages. A member without a
// message contributes a single token, so the unparity rule catches it; the
// missing-message warning pinpoints which member it was.
func (e *Enum) Flatten(keys map[string]string) ([]string, []types.Diagnostic) {
	var args []string
	var diags []types.Diagnostic
	for _, member := range e.Members {
		args = append(args, member.Name)
		if member.Message == nil {
			diags = append(diags, types.Diagnostic{
				Severity: types.SeverityWarning,
				Code:     types.DiagMissingMessage,
				Span:     types.Synthetic,
				Message: fmt.Sprintf("enum %q: member %q has no message",
					e.LowercaseName, member.Name),
			})
			continue
		}
		message, diag := Substitute(*member.Message, keys)
		if diag != nil {
			diag.Message = fmt.Sprintf("enum %q, member %q: %s",
				e.LowercaseName, member.Name, diag.Message)
			diags = append(diags, *diag)
			// Keep the raw message so the token count stays even; the
			// substitution diagnostic already fails generation.
			message = *member.Message
		}
		args = append(args, message)
	}
	return args, diags
}
