// Package rules implements the arity rule table at the heart of ecgen.
//
// The C preprocessor rendition of this generator (see gen.MacroHeader)
// dispatches on argument count with a positional marker trick, because the
// preprocessor has no way to ask a variadic list for its length. Here the
// token list is an ordinary slice, so selection is a single index into a
// fixed family of rules, one rule per supported token count: count 0 and
// every odd count are error rules, every even count 2k splices the tokens
// into k validated (name, message) pairs. The invariants are the same either
// way: no empty declaration, even pairing, bounded maximum arity.
package rules

import (
	"fmt"
	"log/slog"

	"github.com/yaecgen/ecgen/internal/types"
)

// DefaultMaxPairs is the default pair ceiling, matching the four-pair
// family of the emitted C header.
const DefaultMaxPairs = 4

// MaxSupportedPairs is the hard cap on the configurable ceiling.
const MaxSupportedPairs = 1000

// Pair is one validated (symbolic name, message) tuple.
type Pair struct {
	Name    string
	Message string
}

// Rule is one expansion rule of the table. Error rules return a diagnostic;
// splice rules return the validated pairs.
type Rule func(args []string) ([]Pair, *types.Diagnostic)

// Table is a fixed family of expansion rules indexed by token count.
type Table struct {
	rules    []Rule
	maxPairs int
	types.Logger
}

// New builds a rule table supporting up to maxPairs pairs.
// Pass nil for logger to disable logging.
func New(maxPairs int, logger *slog.Logger) (*Table, error) {
	if maxPairs < 1 || maxPairs > MaxSupportedPairs {
		return nil, fmt.Errorf("pair ceiling %d out of range [1, %d]", maxPairs, MaxSupportedPairs)
	}

	t := &Table{
		rules:    make([]Rule, 2*maxPairs+1),
		maxPairs: maxPairs,
		Logger:   types.Logger{L: logger},
	}
	t.rules[0] = errorRule(types.DiagEmptyDeclaration, types.MsgNoMembers)
	for n := 1; n <= 2*maxPairs; n++ {
		if n%2 == 1 {
			t.rules[n] = errorRule(types.DiagUnparity, types.MsgUnparity)
		} else {
			t.rules[n] = spliceRule(n / 2)
		}
	}
	t.Log(slog.LevelDebug, "rule table built", slog.Int("max_pairs", maxPairs))
	return t, nil
}

// MaxPairs returns the table's pair ceiling.
func (t *Table) MaxPairs() int {
	return t.maxPairs
}

// Expand selects the rule for the token count and applies it. Counts past
// the ceiling get a dedicated unsupported-arity diagnostic rather than an
// index panic or a generic mismatch.
func (t *Table) Expand(args []string) ([]Pair, *types.Diagnostic) {
	if t.TraceEnabled() {
		t.Trace("rule selected", slog.Int("count", len(args)))
	}
	if len(args) >= len(t.rules) {
		return nil, &types.Diagnostic{
			Severity: types.SeverityError,
			Code:     types.DiagUnsupportedArity,
			Span:     types.Synthetic,
			Message: fmt.Sprintf("%d tokens exceed the supported maximum of %d pairs",
				len(args), t.maxPairs),
		}
	}
	return t.rules[len(args)](args)
}

// errorRule builds a rule that unconditionally fails with a fixed message.
func errorRule(code, message string) Rule {
	return func([]string) ([]Pair, *types.Diagnostic) {
		return nil, &types.Diagnostic{
			Severity: types.SeverityError,
			Code:     code,
			Span:     types.Synthetic,
			Message:  message,
		}
	}
}

// spliceRule builds the rule for exactly pairCount pairs. It structures the
// flat token list into pairs and rejects duplicate symbolic names, since a
// duplicate would silently collapse two table slots into one.
func spliceRule(pairCount int) Rule {
	return func(args []string) ([]Pair, *types.Diagnostic) {
		pairs := make([]Pair, pairCount)
		seen := make(map[string]struct{}, pairCount)
		for i := 0; i < pairCount; i++ {
			name := args[2*i]
			if _, dup := seen[name]; dup {
				return nil, &types.Diagnostic{
					Severity: types.SeverityError,
					Code:     types.DiagDuplicateMember,
					Span:     types.Synthetic,
					Message:  fmt.Sprintf("symbolic name %q declared more than once", name),
				}
			}
			seen[name] = struct{}{}
			pairs[i] = Pair{Name: name, Message: args[2*i+1]}
		}
		return pairs, nil
	}
}
