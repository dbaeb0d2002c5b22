package ecgen

import (
	"errors"
	"log/slog"

	"github.com/yaecgen/ecgen/gen"
	"github.com/yaecgen/ecgen/internal/parser"
	"github.com/yaecgen/ecgen/internal/rules"
	"github.com/yaecgen/ecgen/internal/types"
)

// ErrNoSource is returned when Generate is called with a nil source.
var ErrNoSource = errors.New("no manifest source provided")

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-token logging (lexing, rule selection, key lookups).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// Option configures Expand, ExpandSource, and Generate.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	maxPairs int
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMaxPairs overrides the pair ceiling of the rule table. The default is
// four pairs; manifests may also set it via max_pairs, and this option wins
// over both.
func WithMaxPairs(n int) Option {
	return func(c *config) { c.maxPairs = n }
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Expand runs one invocation through both generator passes: args is the
// flat variadic token list, alternating symbolic names and messages.
//
// Example:
//
//	e, err := ecgen.Expand("hello", "HELLO", "HI", "HI")
//	// e.Render() ==
//	//   enum hello_error_codes {HELLO_HI};
//	//   const char *hello_conversion_table[] = {[HELLO_HI] = "HI"};
func Expand(lower, upper string, args ...string) (*gen.Expansion, error) {
	return expand(config{}, gen.TypeSpec{Lower: lower, Upper: upper}, "", args, "")
}

// ExpandSource parses and expands the textual invocation form:
//
//	hello, HELLO, HI, "HI"
func ExpandSource(src []byte, opts ...Option) (*gen.Expansion, error) {
	cfg := newConfig(opts)

	inv, diags := parser.New(src, cfg.logger).Parse()
	public := convertDiagnostics(diags, src, "")
	if failing(public) {
		return nil, &gen.GenerationError{Diagnostics: public}
	}

	spec := gen.TypeSpec{Lower: inv.Spec.Lower, Upper: inv.Spec.Upper}
	return expand(cfg, spec, "", inv.ArgTexts(), "")
}

// expand is the shared pipeline behind Expand, ExpandSource, and the
// per-enum loop of Generate: rule table first, then both emitters over the
// identical pair list. A diagnostic from the rule table aborts the whole
// invocation; there is never an enum without its table.
func expand(cfg config, spec gen.TypeSpec, prefix string, args []string, source string) (*gen.Expansion, error) {
	maxPairs := cfg.maxPairs
	if maxPairs == 0 {
		maxPairs = rules.DefaultMaxPairs
	}
	table, err := rules.New(maxPairs, cfg.logger)
	if err != nil {
		return nil, err
	}

	pairs, diag := table.Expand(args)
	if diag != nil {
		return nil, &gen.GenerationError{Diagnostics: []gen.Diagnostic{
			convertDiagnostic(*diag, nil, source),
		}}
	}
	return gen.NewExpansion(spec, prefix, toCodePairs(pairs)), nil
}

func toCodePairs(pairs []rules.Pair) []gen.CodePair {
	out := make([]gen.CodePair, len(pairs))
	for i, p := range pairs {
		out[i] = gen.CodePair{Name: p.Name, Message: p.Message}
	}
	return out
}

// convertDiagnostic maps an internal diagnostic to the public form,
// resolving its span to a line/column position when source text is
// available.
func convertDiagnostic(d types.Diagnostic, src []byte, source string) gen.Diagnostic {
	pub := gen.Diagnostic{
		Severity: gen.Severity(d.Severity),
		Code:     d.Code,
		Message:  d.Message,
		Source:   source,
	}
	if src != nil && d.Span != types.Synthetic {
		pub.Line, pub.Column = lineCol(src, d.Span.Start)
	}
	return pub
}

func convertDiagnostics(diags []types.Diagnostic, src []byte, source string) []gen.Diagnostic {
	if len(diags) == 0 {
		return nil
	}
	out := make([]gen.Diagnostic, len(diags))
	for i, d := range diags {
		out[i] = convertDiagnostic(d, src, source)
	}
	return out
}

// lineCol converts a byte offset to 1-based line and column numbers.
func lineCol(src []byte, offset types.ByteOffset) (line, col int) {
	line, col = 1, 1
	for i := types.ByteOffset(0); i < offset && int(i) < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func failing(diags []gen.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity.Fails() {
			return true
		}
	}
	return false
}
