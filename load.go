package ecgen

import (
	"fmt"
	"log/slog"

	"github.com/yaecgen/ecgen/gen"
	"github.com/yaecgen/ecgen/internal/manifest"
	"github.com/yaecgen/ecgen/internal/rules"
	"github.com/yaecgen/ecgen/internal/types"
)

// Generate loads a manifest and expands every enum it declares.
//
// Example:
//
//	unit, err := ecgen.Generate(ecgen.File("codes.yaml"))
//	if err != nil {
//	    // a *gen.GenerationError carries the diagnostics
//	}
//	os.WriteFile(unit.Output, []byte(unit.Render()), 0o644)
//
// Any error-severity diagnostic fails the whole run: Generate never returns
// a unit holding a partial expansion.
func Generate(src Source, opts ...Option) (*gen.Unit, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	cfg := newConfig(opts)
	log := types.Logger{L: cfg.logger}

	content, name, err := src.Read()
	if err != nil {
		return nil, err
	}
	log.Log(slog.LevelDebug, "manifest loaded",
		slog.String("name", name), slog.Int("bytes", len(content)))

	m, parseDiags := manifest.Parse(content, cfg.logger)
	diags := convertDiagnostics(parseDiags, nil, name)
	if m == nil {
		return nil, &gen.GenerationError{Diagnostics: diags}
	}

	keys, keyDiags := m.KeyTable()
	diags = append(diags, convertDiagnostics(keyDiags, nil, name)...)

	preamble, diag := manifest.Substitute(m.Preamble, keys)
	if diag != nil {
		diag.Message = "preamble: " + diag.Message
		diags = append(diags, convertDiagnostic(*diag, nil, name))
	}

	table, tableDiag := buildTable(cfg, m)
	if tableDiag != nil {
		diags = append(diags, convertDiagnostic(*tableDiag, nil, name))
		return nil, &gen.GenerationError{Diagnostics: diags}
	}

	unit := &gen.Unit{
		SourceName: name,
		Output:     m.Output,
		Preamble:   preamble,
	}
	for i := range m.Enums {
		e := &m.Enums[i]
		expansion, enumDiags := expandEnum(e, table, keys, m.Prefix, name)
		diags = append(diags, enumDiags...)
		if expansion != nil {
			unit.Expansions = append(unit.Expansions, expansion)
		}
	}

	if failing(diags) {
		return nil, &gen.GenerationError{Diagnostics: diags}
	}

	unit.Diagnostics = diags
	log.Log(slog.LevelDebug, "generation complete",
		slog.Int("expansions", len(unit.Expansions)),
		slog.Int("diagnostics", len(diags)))
	return unit, nil
}

// buildTable resolves the pair ceiling: the WithMaxPairs option wins over
// the manifest's max_pairs, which wins over the default.
func buildTable(cfg config, m *manifest.Manifest) (*rules.Table, *types.Diagnostic) {
	maxPairs := rules.DefaultMaxPairs
	if m.MaxPairs != 0 {
		maxPairs = m.MaxPairs
	}
	if cfg.maxPairs != 0 {
		maxPairs = cfg.maxPairs
	}

	table, err := rules.New(maxPairs, cfg.logger)
	if err != nil {
		return nil, &types.Diagnostic{
			Severity: types.SeverityError,
			Code:     types.DiagRepeatOverflow,
			Span:     types.Synthetic,
			Message:  err.Error(),
		}
	}
	return table, nil
}

// expandEnum runs one manifest enum through the pipeline. The returned
// diagnostics carry the enum's name as context, since manifest entries have
// no useful spans.
func expandEnum(e *manifest.Enum, table *rules.Table, keys map[string]string, prefix, source string) (*gen.Expansion, []gen.Diagnostic) {
	var diags []gen.Diagnostic

	if e.LowercaseName == "" || e.UppercaseName == "" {
		diags = append(diags, gen.Diagnostic{
			Severity: gen.SeverityError,
			Code:     types.DiagIdentifierEmpty,
			Message:  "enum needs both lowercase_name and uppercase_name",
			Source:   source,
		})
		return nil, diags
	}

	diags = append(diags, convertDiagnostics(e.CheckTags(), nil, source)...)

	args, flattenDiags := e.Flatten(keys)
	diags = append(diags, convertDiagnostics(flattenDiags, nil, source)...)

	pairs, diag := table.Expand(args)
	if diag != nil {
		public := convertDiagnostic(*diag, nil, source)
		public.Message = fmt.Sprintf("enum %q: %s", e.LowercaseName, public.Message)
		return nil, append(diags, public)
	}

	memberPrefix := prefix
	if e.NoPrefix() {
		memberPrefix = ""
	}
	spec := gen.TypeSpec{Lower: e.LowercaseName, Upper: e.UppercaseName}
	return gen.NewExpansion(spec, memberPrefix, toCodePairs(pairs)), diags
}
