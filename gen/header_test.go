package gen

import (
	"strings"
	"testing"

	"github.com/yaecgen/ecgen/internal/testutil"
)

func TestMacroHeaderDefaults(t *testing.T) {
	header, err := MacroHeader(HeaderConfig{})
	testutil.NoError(t, err, "MacroHeader")

	testutil.Contains(t, header,
		"#define ECGEN_ERROR(message) static_assert(false, message)", "error macro")
	testutil.Contains(t, header, "ECGEN_ERROR_MESSAGE_UNPARITY", "unparity message macro")
	testutil.Contains(t, header, "ECGEN_ERROR_MESSAGE_NO_ARGS", "no-args message macro")

	// Default ceiling of 4 pairs: rules for counts 0..9 in both passes.
	for _, rule := range []string{"ECGEN__ARGS__0_0(", "ECGEN__ARGS__0_9(", "ECGEN__ARGS__1_0(", "ECGEN__ARGS__1_9("} {
		testutil.Contains(t, header, rule, "rule macro %s", rule)
	}
	testutil.False(t, strings.Contains(header, "ECGEN__ARGS__0_10("), "no rule past the ceiling")

	testutil.Contains(t, header,
		"#define ECGEN(lowercase_name, UPPERCASE_NAME, ...)", "entry macro")
}

func TestMacroHeaderRuleBodies(t *testing.T) {
	header, err := MacroHeader(HeaderConfig{MaxPairs: 1})
	testutil.NoError(t, err, "MacroHeader")

	lines := strings.Split(header, "\n")
	find := func(prefix string) string {
		t.Helper()
		for _, l := range lines {
			if strings.HasPrefix(l, prefix) {
				return l
			}
		}
		testutil.Fail(t, "no line with prefix %q", prefix)
		return ""
	}

	// Count 0 errors, count 1 errors, count 2 splices - for both passes.
	testutil.Contains(t, find("#define ECGEN__ARGS__0_0("),
		"ECGEN_ERROR(ECGEN_ERROR_MESSAGE_NO_ARGS)", "empty rule")
	testutil.Contains(t, find("#define ECGEN__ARGS__0_1("),
		"ECGEN_ERROR(ECGEN_ERROR_MESSAGE_UNPARITY)", "unparity rule")
	testutil.Contains(t, find("#define ECGEN__ARGS__0_2("),
		"UPPERCASE_NAME ## _ ## __0__", "enum splice rule")
	testutil.Contains(t, find("#define ECGEN__ARGS__1_2("),
		"[UPPERCASE_NAME ## _ ## __0__] = __1__", "table splice rule")
}

func TestMacroHeaderArityCounter(t *testing.T) {
	header, err := MacroHeader(HeaderConfig{MaxPairs: 1})
	testutil.NoError(t, err, "MacroHeader")

	// Ceiling 1 pair: counts 0..3, so the picker takes slots __0__..__3__
	// before the marker slot.
	testutil.Contains(t, header,
		"#define ECGEN__ARGS__0(__0__, __1__, __2__, __3__, __NAME__, ...) __NAME__",
		"picker macro")

	// Rule names appended in descending count order.
	testutil.Contains(t, header,
		`ECGEN__ARGS__0("empty", ##__VA_ARGS__, ECGEN__ARGS__0_3, ECGEN__ARGS__0_2, ECGEN__ARGS__0_1, ECGEN__ARGS__0_0)`,
		"descending marker list")
}

func TestMacroHeaderMemberPrefix(t *testing.T) {
	header, err := MacroHeader(HeaderConfig{Name: "YA_ECGEN", MemberPrefix: "YA_", MaxPairs: 4})
	testutil.NoError(t, err, "MacroHeader")

	testutil.Contains(t, header, "YA_ ## UPPERCASE_NAME ## _ ## __0__", "prefixed member splice")
	testutil.Contains(t, header, "enum ya_ ## lowercase_name ## _error_codes", "prefixed enum name")
	testutil.Contains(t, header, "const char *ya_ ## lowercase_name ## _conversion_table[]", "prefixed table name")
}

func TestMacroHeaderCeilingValidation(t *testing.T) {
	if _, err := MacroHeader(HeaderConfig{MaxPairs: -1}); err == nil {
		testutil.Fail(t, "negative ceiling should be rejected")
	}
	if _, err := MacroHeader(HeaderConfig{MaxPairs: headerMaxPairs + 1}); err == nil {
		testutil.Fail(t, "ceiling past the cap should be rejected")
	}
}

func TestMacroHeaderIdempotent(t *testing.T) {
	cfg := HeaderConfig{Name: "YA_ECGEN", MemberPrefix: "YA_", MaxPairs: 4}
	first, err := MacroHeader(cfg)
	testutil.NoError(t, err, "first render")
	second, err := MacroHeader(cfg)
	testutil.NoError(t, err, "second render")
	testutil.Equal(t, first, second, "byte-identical re-render")
}
