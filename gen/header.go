package gen

import (
	"fmt"
	"strings"
)

// HeaderConfig configures MacroHeader.
type HeaderConfig struct {
	// Name is the macro namespace; the entry macro and every helper macro
	// start with it. Defaults to "ECGEN".
	Name string
	// MemberPrefix is spliced in front of UPPERCASE_NAME in every generated
	// member, and its lowercase form in front of the declaration names.
	// May be empty.
	MemberPrefix string
	// MaxPairs is the pair ceiling of the generated dispatch table.
	// Defaults to 4.
	MaxPairs int
}

// headerMaxPairs caps the generated dispatch table. Each extra pair adds
// four macro definitions, and C translation units get unwieldy long before
// the cap.
const headerMaxPairs = 64

// MacroHeader renders a self-contained C preprocessor implementation of the
// generator: a family of per-count expansion rules, a positional-marker
// arity counter, and the entry macro gluing the enum and table passes
// together. The result is what the tool itself computes at generation time,
// expressed for consumers who want the expansion to happen in their own
// C compiler instead.
func MacroHeader(cfg HeaderConfig) (string, error) {
	if cfg.Name == "" {
		cfg.Name = "ECGEN"
	}
	if cfg.MaxPairs == 0 {
		cfg.MaxPairs = 4
	}
	if cfg.MaxPairs < 1 || cfg.MaxPairs > headerMaxPairs {
		return "", fmt.Errorf("pair ceiling %d out of range [1, %d]", cfg.MaxPairs, headerMaxPairs)
	}

	n := cfg.Name
	maxCount := 2*cfg.MaxPairs + 1 // the highest odd count still gets an unparity rule

	var b strings.Builder

	fmt.Fprintf(&b, "#define %s_ERROR(message) static_assert(false, message)\n", n)
	fmt.Fprintf(&b, "#define %s_ERROR_MESSAGE_UNPARITY \"%s_: [Argument unparity] Error code doesn't have its message pair.\"\n", n, n)
	fmt.Fprintf(&b, "#define %s_ERROR_MESSAGE_NO_ARGS \"%s_: [No members] No member was specified for this enum type.\"\n", n, n)
	b.WriteByte('\n')

	for pass := 0; pass < 2; pass++ {
		for count := 0; count <= maxCount; count++ {
			writeRuleMacro(&b, cfg, pass, count)
		}
		writePickerMacro(&b, cfg, pass, maxCount)
	}
	b.WriteByte('\n')

	lp := pasteFragment(strings.ToLower(cfg.MemberPrefix))
	fmt.Fprintf(&b, "#define %s__GENERATOR__0(lowercase_name, UPPERCASE_NAME, __GEN__, ...) enum %slowercase_name ## _error_codes {__GEN__(lowercase_name, UPPERCASE_NAME, __VA_ARGS__)};\n", n, lp)
	fmt.Fprintf(&b, "#define %s__GENERATOR__1(lowercase_name, UPPERCASE_NAME, __GEN__, ...) const char *%slowercase_name ## _conversion_table[] = {__GEN__(lowercase_name, UPPERCASE_NAME, __VA_ARGS__)};\n", n, lp)
	b.WriteByte('\n')

	fmt.Fprintf(&b, "#define %s(lowercase_name, UPPERCASE_NAME, ...) %s__GENERATOR__0(lowercase_name, UPPERCASE_NAME, %s, __VA_ARGS__) %s__GENERATOR__1(lowercase_name, UPPERCASE_NAME, %s, __VA_ARGS__)\n",
		n, n, pickerCall(cfg, 0, maxCount), n, pickerCall(cfg, 1, maxCount))

	return b.String(), nil
}

// writeRuleMacro emits one per-count expansion rule. Count zero and odd
// counts are error rules; even counts splice the pairs for the pass.
func writeRuleMacro(b *strings.Builder, cfg HeaderConfig, pass, count int) {
	n := cfg.Name
	fmt.Fprintf(b, "#define %s__ARGS__%d_%d(lowercase_name, UPPERCASE_NAME", n, pass, count)
	for i := 0; i < count; i++ {
		fmt.Fprintf(b, ", __%d__", i)
	}
	b.WriteString(") ")

	switch {
	case count == 0:
		fmt.Fprintf(b, "%s_ERROR(%s_ERROR_MESSAGE_NO_ARGS)", n, n)
	case count%2 == 1:
		fmt.Fprintf(b, "%s_ERROR(%s_ERROR_MESSAGE_UNPARITY)", n, n)
	default:
		for i := 0; i < count/2; i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			member := fmt.Sprintf("%sUPPERCASE_NAME ## _ ## __%d__", pasteFragment(cfg.MemberPrefix), 2*i)
			if pass == 0 {
				b.WriteString(member)
			} else {
				fmt.Fprintf(b, "[%s] = __%d__", member, 2*i+1)
			}
		}
	}
	b.WriteByte('\n')
}

// writePickerMacro emits the arity counter: the caller's arguments are
// prepended to a descending list of rule names, so the rule landing in the
// fixed slot after the last possible argument is exactly the one matching
// the true count.
func writePickerMacro(b *strings.Builder, cfg HeaderConfig, pass, maxCount int) {
	fmt.Fprintf(b, "#define %s__ARGS__%d(", cfg.Name, pass)
	for i := 0; i <= maxCount; i++ {
		fmt.Fprintf(b, "__%d__, ", i)
	}
	b.WriteString("__NAME__, ...) __NAME__\n")
}

// pickerCall builds the picker invocation with the rule names in descending
// count order, matching the counter's positional trick.
func pickerCall(cfg HeaderConfig, pass, maxCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s__ARGS__%d(\"empty\", ##__VA_ARGS__", cfg.Name, pass)
	for count := maxCount; count >= 0; count-- {
		fmt.Fprintf(&b, ", %s__ARGS__%d_%d", cfg.Name, pass, count)
	}
	b.WriteByte(')')
	return b.String()
}

// pasteFragment renders a prefix as a token-paste fragment, e.g. "YA_"
// becomes "YA_ ## ". Empty prefixes splice nothing.
func pasteFragment(prefix string) string {
	if prefix == "" {
		return ""
	}
	return prefix + " ## "
}
