package types

import (
	"testing"
)

func TestSeverityString(t *testing.T) {
	cases := map[Severity]string{
		SeverityFatal:   "fatal",
		SeverityError:   "error",
		SeverityWarning: "warning",
		SeverityInfo:    "info",
	}
	for sev, want := range cases {
		if got := sev.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", int(sev), got, want)
		}
	}
}

func TestSeverityFails(t *testing.T) {
	if !SeverityFatal.Fails() || !SeverityError.Fails() {
		t.Error("fatal and error severities must fail generation")
	}
	if SeverityWarning.Fails() || SeverityInfo.Fails() {
		t.Error("warning and info severities must not fail generation")
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityError,
		Code:     DiagUnparity,
		Message:  MsgUnparity,
	}
	want := "[error] unparity: argument count does not pair evenly into name/message tuples"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAnyFails(t *testing.T) {
	warnings := []Diagnostic{{Severity: SeverityWarning}}
	if AnyFails(warnings) {
		t.Error("warnings alone must not fail")
	}
	mixed := append(warnings, Diagnostic{Severity: SeverityError})
	if !AnyFails(mixed) {
		t.Error("an error diagnostic must fail")
	}
}

func TestAllDiagnosticCodesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, info := range AllDiagnosticCodes() {
		if info.Code == "" || info.Phase == "" {
			t.Errorf("incomplete code info: %+v", info)
		}
		if seen[info.Code] {
			t.Errorf("duplicate diagnostic code %q", info.Code)
		}
		seen[info.Code] = true
	}
}
