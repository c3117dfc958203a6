package errors

import (
	"strings"
	"testing"

	"github.com/cwbudde/js2cpp/internal/token"
)

func TestErrorWireFormat(t *testing.T) {
	e := New(Expected, token.Position{File: "a.js", Line: 2, Column: 5}, `expected ";"`, "var x = 1\nvar y = 2")

	got := e.Error()
	want := `a.js(2,5) : error E_EXPECTED: expected ";"`
	if got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestFormatIncludesSourceLineAndCaret(t *testing.T) {
	e := New(UnterminatedString, token.Position{File: "a.js", Line: 1, Column: 9}, "unterminated string literal", "var s = 'oops")

	got := e.Format(false)
	if !strings.Contains(got, "var s = 'oops") {
		t.Fatalf("Format() missing source line:\n%s", got)
	}
	if !strings.Contains(got, "^") {
		t.Fatalf("Format() missing caret:\n%s", got)
	}
}

func TestFormatErrorsJoinsOnePerLine(t *testing.T) {
	errs := []*CompilerError{
		New(UnknownChar, token.Position{File: "a.js", Line: 1, Column: 1}, "illegal character: @", "@"),
		New(Expected, token.Position{File: "a.js", Line: 2, Column: 1}, `expected ";"`, "@\nx"),
	}
	got := FormatErrors(errs)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("FormatErrors produced %d lines, want 2:\n%s", len(lines), got)
	}
}
