package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/js2cpp/internal/cliutil"
)

func TestCompileSimpleProgram(t *testing.T) {
	out, errs := Compile("t.js", "var x = 1 + 2;")
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out == "" {
		t.Fatal("expected non-empty output")
	}
}

func TestCompileReportsLexicalError(t *testing.T) {
	_, errs := Compile("t.js", `var s = "unterminated;`)
	if len(errs) == 0 {
		t.Fatal("expected an unterminated-string diagnostic")
	}
}

func TestCompileReportsSyntaxError(t *testing.T) {
	_, errs := Compile("t.js", "var = ;")
	if len(errs) == 0 {
		t.Fatal("expected a syntax diagnostic")
	}
}

func TestRunNoSourceFilesReturnsExit2(t *testing.T) {
	if got := Run(nil); got != cliutil.ExitNoSourceFiles {
		t.Errorf("Run(nil) = %d, want %d", got, cliutil.ExitNoSourceFiles)
	}
}

func TestRunCannotOpenSourceReturnsExit3(t *testing.T) {
	if got := Run([]string{"/nonexistent/path/does-not-exist.js"}); got != cliutil.ExitCannotOpenSource {
		t.Errorf("Run = %d, want %d", got, cliutil.ExitCannotOpenSource)
	}
}

func TestRunWritesSiblingCppAndReturnsExit0(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "hello.js")
	if err := os.WriteFile(src, []byte("var x = 1;"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if got := Run([]string{src}); got != cliutil.ExitSuccess {
		t.Fatalf("Run = %d, want %d", got, cliutil.ExitSuccess)
	}

	out := filepath.Join(dir, "hello.cpp")
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected %s to exist: %v", out, err)
	}
}

func TestRunCompileErrorsReturnExit21(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.js")
	if err := os.WriteFile(src, []byte("var = ;"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if got := Run([]string{src}); got != cliutil.ExitCompileErrors {
		t.Fatalf("Run = %d, want %d", got, cliutil.ExitCompileErrors)
	}
}
