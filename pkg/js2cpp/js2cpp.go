// Package js2cpp is the stable public API for embedding the translator in
// another Go program: a thin, dependency-free wrapper around the internal
// pipeline that returns plain values instead of requiring callers to
// import internal packages.
package js2cpp

import (
	"fmt"

	"github.com/cwbudde/js2cpp/internal/driver"
	"github.com/cwbudde/js2cpp/internal/errors"
)

// Diagnostic is the public view of a single compile-time error: enough to
// report a location and message without exposing internal/errors types.
type Diagnostic struct {
	File    string
	Line    int
	Column  int
	Code    string
	Message string
}

// String renders the diagnostic the same one-line form the CLI writes to
// stderr: "<file>(<line>,<col>) : error <code>: <msg>".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s(%d,%d) : error %s: %s", d.File, d.Line, d.Column, d.Code, d.Message)
}

func toDiagnostics(errs []*errors.CompilerError) []Diagnostic {
	if len(errs) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(errs))
	for i, e := range errs {
		out[i] = Diagnostic{
			File:    e.Pos.File,
			Line:    e.Pos.Line,
			Column:  e.Pos.Column,
			Code:    e.Code.String(),
			Message: e.Message,
		}
	}
	return out
}

// Compile translates a single in-memory source (named by filename, used
// only to attribute diagnostics) into target C++ text. A non-nil
// diagnostics slice means out is empty: callers should check len(diags)
// rather than err, which is reserved for reasons outside the program's
// control (see CompileFile).
func Compile(filename, src string) (out string, diags []Diagnostic, err error) {
	cpp, errs := driver.Compile(filename, src)
	return cpp, toDiagnostics(errs), nil
}

// CompileFile reads path from disk and compiles its contents. err is
// non-nil only when path could not be read; a syntactically or lexically
// invalid program is reported through diags instead.
func CompileFile(path string) (out string, diags []Diagnostic, err error) {
	cpp, errs, ioErr := driver.CompileFile(path)
	if ioErr != nil {
		return "", nil, ioErr
	}
	return cpp, toDiagnostics(errs), nil
}
