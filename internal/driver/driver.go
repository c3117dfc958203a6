// Package driver wires the lexer, parser, and code generator together per
// source file and implements the batch-compile exit-code contract, the
// way cmd/dwscript/cmd/run.go wires its own pipeline stages before handing
// a result back to the Cobra command layer.
package driver

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/cwbudde/js2cpp/internal/cliutil"
	"github.com/cwbudde/js2cpp/internal/codegen"
	"github.com/cwbudde/js2cpp/internal/errors"
	"github.com/cwbudde/js2cpp/internal/intern"
	"github.com/cwbudde/js2cpp/internal/lexer"
	"github.com/cwbudde/js2cpp/internal/parser"
	"github.com/cwbudde/js2cpp/internal/scope"
	"github.com/cwbudde/js2cpp/internal/source"
	"github.com/cwbudde/js2cpp/internal/token"
)

// ErrResourceExhausted names the bounded-resource overflow failure. Compile
// does not return it: an include-stack overflow from source.Push is
// reported as an errors.ResourceExhausted diagnostic instead, which maps to
// cliutil.ExitCompileErrors like any other compile error.
var ErrResourceExhausted = fmt.Errorf("driver: resource exhausted")

// Compile lowers a single in-memory source file to target text, pushing
// the predefined preamble ahead of it first, and returns any diagnostics
// accumulated along the way.
func Compile(name, src string) (string, []*errors.CompilerError) {
	names := intern.New()
	scopes := scope.NewTable()

	reader := source.New(name, src)
	if err := reader.Push(preambleName, preamble); err != nil {
		pos := token.Position{File: name, Line: 1, Column: 1}
		return "", []*errors.CompilerError{
			errors.New(errors.ResourceExhausted, pos, err.Error(), src),
		}
	}

	lex := lexer.New(reader)
	p := parser.New(lex, names, scopes)
	prog := p.ParseProgram()

	// p.Errors() already includes the lexer's diagnostics.
	var errs []*errors.CompilerError
	errs = append(errs, p.Errors()...)
	if len(errs) > 0 {
		return "", errs
	}

	gen := codegen.New(names, scopes)
	return gen.Generate(prog), nil
}

// CompileFile reads path from disk and compiles its contents; the returned
// error is non-nil only for an I/O failure (cliutil.ExitCannotOpenSource),
// never for a compile diagnostic.
func CompileFile(path string) (string, []*errors.CompilerError, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	out, errs := Compile(path, string(content))
	return out, errs, nil
}

// Run compiles every path in paths, writing each `x.js` to a sibling
// `x.cpp`, and returns the process exit code. It is the only pipeline
// entry point `cmd/js2cpp/cmd/build.go` calls; that command passes the
// returned code to os.Exit.
func Run(paths []string) int {
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "js2cpp: no source files given")
		return cliutil.ExitNoSourceFiles
	}

	hadCompileErrors := false
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "js2cpp: cannot open %s: %v\n", path, err)
			return cliutil.ExitCannotOpenSource
		}

		out, errs := Compile(path, string(content))
		if len(errs) > 0 {
			fmt.Fprint(os.Stderr, errors.FormatErrors(errs))
			hadCompileErrors = true
			continue
		}

		outPath := cliutil.OutputPath(path)
		if err := writeFileAtomic(outPath, out); err != nil {
			fmt.Fprintf(os.Stderr, "js2cpp: cannot write %s: %v\n", outPath, err)
			return cliutil.ExitCannotOpenOutput
		}
	}

	if hadCompileErrors {
		return cliutil.ExitCompileErrors
	}
	return cliutil.ExitSuccess
}

// writeFileAtomic writes content to a uniquely-named sibling of path and
// renames it into place, so a crash or a concurrent reader never observes
// a half-written .cpp file.
func writeFileAtomic(path, content string) error {
	tmp := path + ".tmp-" + uuid.New().String()
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
