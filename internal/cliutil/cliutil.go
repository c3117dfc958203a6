// Package cliutil holds the small pieces of CLI plumbing that both
// internal/driver and cmd/js2cpp need: the batch-compile exit-code table
// and the `x.js` -> `x.cpp` output-path derivation, the same split the
// teacher's cmd/dwscript/cmd keeps separate from its run.go pipeline.
package cliutil

import (
	"path/filepath"
	"strings"
)

// Exit codes for the batch compiler.
const (
	ExitSuccess          = 0
	ExitArgParseError    = 1
	ExitNoSourceFiles    = 2
	ExitCannotOpenSource = 3
	ExitCannotOpenOutput = 4
	ExitCompileErrors    = 21
)

// OutputPath derives `x.cpp` from `x.js`, in the same directory. A source
// without a `.js` suffix simply gets `.cpp` appended.
func OutputPath(path string) string {
	if filepath.Ext(path) != ".js" {
		return path + ".cpp"
	}
	return strings.TrimSuffix(path, ".js") + ".cpp"
}
