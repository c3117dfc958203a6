//go:build js && wasm

// Package wasm exposes the translator to JavaScript hosts running the
// compiled WebAssembly module, registering a single global function that
// wraps pkg/js2cpp.Compile.
package wasm

import (
	"syscall/js"

	"github.com/cwbudde/js2cpp/pkg/js2cpp"
)

// RegisterAPI installs window.js2cpp.compile(filename, source) in the JS
// global scope. The call returns an object with "output" (the generated
// target text, empty on failure) and "diagnostics" (an array of
// {file, line, column, code, message}).
func RegisterAPI() {
	api := js.Global().Get("Object").New()
	api.Set("compile", js.FuncOf(compile))
	js.Global().Set("js2cpp", api)
}

func compile(this js.Value, args []js.Value) any {
	if len(args) < 2 {
		return jsError("js2cpp.compile requires (filename, source)")
	}
	filename := args[0].String()
	source := args[1].String()

	out, diags, err := js2cpp.Compile(filename, source)
	if err != nil {
		return jsError(err.Error())
	}

	result := js.Global().Get("Object").New()
	result.Set("output", out)
	result.Set("diagnostics", diagnosticsToJS(diags))
	return result
}

func diagnosticsToJS(diags []js2cpp.Diagnostic) js.Value {
	arr := js.Global().Get("Array").New(len(diags))
	for i, d := range diags {
		entry := js.Global().Get("Object").New()
		entry.Set("file", d.File)
		entry.Set("line", d.Line)
		entry.Set("column", d.Column)
		entry.Set("code", d.Code)
		entry.Set("message", d.Message)
		arr.SetIndex(i, entry)
	}
	return arr
}

func jsError(msg string) js.Value {
	result := js.Global().Get("Object").New()
	result.Set("output", "")
	result.Set("error", msg)
	return result
}
