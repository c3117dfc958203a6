//go:build js && wasm

// Package main is the WebAssembly entry point for js2cpp. It exports the
// translator to JavaScript and keeps the program alive for the duration of
// the page.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o js2cpp.wasm ./cmd/js2cpp-wasm
//
// Usage from JavaScript:
//
//	<script src="wasm_exec.js"></script>
//	<script>
//	  const go = new Go();
//	  WebAssembly.instantiateStreaming(fetch("js2cpp.wasm"), go.importObject)
//	    .then((result) => {
//	      go.run(result.instance);
//	      const { output, diagnostics } = window.js2cpp.compile("a.js", src);
//	    });
//	</script>
package main

import (
	"syscall/js"

	"github.com/cwbudde/js2cpp/internal/wasm"
)

func main() {
	done := make(chan struct{})

	wasm.RegisterAPI()
	js.Global().Get("console").Call("log", "js2cpp WASM module initialized")

	<-done
}
