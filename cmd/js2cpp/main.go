// Command js2cpp translates JavaScript source files to C++.
package main

import (
	"os"

	"github.com/cwbudde/js2cpp/cmd/js2cpp/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
