// Package cmd implements the js2cpp command-line tool: a thin Cobra layer
// over internal/driver, the way cmd/dwscript/cmd wraps its own
// interpreter pipeline.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "js2cpp <source-file> [<source-file> ...]",
	Short: "Translate JavaScript sources to C++",
	Long: `js2cpp translates JavaScript source files to C++ source files that link
against the js2cpp runtime.

Source paths are positional arguments; every "x.js" given produces a
sibling "x.cpp" in the same directory. Invoking js2cpp directly with
source files is equivalent to "js2cpp build <files...>".`,
	Version:           Version,
	Args:              cobra.ArbitraryArgs,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runBuild(args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Main runs js2cpp and returns the code to pass to os.Exit. build.go's
// RunE calls os.Exit directly for the driver's own exit codes; Main only
// supplies the fallback (1) for argument-parse failures Cobra itself
// catches, so it can also serve as the entry point testscript.RunMain
// drives in cmd/js2cpp's script tests.
func Main() int {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "js2cpp: "+msg+"\n", args...)
	os.Exit(1)
}
