package cmd

import (
	"os"
	"strings"

	"github.com/cwbudde/js2cpp/internal/driver"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <source-file> [<source-file> ...]",
	Short: "Compile JavaScript sources to C++",
	Long: `build translates each given "x.js" into a sibling "x.cpp", exactly as
invoking js2cpp with no subcommand does. Unrecognized switches (anything
starting with "-" or "/") are rejected.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(args)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

// runBuild validates args against the CLI contract and, for anything
// beyond a plain argument-parse failure, exits with whatever code
// driver.Run produces: it is the only path in this tree that calls
// os.Exit outside of Cobra's own top-level error handling.
func runBuild(args []string) error {
	for _, a := range args {
		if strings.HasPrefix(a, "-") || strings.HasPrefix(a, "/") {
			exitWithError("unrecognized switch: %s", a)
		}
	}
	os.Exit(driver.Run(args))
	return nil
}
