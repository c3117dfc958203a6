package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/js2cpp/internal/errors"
	"github.com/cwbudde/js2cpp/internal/intern"
	"github.com/cwbudde/js2cpp/internal/lexer"
	"github.com/cwbudde/js2cpp/internal/parser"
	"github.com/cwbudde/js2cpp/internal/scope"
	"github.com/cwbudde/js2cpp/internal/source"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a JavaScript file and print the reconstructed AST",
	Long: `parse is a debugging aid, not part of the batch-compile contract: it
parses a file and prints the tree's source reconstruction (ast.Node's
String() method) instead of producing C++ output. Parse diagnostics are
printed to stderr but do not affect the exit code.`,
	Args: cobra.ExactArgs(1),
	RunE: parseFile,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func parseFile(cmd *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	names := intern.New()
	scopes := scope.NewTable()
	l := lexer.New(source.New(path, string(content)))
	p := parser.New(l, names, scopes)
	prog := p.ParseProgram()

	fmt.Println(prog.String())

	if diags := p.Errors(); len(diags) > 0 {
		fmt.Fprint(os.Stderr, errors.FormatErrors(diags))
	}
	return nil
}
