package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cwbudde/js2cpp/internal/token"
)

// ignorePositions lets two ASTs built from differently-formatted sources
// compare equal as long as their structure agrees; token.Token.Pos and
// PrecededByNewline are an artifact of layout, not of what was parsed.
var ignorePositions = cmpopts.IgnoreFields(token.Token{}, "Pos", "PrecededByNewline")

// TestAutomaticSemicolonInsertionIsStructurallyTransparent checks that a
// program relying on ASI parses to the same tree (modulo source position)
// as the same program with every semicolon spelled out.
func TestAutomaticSemicolonInsertionIsStructurallyTransparent(t *testing.T) {
	withASI := parse(t, "var x = 1\nvar y = 2\nx + y\n")
	explicit := parse(t, "var x = 1;\nvar y = 2;\nx + y;\n")

	if diff := cmp.Diff(explicit, withASI, ignorePositions); diff != "" {
		t.Errorf("ASI-relying program differs from its explicit-semicolon equivalent (-explicit +ASI):\n%s", diff)
	}
}
