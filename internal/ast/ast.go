// Package ast defines the abstract syntax tree the parser builds: one
// concrete Go type per JavaScript construct, in place of the original
// compiler's single ternary AST node (AST.h's {token, first, second,
// third, scope}). Grounded on internal/ast's own established shape for
// the Node/Expression/Statement interfaces and the
// String()-reconstructs-source convention used by its tests.
package ast

import (
	"strings"

	"github.com/cwbudde/js2cpp/internal/scope"
	"github.com/cwbudde/js2cpp/internal/token"
)

// Node is implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of a parsed file: a list of top-level statements and
// the scope they share (scope.cpp's depth-0 global scope).
type Program struct {
	Statements []Statement
	Scope      scope.ID
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	return joinStatements(p.Statements)
}

func joinStatements(stmts []Statement) string {
	var sb strings.Builder
	for _, s := range stmts {
		sb.WriteString(s.String())
	}
	return sb.String()
}
