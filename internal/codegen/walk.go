package codegen

import "github.com/cwbudde/js2cpp/internal/ast"

// containsNestedFunction reports whether any of stmts contains a function
// literal or function declaration anywhere in its subtree (crossing into
// nested blocks, loops, conditionals - everywhere except the body of a
// function it already found, since that function's own escape analysis is
// computed separately). A function that contains one heap-allocates its
// locals record, conservatively, because any function found here might
// close over this function's activation via the nlng chain.
func containsNestedFunction(stmts []ast.Statement) bool {
	found := false
	for _, s := range stmts {
		walkStatement(s, &found)
		if found {
			return true
		}
	}
	return found
}

func walkStatement(s ast.Statement, found *bool) {
	if *found || s == nil {
		return
	}
	switch n := s.(type) {
	case *ast.BlockStatement:
		for _, st := range n.Statements {
			walkStatement(st, found)
		}
	case *ast.VarStatement:
		for _, d := range n.Declarators {
			walkExpr(d.Init, found)
		}
	case *ast.ExternVarStatement, *ast.EmptyStatement:
		// no expressions
	case *ast.ExpressionStatement:
		walkExpr(n.Expr, found)
	case *ast.IfStatement:
		walkExpr(n.Cond, found)
		walkStatement(n.Then, found)
		walkStatement(n.Else, found)
	case *ast.ForStatement:
		if vs, ok := n.Init.(*ast.VarStatement); ok {
			walkStatement(vs, found)
		} else if e, ok := n.Init.(ast.Expression); ok {
			walkExpr(e, found)
		}
		walkExpr(n.Cond, found)
		walkExpr(n.Post, found)
		walkStatement(n.Body, found)
	case *ast.ForInStatement:
		walkExpr(n.Object, found)
		walkStatement(n.Body, found)
	case *ast.WhileStatement:
		walkExpr(n.Cond, found)
		walkStatement(n.Body, found)
	case *ast.DoWhileStatement:
		walkExpr(n.Cond, found)
		walkStatement(n.Body, found)
	case *ast.BreakStatement, *ast.ContinueStatement:
		// leaves
	case *ast.ReturnStatement:
		walkExpr(n.Value, found)
	case *ast.ThrowStatement:
		walkExpr(n.Value, found)
	case *ast.TryStatement:
		walkStatement(n.Block, found)
		if n.Catch != nil {
			walkStatement(n.Catch.Body, found)
		}
		walkStatement(n.Finally, found)
	case *ast.SwitchStatement:
		walkExpr(n.Discriminant, found)
		for _, c := range n.Cases {
			walkExpr(c.Test, found)
			for _, st := range c.Statements {
				walkStatement(st, found)
			}
		}
	case *ast.LabeledStatement:
		walkStatement(n.Body, found)
	case *ast.FunctionDeclaration:
		*found = true
	case *ast.InvalidStatement:
		// leaf
	}
}

func walkExpr(e ast.Expression, found *bool) {
	if *found || e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.FunctionLiteral:
		*found = true
	case *ast.Identifier, *ast.NumberLiteral, *ast.StringLiteral, *ast.RegexLiteral,
		*ast.BoolLiteral, *ast.NullLiteral, *ast.ThisExpr, *ast.InvalidExpr:
		// leaves
	case *ast.ArrayLiteral:
		for _, el := range n.Elements {
			walkExpr(el, found)
		}
	case *ast.CallExpr:
		walkExpr(n.Callee, found)
		for _, a := range n.Args {
			walkExpr(a, found)
		}
	case *ast.NewExpr:
		walkExpr(n.Callee, found)
		for _, a := range n.Args {
			walkExpr(a, found)
		}
	case *ast.DotExpr:
		walkExpr(n.Object, found)
	case *ast.IndexExpr:
		walkExpr(n.Object, found)
		walkExpr(n.Index, found)
	case *ast.UnaryExpr:
		walkExpr(n.Operand, found)
	case *ast.PostfixExpr:
		walkExpr(n.Operand, found)
	case *ast.BinaryExpr:
		walkExpr(n.Left, found)
		walkExpr(n.Right, found)
	case *ast.LogicalExpr:
		walkExpr(n.Left, found)
		walkExpr(n.Right, found)
	case *ast.AssignExpr:
		walkExpr(n.Target, found)
		walkExpr(n.Value, found)
	case *ast.ConditionalExpr:
		walkExpr(n.Cond, found)
		walkExpr(n.Then, found)
		walkExpr(n.Else, found)
	case *ast.SequenceExpr:
		for _, x := range n.Expressions {
			walkExpr(x, found)
		}
	}
}

// collectFunctionLiterals gathers every FunctionLiteral appearing directly
// in stmts (recursing into nested blocks/control-flow, but not into the
// body of a FunctionLiteral/FunctionDeclaration it already found - that
// one's own literals are collected when it is itself emitted).
func collectFunctionLiterals(stmts []ast.Statement) []*ast.FunctionLiteral {
	var out []*ast.FunctionLiteral
	for _, s := range stmts {
		collectFromStatement(s, &out)
	}
	return out
}

func collectFromStatement(s ast.Statement, out *[]*ast.FunctionLiteral) {
	switch n := s.(type) {
	case *ast.BlockStatement:
		for _, st := range n.Statements {
			collectFromStatement(st, out)
		}
	case *ast.VarStatement:
		for _, d := range n.Declarators {
			collectFromExpr(d.Init, out)
		}
	case *ast.ExpressionStatement:
		collectFromExpr(n.Expr, out)
	case *ast.IfStatement:
		collectFromExpr(n.Cond, out)
		collectFromStatement(n.Then, out)
		collectFromStatement(n.Else, out)
	case *ast.ForStatement:
		if vs, ok := n.Init.(*ast.VarStatement); ok {
			collectFromStatement(vs, out)
		} else if e, ok := n.Init.(ast.Expression); ok {
			collectFromExpr(e, out)
		}
		collectFromExpr(n.Cond, out)
		collectFromExpr(n.Post, out)
		collectFromStatement(n.Body, out)
	case *ast.ForInStatement:
		collectFromExpr(n.Object, out)
		collectFromStatement(n.Body, out)
	case *ast.WhileStatement:
		collectFromExpr(n.Cond, out)
		collectFromStatement(n.Body, out)
	case *ast.DoWhileStatement:
		collectFromExpr(n.Cond, out)
		collectFromStatement(n.Body, out)
	case *ast.ReturnStatement:
		collectFromExpr(n.Value, out)
	case *ast.ThrowStatement:
		collectFromExpr(n.Value, out)
	case *ast.TryStatement:
		collectFromStatement(n.Block, out)
		if n.Catch != nil {
			collectFromStatement(n.Catch.Body, out)
		}
		collectFromStatement(n.Finally, out)
	case *ast.SwitchStatement:
		collectFromExpr(n.Discriminant, out)
		for _, c := range n.Cases {
			collectFromExpr(c.Test, out)
			for _, st := range c.Statements {
				collectFromStatement(st, out)
			}
		}
	case *ast.LabeledStatement:
		collectFromStatement(n.Body, out)
	}
}

// collectFunctionDeclarations gathers every named function statement
// reachable from stmts without crossing into another function's body.
func collectFunctionDeclarations(stmts []ast.Statement) []*ast.FunctionDeclaration {
	var out []*ast.FunctionDeclaration
	var walk func(s ast.Statement)
	walk = func(s ast.Statement) {
		switch n := s.(type) {
		case *ast.BlockStatement:
			for _, st := range n.Statements {
				walk(st)
			}
		case *ast.IfStatement:
			walk(n.Then)
			walk(n.Else)
		case *ast.ForStatement:
			walk(n.Body)
		case *ast.ForInStatement:
			walk(n.Body)
		case *ast.WhileStatement:
			walk(n.Body)
		case *ast.DoWhileStatement:
			walk(n.Body)
		case *ast.TryStatement:
			walk(n.Block)
			if n.Catch != nil {
				walk(n.Catch.Body)
			}
			walk(n.Finally)
		case *ast.SwitchStatement:
			for _, c := range n.Cases {
				for _, st := range c.Statements {
					walk(st)
				}
			}
		case *ast.LabeledStatement:
			walk(n.Body)
		case *ast.FunctionDeclaration:
			out = append(out, n)
		}
	}
	for _, s := range stmts {
		walk(s)
	}
	return out
}

func collectFromExpr(e ast.Expression, out *[]*ast.FunctionLiteral) {
	switch n := e.(type) {
	case *ast.FunctionLiteral:
		*out = append(*out, n)
	case *ast.ArrayLiteral:
		for _, el := range n.Elements {
			collectFromExpr(el, out)
		}
	case *ast.CallExpr:
		collectFromExpr(n.Callee, out)
		for _, a := range n.Args {
			collectFromExpr(a, out)
		}
	case *ast.NewExpr:
		collectFromExpr(n.Callee, out)
		for _, a := range n.Args {
			collectFromExpr(a, out)
		}
	case *ast.DotExpr:
		collectFromExpr(n.Object, out)
	case *ast.IndexExpr:
		collectFromExpr(n.Object, out)
		collectFromExpr(n.Index, out)
	case *ast.UnaryExpr:
		collectFromExpr(n.Operand, out)
	case *ast.PostfixExpr:
		collectFromExpr(n.Operand, out)
	case *ast.BinaryExpr:
		collectFromExpr(n.Left, out)
		collectFromExpr(n.Right, out)
	case *ast.LogicalExpr:
		collectFromExpr(n.Left, out)
		collectFromExpr(n.Right, out)
	case *ast.AssignExpr:
		collectFromExpr(n.Target, out)
		collectFromExpr(n.Value, out)
	case *ast.ConditionalExpr:
		collectFromExpr(n.Cond, out)
		collectFromExpr(n.Then, out)
		collectFromExpr(n.Else, out)
	case *ast.SequenceExpr:
		for _, x := range n.Expressions {
			collectFromExpr(x, out)
		}
	}
}
