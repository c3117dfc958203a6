package codegen

import (
	"fmt"

	"github.com/cwbudde/js2cpp/internal/ast"
)

// emitStatement lowers one statement into the current function body. Loop
// and labeled-block bookkeeping (break/continue targets) is threaded
// through the dedicated loop emitters below rather than through funcCtx,
// since it is a property of the statement being emitted, not of the
// enclosing function.
func (g *Generator) emitStatement(ctx *funcCtx, s ast.Statement) {
	switch n := s.(type) {
	case *ast.BlockStatement:
		g.emit("\t{\n")
		for _, st := range n.Statements {
			g.emitStatement(ctx, st)
		}
		g.emit("\t}\n")
	case *ast.VarStatement:
		g.emitVarStatementInit(ctx, n)
	case *ast.ExternVarStatement:
		// already declared at file scope; nothing to do here.
	case *ast.ExpressionStatement:
		g.emit("\t(%s);\n", g.valueExpr(ctx, n.Expr))
	case *ast.EmptyStatement:
		g.emit("\t;\n")
	case *ast.IfStatement:
		g.emitIf(ctx, n)
	case *ast.ForStatement:
		g.emitFor(ctx, n, "")
	case *ast.ForInStatement:
		g.emitForIn(ctx, n, "")
	case *ast.WhileStatement:
		g.emitWhile(ctx, n, "")
	case *ast.DoWhileStatement:
		g.emitDoWhile(ctx, n, "")
	case *ast.BreakStatement:
		if n.Label != "" {
			g.emit("\tgoto %s_break_;\n", n.Label)
		} else {
			g.emit("\tbreak;\n")
		}
	case *ast.ContinueStatement:
		if n.Label != "" {
			g.emit("\tgoto %s_continue_;\n", n.Label)
		} else {
			g.emit("\tcontinue;\n")
		}
	case *ast.ReturnStatement:
		if n.Value != nil {
			g.emit("\treturn %s;\n", g.valueExpr(ctx, n.Value))
		} else {
			g.emit("\treturn value_();\n")
		}
	case *ast.ThrowStatement:
		g.emit("\tthrow %s;\n", g.valueExpr(ctx, n.Value))
	case *ast.TryStatement:
		g.emitTry(ctx, n)
	case *ast.SwitchStatement:
		g.emitSwitch(ctx, n)
	case *ast.LabeledStatement:
		g.emitLabeled(ctx, n)
	case *ast.FunctionDeclaration:
		g.emit("\t%s = %s;\n", g.resolveIdent(ctx, n.Name), g.emitFuncVal(ctx, n.Name, n.Scope))
	case *ast.InvalidStatement:
		// parse error already recorded; emit nothing.
	}
}

// emitVarStatementInit lowers `var a, b = 1;` to its runtime assignments.
// Declaring the name itself needed no code: the locals_/global field for it
// already exists (declareLocalsStruct / the top-level `value_ name;`), so
// only declarators with an initializer produce anything here.
func (g *Generator) emitVarStatementInit(ctx *funcCtx, v *ast.VarStatement) {
	for _, d := range v.Declarators {
		if d.Init == nil {
			continue
		}
		g.emit("\t%s = %s;\n", g.resolveIdent(ctx, d.Name), g.valueExpr(ctx, d.Init))
	}
}

func (g *Generator) emitIf(ctx *funcCtx, n *ast.IfStatement) {
	g.emit("\tif (%s) {\n", g.valueExpr(ctx, n.Cond))
	g.emitStatement(ctx, n.Then)
	if n.Else != nil {
		g.emit("\t} else {\n")
		g.emitStatement(ctx, n.Else)
	}
	g.emit("\t}\n")
}

func (g *Generator) emitFor(ctx *funcCtx, n *ast.ForStatement, label string) {
	switch init := n.Init.(type) {
	case *ast.VarStatement:
		g.emitVarStatementInit(ctx, init)
	case ast.Expression:
		g.emit("\t(%s);\n", g.valueExpr(ctx, init))
	}
	cond := ""
	if n.Cond != nil {
		cond = g.valueExpr(ctx, n.Cond)
	}
	post := ""
	if n.Post != nil {
		post = g.valueExpr(ctx, n.Post)
	}
	// Post belongs in the for's own increment clause, not a trailing
	// statement after Body: a bare `continue` compiles to native C++
	// continue, which jumps straight to this clause and would otherwise
	// skip a hand-placed Post entirely.
	g.emit("\tfor (; %s; %s) {\n", cond, post)
	g.emitStatement(ctx, n.Body)
	g.emitContinueTarget(label)
	g.emit("\t}\n")
	g.emitBreakTarget(label)
}

// emitForIn lowers `for (x in obj)`/`for (var x in obj)` through a runtime
// key enumerator, a form the original compiler's ForLoop left unimplemented
// (jsrt codegen.cpp has only a stub comment for this case).
func (g *Generator) emitForIn(ctx *funcCtx, n *ast.ForInStatement, label string) {
	id := g.next()
	keys := fmt.Sprintf("__keys_%d_", id)
	i := fmt.Sprintf("__i_%d_", id)
	g.emit("\tvalue_ %s = (%s).keys();\n", keys, g.valueExpr(ctx, n.Object))
	g.emit("\tfor (int %s = 0; %s < %s.length(); ++%s) {\n", i, i, keys, i)
	g.emit("\t\t%s = %s.at(value_(%s));\n", g.resolveIdent(ctx, n.Name), keys, i)
	g.emitStatement(ctx, n.Body)
	g.emitContinueTarget(label)
	g.emit("\t}\n")
	g.emitBreakTarget(label)
}

func (g *Generator) emitWhile(ctx *funcCtx, n *ast.WhileStatement, label string) {
	g.emit("\twhile (%s) {\n", g.valueExpr(ctx, n.Cond))
	g.emitStatement(ctx, n.Body)
	g.emitContinueTarget(label)
	g.emit("\t}\n")
	g.emitBreakTarget(label)
}

func (g *Generator) emitDoWhile(ctx *funcCtx, n *ast.DoWhileStatement, label string) {
	g.emit("\tdo {\n")
	g.emitStatement(ctx, n.Body)
	g.emitContinueTarget(label)
	g.emit("\t} while (%s);\n", g.valueExpr(ctx, n.Cond))
	g.emitBreakTarget(label)
}

func (g *Generator) emitContinueTarget(label string) {
	if label != "" {
		g.emit("\t%s_continue_:;\n", label)
	}
}

func (g *Generator) emitBreakTarget(label string) {
	if label != "" {
		g.emit("\t%s_break_:;\n", label)
	}
}

// emitLabeled attaches label to the loop it directly wraps so break/continue
// referencing it compile to a goto into that loop's own targets; a label on
// a non-loop statement only gets a break target, matching JS's labeled
// block semantics.
func (g *Generator) emitLabeled(ctx *funcCtx, n *ast.LabeledStatement) {
	switch body := n.Body.(type) {
	case *ast.ForStatement:
		g.emitFor(ctx, body, n.Label)
	case *ast.ForInStatement:
		g.emitForIn(ctx, body, n.Label)
	case *ast.WhileStatement:
		g.emitWhile(ctx, body, n.Label)
	case *ast.DoWhileStatement:
		g.emitDoWhile(ctx, body, n.Label)
	default:
		g.emit("\t{\n")
		g.emitStatement(ctx, n.Body)
		g.emit("\t}\n")
		g.emitBreakTarget(n.Label)
	}
}

// emitSwitch lowers a switch to a computed selector plus a native C++
// switch over that selector's numeric case index, rather than over the JS
// case values directly: JS case matching is identical_ (===) comparison
// against arbitrary runtime values, which a C++ switch's integral case
// labels cannot express. Selecting by index first, then switching on the
// index, keeps native fallthrough and break working unchanged and makes
// the default clause's source position irrelevant. The original compiler
// had no switch codegen to ground this on.
func (g *Generator) emitSwitch(ctx *funcCtx, n *ast.SwitchStatement) {
	id := g.next()
	disc := fmt.Sprintf("__disc_%d_", id)
	sel := fmt.Sprintf("__sel_%d_", id)
	g.emit("\tvalue_ %s = %s;\n", disc, g.valueExpr(ctx, n.Discriminant))
	g.emit("\tint %s = -1;\n", sel)

	defaultIndex := -1
	first := true
	for i, c := range n.Cases {
		if c.Test == nil {
			defaultIndex = i
			continue
		}
		kw := "if"
		if !first {
			kw = "else if"
		}
		first = false
		g.emit("\t%s (identical_(%s, %s)) %s = %d;\n", kw, disc, g.valueExpr(ctx, c.Test), sel, i)
	}
	g.emit("\tif (%s < 0) %s = %d;\n", sel, sel, defaultIndex)

	g.emit("\tswitch (%s) {\n", sel)
	for i, c := range n.Cases {
		g.emit("\tcase %d:\n", i)
		for _, st := range c.Statements {
			g.emitStatement(ctx, st)
		}
	}
	g.emit("\t}\n")
}

// emitTry emits a native try/catch for the catch clause and, when a
// finally clause is present, duplicates its statements along both the
// normal-completion path and a catch-all rethrow path: C++ has no finally
// keyword, and the original compiler carried no try/catch/finally support
// at all, so this is a from-scratch lowering rather than an adaptation.
func (g *Generator) emitTry(ctx *funcCtx, n *ast.TryStatement) {
	if n.Finally == nil {
		g.emitTryCatchOnly(ctx, n)
		return
	}

	g.emit("\ttry {\n")
	if n.Catch != nil {
		g.emit("\ttry {\n")
		g.emitStatement(ctx, n.Block)
		g.emit("\t} catch (value_ %s) {\n", n.Catch.Param)
		g.emitStatement(ctx, n.Catch.Body)
		g.emit("\t}\n")
	} else {
		g.emitStatement(ctx, n.Block)
	}
	g.emitStatement(ctx, n.Finally)
	g.emit("\t} catch (...) {\n")
	g.emitStatement(ctx, n.Finally)
	g.emit("\tthrow;\n\t}\n")
}

func (g *Generator) emitTryCatchOnly(ctx *funcCtx, n *ast.TryStatement) {
	g.emit("\ttry {\n")
	g.emitStatement(ctx, n.Block)
	g.emit("\t} catch (value_ %s) {\n", n.Catch.Param)
	g.emitStatement(ctx, n.Catch.Body)
	g.emit("\t}\n")
}
