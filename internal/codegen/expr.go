package codegen

import (
	"fmt"
	"strings"

	"github.com/cwbudde/js2cpp/internal/ast"
	"github.com/cwbudde/js2cpp/internal/token"
)

// resolveIdent renders a name reference as the locals_/nlngN_/bare-global
// access the original compiler's ExprValue tIDENT case builds, based on how
// far up the scope chain (relative to ctx) the name was declared
// (scope.cpp: aScope::FindDeclaration).
func (g *Generator) resolveIdent(ctx *funcCtx, name string) string {
	handle, ok := g.names.Lookup(name)
	if !ok {
		return name
	}
	binding, owner, ok := g.scopes.FindDeclaration(ctx.scope, handle)
	if !ok {
		return name
	}
	_ = binding
	ownerDepth := g.scopes.Get(owner).Depth()
	if ownerDepth == 0 {
		return name
	}
	if _, isFuncScope := g.scopeFuncName[owner]; !isFuncScope {
		// Owner is a transient block scope (e.g. a catch clause) rather
		// than a function's own activation - its bindings become plain
		// C++ locals, not locals_/nlng fields.
		return name
	}
	if owner == ctx.scope {
		return "locals_." + name
	}
	return fmt.Sprintf("nlng%d_.%s", ownerDepth, name)
}

func (g *Generator) refExpr(ctx *funcCtx, e ast.Expression) string {
	switch n := e.(type) {
	case *ast.Identifier:
		return g.resolveIdent(ctx, n.Name)
	case *ast.DotExpr:
		return fmt.Sprintf("(%s).dotref(%q)", g.valueExpr(ctx, n.Object), n.Property)
	case *ast.IndexExpr:
		return fmt.Sprintf("(%s).atref(%s)", g.valueExpr(ctx, n.Object), g.valueExpr(ctx, n.Index))
	default:
		return g.valueExpr(ctx, e)
	}
}

func (g *Generator) valueExpr(ctx *funcCtx, e ast.Expression) string {
	switch n := e.(type) {
	case *ast.Identifier:
		return g.resolveIdent(ctx, n.Name)
	case *ast.NumberLiteral:
		return fmt.Sprintf("value_(%s)", n.Value)
	case *ast.StringLiteral:
		return fmt.Sprintf("value_(%s)", emitString(n.Raw))
	case *ast.RegexLiteral:
		return fmt.Sprintf("rx_(%q)", n.Raw)
	case *ast.BoolLiteral:
		if n.Value {
			return "value_(true)"
		}
		return "value_(false)"
	case *ast.NullLiteral:
		return "value_(null_)"
	case *ast.ThisExpr:
		return "this_"
	case *ast.ArrayLiteral:
		return g.arrayLiteral(ctx, n)
	case *ast.FunctionLiteral:
		name := g.scopeFuncName[n.Scope]
		return g.emitFuncVal(ctx, name, n.Scope)
	case *ast.CallExpr:
		return g.callExpr(ctx, n)
	case *ast.NewExpr:
		return g.newExpr(ctx, n)
	case *ast.DotExpr:
		return fmt.Sprintf("(%s).dot(%q)", g.valueExpr(ctx, n.Object), n.Property)
	case *ast.IndexExpr:
		return fmt.Sprintf("(%s).at(%s)", g.valueExpr(ctx, n.Object), g.valueExpr(ctx, n.Index))
	case *ast.UnaryExpr:
		return g.unaryExpr(ctx, n)
	case *ast.PostfixExpr:
		return g.postfixExpr(ctx, n)
	case *ast.BinaryExpr:
		return g.binaryExpr(ctx, n)
	case *ast.LogicalExpr:
		return fmt.Sprintf("(%s %s %s)", g.valueExpr(ctx, n.Left), n.Token.Literal, g.valueExpr(ctx, n.Right))
	case *ast.AssignExpr:
		return g.assignExpr(ctx, n)
	case *ast.ConditionalExpr:
		return fmt.Sprintf("(%s ? %s : %s)", g.valueExpr(ctx, n.Cond), g.valueExpr(ctx, n.Then), g.valueExpr(ctx, n.Else))
	case *ast.SequenceExpr:
		return g.sequenceExpr(ctx, n)
	case *ast.InvalidExpr:
		return "value_()"
	}
	return "value_()"
}

func (g *Generator) arrayLiteral(ctx *funcCtx, n *ast.ArrayLiteral) string {
	parts := make([]string, len(n.Elements))
	for i, el := range n.Elements {
		if el == nil {
			parts[i] = "value_()"
		} else {
			parts[i] = g.valueExpr(ctx, el)
		}
	}
	return fmt.Sprintf("MakeArray_(%d%s)", len(parts), prependComma(parts))
}

func prependComma(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return ", " + strings.Join(parts, ", ")
}

func (g *Generator) argList(ctx *funcCtx, args []ast.Expression) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = g.valueExpr(ctx, a)
	}
	return fmt.Sprintf("%d%s", len(parts), prependComma(parts))
}

// callExpr lowers a call according to the shape of its callee:
// `obj.prop(...)` -> dotcall, `obj[idx](...)` -> eltcall, anything else
// (a bare name, a parenthesized expression, a call result) -> a free call
// through the runtime's function interface (codegen.cpp: EmitCall).
func (g *Generator) callExpr(ctx *funcCtx, n *ast.CallExpr) string {
	switch callee := n.Callee.(type) {
	case *ast.DotExpr:
		return fmt.Sprintf("(%s).dotcall(%q, %s)", g.valueExpr(ctx, callee.Object), callee.Property, g.argList(ctx, n.Args))
	case *ast.IndexExpr:
		return fmt.Sprintf("(%s).eltcall(%s, %s)", g.valueExpr(ctx, callee.Object), g.valueExpr(ctx, callee.Index), g.argList(ctx, n.Args))
	default:
		return fmt.Sprintf("(%s).toFunc()->call(global_, %s)", g.valueExpr(ctx, n.Callee), g.argList(ctx, n.Args))
	}
}

func (g *Generator) newExpr(ctx *funcCtx, n *ast.NewExpr) string {
	return fmt.Sprintf("(%s).toFunc()->call(value_(new obj_()), %s)", g.valueExpr(ctx, n.Callee), g.argList(ctx, n.Args))
}

func (g *Generator) unaryExpr(ctx *funcCtx, n *ast.UnaryExpr) string {
	switch n.Operator {
	case token.NOT:
		return fmt.Sprintf("(!(%s))", g.valueExpr(ctx, n.Operand))
	case token.TILDE:
		return fmt.Sprintf("(~(%s))", g.valueExpr(ctx, n.Operand))
	case token.PLUS:
		return fmt.Sprintf("(+(%s))", g.valueExpr(ctx, n.Operand))
	case token.MINUS:
		return fmt.Sprintf("(-(%s))", g.valueExpr(ctx, n.Operand))
	case token.TYPEOF:
		return fmt.Sprintf("(%s).typeof()", g.valueExpr(ctx, n.Operand))
	case token.VOID:
		return fmt.Sprintf("((%s), value_())", g.valueExpr(ctx, n.Operand))
	case token.DELETE:
		switch target := n.Operand.(type) {
		case *ast.DotExpr:
			return fmt.Sprintf("(%s).deleteprop_(%q)", g.valueExpr(ctx, target.Object), target.Property)
		case *ast.IndexExpr:
			return fmt.Sprintf("(%s).deleteelt_(%s)", g.valueExpr(ctx, target.Object), g.valueExpr(ctx, target.Index))
		default:
			return fmt.Sprintf("((%s), value_(true))", g.valueExpr(ctx, n.Operand))
		}
	case token.INC:
		return fmt.Sprintf("(%s).preinc_()", g.refExpr(ctx, n.Operand))
	case token.DEC:
		return fmt.Sprintf("(%s).predec_()", g.refExpr(ctx, n.Operand))
	}
	return g.valueExpr(ctx, n.Operand)
}

func (g *Generator) postfixExpr(ctx *funcCtx, n *ast.PostfixExpr) string {
	if n.Operator == token.INC {
		return fmt.Sprintf("(%s).postinc_()", g.refExpr(ctx, n.Operand))
	}
	return fmt.Sprintf("(%s).postdec_()", g.refExpr(ctx, n.Operand))
}

func (g *Generator) binaryExpr(ctx *funcCtx, n *ast.BinaryExpr) string {
	l := g.valueExpr(ctx, n.Left)
	r := g.valueExpr(ctx, n.Right)
	switch n.Operator {
	case token.SEQ:
		return fmt.Sprintf("identical_(%s, %s)", l, r)
	case token.SNE:
		return fmt.Sprintf("!identical_(%s, %s)", l, r)
	case token.INSTANCEOF:
		return fmt.Sprintf("(%s).instanceof_(%s)", l, r)
	case token.IN:
		return fmt.Sprintf("(%s).hasProperty_(%s)", r, l)
	}
	return fmt.Sprintf("(%s %s %s)", l, n.Token.Literal, r)
}

func (g *Generator) assignExpr(ctx *funcCtx, n *ast.AssignExpr) string {
	return fmt.Sprintf("(%s %s %s)", g.refExpr(ctx, n.Target), n.Token.Literal, g.valueExpr(ctx, n.Value))
}

func (g *Generator) sequenceExpr(ctx *funcCtx, n *ast.SequenceExpr) string {
	parts := make([]string, len(n.Expressions))
	for i, e := range n.Expressions {
		parts[i] = g.valueExpr(ctx, e)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
