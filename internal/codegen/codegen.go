// Package codegen lowers a parsed program into target source text, using
// closure conversion: each function becomes a class carrying one field per
// enclosing activation it references, the way the original compiler's
// codegen.cpp builds `_foc_` closure objects and `_locals_` activation
// records.
package codegen

import (
	"fmt"
	"strings"

	"github.com/cwbudde/js2cpp/internal/ast"
	"github.com/cwbudde/js2cpp/internal/intern"
	"github.com/cwbudde/js2cpp/internal/scope"
)

// Generator emits target source for a parsed Program.
type Generator struct {
	names  *intern.Table
	scopes *scope.Table
	out    strings.Builder
	seq    int // monotonic counter for synthetic labels and closure names

	scopeFuncName map[scope.ID]string // which function's _foc_/_locals_ owns each scope
}

// New creates a Generator sharing the intern table and scope arena the
// parser populated.
func New(names *intern.Table, scopes *scope.Table) *Generator {
	return &Generator{names: names, scopes: scopes, scopeFuncName: make(map[scope.ID]string)}
}

// funcCtx is the emission context for the function currently being
// generated: which scope its locals live in, how deep it is nested, and
// whether its locals record is heap-allocated.
type funcCtx struct {
	scope      scope.ID
	depth      int
	heapLocals bool
}

func (g *Generator) next() int {
	g.seq++
	return g.seq
}

func (g *Generator) emit(format string, args ...interface{}) {
	fmt.Fprintf(&g.out, format, args...)
}

// Generate lowers prog to a complete translation unit: one class per
// function (innermost first), then global declarations, then an entry
// point running the top-level statements.
func (g *Generator) Generate(prog *ast.Program) string {
	g.out.Reset()
	g.seq = 0

	topFuncs, topVars, topExterns, topLiterals := g.splitTopLevel(prog.Statements)

	for _, fn := range topLiterals {
		name := fn.Name
		if name == "" {
			name = g.nextClosureName()
		}
		g.declareFunctionClass(name, fn.Scope, fn.Params, fn.Body)
	}
	for _, fn := range topFuncs {
		g.declareFunctionClass(fn.Name, fn.Scope, fn.Params, fn.Body)
	}

	for _, name := range topExterns {
		g.emit("extern value_ %s;\n", name)
	}
	for _, name := range topVars {
		g.emit("value_ %s;\n", name)
	}
	for _, fn := range topFuncs {
		g.emit("%s %s_func_;\n", className(fn.Name), fn.Name)
		g.emit("value_ %s(&%s_func_);\n", fn.Name, fn.Name)
	}

	g.emit("\nint js2cpp_run(void) {\n")
	ctx := &funcCtx{scope: prog.Scope, depth: 0}
	for _, s := range prog.Statements {
		switch s.(type) {
		case *ast.FunctionDeclaration, *ast.ExternVarStatement:
			continue
		case *ast.VarStatement:
			g.emitVarStatementInit(ctx, s.(*ast.VarStatement))
		default:
			g.emitStatement(ctx, s)
		}
	}
	g.emit("\treturn 0;\n}\n")

	return g.out.String()
}

// splitTopLevel separates the program's top-level statements into named
// function declarations, plain variable names, extern names, and any
// function expressions found in any top-level statement outside a
// function body (e.g. `var f = function() {...};`).
func (g *Generator) splitTopLevel(stmts []ast.Statement) (funcs []*ast.FunctionDeclaration, vars []string, externs []string, literals []*ast.FunctionLiteral) {
	for _, s := range stmts {
		switch n := s.(type) {
		case *ast.FunctionDeclaration:
			funcs = append(funcs, n)
		case *ast.VarStatement:
			for _, d := range n.Declarators {
				vars = append(vars, d.Name)
			}
		case *ast.ExternVarStatement:
			externs = append(externs, n.Names...)
		}
	}
	literals = collectFunctionLiterals(stmts)
	return
}

func className(name string) string  { return name + "_foc_" }
func localsType(name string) string { return name + "_locals_" }

// nextClosureName synthesizes a stable identifier for an anonymous
// function expression the way the original compiler tags each literal
// function it registers in a scope's litfuncs set, just with a generated
// name instead of identity.
func (g *Generator) nextClosureName() string {
	return fmt.Sprintf("lit%d", g.next())
}

// declareFunctionClass emits the closure class, its locals record, and its
// call body for one function, after first declaring every function nested
// directly inside it (codegen.cpp: EmitFunctionBody recurses into nested
// function classes/bodies before emitting its own).
func (g *Generator) declareFunctionClass(name string, fnScope scope.ID, params []*ast.Identifier, body *ast.BlockStatement) {
	g.scopeFuncName[fnScope] = name
	depth := g.scopes.Get(fnScope).Depth()
	heap := containsNestedFunction(body.Statements)

	for _, fn := range collectFunctionLiterals(body.Statements) {
		childName := fn.Name
		if childName == "" {
			childName = g.nextClosureName()
		}
		g.declareFunctionClass(childName, fn.Scope, fn.Params, fn.Body)
	}
	for _, fn := range collectFunctionDeclarations(body.Statements) {
		g.declareFunctionClass(fn.Name, fn.Scope, fn.Params, fn.Body)
	}

	g.emit("class %s : public jsfunc_ {\npublic:\n", className(name))
	for k := 1; k < depth; k++ {
		ancestor := g.scopes.AtDepth(fnScope, k)
		g.emit("\t%s& nlng%d_;\n", localsType(g.scopeFuncName[ancestor]), k)
	}
	g.emit("\t%s(", className(name))
	var ctorParams []string
	for k := 1; k < depth; k++ {
		ancestor := g.scopes.AtDepth(fnScope, k)
		ctorParams = append(ctorParams, fmt.Sprintf("%s* n%d", localsType(g.scopeFuncName[ancestor]), k))
	}
	g.emit("%s)", strings.Join(ctorParams, ", "))
	if depth > 1 {
		var inits []string
		for k := 1; k < depth; k++ {
			inits = append(inits, fmt.Sprintf("nlng%d_(*n%d)", k, k))
		}
		g.emit(" : %s", strings.Join(inits, ", "))
	}
	g.emit(" {}\n")
	g.emit("\tvirtual value_ call(value_ this_, int nargs_, ...);\n")
	g.emit("};\n")

	g.declareLocalsStruct(name, fnScope)
	g.emitFunctionBody(name, fnScope, params, body, depth, heap)
}

// declareLocalsStruct emits the per-activation record: one value_ field
// per name declared directly in fnScope (formals included, since the
// parser already declared them there).
func (g *Generator) declareLocalsStruct(name string, fnScope scope.ID) {
	g.emit("struct %s {\n", localsType(name))
	for _, b := range g.scopes.Get(fnScope).Bindings() {
		if !b.Kind.IsDeclaration() {
			continue
		}
		g.emit("\tvalue_ %s;\n", g.names.Text(b.Name))
	}
	g.emit("};\n")
}

// emitFunctionBody emits the call() method: the locals record (a
// reference to a heap object, or a plain stack object; named locals_
// either way, so the emitted body never branches on which), the bound formals, and the lowered statements.
func (g *Generator) emitFunctionBody(name string, fnScope scope.ID, params []*ast.Identifier, body *ast.BlockStatement, depth int, heap bool) {
	g.emit("value_ %s::call(value_ this_, int nargs_, ...) {\n", className(name))
	if heap {
		g.emit("\t%s& locals_ = *(new %s());\n", localsType(name), localsType(name))
	} else {
		g.emit("\t%s locals_;\n", localsType(name))
	}
	if len(params) > 0 {
		g.emit("\tvalue_* __args_ = (value_*)(&nargs_ + 1);\n")
		for i, p := range params {
			g.emit("\tlocals_.%s = (nargs_ > %d) ? __args_[%d] : value_();\n", p.Name, i, i)
		}
	}

	ctx := &funcCtx{scope: fnScope, depth: depth, heapLocals: heap}
	for _, s := range body.Statements {
		if _, ok := s.(*ast.FunctionDeclaration); ok {
			fd := s.(*ast.FunctionDeclaration)
			g.emit("\tlocals_.%s = %s;\n", fd.Name, g.emitFuncVal(ctx, fd.Name, fd.Scope))
			continue
		}
		g.emitStatement(ctx, s)
	}
	g.emit("\treturn value_();\n}\n")
}

// emitFuncVal constructs a fresh closure value for a nested function,
// forwarding this function's own nlng links and adding one for its own
// locals record (codegen.cpp: EmitFuncVal's nested-function branch).
func (g *Generator) emitFuncVal(ctx *funcCtx, name string, childScope scope.ID) string {
	var args []string
	for k := 1; k <= ctx.depth; k++ {
		if k == ctx.depth {
			args = append(args, "&locals_")
		} else {
			args = append(args, fmt.Sprintf("&nlng%d_", k))
		}
	}
	return fmt.Sprintf("value_(new %s(%s))", className(name), strings.Join(args, ", "))
}
