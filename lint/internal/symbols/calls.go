package symbols

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// Call is a call to a dispatch or registration entry point.
type Call struct {
	Expr *ast.CallExpr
	Func *types.Func
	// Method is set for the untyped methods of the mediator interfaces.
	Method bool
	// Pipeline is set for functions of the pipeline package.
	Pipeline bool
}

// Name returns the called function or method name.
func (c Call) Name() string {
	return c.Func.Name()
}

// Context returns the context argument, which is always the first one.
func (c Call) Context() ast.Expr {
	if len(c.Expr.Args) == 0 {
		return nil
	}
	return c.Expr.Args[0]
}

// Request returns the request argument, which follows the sender in the
// generic functions.
func (c Call) Request() ast.Expr {
	idx := 2
	if c.Method {
		idx = 1
	}
	if len(c.Expr.Args) <= idx {
		return nil
	}
	return c.Expr.Args[idx]
}

// Pos is where diagnostics about the call are reported: the called name.
func (c Call) Pos() token.Pos {
	fun := ast.Unparen(c.Expr.Fun)
	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun = f.X
	case *ast.IndexListExpr:
		fun = f.X
	}
	switch f := fun.(type) {
	case *ast.SelectorExpr:
		return f.Sel.Pos()
	case *ast.Ident:
		return f.Pos()
	}
	return c.Expr.Pos()
}

var (
	dispatchMethods   = map[string]bool{"Send": true, "Publish": true, "CreateStream": true}
	mediatorFunctions = map[string]bool{"Send": true, "Publish": true, "CreateStream": true, "Register": true}
	pipelineFunctions = map[string]bool{"SendAsync": true, "PublishAsync": true, "AddMediator": true}
)

// Classify reports whether call targets the mediator or pipeline entry points.
func (s *Symbols) Classify(info *types.Info, call *ast.CallExpr) (Call, bool) {
	if s.Mediator == nil {
		return Call{}, false
	}
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Pkg() == nil {
		return Call{}, false
	}
	fn = fn.Origin()
	recv := fn.Type().(*types.Signature).Recv()

	switch fn.Pkg().Path() {
	case s.Mediator.Path():
		if recv != nil && dispatchMethods[fn.Name()] {
			return Call{Expr: call, Func: fn, Method: true}, true
		}
		if recv == nil && mediatorFunctions[fn.Name()] {
			return Call{Expr: call, Func: fn}, true
		}
	case pipelinePath:
		if recv == nil && pipelineFunctions[fn.Name()] {
			return Call{Expr: call, Func: fn, Pipeline: true}, true
		}
	}
	return Call{}, false
}
