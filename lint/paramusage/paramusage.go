// Package paramusage checks how the dispatch entry points are called.
package paramusage

import (
	"go/ast"
	"go/types"

	"github.com/louisbranch/mediatr/lint/internal/rules"
	"github.com/louisbranch/mediatr/lint/internal/symbols"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// GenericFunction reports calls to the untyped Send, Publish and
// CreateStream methods.
var GenericFunction = &analysis.Analyzer{
	Name:     rules.UseGenericFunction,
	Doc:      "check that requests are dispatched through the generic functions",
	URL:      rules.URL(rules.UseGenericFunction),
	Requires: []*analysis.Analyzer{symbols.Analyzer, inspect.Analyzer},
	Run: eachCall(func(pass *analysis.Pass, call symbols.Call) {
		if call.Method {
			pass.Reportf(call.Pos(), "%s: use the generic mediator.%s function instead of the method", rules.UseGenericFunction, call.Name())
		}
	}),
}

// ProvideContext reports dispatch calls given context.Background, context.TODO
// or nil instead of the caller's context.
var ProvideContext = &analysis.Analyzer{
	Name:     rules.ProvideContext,
	Doc:      "check that dispatch calls receive the caller's context",
	URL:      rules.URL(rules.ProvideContext),
	Requires: []*analysis.Analyzer{symbols.Analyzer, inspect.Analyzer},
	Run: eachCall(func(pass *analysis.Pass, call symbols.Call) {
		switch call.Name() {
		case "Register", "AddMediator":
			return
		}
		if arg := call.Context(); arg != nil && isDetachedContext(pass.TypesInfo, arg) {
			pass.Reportf(arg.Pos(), "%s: provide the caller's context", rules.ProvideContext)
		}
	}),
}

// FunctionEndingWithAsync reports Send and Publish calls that should go
// through pipeline.SendAsync and pipeline.PublishAsync.
var FunctionEndingWithAsync = &analysis.Analyzer{
	Name:     rules.UseFunctionEndingWithAsync,
	Doc:      "check that requests are dispatched through SendAsync and PublishAsync",
	URL:      rules.URL(rules.UseFunctionEndingWithAsync),
	Requires: []*analysis.Analyzer{symbols.Analyzer, inspect.Analyzer},
	Run: eachCall(func(pass *analysis.Pass, call symbols.Call) {
		if call.Pipeline {
			return
		}
		switch call.Name() {
		case "Send", "Publish":
			pass.Reportf(call.Pos(), "%s: use pipeline.%sAsync instead", rules.UseFunctionEndingWithAsync, call.Name())
		}
	}),
}

// Analyzers returns the parameter usage rules.
func Analyzers() []*analysis.Analyzer {
	return []*analysis.Analyzer{GenericFunction, ProvideContext, FunctionEndingWithAsync}
}

func eachCall(check func(*analysis.Pass, symbols.Call)) func(*analysis.Pass) (any, error) {
	return func(pass *analysis.Pass) (any, error) {
		syms := pass.ResultOf[symbols.Analyzer].(*symbols.Symbols)
		if syms.Mediator == nil || syms.InMediatorLayer(pass.Pkg) {
			return nil, nil
		}
		insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
		insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
			if call, ok := syms.Classify(pass.TypesInfo, n.(*ast.CallExpr)); ok {
				check(pass, call)
			}
		})
		return nil, nil
	}
}

func isDetachedContext(info *types.Info, arg ast.Expr) bool {
	arg = ast.Unparen(arg)
	if tv, ok := info.Types[arg]; ok && tv.IsNil() {
		return true
	}
	call, ok := arg.(*ast.CallExpr)
	if !ok {
		return false
	}
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != "context" {
		return false
	}
	return fn.Name() == "Background" || fn.Name() == "TODO"
}
