// Package registration checks that containers are configured through
// pipeline.AddMediator.
package registration

import (
	"go/ast"

	"github.com/louisbranch/mediatr/lint/internal/rules"
	"github.com/louisbranch/mediatr/lint/internal/symbols"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// UseAddMediator reports calls to mediator.Register, which skips the
// default behaviors and does not guard against double registration.
var UseAddMediator = &analysis.Analyzer{
	Name:     rules.UseAddMediator,
	Doc:      "check that containers are configured with pipeline.AddMediator",
	URL:      rules.URL(rules.UseAddMediator),
	Requires: []*analysis.Analyzer{symbols.Analyzer, inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	syms := pass.ResultOf[symbols.Analyzer].(*symbols.Symbols)
	if syms.Mediator == nil || syms.InMediatorLayer(pass.Pkg) {
		return nil, nil
	}
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call, ok := syms.Classify(pass.TypesInfo, n.(*ast.CallExpr))
		if !ok || call.Method || call.Pipeline || call.Name() != "Register" {
			return
		}
		pass.Reportf(call.Pos(), "%s: use pipeline.AddMediator instead of mediator.Register", rules.UseAddMediator)
	})
	return nil, nil
}
