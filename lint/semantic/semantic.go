// Package semantic checks how handlers are declared and what they do.
package semantic

import (
	"go/ast"
	"go/types"
	"strings"

	"github.com/louisbranch/mediatr/lint/internal/rules"
	"github.com/louisbranch/mediatr/lint/internal/symbols"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// HandlersShouldNotCallHandler reports request handlers that send other
// requests. Command handlers may send queries. Notification and stream
// handlers are not checked.
var HandlersShouldNotCallHandler = &analysis.Analyzer{
	Name:     rules.HandlersShouldNotCallHandler,
	Doc:      "check that request handlers do not send other requests",
	URL:      rules.URL(rules.HandlersShouldNotCallHandler),
	Requires: []*analysis.Analyzer{symbols.Analyzer, inspect.Analyzer},
	Run:      runNoNestedSend,
}

// HandlersShouldNotBeExported reports exported request and notification
// handlers. They are reached through the mediator only.
var HandlersShouldNotBeExported = &analysis.Analyzer{
	Name:     rules.HandlersShouldNotBeExported,
	Doc:      "check that handlers are not exported",
	URL:      rules.URL(rules.HandlersShouldNotBeExported),
	Requires: []*analysis.Analyzer{symbols.Analyzer},
	Run:      runUnexportedHandlers,
}

// Analyzers returns the semantic design rules.
func Analyzers() []*analysis.Analyzer {
	return []*analysis.Analyzer{HandlersShouldNotCallHandler, HandlersShouldNotBeExported}
}

func runUnexportedHandlers(pass *analysis.Pass) (any, error) {
	syms := pass.ResultOf[symbols.Analyzer].(*symbols.Symbols)
	for _, t := range syms.Types {
		if !t.Kind.Has(symbols.RequestHandler) && !t.Kind.Has(symbols.NotificationHandler) {
			continue
		}
		if t.Obj.Exported() {
			pass.Reportf(t.Ident.Pos(), "%s: handlers should not be exported", rules.HandlersShouldNotBeExported)
		}
	}
	return nil, nil
}

func runNoNestedSend(pass *analysis.Pass) (any, error) {
	syms := pass.ResultOf[symbols.Analyzer].(*symbols.Symbols)
	if syms.Mediator == nil || syms.InMediatorLayer(pass.Pkg) {
		return nil, nil
	}
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		decl := n.(*ast.FuncDecl)
		if decl.Recv == nil || decl.Body == nil {
			return
		}
		handler := receiverType(pass.TypesInfo, decl)
		if handler == nil || !syms.KindOf(handler).Has(symbols.RequestHandler) {
			return
		}
		commandHandler := strings.HasSuffix(handler.Name(), "CommandHandler")

		ast.Inspect(decl.Body, func(n ast.Node) bool {
			expr, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			call, ok := syms.Classify(pass.TypesInfo, expr)
			if !ok || !isSend(call) {
				return true
			}
			if commandHandler {
				if req := call.Request(); req != nil && syms.IsQuery(pass.TypesInfo.TypeOf(req)) {
					return true
				}
			}
			pass.Reportf(call.Pos(), "%s: request handlers should not send other requests", rules.HandlersShouldNotCallHandler)
			return true
		})
	})
	return nil, nil
}

func isSend(call symbols.Call) bool {
	switch call.Name() {
	case "Send", "SendAsync":
		return true
	}
	return false
}

func receiverType(info *types.Info, decl *ast.FuncDecl) *types.TypeName {
	fn, ok := info.Defs[decl.Name].(*types.Func)
	if !ok {
		return nil
	}
	recv := fn.Type().(*types.Signature).Recv()
	if recv == nil {
		return nil
	}
	t := recv.Type()
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}
	return named.Obj()
}
