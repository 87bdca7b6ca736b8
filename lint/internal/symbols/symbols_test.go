package symbols_test

import (
	"flag"
	"path/filepath"
	"testing"

	"github.com/louisbranch/mediatr/lint/internal/symbols"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/analysistest"
)

// kinds reports the classification of every declared type as a diagnostic
// so analysistest can assert it.
var kinds = &analysis.Analyzer{
	Name:     "kinds",
	Doc:      "report symbol classification",
	Requires: []*analysis.Analyzer{symbols.Analyzer},
	Run: func(pass *analysis.Pass) (any, error) {
		syms := pass.ResultOf[symbols.Analyzer].(*symbols.Symbols)
		for _, t := range syms.Types {
			pass.Reportf(t.Ident.Pos(), "%s=%b", t.Obj.Name(), t.Kind)
		}
		return nil, nil
	},
}

func TestClassification(t *testing.T) {
	testdata, err := filepath.Abs(filepath.Join("..", "..", "testdata"))
	if err != nil {
		t.Fatalf("testdata: %v", err)
	}
	analysistest.Run(t, testdata, kinds, "classify")
}

func TestRegisterFlagsOverridesMediatorPath(t *testing.T) {
	fs := flag.NewFlagSet("mediatorlint", flag.ContinueOnError)
	symbols.RegisterFlags(fs)
	t.Cleanup(func() {
		if err := symbols.Analyzer.Flags.Set("mediator", symbols.DefaultMediatorPath); err != nil {
			t.Fatalf("reset flag: %v", err)
		}
	})
	if fs.Lookup("mediatorsym.pipeline") == nil {
		t.Fatal("expected mediatorsym.pipeline flag")
	}
	if err := fs.Parse([]string{"-mediatorsym.mediator=example.com/forked/mediator"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	testdata, err := filepath.Abs(filepath.Join("..", "..", "testdata"))
	if err != nil {
		t.Fatalf("testdata: %v", err)
	}
	analysistest.Run(t, testdata, kinds, "altpath")
}

func TestKindHas(t *testing.T) {
	k := symbols.Request | symbols.RequestHandler
	if !k.Has(symbols.Request) || !k.Has(symbols.RequestHandler) {
		t.Fatalf("expected %b to have request and request handler", k)
	}
	if k.Has(symbols.Notification) {
		t.Fatalf("expected %b not to have notification", k)
	}
}
