package paramusage_test

import (
	"path/filepath"
	"testing"

	"github.com/louisbranch/mediatr/lint/paramusage"
	"golang.org/x/tools/go/analysis/analysistest"
)

func testdata(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("..", "testdata"))
	if err != nil {
		t.Fatalf("testdata: %v", err)
	}
	return dir
}

func TestGenericFunction(t *testing.T) {
	analysistest.Run(t, testdata(t), paramusage.GenericFunction, "mdtr07", "nomediator")
}

func TestProvideContext(t *testing.T) {
	analysistest.Run(t, testdata(t), paramusage.ProvideContext, "mdtr08", "nomediator")
}

func TestFunctionEndingWithAsync(t *testing.T) {
	analysistest.Run(t, testdata(t), paramusage.FunctionEndingWithAsync, "mdtr12", "nomediator")
}

func TestMediatorLayerIsExempt(t *testing.T) {
	for _, a := range paramusage.Analyzers() {
		analysistest.Run(t, testdata(t), a, "github.com/louisbranch/mediatr/pipeline", "github.com/louisbranch/mediatr/mediator")
	}
}
