package registration_test

import (
	"path/filepath"
	"testing"

	"github.com/louisbranch/mediatr/lint/registration"
	"golang.org/x/tools/go/analysis/analysistest"
)

func TestUseAddMediator(t *testing.T) {
	testdata, err := filepath.Abs(filepath.Join("..", "testdata"))
	if err != nil {
		t.Fatalf("testdata: %v", err)
	}
	analysistest.Run(t, testdata, registration.UseAddMediator, "mdtr11", "nomediator", "github.com/louisbranch/mediatr/pipeline")
}
