package naming_test

import (
	"path/filepath"
	"testing"

	"github.com/louisbranch/mediatr/lint/naming"
	"golang.org/x/tools/go/analysis"
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

func TestSuffixRules(t *testing.T) {
	tests := []struct {
		analyzer *analysis.Analyzer
		pkg      string
	}{
		{naming.CommandOrQuerySuffix, "mdtr01"},
		{naming.CommandHandlerOrQueryHandlerSuffix, "mdtr02"},
		{naming.StreamQuerySuffix, "mdtr03"},
		{naming.StreamQueryHandlerSuffix, "mdtr04"},
		{naming.NotificationOrEventSuffix, "mdtr05"},
		{naming.NotificationHandlerOrEventHandlerSuffix, "mdtr06"},
	}
	for _, tt := range tests {
		t.Run(tt.analyzer.Name, func(t *testing.T) {
			analysistest.Run(t, testdata(t), tt.analyzer, tt.pkg, "nomediator")
		})
	}
}

func TestAnalyzersAreNamedAfterRules(t *testing.T) {
	want := []string{"MDTR01", "MDTR02", "MDTR03", "MDTR04", "MDTR05", "MDTR06"}
	got := naming.Analyzers()
	if len(got) != len(want) {
		t.Fatalf("expected %d analyzers, got %d", len(want), len(got))
	}
	for i, a := range got {
		if a.Name != want[i] {
			t.Fatalf("analyzer %d = %s, want %s", i, a.Name, want[i])
		}
	}
}
