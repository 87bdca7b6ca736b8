// Package lint collects the analyzers enforcing the mediator usage
// conventions. Each rule is its own analyzer named after its identifier so
// that it can be disabled on its own.
package lint

import (
	"cmp"
	"flag"
	"slices"

	"github.com/louisbranch/mediatr/lint/internal/symbols"
	"github.com/louisbranch/mediatr/lint/naming"
	"github.com/louisbranch/mediatr/lint/paramusage"
	"github.com/louisbranch/mediatr/lint/registration"
	"github.com/louisbranch/mediatr/lint/semantic"
	"golang.org/x/tools/go/analysis"
)

// Analyzers returns every rule in identifier order.
func Analyzers() []*analysis.Analyzer {
	var all []*analysis.Analyzer
	all = append(all, naming.Analyzers()...)
	all = append(all, paramusage.Analyzers()...)
	all = append(all, semantic.Analyzers()...)
	all = append(all, registration.UseAddMediator)
	slices.SortFunc(all, func(a, b *analysis.Analyzer) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return all
}

// RegisterFlags defines the flags of the shared symbol resolver on fs, such
// as -mediatorsym.mediator. Call it before the driver parses its flags.
func RegisterFlags(fs *flag.FlagSet) {
	symbols.RegisterFlags(fs)
}
