// Package main runs the mediator lint rules over Go packages.
//
// Usage:
//
//	mediatorlint [-MDTR09=false] [-mediatorsym.mediator=path] [-mediatorsym.pipeline=path] ./...
package main

import (
	"flag"

	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/louisbranch/mediatr/lint"
)

func main() {
	lint.RegisterFlags(flag.CommandLine)
	multichecker.Main(lint.Analyzers()...)
}
