// Package naming checks that mediator messages and handlers carry the
// suffixes that tell their role at a glance.
package naming

import (
	"fmt"
	"strings"

	"github.com/louisbranch/mediatr/lint/internal/rules"
	"github.com/louisbranch/mediatr/lint/internal/symbols"
	"golang.org/x/tools/go/analysis"
)

var (
	// CommandOrQuerySuffix reports requests not named *Command or *Query.
	CommandOrQuerySuffix = suffixAnalyzer(rules.UseCommandOrQuerySuffix, symbols.Request, "requests", "Command", "Query")
	// CommandHandlerOrQueryHandlerSuffix reports request handlers not named
	// *CommandHandler or *QueryHandler.
	CommandHandlerOrQueryHandlerSuffix = suffixAnalyzer(rules.UseCommandHandlerOrQueryHandlerSuffix, symbols.RequestHandler, "request handlers", "CommandHandler", "QueryHandler")
	// StreamQuerySuffix reports stream requests not named *StreamQuery.
	StreamQuerySuffix = suffixAnalyzer(rules.UseStreamQuerySuffix, symbols.StreamRequest, "stream requests", "StreamQuery")
	// StreamQueryHandlerSuffix reports stream handlers not named *StreamQueryHandler.
	StreamQueryHandlerSuffix = suffixAnalyzer(rules.UseStreamQueryHandlerSuffix, symbols.StreamRequestHandler, "stream request handlers", "StreamQueryHandler")
	// NotificationOrEventSuffix reports notifications not named *Notification or *Event.
	NotificationOrEventSuffix = suffixAnalyzer(rules.UseNotificationOrEventSuffix, symbols.Notification, "notifications", "Notification", "Event")
	// NotificationHandlerOrEventHandlerSuffix reports notification handlers not
	// named *NotificationHandler or *EventHandler.
	NotificationHandlerOrEventHandlerSuffix = suffixAnalyzer(rules.UseNotificationHandlerOrEventHandlerSuffix, symbols.NotificationHandler, "notification handlers", "NotificationHandler", "EventHandler")
)

// Analyzers returns the naming rules.
func Analyzers() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		CommandOrQuerySuffix,
		CommandHandlerOrQueryHandlerSuffix,
		StreamQuerySuffix,
		StreamQueryHandlerSuffix,
		NotificationOrEventSuffix,
		NotificationHandlerOrEventHandlerSuffix,
	}
}

func suffixAnalyzer(id string, kind symbols.Kind, role string, suffixes ...string) *analysis.Analyzer {
	message := fmt.Sprintf("%s: name should end with %s", id, quoteSuffixes(suffixes))
	return &analysis.Analyzer{
		Name:     id,
		Doc:      fmt.Sprintf("check that %s are named with %s", role, quoteSuffixes(suffixes)),
		URL:      rules.URL(id),
		Requires: []*analysis.Analyzer{symbols.Analyzer},
		Run: func(pass *analysis.Pass) (any, error) {
			syms := pass.ResultOf[symbols.Analyzer].(*symbols.Symbols)
			for _, t := range syms.Types {
				if !t.Kind.Has(kind) || hasSuffix(t.Obj.Name(), suffixes) {
					continue
				}
				pass.Report(analysis.Diagnostic{Pos: t.Ident.Pos(), End: t.Ident.End(), Category: "naming", Message: message})
			}
			return nil, nil
		},
	}
}

func hasSuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func quoteSuffixes(suffixes []string) string {
	quoted := make([]string, len(suffixes))
	for i, s := range suffixes {
		quoted[i] = "'" + s + "'"
	}
	return strings.Join(quoted, " or ")
}
