// Package rules holds the stable identifiers of the mediator lint rules.
package rules

// Identifiers of existing rules must never change: linter configurations
// refer to them.
const (
	UseCommandOrQuerySuffix                    = "MDTR01"
	UseCommandHandlerOrQueryHandlerSuffix      = "MDTR02"
	UseStreamQuerySuffix                       = "MDTR03"
	UseStreamQueryHandlerSuffix                = "MDTR04"
	UseNotificationOrEventSuffix               = "MDTR05"
	UseNotificationHandlerOrEventHandlerSuffix = "MDTR06"
	UseGenericFunction                         = "MDTR07"
	ProvideContext                             = "MDTR08"
	HandlersShouldNotCallHandler               = "MDTR09"
	HandlersShouldNotBeExported                = "MDTR10"
	UseAddMediator                             = "MDTR11"
	UseFunctionEndingWithAsync                 = "MDTR12"

	// UseHandlerSuffix covers handler types nested inside their request
	// type. Go has no nested type declarations, so no analyzer reports it and
	// the identifier stays reserved.
	UseHandlerSuffix = "MDTR13"
)

// HelpURL documents every rule; the rule identifier is its anchor.
const HelpURL = "https://github.com/louisbranch/mediatr/blob/main/lint/README.md"

// URL returns the documentation link of rule id.
func URL(id string) string {
	return HelpURL + "#" + id
}
