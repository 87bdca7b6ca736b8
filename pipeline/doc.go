// Package pipeline layers the cross-cutting behaviors every request goes
// through on top of package mediator.
//
// AddMediator registers handlers and, in order, the tracing, logging and
// validation behaviors for both requests and stream requests. It may be
// called once per container. SendAsync and PublishAsync are the dispatch
// entry points applications are expected to use.
package pipeline
