// Package mediator provides in-process dispatch of requests, stream requests
// and notifications to the handlers registered for their concrete types.
//
// Messages opt in by embedding one of the marker structs:
//
//	type getNoteQuery struct {
//	    mediator.Returning[Note]
//	    ID string
//	}
//
//	type archiveNoteCommand struct {
//	    mediator.Command
//	    ID string
//	}
//
// Handlers are registered on a [Services] container, usually from a [Module],
// and a [Mediator] is built from it once at startup:
//
//	services := mediator.NewServices()
//	err := mediator.Register(services, mediator.Configuration{
//	    Modules: []mediator.Module{notes.Module(store)},
//	})
//	m := mediator.New(services)
//	note, err := mediator.Send[Note](ctx, m, getNoteQuery{ID: id})
//
// # Behaviors
//
// A [PipelineBehavior] wraps every request dispatched through the mediator,
// a [StreamPipelineBehavior] every stream request. Behaviors run in the order
// of the container's behavior list: the first one is the outermost wrapper.
// Pre and post processors run innermost, immediately around the handler.
//
// Notifications are not wrapped by behaviors. They fan out either
// sequentially, stopping at the first error, or concurrently, in which case
// every handler runs and their errors are joined.
package mediator
