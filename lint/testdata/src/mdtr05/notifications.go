package mdtr05

import "github.com/louisbranch/mediatr/mediator"

type noteCreatedEvent struct {
	mediator.Event
	ID string
}

type noteArchivedNotification struct {
	mediator.Event
}

type noteChanged struct { // want "MDTR05: name should end with 'Notification' or 'Event'"
	mediator.Event
}
