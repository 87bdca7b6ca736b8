package mdtr06

import (
	"context"

	"github.com/louisbranch/mediatr/mediator"
)

type noteCreatedEvent struct{ mediator.Event }

type noteCreatedEventHandler struct{}

func (noteCreatedEventHandler) Handle(ctx context.Context, e noteCreatedEvent) error { return nil }

type indexNotificationHandler struct{}

func (*indexNotificationHandler) Handle(ctx context.Context, e noteCreatedEvent) error { return nil }

type noteIndexer struct{} // want "MDTR06: name should end with 'NotificationHandler' or 'EventHandler'"

func (noteIndexer) Handle(ctx context.Context, e noteCreatedEvent) error { return nil }

type stringListener struct{}

func (stringListener) Handle(ctx context.Context, e string) error { return nil }
