package mdtr04

import (
	"context"
	"iter"

	"github.com/louisbranch/mediatr/mediator"
)

type listNotesStreamQuery struct{ mediator.Stream[string] }

type listNotesStreamQueryHandler struct{}

func (listNotesStreamQueryHandler) Handle(ctx context.Context, q listNotesStreamQuery) iter.Seq2[string, error] {
	return func(func(string, error) bool) {}
}

type noteStreamer struct{} // want "MDTR04: name should end with 'StreamQueryHandler'"

func (*noteStreamer) Handle(ctx context.Context, q listNotesStreamQuery) iter.Seq2[string, error] {
	return func(func(string, error) bool) {}
}

type listNotesQueryHandler struct{} // want "MDTR04"

func (listNotesQueryHandler) Handle(ctx context.Context, q listNotesStreamQuery) iter.Seq2[string, error] {
	return func(func(string, error) bool) {}
}

type wrongItemHandler struct{}

func (wrongItemHandler) Handle(ctx context.Context, q listNotesStreamQuery) iter.Seq2[int, error] {
	return func(func(int, error) bool) {}
}
