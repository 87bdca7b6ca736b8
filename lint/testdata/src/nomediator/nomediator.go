package nomediator

import "context"

type archiveNote struct{}

type Sender struct{}

func (Sender) Send(ctx context.Context, request any) (any, error) { return request, nil }

func (Sender) Handle(ctx context.Context, request archiveNote) (string, error) { return "", nil }

func dispatch() {
	_, _ = Sender{}.Send(context.Background(), archiveNote{})
}
