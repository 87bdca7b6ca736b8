package mdtr11

import (
	"github.com/louisbranch/mediatr/mediator"
	"github.com/louisbranch/mediatr/pipeline"
)

func setup() (*mediator.Mediator, error) {
	services := mediator.NewServices()
	if err := mediator.Register(services, mediator.Configuration{}); err != nil { // want "MDTR11: use pipeline.AddMediator instead of mediator.Register"
		return nil, err
	}
	register := mediator.Register // not a call
	_ = register

	if _, err := pipeline.AddMediator(mediator.NewServices(), nil); err != nil {
		return nil, err
	}
	return mediator.New(services), nil
}
