package mdtr03

import "github.com/louisbranch/mediatr/mediator"

type listNotesStreamQuery struct {
	mediator.Stream[string]
}

type listNotesQuery struct { // want "MDTR03: name should end with 'StreamQuery'"
	mediator.Stream[string]
}

type noteFeed struct { // want "MDTR03"
	mediator.Stream[int]
}
