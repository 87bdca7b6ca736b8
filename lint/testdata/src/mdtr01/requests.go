package mdtr01

import "github.com/louisbranch/mediatr/mediator"

type createNoteCommand struct {
	mediator.Command
	Title string
}

type getNoteQuery struct {
	mediator.Returning[string]
	ID string
}

type archiveNote struct { // want "MDTR01: name should end with 'Command' or 'Query'"
	mediator.Command
}

type noteLookup struct { // want "MDTR01"
	mediator.Returning[int]
}

type pointerArchive struct { // want "MDTR01"
	*mediator.Command
}

type envelope[T any] struct {
	mediator.Returning[T]
}

type aliasRequest = archiveNote

type note struct {
	Title string
}
