package domain

import "errors"

// Domain errors.
var (
	ErrNoteNotFound = errors.New("note not found")
	ErrNoSelection  = errors.New("no page selected")
)
