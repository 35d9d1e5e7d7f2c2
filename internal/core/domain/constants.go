package domain

import "errors"

var (
	// ErrUnknownCommand reports a trigger with no registered handler. The
	// router wraps it with the offending trigger.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrEmptyArgs reports a command invoked without required arguments.
	ErrEmptyArgs = errors.New("empty arguments")
)
