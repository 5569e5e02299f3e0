package panel

import "errors"

var (
	// ErrUnknownTable indicates the requested table has no registered
	// schema.
	ErrUnknownTable = errors.New("panel: unknown table")

	// ErrSessionSpent indicates a write or delete session was used
	// after its Commit.
	ErrSessionSpent = errors.New("panel: session already committed")

	// ErrNoPayload indicates Commit was called before Send.
	ErrNoPayload = errors.New("panel: commit without payload")
)
