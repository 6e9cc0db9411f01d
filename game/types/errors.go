package types

import "github.com/pkg/errors"

var (
	// ErrConfiguration marks settings the simulation refuses to start with.
	ErrConfiguration = errors.New("configuration error")
	// ErrArenaExhausted is returned when a food kind has no free cell left.
	ErrArenaExhausted = errors.New("arena exhausted")
	// ErrInvariantViolation signals a segment bookkeeping bug, such as a
	// follows reference to a segment that no longer exists.
	ErrInvariantViolation = errors.New("invariant violation")
	// ErrTransitionNotAllowed is returned for a phase change with no rule.
	ErrTransitionNotAllowed = errors.New("phase transition not allowed")
)
