package availability

import "errors"

var (
	// ErrConfiguration means the weekly schedule violates its own invariants.
	// It is never corrected silently.
	ErrConfiguration = errors.New("schedule configuration error")

	// ErrInvalidRequest means the caller supplied an unsupported duration or an
	// unparseable date or timezone.
	ErrInvalidRequest = errors.New("invalid slot request")
)
