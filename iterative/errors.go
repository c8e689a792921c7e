package iterative

import "errors"

// Structural failures (nil matrix, non-square, length mismatch, zero diagonal)
// are reported with the matrix package sentinels. A non-dominant system is not
// an error; see Status.
var (
	// ErrUnknownMethod is returned for a Method value or name outside the supported set.
	ErrUnknownMethod = errors.New("iterative: unknown method")

	// ErrNilVector is returned when the right-hand side b is nil.
	ErrNilVector = errors.New("iterative: nil right-hand side")
)
