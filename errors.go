package fountain

import "errors"

var (
	// ErrUnsolvable is returned when elimination finds a column with no
	// pivot. It is recoverable: the caller accumulates more packets and
	// retries.
	ErrUnsolvable = errors.New("system is unsolvable")

	// ErrNotDecoded is returned by the Receiver while it does not yet hold
	// enough independent equations to recover the message.
	ErrNotDecoded = errors.New("not yet decoded")

	// ErrInvariantViolation is returned when the post-elimination
	// identity/zero-block check fails. It signals a defect in the
	// elimination logic itself and must never be retried.
	ErrInvariantViolation = errors.New("elimination invariant violated")
)
