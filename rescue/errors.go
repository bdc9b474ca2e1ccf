package rescue

import "errors"

// Sentinel errors for policy execution.
var (
	// ErrNilOp is returned when a nil operation is passed to Exec or Call.
	ErrNilOp = errors.New("rescue: nil operation")
)
