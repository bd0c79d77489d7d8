package keep

import (
	"errors"
	"fmt"
)

// ErrNoCandidate is returned by resolution when every candidate in the active
// target's fallback chain is empty. It signals a misconfigured record, not a
// runtime fault.
var ErrNoCandidate = errors.New("no path found for the current operating environment")

// ErrNotFound is returned, wrapped, when the resolved location holds nothing.
// Both backends report absence through it, so callers can treat not-found as
// "use defaults" without caring which medium is underneath.
var ErrNotFound = errors.New("not found")

// DecodeError reports a stored value that is not valid base64. It only
// occurs on the key-value backend, when something other than this package
// wrote to the key.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding stored value for key %s: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
