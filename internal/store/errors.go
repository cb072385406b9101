package store

import "errors"

var errRootNotObject = errors.New("root value must be an object")

// Error is returned by every failed adapter call. Callers are responsible for
// mapping it to a user-visible message at the action boundary.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return "store: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func IsStoreError(err error) bool {
	_, ok := err.(*Error)
	return ok
}
