package bimap

import "errors"

var (
	// ErrNotFound is wrapped by the strict lookups when the key is absent.
	ErrNotFound = errors.New("bimap: key not found")
	// ErrCapacity is the panic value of Insert when the index type can't address another pair.
	ErrCapacity = errors.New("bimap: index type exhausted")
)
