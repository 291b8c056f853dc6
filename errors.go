package eht

import "errors"

var (
	// ErrEmptyKey is returned by Insert when the key is zero-length.
	ErrEmptyKey = errors.New("eht: key must not be empty")

	// ErrInvalidCapacity is returned by rebuild when the target capacity
	// is not positive. New never returns it; it clamps the requested
	// capacity instead.
	ErrInvalidCapacity = errors.New("eht: capacity must be positive")

	// ErrRebuildFailed is returned when an entry finds no slot in the
	// level layout built by a rebuild, either while the rebuild reinserts
	// the extracted entries or when Insert retries after a grow-rebuild.
	ErrRebuildFailed = errors.New("eht: rebuild failed to relayout levels")
)
