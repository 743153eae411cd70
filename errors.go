package hashtable

import "errors"

var (
	// ErrEmptyKey is returned when Insert is called with an empty key.
	ErrEmptyKey = errors.New("empty key")

	// ErrInvalidBaseSize is returned by New when a configured base size
	// is less than 1.
	ErrInvalidBaseSize = errors.New("base size must be at least 1")

	// ErrInvalidLoadFactor is returned by New when the configured load
	// factor bounds do not satisfy 0 <= min < max <= 1.
	ErrInvalidLoadFactor = errors.New("invalid load factor bounds")

	// ErrNilHasher is returned by New when WithHasher is given nil.
	ErrNilHasher = errors.New("nil hasher")
)
