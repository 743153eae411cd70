package hashtable

// An Option adjusts table construction. Options are applied and validated
// by New; an invalid option aborts construction.
type Option func(*Table) error

// WithBaseSize sets the initial logical size of the table. The actual
// capacity is the next prime at or above it. A base size below the shrink
// floor is allowed: the table grows from there as needed, and the floor
// only stops it from shrinking back down.
func WithBaseSize(n int) Option {
	return func(t *Table) error {
		if n < 1 {
			return ErrInvalidBaseSize
		}
		t.baseSize = n
		return nil
	}
}

// WithMinBaseSize sets the floor below which the table refuses to shrink.
// Resize-down requests past the floor are silently ignored. The floor has
// no effect on growth.
func WithMinBaseSize(n int) Option {
	return func(t *Table) error {
		if n < 1 {
			return ErrInvalidBaseSize
		}
		t.minBaseSize = n
		return nil
	}
}

// WithHasher selects the hash family used for probing. Every operation on
// a table must observe the same family, so it can only be set at
// construction time.
func WithHasher(h Hasher) Option {
	return func(t *Table) error {
		if h == nil {
			return ErrNilHasher
		}
		t.hasher = h
		return nil
	}
}

// WithLoadFactorBounds sets the occupancy band that triggers resizing:
// when the load factor rises above max after an insert the table doubles
// its base size, and when it falls below min after a delete it halves.
func WithLoadFactorBounds(min, max float64) Option {
	return func(t *Table) error {
		if min < 0 || max <= min || max > 1 {
			return ErrInvalidLoadFactor
		}
		t.minLoad = min
		t.maxLoad = max
		return nil
	}
}
