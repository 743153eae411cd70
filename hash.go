package hashtable

import "github.com/cespare/xxhash/v2"

// Hasher produces the pair of hash values that drive the double-hashing
// probe sequence. Both results must lie in [0, m). Implementations must be
// deterministic: the same key and modulus always yield the same pair, and
// every table built over the lifetime of a program sees the same family.
type Hasher interface {
	Hash(key string, m int) (h1, h2 int)
}

// Fixed multipliers for the polynomial family. Using the same two primes
// for every table keeps hash values reproducible across instances.
const (
	polyPrimeA = 151
	polyPrimeB = 163
)

// PolyHasher is the default hash family: a polynomial hash of the key's
// bytes evaluated with two distinct prime bases. The empty string hashes
// to (0, 0).
type PolyHasher struct{}

func (PolyHasher) Hash(key string, m int) (int, int) {
	return polyHash(key, polyPrimeA, m), polyHash(key, polyPrimeB, m)
}

// polyHash treats key as digits in base a and evaluates the polynomial by
// Horner's rule, reducing mod m after every step so intermediate values
// never overflow.
func polyHash(key string, a, m int) int {
	h := 0
	for i := 0; i < len(key); i++ {
		h = (h*a + int(key[i])) % m
	}
	return h
}

// XXHasher derives both probe hashes from a single 64-bit xxHash sum of
// the key, reducing the low and high halves mod m. Noticeably faster than
// PolyHasher on long keys.
type XXHasher struct{}

func (XXHasher) Hash(key string, m int) (int, int) {
	sum := xxhash.Sum64String(key)
	mod := uint64(m)
	return int(sum % mod), int((sum >> 32) % mod)
}
