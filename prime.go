package hashtable

// isPrime reports whether n is prime. Trial division is sufficient here:
// inputs are table capacities, and the scan stops at the square root.
func isPrime(n int) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0:
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// nextPrime returns the smallest prime greater than or equal to n.
func nextPrime(n int) int {
	if n < 2 {
		return 2
	}
	for !isPrime(n) {
		n++
	}
	return n
}
