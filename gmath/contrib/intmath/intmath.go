// Package intmath provides integer number-theory helpers: greatest common
// divisor, least common multiple, and primality testing. It is independent
// of the vector and matrix types.
package intmath

import "github.com/ajroetker/go-gmath/gmath"

// GCD returns the greatest common divisor of a and b using the binary GCD
// algorithm (shifts and subtraction only). GCD(0, 0) is 0 by convention;
// negative inputs contribute their absolute value.
func GCD[T gmath.Integer](a, b T) T {
	a = gmath.Abs(a)
	b = gmath.Abs(b)

	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}

	// Factor out the common power of two.
	var shift uint
	for (a|b)&1 == 0 {
		a >>= 1
		b >>= 1
		shift++
	}

	for a&1 == 0 {
		a >>= 1
	}
	for {
		for b&1 == 0 {
			b >>= 1
		}
		if a > b {
			a, b = b, a
		}
		b -= a
		if b == 0 {
			break
		}
	}
	return a << shift
}

// LCM returns the least common multiple of a and b. LCM(0, x) is 0.
// Overflow is the caller's concern, as with built-in multiplication.
func LCM[T gmath.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	a = gmath.Abs(a)
	b = gmath.Abs(b)
	return a / GCD(a, b) * b
}

// IsPrime reports whether n is prime, by trial division over the 6k±1
// candidates up to the square root of n.
func IsPrime[T gmath.Integer](n T) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := T(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime strictly greater than n.
func NextPrime[T gmath.Integer](n T) T {
	if n < 2 {
		return 2
	}
	c := n + 1
	if c%2 == 0 {
		c++
	}
	for !IsPrime(c) {
		c += 2
	}
	return c
}
