// SPDX-License-Identifier: MIT
// Package adelic: default prime table.

package adelic

// DefaultPrimeCount is the size of the built-in prime table.
const DefaultPrimeCount = 60

// defaultPrimes enumerates the first 60 primes explicitly; the analysis is
// specified over a fixed, visible input rather than a sieve.
var defaultPrimes = [DefaultPrimeCount]int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113,
	127, 131, 137, 139, 149, 151, 157, 163, 167, 173,
	179, 181, 191, 193, 197, 199, 211, 223, 227, 229,
	233, 239, 241, 251, 257, 263, 269, 271, 277, 281,
}

// DefaultPrimes returns a fresh copy of the built-in 60-prime list.
// Callers may truncate or extend the copy freely; the table itself is
// immutable for the lifetime of the process.
func DefaultPrimes() []int {
	out := make([]int, DefaultPrimeCount)
	copy(out, defaultPrimes[:])

	return out
}
