package utils

import "math/rand"

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// IndexFromDraw maps a draw in [0.0, 1.0) onto an index in [0, n).
// Draws at or above 1.0 land on the last index; n <= 0 yields -1.
func IndexFromDraw(draw float64, n int) int {
	if n <= 0 {
		return -1
	}
	if draw < 0 {
		return 0
	}
	idx := int(draw * float64(n))
	if idx >= n {
		return n - 1
	}
	return idx
}
