package Chain_Table

import "math"

// Golden is the fractional part of the golden ratio, (sqrt(5)-1)/2.
const Golden Hasher = 0.6180339887498949

// Hasher is the multiplier A of a multiplicative hash. Use Golden unless you have a reason not to.
type Hasher float64

// Index maps key into [0, n). It takes the fractional part of key*A, scales it by n and truncates.
// Floating point rounding can push the scaled value up to n, so the result is clamped to n-1.
// The fractional part is always taken towards negative infinity, so negative keys land in range too.
func (u Hasher) Index(key int, n uint) uint {
	if n <= 1 {
		return 0
	}
	p := float64(key) * float64(u)
	frac := p - math.Floor(p)
	i := uint(frac * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
