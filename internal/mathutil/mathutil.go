// Package mathutil provides the small set of integer helpers that the
// address-arithmetic engine builds on: power-of-two tests and alignment,
// integer log2, and single-bit extraction.
package mathutil

import "golang.org/x/exp/constraints"

// IsPow2 reports whether x is a power of two. Zero is not a power of two.
func IsPow2[T constraints.Unsigned](x T) bool {
	return x != 0 && x&(x-1) == 0
}

// Log2Floor returns floor(log2(x)). It panics if x is zero.
func Log2Floor[T constraints.Unsigned](x T) uint {
	if x == 0 {
		panic("mathutil: Log2Floor of zero")
	}
	var n uint
	for x > 1 {
		x >>= 1
		n++
	}
	return n
}

// maxPow2 is the largest power of two that fits the saturation rule used
// by NextPow2: inputs greater than 1<<31 saturate at 1<<31.
const maxPow2 = 1 << 31

// NextPow2 returns the smallest power of two that is >= x, saturating at
// 2^31 for x > 2^31 (per the hardware's 32-bit dimension fields, a
// dimension request larger than that has no valid padded representation
// and is clamped rather than overflowed).
func NextPow2[T constraints.Unsigned](x T) T {
	if x <= 1 {
		return 1
	}
	if uint64(x) > maxPow2 {
		m := uint64(maxPow2)
		return T(m)
	}
	x--
	var n uint = 1
	for v := x; v > 1; v >>= 1 {
		n++
	}
	return T(1) << n
}

// Pow2Align rounds x up to the nearest multiple of align, where align
// must be a power of two.
func Pow2Align[T constraints.Unsigned](x, align T) T {
	return (x + align - 1) &^ (align - 1)
}

// Pad rounds x up to the nearest multiple of align, where align may be
// any positive value, not necessarily a power of two.
func Pad[T constraints.Unsigned](x, align T) T {
	if align == 0 {
		return x
	}
	return ((x + align - 1) / align) * align
}

// Bit extracts bit i (0-based, from the least-significant bit) of x.
func Bit[T constraints.Unsigned](x T, i uint) T {
	return (x >> i) & 1
}

// CeilDiv divides num by den and rounds up.
func CeilDiv[T constraints.Unsigned](num, den T) T {
	if den == 0 {
		return 0
	}
	return (num + den - 1) / den
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
