package matcher

import "math"

// floatULPs is how many representable values apart two floats may be and
// still compare equal here. Two units keeps one rounding error on each
// operand within tolerance without papering over real differences.
const floatULPs = 2

// F32Eq matches float32 values within 2 ULPs of want. NaN matches nothing,
// including NaN.
func F32Eq(want float32) func(float32) bool {
	return func(v float32) bool { return f32Near(v, want) }
}

// F64Eq matches float64 values within 2 ULPs of want. NaN matches nothing,
// including NaN.
func F64Eq(want float64) func(float64) bool {
	return func(v float64) bool { return f64Near(v, want) }
}

// NaNSensitiveF32Eq matches like F32Eq, except NaN matches NaN.
func NaNSensitiveF32Eq(want float32) func(float32) bool {
	return func(v float32) bool {
		if isNaN32(v) || isNaN32(want) {
			return isNaN32(v) && isNaN32(want)
		}

		return f32Near(v, want)
	}
}

// NaNSensitiveF64Eq matches like F64Eq, except NaN matches NaN.
func NaNSensitiveF64Eq(want float64) func(float64) bool {
	return func(v float64) bool {
		if math.IsNaN(v) || math.IsNaN(want) {
			return math.IsNaN(v) && math.IsNaN(want)
		}

		return f64Near(v, want)
	}
}

func f32Near(a, b float32) bool {
	if isNaN32(a) || isNaN32(b) {
		return false
	}

	ma, mb := monotonic32(a), monotonic32(b)
	if ma < mb {
		ma, mb = mb, ma
	}

	return ma-mb <= floatULPs
}

func f64Near(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}

	ma, mb := monotonic64(a), monotonic64(b)
	if ma < mb {
		ma, mb = mb, ma
	}

	return ma-mb <= floatULPs
}

func isNaN32(f float32) bool {
	return f != f
}

// monotonic32 maps a float32's IEEE-754 bit pattern onto an unsigned scale
// where adjacent representable floats are adjacent integers and the two
// zeros coincide, so ULP distance is plain subtraction.
func monotonic32(f float32) uint64 {
	const sign = uint64(1) << 31

	bits := uint64(math.Float32bits(f))
	if bits&sign != 0 {
		return sign - (bits &^ sign)
	}

	return bits + sign
}

// monotonic64 is monotonic32 for float64 bit patterns.
func monotonic64(f float64) uint64 {
	const sign = uint64(1) << 63

	bits := math.Float64bits(f)
	if bits&sign != 0 {
		return sign - (bits &^ sign)
	}

	return bits + sign
}
