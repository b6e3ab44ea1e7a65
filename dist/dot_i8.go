package dist

// MaxLenDotI8 is the largest d for which DotI8 cannot overflow.
//
// Each operand is widened to int16 before the multiply, so a product
// magnitude never exceeds 128*128 = 16384 and the int16 product itself
// cannot wrap. The result is an int32, so the binding constraint is the
// full sum, not the partial accumulators: |sum| <= d * 16384 stays
// within int32 while d <= floor((2^31-1) / 16384) = 131071. Every
// partial sum is bounded by the full sum's worst case, so the same
// bound covers the accumulator lanes and the tail.
const MaxLenDotI8 = 131071

// DotI8 computes the dot product of two int8 vectors.
//
// Operands are widened to int16 before multiplying, which makes the
// per-element product exact; accumulation is in int32 lanes. The result
// is exact for any d up to MaxLenDotI8. PRECONDITION: len(a) == len(b)
// and len(a) <= MaxLenDotI8.
func DotI8(a, b []int8) int32 {
	var s0, s1, s2, s3 int32
	n := len(a)

	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += int32(int16(a[i]) * int16(b[i]))
		s1 += int32(int16(a[i+1]) * int16(b[i+1]))
		s2 += int32(int16(a[i+2]) * int16(b[i+2]))
		s3 += int32(int16(a[i+3]) * int16(b[i+3]))
	}
	for ; i < n; i++ {
		s0 += int32(int16(a[i]) * int16(b[i]))
	}

	return s0 + s1 + s2 + s3
}
