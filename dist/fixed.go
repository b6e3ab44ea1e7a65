package dist

import "github.com/chewxy/math32"

// Fixed 128-bit kernels: four float32 lanes per iteration, unconditional
// full-width loads, no tail handling. PRECONDITION: len(a) == len(b) and
// len(a)%4 == 0; reading past a non-conforming length is undefined
// behavior, so the dispatch layer only selects these when the caller's d
// conforms. Partial sums stay in four lanes until the single horizontal
// reduction at the end.

// DotF32x4 computes the dot product over exact multiples of 4 elements.
func DotF32x4(a, b []float32) float32 {
	var s0, s1, s2, s3 float32
	for i := 0; i < len(a); i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	return s0 + s1 + s2 + s3
}

// CosF32x4 computes cosine similarity over exact multiples of 4 elements.
// All three accumulators are carried in one pass, like the predicated
// variant.
func CosF32x4(a, b []float32) float32 {
	var ab0, ab1, ab2, ab3 float32
	var a20, a21, a22, a23 float32
	var b20, b21, b22, b23 float32
	for i := 0; i < len(a); i += 4 {
		x0, x1, x2, x3 := a[i], a[i+1], a[i+2], a[i+3]
		y0, y1, y2, y3 := b[i], b[i+1], b[i+2], b[i+3]
		ab0 += x0 * y0
		ab1 += x1 * y1
		ab2 += x2 * y2
		ab3 += x3 * y3
		a20 += x0 * x0
		a21 += x1 * x1
		a22 += x2 * x2
		a23 += x3 * x3
		b20 += y0 * y0
		b21 += y1 * y1
		b22 += y2 * y2
		b23 += y3 * y3
	}
	ab := ab0 + ab1 + ab2 + ab3
	a2 := a20 + a21 + a22 + a23
	b2 := b20 + b21 + b22 + b23
	return ab / (math32.Sqrt(a2) * math32.Sqrt(b2))
}

// EuclideanF32x4 computes Euclidean distance over exact multiples of 4
// elements.
func EuclideanF32x4(a, b []float32) float32 {
	var s0, s1, s2, s3 float32
	for i := 0; i < len(a); i += 4 {
		d0 := a[i] - b[i]
		d1 := a[i+1] - b[i+1]
		d2 := a[i+2] - b[i+2]
		d3 := a[i+3] - b[i+3]
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}
	return math32.Sqrt(s0 + s1 + s2 + s3)
}
