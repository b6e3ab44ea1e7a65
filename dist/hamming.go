package dist

import (
	"encoding/binary"
	"math/bits"
)

// Hamming-distance kernels: population count of the bitwise XOR of two
// bit-packed buffers. A buffer of n bytes carries d = 8*n bits. The
// variants differ in chunk width, in whether the count is taken per byte
// or per 64-bit word, and in tail handling; bits.OnesCount* lowers to the
// hardware population-count instruction where one exists.

// Hamming returns the number of differing bits between a and b, i.e.
// the Hamming distance over the 8*len(a) bits the buffers pack.
// Covers any length: full 64-bit words first, then the remaining bytes.
// PRECONDITION: len(a) == len(b).
func Hamming(a, b []byte) int {
	n := len(a)
	var count int

	i := 0
	for ; i+8 <= n; i += 8 {
		x := binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:])
		count += bits.OnesCount64(x)
	}
	for ; i < n; i++ {
		count += bits.OnesCount8(a[i] ^ b[i])
	}

	return count
}

// HammingBlock128 returns the number of differing bits, processing one
// 128-bit block per iteration with a per-byte population count, the way
// 128-bit vector units without a wide popcount do it. The per-block
// counts accumulate into a running counter and are summed once.
// PRECONDITION: len(a) == len(b) and len(a)%16 == 0.
func HammingBlock128(a, b []byte) int {
	var count int
	for i := 0; i < len(a); i += 16 {
		blockA := a[i : i+16]
		blockB := b[i : i+16]
		var block int
		for j := 0; j < 16; j++ {
			block += bits.OnesCount8(blockA[j] ^ blockB[j])
		}
		count += block
	}
	return count
}

// HammingWords64 returns the number of differing bits, reducing two
// 64-bit lanes per iteration with the hardware population count and
// keeping one running counter per lane until the final horizontal sum.
// PRECONDITION: len(a) == len(b) and len(a)%16 == 0.
func HammingWords64(a, b []byte) int {
	var c0, c1 int
	for i := 0; i < len(a); i += 16 {
		x0 := binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:])
		x1 := binary.LittleEndian.Uint64(a[i+8:]) ^ binary.LittleEndian.Uint64(b[i+8:])
		c0 += bits.OnesCount64(x0)
		c1 += bits.OnesCount64(x1)
	}
	return c0 + c1
}
