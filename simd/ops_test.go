package simd

import (
	"testing"
)

func TestNumLanes(t *testing.T) {
	w := VectorWidth()
	if w != 16 && w != 32 && w != 64 {
		t.Fatalf("VectorWidth() = %d, want 16, 32 or 64", w)
	}
	if got := NumLanes[float32](); got != w/4 {
		t.Errorf("NumLanes[float32]() = %d, want %d", got, w/4)
	}
	if got := NumLanes[float64](); got != w/8 {
		t.Errorf("NumLanes[float64]() = %d, want %d", got, w/8)
	}
}

func TestLoadStoreRoundTrip(t *testing.T) {
	src := make([]float32, NumLanes[float32]())
	for i := range src {
		src[i] = float32(i) + 0.5
	}
	v := Load(src)
	dst := make([]float32, len(src))
	Store(v, dst)
	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("lane %d: got %v, want %v", i, dst[i], src[i])
		}
	}
}

func TestLoad_ShortSourceZeroPads(t *testing.T) {
	v := Load([]float32{1, 2})
	data := v.Data()
	if len(data) != NumLanes[float32]() {
		t.Fatalf("lane count = %d, want %d", len(data), NumLanes[float32]())
	}
	if data[0] != 1 || data[1] != 2 {
		t.Errorf("head lanes = %v %v, want 1 2", data[0], data[1])
	}
	for i := 2; i < len(data); i++ {
		if data[i] != 0 {
			t.Errorf("lane %d = %v, want 0", i, data[i])
		}
	}
}

func TestFirstNMaskLoad(t *testing.T) {
	lanes := NumLanes[float32]()
	src := make([]float32, lanes)
	for i := range src {
		src[i] = 1
	}

	for k := 0; k <= lanes; k++ {
		m := FirstN[float32](k)
		v := MaskLoad(m, src)
		if got := ReduceSum(v); got != float32(k) {
			t.Errorf("FirstN(%d) loaded sum %v, want %d", k, got, k)
		}
	}

	// Saturates past the lane count.
	m := FirstN[float32](lanes + 5)
	if got := ReduceSum(MaskLoad(m, src)); got != float32(lanes) {
		t.Errorf("oversized FirstN loaded sum %v, want %d", got, lanes)
	}
}

func TestArithmeticOps(t *testing.T) {
	lanes := NumLanes[float32]()
	a := make([]float32, lanes)
	b := make([]float32, lanes)
	for i := range a {
		a[i] = float32(i + 1)
		b[i] = 2
	}
	va, vb := Load(a), Load(b)

	sum := Add(va, vb)
	diff := Sub(va, vb)
	prod := Mul(va, vb)
	fma := MulAdd(va, vb, Set[float32](1))

	for i := 0; i < lanes; i++ {
		if got := sum.Data()[i]; got != a[i]+2 {
			t.Errorf("Add lane %d = %v", i, got)
		}
		if got := diff.Data()[i]; got != a[i]-2 {
			t.Errorf("Sub lane %d = %v", i, got)
		}
		if got := prod.Data()[i]; got != a[i]*2 {
			t.Errorf("Mul lane %d = %v", i, got)
		}
		if got := fma.Data()[i]; got != a[i]*2+1 {
			t.Errorf("MulAdd lane %d = %v", i, got)
		}
	}
}

func TestReduceSum(t *testing.T) {
	lanes := NumLanes[float32]()
	src := make([]float32, lanes)
	var want float32
	for i := range src {
		src[i] = float32(i)
		want += float32(i)
	}
	if got := ReduceSum(Load(src)); got != want {
		t.Errorf("ReduceSum = %v, want %v", got, want)
	}
	if got := ReduceSum(Zero[float32]()); got != 0 {
		t.Errorf("ReduceSum(Zero) = %v, want 0", got)
	}
}
