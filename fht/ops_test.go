package fht

import (
	"math"
	"math/rand"
	"sync"
	"testing"
)

// Direct circular convolution in the spatial domain.
func circularConvolve(x, k []float64, n int) []float64 {
	out := make([]float64, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			var sum float64
			for p := 0; p < n; p++ {
				for q := 0; q < n; q++ {
					sum += x[p*n+q] * k[((r-p+n)%n)*n+((c-q+n)%n)]
				}
			}
			out[r*n+c] = sum
		}
	}
	return out
}

// Direct circular correlation in the spatial domain.
func circularCorrelate(x, k []float64, n int) []float64 {
	out := make([]float64, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			var sum float64
			for p := 0; p < n; p++ {
				for q := 0; q < n; q++ {
					sum += x[((p+r)%n)*n+((q+c)%n)] * k[p*n+q]
				}
			}
			out[r*n+c] = sum
		}
	}
	return out
}

func TestMultiplyMatchesConvolution(t *testing.T) {
	for _, n := range []int{4, 8} {
		x := randGrid(n)
		k := randGrid(n)
		want := circularConvolve(x, k, n)

		xt := mustNew(t, append([]float64(nil), x...), n, false)
		kt := mustNew(t, append([]float64(nil), k...), n, false)
		xt.Forward()
		kt.Forward()
		res := xt.Multiply(kt, nil)
		res.Inverse()
		sliceEq(t, want, res.Data(), eps)
	}
}

func TestConjugateMultiplyMatchesCorrelation(t *testing.T) {
	for _, n := range []int{4, 8} {
		x := randGrid(n)
		k := randGrid(n)
		want := circularCorrelate(x, k, n)

		xt := mustNew(t, append([]float64(nil), x...), n, false)
		kt := mustNew(t, append([]float64(nil), k...), n, false)
		xt.Forward()
		kt.Forward()
		res := xt.ConjugateMultiply(kt, nil)
		res.Inverse()
		sliceEq(t, want, res.Data(), eps)
	}
}

// Convolving and then deconvolving by a well-conditioned kernel restores the
// input.
func TestDivideUndoesMultiply(t *testing.T) {
	const n = 8
	x := randGrid(n)
	// A dominant impulse keeps every transform coefficient of the kernel
	// well away from zero.
	k := make([]float64, n*n)
	k[0] = 2
	for i := 1; i < len(k); i++ {
		k[i] = 0.01 * rand.Float64()
	}

	xt := mustNew(t, append([]float64(nil), x...), n, false)
	kt := mustNew(t, k, n, false)
	xt.Forward()
	kt.Forward()
	y := xt.Multiply(kt, nil)
	z := y.Divide(kt, nil)
	z.Inverse()
	sliceEq(t, x, z.Data(), eps)
}

// Each pointwise operation must give the same result whether or not the
// operand has been precomputed.
func TestFastAgreesWithDirect(t *testing.T) {
	type op struct {
		name string
		run  func(x, k *Transform) *Transform
	}
	ops := []op{
		{"multiply", func(x, k *Transform) *Transform { return x.Multiply(k, nil) }},
		{"conjugate-multiply", func(x, k *Transform) *Transform { return x.ConjugateMultiply(k, nil) }},
		{"divide", func(x, k *Transform) *Transform { return x.Divide(k, nil) }},
	}

	const n = 16
	xt := mustNew(t, randGrid(n), n, false)
	kt := mustNew(t, randGrid(n), n, false)
	xt.Forward()
	kt.Forward()

	kt.InitialiseFastOperations()
	for _, o := range ops {
		// The copy has no precomputation so it takes the direct path.
		direct := o.run(xt, kt.Copy())
		fast := o.run(xt, kt)
		sliceEq(t, direct.Data(), fast.Data(), 1e-10)
	}
}

func TestDivideNearZeroSafe(t *testing.T) {
	const n = 4
	// A frequency-domain kernel with exact zeros; the magnitude floor must
	// keep the quotient finite.
	k := make([]float64, n*n)
	k[3] = 1
	k[7] = -2
	xt := mustNew(t, randGrid(n), n, true)
	kt := mustNew(t, k, n, true)

	for _, fast := range []bool{false, true} {
		if fast {
			kt.InitialiseFastOperations()
		}
		res := xt.Divide(kt, nil)
		for i, v := range res.Data() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("fast=%v at %d: non-finite value %v", fast, i, v)
			}
		}
	}
}

func TestOperationsUseCallerBuffer(t *testing.T) {
	const n = 4
	xt := mustNew(t, randGrid(n), n, true)
	kt := mustNew(t, randGrid(n), n, true)

	buf := make([]float64, n*n)
	res := xt.Multiply(kt, buf)
	buf[0] = 42
	if res.Data()[0] != 42 {
		t.Error("result does not use the caller-supplied buffer")
	}

	// A wrong-length buffer is replaced by a fresh allocation.
	res = xt.Multiply(kt, make([]float64, 3))
	if len(res.Data()) != n*n {
		t.Errorf("result length %d, want %d", len(res.Data()), n*n)
	}
}

func TestOperandsUnmodified(t *testing.T) {
	const n = 4
	x := randGrid(n)
	k := randGrid(n)
	xt := mustNew(t, append([]float64(nil), x...), n, true)
	kt := mustNew(t, append([]float64(nil), k...), n, true)
	kt.InitialiseFastOperations()

	xt.Multiply(kt, nil)
	xt.ConjugateMultiply(kt, nil)
	xt.Divide(kt, nil)
	sliceEq(t, x, xt.Data(), 0)
	sliceEq(t, k, kt.Data(), 0)
}

func TestTransformInvalidatesFastState(t *testing.T) {
	const n = 4
	kt := mustNew(t, randGrid(n), n, false)
	kt.Forward()
	kt.InitialiseFastOperations()
	if kt.fastMul.Load() == nil || kt.fastMag.Load() == nil {
		t.Fatal("precomputation missing")
	}
	kt.Inverse()
	if kt.fastMul.Load() != nil || kt.fastMag.Load() != nil {
		t.Fatal("stale precomputation survived a transform")
	}
}

func TestInitialiseFastConcurrent(t *testing.T) {
	const n = 16
	kt := mustNew(t, randGrid(n), n, false)
	kt.Forward()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kt.InitialiseFastOperations()
		}()
	}
	wg.Wait()

	xt := mustNew(t, randGrid(n), n, true)
	fast := xt.Divide(kt, nil)
	direct := xt.Divide(kt.Copy(), nil)
	sliceEq(t, direct.Data(), fast.Data(), 1e-10)
}

func TestSizeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("multiply of different sizes did not panic")
		}
	}()
	a := mustNew(t, randGrid(4), 4, true)
	b := mustNew(t, randGrid(8), 8, true)
	a.Multiply(b, nil)
}

func BenchmarkMultiply(b *testing.B) {
	const n = 256
	xt, _ := New(randGrid(n), n, n, true)
	kt, _ := New(randGrid(n), n, n, true)
	buf := make([]float64, n*n)

	b.Run("direct", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			xt.Multiply(kt, buf)
		}
	})
	kt.InitialiseFastMultiply()
	b.Run("fast", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			xt.Multiply(kt, buf)
		}
	})
}
