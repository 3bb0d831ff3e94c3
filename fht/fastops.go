package fht

// fastMultiply is the symmetry decomposition of a frequency-domain grid,
// attached to a Transform that serves as a fixed operand for many pointwise
// operations. For each cell i, sym[i] is the index of the reflected cell
// ((n-r)%n, (n-c)%n) and even/odd are half the sum and difference of the
// two values.
type fastMultiply struct {
	even []float64
	odd  []float64
	sym  []int
}

// InitialiseFastMultiply precomputes the symmetry decomposition used by
// Multiply and ConjugateMultiply when this Transform is the operand. A
// second call is a no-op. Concurrent calls are safe: the arrays are built in
// full before publication, so a caller either sees the complete
// decomposition or triggers a redundant computation of its own.
func (t *Transform) InitialiseFastMultiply() {
	if t.fastMul.Load() != nil {
		return
	}
	n := t.size
	data := t.data
	even := make([]float64, len(data))
	odd := make([]float64, len(data))
	sym := make([]int, len(data))
	for r, i := 0, 0; r < n; r++ {
		rowMod := (n - r) % n
		for c := 0; c < n; c++ {
			colMod := (n - c) % n
			j := rowMod*n + colMod
			even[i] = (data[i] + data[j]) / 2
			odd[i] = (data[i] - data[j]) / 2
			sym[i] = j
			i++
		}
	}
	t.fastMul.Store(&fastMultiply{even: even, odd: odd, sym: sym})
}

// InitialiseFastOperations precomputes the state for all pointwise
// operations, including Divide: the fast-multiply decomposition plus the
// squared magnitude of each symmetric pair, floored to avoid division by
// values near zero. Idempotent and safe under concurrent calls.
func (t *Transform) InitialiseFastOperations() {
	t.InitialiseFastMultiply()
	if t.fastMag.Load() != nil {
		return
	}
	sym := t.fastMul.Load().sym
	data := t.data
	mag := make([]float64, len(data))
	for i := range data {
		m := data[i]*data[i] + data[sym[i]]*data[sym[i]]
		if m < magnitudeFloor {
			m = magnitudeFloor
		}
		mag[i] = m / 2
	}
	t.fastMag.Store(&mag)
}
