package fht

// Forward computes the in-place 2D fast Hartley transform of the grid and
// marks the Transform as frequency domain. Any fast-operation precomputation
// is discarded.
func (t *Transform) Forward() {
	t.transform(false)
}

// Inverse computes the in-place 2D inverse fast Hartley transform of the
// grid and marks the Transform as spatial domain. Any fast-operation
// precomputation is discarded.
//
// The domain flag is set unconditionally: transforming twice in the same
// direction is permitted but is not a round trip.
func (t *Transform) Inverse() {
	t.transform(true)
}

func (t *Transform) transform(inverse bool) {
	n := t.size
	if t.tbl == nil {
		t.tbl = tablesForSize(n)
	}
	if len(t.scratch) != n {
		t.scratch = make([]float64, n)
	}

	// 1D transform of every row, then of every column via an in-place
	// transpose, then Bracewell's correction pass to combine the
	// separable transforms into the 2D Hartley transform.
	for r := 0; r < n; r++ {
		dfht(t.data[r*n:(r+1)*n], inverse, t.tbl, t.scratch)
	}
	transpose(t.data, n)
	for r := 0; r < n; r++ {
		dfht(t.data[r*n:(r+1)*n], inverse, t.tbl, t.scratch)
	}
	transpose(t.data, n)
	unshuffle(t.data, n)

	t.frequencyDomain = !inverse
	// The grid changed; invalidate the precomputed operation state.
	t.fastMul.Store(nil)
	t.fastMag.Store(nil)
}

func transpose(x []float64, n int) {
	for r := 0; r < n; r++ {
		for c := r + 1; c < n; c++ {
			x[r*n+c], x[c*n+r] = x[c*n+r], x[r*n+c]
		}
	}
}

// unshuffle rewrites four independent row and column 1D Hartley transforms
// as the 2D Hartley transform. For each pair of coordinates and their
// reflections the four values are combined via e = ((a+d)-(b+c))/2.
// See Bracewell, Fast two-dimensional Hartley transform, Proc. IEEE 74 (1986).
func unshuffle(x []float64, n int) {
	for r := 0; r <= n/2; r++ {
		rowMod := (n - r) % n
		for c := 0; c <= n/2; c++ {
			colMod := (n - c) % n
			a := x[r*n+c]
			b := x[rowMod*n+c]
			cv := x[r*n+colMod]
			d := x[rowMod*n+colMod]
			e := ((a + d) - (b + cv)) / 2
			x[r*n+c] = a - e
			x[rowMod*n+c] = b + e
			x[r*n+colMod] = cv + e
			x[rowMod*n+colMod] = d - e
		}
	}
}
