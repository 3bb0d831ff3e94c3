package fht

// Complex splits a frequency-domain Hartley transform into the real and
// imaginary parts of the equivalent discrete Fourier transform using the
// symmetry relations Re = (H[i]+H[j])/2 and Im = (H[j]-H[i])/2, where j is
// the reflected index of i. It returns ErrSpatialDomain if the grid has not
// been transformed.
func (t *Transform) Complex() (re, im []float64, err error) {
	if !t.frequencyDomain {
		return nil, nil, ErrSpatialDomain
	}
	n := t.size
	h := t.data
	re = make([]float64, len(h))
	im = make([]float64, len(h))
	for r, i := 0, 0; r < n; r++ {
		rowMod := (n - r) % n
		for c := 0; c < n; c++ {
			colMod := (n - c) % n
			j := rowMod*n + colMod
			re[i] = (h[i] + h[j]) / 2
			im[i] = (h[j] - h[i]) / 2
			i++
		}
	}
	return re, im, nil
}
