package fht

import "fmt"

// magnitudeFloor caps the denominator of Divide away from zero so that
// deconvolution by a transform with near-zero coefficients cannot produce
// infinities or NaNs.
const magnitudeFloor = 1e-20

// Multiply returns the pointwise multiplication with the operand, the
// frequency-domain equivalent of convolution. Both transforms are assumed to
// already hold Hartley coefficients; no check is made. Neither operand is
// modified. If buf has length Size()*Size() it backs the result grid,
// avoiding an allocation; otherwise a new grid is allocated. The result
// shares this Transform's lookup tables.
func (t *Transform) Multiply(o *Transform, buf []float64) *Transform {
	t.checkCompatible(o)
	buf = resultBuffer(buf, len(t.data))
	if fm := o.fastMul.Load(); fm != nil {
		h1 := t.data
		for i := range buf {
			buf[i] = h1[i]*fm.even[i] + h1[fm.sym[i]]*fm.odd[i]
		}
	} else {
		t.combine(o.data, buf, false)
	}
	return t.result(buf)
}

// ConjugateMultiply returns the pointwise conjugate multiplication with the
// operand, the frequency-domain equivalent of correlation. See Multiply for
// the operand, buffer and domain conventions.
func (t *Transform) ConjugateMultiply(o *Transform, buf []float64) *Transform {
	t.checkCompatible(o)
	buf = resultBuffer(buf, len(t.data))
	if fm := o.fastMul.Load(); fm != nil {
		h1 := t.data
		for i := range buf {
			buf[i] = h1[i]*fm.even[i] - h1[fm.sym[i]]*fm.odd[i]
		}
	} else {
		t.combine(o.data, buf, true)
	}
	return t.result(buf)
}

// combine is the non-precomputed multiply kernel. The symmetry decomposition
// of h2 is computed per cell: even and odd parts across the reflected index.
func (t *Transform) combine(h2, buf []float64, conjugate bool) {
	n := t.size
	h1 := t.data
	for r, i := 0, 0; r < n; r++ {
		rowMod := (n - r) % n
		for c := 0; c < n; c++ {
			colMod := (n - c) % n
			j := rowMod*n + colMod
			h2e := (h2[i] + h2[j]) / 2
			h2o := (h2[i] - h2[j]) / 2
			if conjugate {
				buf[i] = h1[i]*h2e - h1[j]*h2o
			} else {
				buf[i] = h1[i]*h2e + h1[j]*h2o
			}
			i++
		}
	}
}

// Divide returns the pointwise division by the operand, the frequency-domain
// equivalent of deconvolution. The denominator is the squared magnitude of
// the operand's symmetric pair, floored at 1e-20. See Multiply for the
// operand, buffer and domain conventions. The fast path is used when the
// operand has InitialiseFastOperations precomputation.
func (t *Transform) Divide(o *Transform, buf []float64) *Transform {
	t.checkCompatible(o)
	buf = resultBuffer(buf, len(t.data))
	fm := o.fastMul.Load()
	mag := o.fastMag.Load()
	if fm != nil && mag != nil {
		h1 := t.data
		m := *mag
		for i := range buf {
			buf[i] = (h1[i]*fm.even[i] - h1[fm.sym[i]]*fm.odd[i]) / m[i]
		}
		return t.result(buf)
	}

	// Direct path. The even/odd parts and the magnitude are left un-halved;
	// the factor cancels in the quotient.
	n := t.size
	h1 := t.data
	h2 := o.data
	for r, i := 0, 0; r < n; r++ {
		rowMod := (n - r) % n
		for c := 0; c < n; c++ {
			colMod := (n - c) % n
			j := rowMod*n + colMod
			h2i := h2[i]
			h2j := h2[j]
			m := h2i*h2i + h2j*h2j
			if m < magnitudeFloor {
				m = magnitudeFloor
			}
			buf[i] = (h1[i]*(h2i+h2j) - h1[j]*(h2i-h2j)) / m
			i++
		}
	}
	return t.result(buf)
}

func (t *Transform) checkCompatible(o *Transform) {
	if t.size != o.size {
		panic(fmt.Sprintf("transform sizes differ: %d, %d", t.size, o.size))
	}
}

func resultBuffer(buf []float64, n int) []float64 {
	if len(buf) != n {
		return make([]float64, n)
	}
	return buf
}

// result wraps a frequency-domain grid produced by a pointwise operation,
// carrying forward the receiver's lookup tables so a following Inverse
// avoids rebuilding them.
func (t *Transform) result(buf []float64) *Transform {
	return &Transform{
		size:            t.size,
		data:            buf,
		frequencyDomain: true,
		tbl:             t.tbl,
	}
}
