package fht

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	// ErrNotSquare is returned when the grid width and height differ.
	ErrNotSquare = errors.New("grid is not square")
	// ErrNotPowerOfTwo is returned when the grid side is not a power of two
	// of at least 2.
	ErrNotPowerOfTwo = errors.New("grid side is not a power of two")
	// ErrOddDimensions is returned when a quadrant swap is requested for a
	// grid with an odd width or height.
	ErrOddDimensions = errors.New("grid dimensions are not even")
	// ErrSpatialDomain is returned by operations that require a transformed
	// grid. The message matches the precondition: frequency domain image
	// required.
	ErrSpatialDomain = errors.New("frequency domain image required")
)

// Transform holds an n x n real grid in row-major order together with a flag
// recording whether the grid currently holds spatial samples or Hartley
// (frequency domain) coefficients.
//
// The in-place operations (Forward, Inverse, SwapQuadrants) must not be
// invoked concurrently on the same Transform. A Transform that is only read
// may be shared across goroutines; in particular the fast-operation
// initialisers are safe to race.
type Transform struct {
	size            int
	data            []float64
	frequencyDomain bool

	// Lookup tables for the 1D passes, shared across Transforms of the
	// same size. Immutable once built.
	tbl *tables
	// Row scratch buffer for the bit-reversal reordering.
	scratch []float64

	// Precomputed symmetry decomposition for pointwise operations.
	// Cleared whenever the grid is re-transformed.
	fastMul atomic.Pointer[fastMultiply]
	fastMag atomic.Pointer[[]float64]
}

// New creates a Transform over the given row-major grid. The grid must be
// square with a power-of-two side of at least 2. The Transform takes
// ownership of data; it is not copied. frequencyDomain states whether the
// samples are already Hartley coefficients.
func New(data []float64, width, height int, frequencyDomain bool) (*Transform, error) {
	if width != height {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, width, height)
	}
	if !isPowerOfTwo(width) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, width)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("data length %d does not match %dx%d grid", len(data), width, height)
	}
	return &Transform{size: width, data: data, frequencyDomain: frequencyDomain}, nil
}

// NewEmpty creates a zero-filled spatial-domain Transform of the given side.
func NewEmpty(size int) (*Transform, error) {
	return New(make([]float64, size*size), size, size, false)
}

func isPowerOfTwo(n int) bool {
	return n > 1 && n&(n-1) == 0
}

// Size returns the side length of the grid.
func (t *Transform) Size() int { return t.size }

// Data returns the backing grid. The slice is shared with the Transform, not
// a copy.
func (t *Transform) Data() []float64 { return t.data }

// At returns the value at row r, column c.
func (t *Transform) At(r, c int) float64 { return t.data[r*t.size+c] }

// IsFrequencyDomain reports whether the grid holds Hartley coefficients.
func (t *Transform) IsFrequencyDomain() bool { return t.frequencyDomain }

// Copy returns a Transform with a deep copy of the grid. Lookup tables, if
// already built, are shared with the source.
func (t *Transform) Copy() *Transform {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Transform{
		size:            t.size,
		data:            data,
		frequencyDomain: t.frequencyDomain,
		tbl:             t.tbl,
	}
}
