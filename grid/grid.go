// Package grid converts between image.Image values and the flat row-major
// float64 grids consumed by the transform packages.
package grid

import (
	"fmt"
	"image"
	"image/color"
	"math/bits"

	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/floats"

	"github.com/aherbert/gdsc-core-go/fht"
)

// Grid is a real-valued image with row-major storage.
type Grid struct {
	Width, Height int
	Data          []float64
}

// New returns a zero-filled grid.
func New(width, height int) *Grid {
	return &Grid{Width: width, Height: height, Data: make([]float64, width*height)}
}

// FromData wraps an existing row-major array. The data is not copied.
func FromData(data []float64, width, height int) (*Grid, error) {
	if len(data) != width*height {
		return nil, fmt.Errorf("data length %d does not match %dx%d grid", len(data), width, height)
	}
	return &Grid{Width: width, Height: height, Data: data}, nil
}

// FromImage converts an image to a luminance grid with values in [0, 1].
func FromImage(im image.Image) *Grid {
	bounds := im.Bounds()
	g := New(bounds.Dx(), bounds.Dy())
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, gr, b, _ := im.At(x, y).RGBA()
			g.Data[i] = (0.299*float64(r) + 0.587*float64(gr) + 0.114*float64(b)) / 0xffff
			i++
		}
	}
	return g
}

// At returns the value at column x, row y.
func (g *Grid) At(x, y int) float64 { return g.Data[y*g.Width+x] }

// Set assigns the value at column x, row y.
func (g *Grid) Set(x, y int, v float64) { g.Data[y*g.Width+x] = v }

// NextPowerOfTwo returns the smallest power of two that is at least n and at
// least 2.
func NextPowerOfTwo(n int) int {
	if n <= 2 {
		return 2
	}
	return 1 << bits.Len(uint(n-1))
}

// PowerOfTwo copies the grid into the top-left corner of the smallest
// square power-of-two grid that holds it. Extra space is zero filled.
func (g *Grid) PowerOfTwo() *Grid {
	n := NextPowerOfTwo(g.Width)
	if m := NextPowerOfTwo(g.Height); m > n {
		n = m
	}
	out, err := g.PadTo(n)
	if err != nil {
		panic(err)
	}
	return out
}

// PadTo copies the grid into the top-left corner of an n x n grid. Extra
// space is zero filled. n must be at least as large as both dimensions.
func (g *Grid) PadTo(n int) (*Grid, error) {
	if n < g.Width || n < g.Height {
		return nil, fmt.Errorf("target size %d smaller than %dx%d grid", n, g.Width, g.Height)
	}
	out := New(n, n)
	for y := 0; y < g.Height; y++ {
		copy(out.Data[y*n:y*n+g.Width], g.Data[y*g.Width:(y+1)*g.Width])
	}
	return out, nil
}

// ResizePowerOfTwo resamples the grid to the smallest square power-of-two
// size that holds it, using Lanczos interpolation. Unlike PowerOfTwo the
// content is stretched rather than padded. Values keep the range of the
// source grid, quantized by the 16-bit intermediate image.
func (g *Grid) ResizePowerOfTwo() *Grid {
	n := NextPowerOfTwo(g.Width)
	if m := NextPowerOfTwo(g.Height); m > n {
		n = m
	}
	if n == g.Width && n == g.Height {
		return g.Clone()
	}
	// The 16-bit image rescales [lo, hi] onto the full gray range; map the
	// resampled values back afterwards.
	lo, hi := rangeOf(g.Data)
	im := resize.Resize(uint(n), uint(n), g.Gray16(), resize.Lanczos3)
	out := FromImage(im)
	for i, v := range out.Data {
		out.Data[i] = lo + v*(hi-lo)
	}
	return out
}

// Crop returns the top-left w x h sub-grid.
func (g *Grid) Crop(w, h int) (*Grid, error) {
	if w > g.Width || h > g.Height {
		return nil, fmt.Errorf("crop %dx%d exceeds %dx%d grid", w, h, g.Width, g.Height)
	}
	out := New(w, h)
	for y := 0; y < h; y++ {
		copy(out.Data[y*w:(y+1)*w], g.Data[y*g.Width:y*g.Width+w])
	}
	return out, nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := New(g.Width, g.Height)
	copy(out.Data, g.Data)
	return out
}

// Hartley wraps a copy of the grid in a spatial-domain transform. The grid
// must already be square with a power-of-two side; use PowerOfTwo or
// ResizePowerOfTwo first if it is not.
func (g *Grid) Hartley() (*fht.Transform, error) {
	data := make([]float64, len(g.Data))
	copy(data, g.Data)
	return fht.New(data, g.Width, g.Height, false)
}

// Gray rescales the grid to an 8-bit grayscale image using the full range
// between the minimum and maximum values. A constant grid maps to black.
func (g *Grid) Gray() *image.Gray {
	lo, hi := rangeOf(g.Data)
	im := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	scale := 0.0
	if hi > lo {
		scale = 255 / (hi - lo)
	}
	for i, v := range g.Data {
		im.Pix[i] = uint8((v - lo) * scale)
	}
	return im
}

// Gray16 rescales the grid to a 16-bit grayscale image.
func (g *Grid) Gray16() *image.Gray16 {
	lo, hi := rangeOf(g.Data)
	im := image.NewGray16(image.Rect(0, 0, g.Width, g.Height))
	scale := 0.0
	if hi > lo {
		scale = 65535 / (hi - lo)
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			im.SetGray16(x, y, color.Gray16{Y: uint16((g.At(x, y) - lo) * scale)})
		}
	}
	return im
}

func rangeOf(x []float64) (lo, hi float64) {
	if len(x) == 0 {
		return 0, 0
	}
	return floats.Min(x), floats.Max(x)
}
