package grid

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestNextPowerOfTwo(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{0, 2},
		{1, 2},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{120, 128},
		{129, 256},
	}
	for _, c := range cases {
		if got := NextPowerOfTwo(c.n); got != c.want {
			t.Errorf("NextPowerOfTwo(%d): want %d, got %d", c.n, c.want, got)
		}
	}
}

func TestPowerOfTwoPads(t *testing.T) {
	g := New(3, 2)
	for i := range g.Data {
		g.Data[i] = float64(i + 1)
	}
	p := g.PowerOfTwo()
	if p.Width != 4 || p.Height != 4 {
		t.Fatalf("padded size %dx%d, want 4x4", p.Width, p.Height)
	}
	want := []float64{
		1, 2, 3, 0,
		4, 5, 6, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	for i := range want {
		if p.Data[i] != want[i] {
			t.Errorf("at %d: want %g, got %g", i, want[i], p.Data[i])
		}
	}
}

func TestPadToTooSmall(t *testing.T) {
	if _, err := New(5, 3).PadTo(4); err == nil {
		t.Error("want error for target smaller than grid")
	}
}

func TestCropUndoesPad(t *testing.T) {
	g := New(3, 2)
	for i := range g.Data {
		g.Data[i] = float64(i)
	}
	p := g.PowerOfTwo()
	c, err := p.Crop(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	for i := range g.Data {
		if c.Data[i] != g.Data[i] {
			t.Errorf("at %d: want %g, got %g", i, g.Data[i], c.Data[i])
		}
	}
}

func TestFromImageLuminance(t *testing.T) {
	im := image.NewRGBA(image.Rect(0, 0, 2, 1))
	im.Set(0, 0, color.White)
	im.Set(1, 0, color.Black)
	g := FromImage(im)
	if math.Abs(g.At(0, 0)-1) > 1e-3 {
		t.Errorf("white: want 1, got %g", g.At(0, 0))
	}
	if g.At(1, 0) != 0 {
		t.Errorf("black: want 0, got %g", g.At(1, 0))
	}
}

func TestHartleyRoundTrip(t *testing.T) {
	g := New(4, 4)
	for i := range g.Data {
		g.Data[i] = float64(i + 1)
	}
	ft, err := g.Hartley()
	if err != nil {
		t.Fatal(err)
	}
	ft.Forward()
	ft.Inverse()
	for i := range g.Data {
		if math.Abs(ft.Data()[i]-g.Data[i]) > 1e-8 {
			t.Errorf("at %d: want %g, got %g", i, g.Data[i], ft.Data()[i])
		}
	}
}

func TestHartleyRejectsNonPowerOfTwo(t *testing.T) {
	if _, err := New(3, 3).Hartley(); err == nil {
		t.Error("want error for 3x3 grid")
	}
}

func TestResizePowerOfTwo(t *testing.T) {
	g := New(6, 5)
	for i := range g.Data {
		g.Data[i] = float64(i % 7)
	}
	r := g.ResizePowerOfTwo()
	if r.Width != 8 || r.Height != 8 {
		t.Fatalf("resized to %dx%d, want 8x8", r.Width, r.Height)
	}
}

// Resampling must preserve values, not renormalize them: a narrow-range
// grid keeps its range and mean (up to interpolation overshoot and 16-bit
// quantization).
func TestResizePowerOfTwoPreservesValues(t *testing.T) {
	g := New(6, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			v := 0.2
			if x >= 3 {
				v = 0.4
			}
			g.Set(x, y, v)
		}
	}
	r := g.ResizePowerOfTwo()

	var sum float64
	for _, v := range r.Data {
		if v < 0.1 || v > 0.5 {
			t.Fatalf("value %g outside the source range", v)
		}
		sum += v
	}
	mean := sum / float64(len(r.Data))
	if math.Abs(mean-0.3) > 0.05 {
		t.Errorf("mean: want 0.3, got %g", mean)
	}
}

// A constant grid stays constant at the same value.
func TestResizePowerOfTwoConstant(t *testing.T) {
	g := New(5, 5)
	for i := range g.Data {
		g.Data[i] = 0.25
	}
	r := g.ResizePowerOfTwo()
	for i, v := range r.Data {
		if math.Abs(v-0.25) > 1e-3 {
			t.Errorf("at %d: want 0.25, got %g", i, v)
		}
	}
}

func TestGrayRange(t *testing.T) {
	g := New(2, 2)
	g.Data = []float64{-1, 0, 1, 3}
	im := g.Gray()
	if im.Pix[0] != 0 {
		t.Errorf("min pixel: want 0, got %d", im.Pix[0])
	}
	if im.Pix[3] != 255 {
		t.Errorf("max pixel: want 255, got %d", im.Pix[3])
	}
}
