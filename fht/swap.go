package fht

import "fmt"

// SwapQuadrants exchanges the four quadrants of the grid so that the
// zero-frequency term moves between the corner and the centre, the usual
// convention for displaying a spectrum. The swap is an involution.
func (t *Transform) SwapQuadrants() {
	// The side is a power of two so the even-dimension precondition of
	// the general routine always holds.
	swapQuadrants(t.data, t.size, t.size)
}

// SwapQuadrants exchanges the four quadrants of a row-major width x height
// grid in place. Both dimensions must be even.
func SwapQuadrants(pixels []float64, width, height int) error {
	if width%2 != 0 || height%2 != 0 {
		return fmt.Errorf("%w: %dx%d", ErrOddDimensions, width, height)
	}
	if len(pixels) != width*height {
		return fmt.Errorf("pixel length %d does not match %dx%d grid", len(pixels), width, height)
	}
	swapQuadrants(pixels, width, height)
	return nil
}

func swapQuadrants(pixels []float64, width, height int) {
	halfW := width / 2
	halfH := height / 2
	tmp := make([]float64, halfW)
	// Upper right with lower left, then upper left with lower right.
	swapBlocks(pixels, pixels, width, halfW, 0, 0, halfH, halfW, halfH, tmp)
	swapBlocks(pixels, pixels, width, 0, 0, halfW, halfH, halfW, halfH, tmp)
}

// swapBlocks exchanges the w x h rectangle of pixelsA at (ax, ay) with the
// rectangle of pixelsB at (bx, by) using a row-length temporary buffer.
// Rows are paired at equal offsets within the two rectangles and every row
// passes through the buffer, so the swap remains correct when pixelsA and
// pixelsB alias the same array.
func swapBlocks(pixelsA, pixelsB []float64, width, ax, ay, bx, by, w, h int, tmp []float64) {
	for ya, yb := ay+h-1, by+h-1; ya >= ay; ya, yb = ya-1, yb-1 {
		ai := ya*width + ax
		bi := yb*width + bx
		copy(tmp[:w], pixelsA[ai:ai+w])
		copy(pixelsA[ai:ai+w], pixelsB[bi:bi+w])
		copy(pixelsB[bi:bi+w], tmp[:w])
	}
}
