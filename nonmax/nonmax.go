// Package nonmax finds local maxima in real-valued 2D grids by non-maximum
// suppression.
package nonmax

import "sort"

// Point is a local maximum location and its value. X is the column, Y the
// row.
type Point struct {
	X, Y  int
	Value float64
}

// Find returns the strict local maxima of a row-major width x height grid,
// i.e. the cells greater than all eight neighbours. A margin of border cells
// around the grid is excluded. Results are sorted by descending value.
func Find(data []float64, width, height, border int) []Point {
	var out []Point
	for y := border; y < height-border; y++ {
		for x := border; x < width-border; x++ {
			v := data[y*width+x]
			if isMax(data, width, height, x, y, 1, v) {
				out = append(out, Point{X: x, Y: y, Value: v})
			}
		}
	}
	sortPoints(out)
	return out
}

// FindBlock returns local maxima with a minimum separation of block cells.
// The grid is tiled into block x block regions; the maximum of each region
// is kept if it is greater than every cell within block cells of it. This
// touches each interior cell once during the tiling scan, so it is cheaper
// than Find for large separations. Results are sorted by descending value.
func FindBlock(data []float64, width, height, block int) []Point {
	if block < 1 {
		block = 1
	}
	var out []Point
	for by := 0; by < height; by += block {
		for bx := 0; bx < width; bx += block {
			// Maximum of the block.
			mx, my := bx, by
			mv := data[by*width+bx]
			for y := by; y < min(by+block, height); y++ {
				for x := bx; x < min(bx+block, width); x++ {
					if v := data[y*width+x]; v > mv {
						mx, my, mv = x, y, v
					}
				}
			}
			// Validate against the full neighbourhood.
			if isMax(data, width, height, mx, my, block, mv) {
				out = append(out, Point{X: mx, Y: my, Value: mv})
			}
		}
	}
	sortPoints(out)
	return out
}

// isMax reports whether v at (x, y) is strictly greater than every other
// cell within radius cells, clamped to the grid.
func isMax(data []float64, width, height, x, y, radius int, v float64) bool {
	for j := max(y-radius, 0); j <= min(y+radius, height-1); j++ {
		for i := max(x-radius, 0); i <= min(x+radius, width-1); i++ {
			if i == x && j == y {
				continue
			}
			if data[j*width+i] >= v {
				return false
			}
		}
	}
	return true
}

func sortPoints(pts []Point) {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Value != pts[j].Value {
			return pts[i].Value > pts[j].Value
		}
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
}

func min(a, b int) int {
	if b < a {
		return b
	}
	return a
}

func max(a, b int) int {
	if a < b {
		return b
	}
	return a
}
