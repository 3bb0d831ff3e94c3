package fht

import "math/bits"

func log2(n int) int {
	return bits.Len(uint(n)) - 1
}

// dfht performs an in-place 1D fast Hartley transform of x. The length of x
// must equal the size the tables were built for, and scratch must be at
// least that long. The decomposition is decimation in time: bit-reversal
// reordering, a radix-4 first stage over groups of four adjacent elements,
// then log2(n)-2 radix-2 stages using the quarter-period twiddle tables.
// For an inverse transform every output is divided by n.
func dfht(x []float64, inverse bool, tbl *tables, scratch []float64) {
	n := len(x)

	for i, j := range tbl.bitrev {
		scratch[i] = x[j]
	}
	copy(x, scratch[:n])

	if n == 2 {
		x[0], x[1] = x[0]+x[1], x[0]-x[1]
	} else {
		// First and second stages as one radix-4 pass.
		numGps := n / 4
		for gp := 0; gp < numGps; gp++ {
			base := gp * 4
			rt1 := x[base] + x[base+1]
			rt2 := x[base] - x[base+1]
			rt3 := x[base+2] + x[base+3]
			rt4 := x[base+2] - x[base+3]
			x[base] = rt1 + rt3
			x[base+1] = rt2 + rt4
			x[base+2] = rt1 - rt3
			x[base+3] = rt2 - rt4
		}

		// Remaining radix-2 stages.
		gpSize := 4
		numBfs := 2
		numGps /= 2
		stages := log2(n)
		for stage := 2; stage < stages; stage++ {
			for gp := 0; gp < numGps; gp++ {
				ad0 := gp * gpSize * 2
				// The first butterfly of a group needs no twiddles.
				ad1 := ad0
				ad2 := ad1 + gpSize
				ad3 := ad1 + gpSize/2
				ad4 := ad3 + gpSize
				rt1 := x[ad1]
				x[ad1] += x[ad2]
				x[ad2] = rt1 - x[ad2]
				rt1 = x[ad3]
				x[ad3] += x[ad4]
				x[ad4] = rt1 - x[ad4]
				for bf := 1; bf < numBfs; bf++ {
					ad1 = bf + ad0
					ad2 = ad1 + gpSize
					ad3 = gpSize - bf + ad0
					ad4 = ad3 + gpSize
					cs := bf * numGps
					rt1 = x[ad2]*tbl.cos[cs] + x[ad4]*tbl.sin[cs]
					rt2 := x[ad4]*tbl.cos[cs] - x[ad2]*tbl.sin[cs]
					x[ad2] = x[ad1] - rt1
					x[ad1] += rt1
					x[ad4] = x[ad3] + rt2
					x[ad3] -= rt2
				}
			}
			gpSize *= 2
			numBfs *= 2
			numGps /= 2
		}
	}

	if inverse {
		norm := 1 / float64(n)
		for i := range x {
			x[i] *= norm
		}
	}
}
