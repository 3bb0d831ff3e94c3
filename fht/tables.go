package fht

import (
	"math"
	"math/bits"
	"sync"
)

// tables holds the per-size lookup state for the 1D transform passes: one
// quarter period of cosine and sine twiddle factors and the bit-reversal
// permutation. A tables value is never mutated after construction and is
// shared by every Transform of the same size.
type tables struct {
	cos    []float64
	sin    []float64
	bitrev []int
}

var (
	tablesMu  sync.Mutex
	tablesFor = make(map[int]*tables)
)

// tablesForSize returns the shared lookup tables for side n, building them on
// first use.
func tablesForSize(n int) *tables {
	tablesMu.Lock()
	defer tablesMu.Unlock()
	if t, ok := tablesFor[n]; ok {
		return t
	}
	t := newTables(n)
	tablesFor[n] = t
	return t
}

func newTables(n int) *tables {
	quarter := n / 4
	c := make([]float64, quarter)
	s := make([]float64, quarter)
	for i := 0; i < quarter; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		c[i] = math.Cos(theta)
		s[i] = math.Sin(theta)
	}
	width := bits.Len(uint(n)) - 1
	rev := make([]int, n)
	for i := range rev {
		rev[i] = int(bits.Reverse(uint(i)) >> (bits.UintSize - width))
	}
	return &tables{cos: c, sin: s, bitrev: rev}
}
