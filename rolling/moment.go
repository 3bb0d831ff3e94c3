// Package rolling accumulates first and second statistical moments of a
// stream of values using rolling updates, so the mean and variance are
// available at any point without a second pass. Values can also be removed,
// supporting sliding-window statistics.
package rolling

import "math"

// Moment holds the count, mean and sum of squared deviations of the values
// seen so far. The zero value is an empty accumulator.
type Moment struct {
	n    int
	mean float64
	m2   float64
}

// Of accumulates every value of a slice.
func Of(values []float64) Moment {
	var m Moment
	m.AddAll(values...)
	return m
}

// Add accumulates a value.
func (m *Moment) Add(x float64) {
	m.n++
	delta := x - m.mean
	m.mean += delta / float64(m.n)
	m.m2 += delta * (x - m.mean)
}

// AddAll accumulates every value.
func (m *Moment) AddAll(values ...float64) {
	for _, x := range values {
		m.Add(x)
	}
}

// Remove discards a value previously accumulated. Removing a value that was
// never added gives meaningless results.
func (m *Moment) Remove(x float64) {
	if m.n == 0 {
		panic("remove from empty accumulator")
	}
	if m.n == 1 {
		*m = Moment{}
		return
	}
	after := m.mean
	m.n--
	m.mean = (float64(m.n+1)*after - x) / float64(m.n)
	m.m2 -= (x - m.mean) * (x - after)
}

// Merge accumulates everything held by another accumulator.
func (m *Moment) Merge(o Moment) {
	if o.n == 0 {
		return
	}
	if m.n == 0 {
		*m = o
		return
	}
	n := m.n + o.n
	delta := o.mean - m.mean
	m.mean += delta * float64(o.n) / float64(n)
	m.m2 += o.m2 + delta*delta*float64(m.n)*float64(o.n)/float64(n)
	m.n = n
}

// N returns the number of accumulated values.
func (m Moment) N() int { return m.n }

// Sum returns the sum of the accumulated values.
func (m Moment) Sum() float64 { return m.mean * float64(m.n) }

// Mean returns the mean, or NaN if the accumulator is empty.
func (m Moment) Mean() float64 {
	if m.n == 0 {
		return math.NaN()
	}
	return m.mean
}

// Variance returns the sample variance (n-1 denominator), or 0 if fewer
// than two values have been accumulated.
func (m Moment) Variance() float64 {
	if m.n < 2 {
		return 0
	}
	return m.m2 / float64(m.n-1)
}

// SD returns the sample standard deviation.
func (m Moment) SD() float64 {
	return math.Sqrt(m.Variance())
}
