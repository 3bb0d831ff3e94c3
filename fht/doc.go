/*
Package fht provides a 2D fast Hartley transform for square power-of-two
real-valued grids.

The Hartley transform is a real-to-real relative of the Fourier transform.
Convolution, correlation and deconvolution of two grids reduce to pointwise
operations between their transforms:

	x, _ := fht.New(pixels, n, n, false)
	k, _ := fht.New(kernel, n, n, false)
	x.Forward()
	k.Forward()
	y := x.Multiply(k, nil)
	y.Inverse()

When one transform is applied to many inputs, precomputing its symmetry
decomposition roughly halves the work of each pointwise operation:

	k.InitialiseFastOperations()
	for _, x := range inputs {
		y := x.Multiply(k, nil)
		...
	}
*/
package fht
