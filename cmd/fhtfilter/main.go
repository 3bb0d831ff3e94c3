// Command fhtfilter filters an image by another image in the Hartley domain.
// It convolves, correlates or deconvolves the input with the kernel and
// writes the result, or the centred log power spectrum of the operation
// result, to the output file.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/disintegration/imaging"

	"github.com/aherbert/gdsc-core-go/fht"
	"github.com/aherbert/gdsc-core-go/grid"
	"github.com/aherbert/gdsc-core-go/nonmax"
	"github.com/aherbert/gdsc-core-go/rolling"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "[flags] input.png kernel.png output.png")
		flag.PrintDefaults()
	}
}

func main() {
	var (
		op       = flag.String("op", "convolve", "Operation: convolve, correlate or deconvolve.")
		resample = flag.Bool("resample", false, "Resample to the working size instead of zero padding.")
		spectrum = flag.Bool("spectrum", false, "Write the centred log power spectrum of the operation result instead of the filtered image.")
		peaks    = flag.Int("peaks", 0, "Report the strongest correlation peaks (correlate only).")
	)
	flag.Parse()
	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}

	in, err := imaging.Open(flag.Arg(0))
	if err != nil {
		log.Fatalln("load input:", err)
	}
	kern, err := imaging.Open(flag.Arg(1))
	if err != nil {
		log.Fatalln("load kernel:", err)
	}

	g := grid.FromImage(in)
	k := grid.FromImage(kern)

	// Common square power-of-two working size.
	n := grid.NextPowerOfTwo(maxInt(g.Width, g.Height, k.Width, k.Height))
	gw, err := workingGrid(g, n, *resample)
	if err != nil {
		log.Fatalln("prepare input:", err)
	}
	kw, err := workingGrid(k, n, *resample)
	if err != nil {
		log.Fatalln("prepare kernel:", err)
	}

	gt, err := gw.Hartley()
	if err != nil {
		log.Fatalln("transform input:", err)
	}
	kt, err := kw.Hartley()
	if err != nil {
		log.Fatalln("transform kernel:", err)
	}
	gt.Forward()
	kt.Forward()

	var res *fht.Transform
	switch *op {
	case "convolve":
		kt.InitialiseFastMultiply()
		res = gt.Multiply(kt, nil)
	case "correlate":
		kt.InitialiseFastMultiply()
		res = gt.ConjugateMultiply(kt, nil)
	case "deconvolve":
		kt.InitialiseFastOperations()
		res = gt.Divide(kt, nil)
	default:
		log.Fatalln("unknown operation:", *op)
	}

	var out *grid.Grid
	if *spectrum {
		re, im, err := res.Complex()
		if err != nil {
			log.Fatalln("spectrum:", err)
		}
		power := make([]float64, len(re))
		for i := range power {
			power[i] = math.Log1p(re[i]*re[i] + im[i]*im[i])
		}
		if err := fht.SwapQuadrants(power, n, n); err != nil {
			log.Fatalln("centre spectrum:", err)
		}
		out, err = grid.FromData(power, n, n)
		if err != nil {
			log.Fatalln("spectrum grid:", err)
		}
	} else {
		res.Inverse()
		full, err := grid.FromData(res.Data(), n, n)
		if err != nil {
			log.Fatalln("result grid:", err)
		}
		if *peaks > 0 && *op == "correlate" {
			reportPeaks(full, *peaks)
		}
		out = full
		if !*resample {
			out, err = full.Crop(g.Width, g.Height)
			if err != nil {
				log.Fatalln("crop result:", err)
			}
		}
	}

	m := rolling.Of(out.Data)
	log.Printf("output %dx%d: mean %.5g sd %.5g", out.Width, out.Height, m.Mean(), m.SD())

	if err := imaging.Save(out.Gray(), flag.Arg(2)); err != nil {
		log.Fatalln("save output:", err)
	}
}

func workingGrid(g *grid.Grid, n int, resample bool) (*grid.Grid, error) {
	if resample {
		r := g.ResizePowerOfTwo()
		if r.Width != n {
			return r.PadTo(n)
		}
		return r, nil
	}
	return g.PadTo(n)
}

func reportPeaks(g *grid.Grid, count int) {
	pts := nonmax.FindBlock(g.Data, g.Width, g.Height, 8)
	if len(pts) < count {
		count = len(pts)
	}
	for i := 0; i < count; i++ {
		log.Printf("peak %d: (%d, %d) value %.5g", i+1, pts[i].X, pts[i].Y, pts[i].Value)
	}
}

func maxInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
