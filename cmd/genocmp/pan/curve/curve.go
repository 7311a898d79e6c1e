// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package curve implements a command to calculate
// the accumulation curves of a pan-genome.
package curve

import (
	"fmt"
	"image/color"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/pangenome"
	"github.com/js-arias/genocmp/project"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `curve [--skip <number>] [--iter <number>] [--seed <number>]
	[-o|--output <file>] [--plot <file>] <project-file>`,
	Short: "calculate pan-genome accumulation curves",
	Long: `
Command curve reads the gene presence-absence table of a genocmp project, and
calculates the size of the core and pan-genome as genomes are added in a
random order.

The argument of the command is the name of the project file.

By default, the genomes are added in 500 random orders. Use the flag --iter to
define a different number of iterations. Use the flag --seed to define the
seed of the random number generator (by default the current time is used).

By default, the three columns after the gene identifier are ignored. Use the
flag --skip to define a different number of annotation columns.

The output is a tab-delimited table with the number of genomes, and the mean
and standard deviation of the size of the core and pan-genome. By default it
is printed in the standard output. Use the flag --output, or -o, to define an
output file.

If the flag --plot is defined, a plot with the curves will be saved in the
indicated file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var skip int
var iter int
var seed int64
var output string
var plotFile string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&skip, "skip", pangenome.DefaultSkip, "")
	c.Flags().IntVar(&iter, "iter", 500, "")
	c.Flags().Int64Var(&seed, "seed", 0, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&plotFile, "plot", "", "")
}

func run(c *command.Command, args []string) (err error) {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if iter < 1 {
		return c.UsageError(fmt.Sprintf("invalid number of iterations: %d", iter))
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	t, err := p.Presence(skip)
	if err != nil {
		return err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cv := t.Accumulation(iter, rand.New(rand.NewSource(seed)))

	var w io.Writer = c.Stdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer func() {
			e := f.Close()
			if e != nil && err == nil {
				err = e
			}
		}()
		w = f
	}
	fmt.Fprintf(w, "# pan-genome accumulation curve of project %q\n", args[0])
	fmt.Fprintf(w, "# iterations: %d, seed: %d\n", iter, seed)
	fmt.Fprintf(w, "genomes\tcore\tcore-sd\tpan\tpan-sd\n")
	for i := range cv.CoreMean {
		fmt.Fprintf(w, "%d\t%.6f\t%.6f\t%.6f\t%.6f\n", i+1, cv.CoreMean[i], cv.CoreSD[i], cv.PanMean[i], cv.PanSD[i])
	}

	if plotFile != "" {
		if err := makePlot(cv); err != nil {
			return err
		}
	}
	return nil
}

// errPoints are points with vertical error bars.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

func newErrPoints(mean, sd []float64) errPoints {
	pts := errPoints{
		XYs:     make(plotter.XYs, len(mean)),
		YErrors: make(plotter.YErrors, len(mean)),
	}
	for i := range mean {
		pts.XYs[i].X = float64(i + 1)
		pts.XYs[i].Y = mean[i]
		pts.YErrors[i].Low = sd[i]
		pts.YErrors[i].High = sd[i]
	}
	return pts
}

func makePlot(cv pangenome.Curve) error {
	p := plot.New()
	p.X.Label.Text = "number of genomes"
	p.Y.Label.Text = "number of genes"

	curves := []struct {
		name  string
		mean  []float64
		sd    []float64
		color color.RGBA
	}{
		{"core genome", cv.CoreMean, cv.CoreSD, color.RGBA{44, 160, 44, 255}},
		{"pan genome", cv.PanMean, cv.PanSD, color.RGBA{31, 119, 180, 255}},
	}
	for _, cu := range curves {
		pts := newErrPoints(cu.mean, cu.sd)
		ln, sc, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("while building plot: %v", err)
		}
		ln.Color = cu.color
		sc.GlyphStyle.Color = cu.color

		eb, err := plotter.NewYErrorBars(pts)
		if err != nil {
			return fmt.Errorf("while building plot: %v", err)
		}
		eb.Color = cu.color

		p.Add(ln, sc, eb)
		p.Legend.Add(cu.name, ln, sc)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, plotFile); err != nil {
		return err
	}
	return nil
}
