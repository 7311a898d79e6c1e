// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package cmpcmd implements a command to compare
// two similarity matrices.
package cmpcmd

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/correlate"
	"github.com/js-arias/genocmp/matrix"
	"github.com/js-arias/genocmp/project"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `cmp [--x <dataset>] [--y <dataset>]
	[--rule <rule>] [--plot <file>] <project-file>`,
	Short: "compare two similarity matrices",
	Long: `
Command cmp reads two similarity matrices from a genocmp project, and reports
the Pearson's correlation between the values of each pair of genomes.

The argument of the command is the name of the project file.

By default, the average nucleotide identity matrix ("ani") is compared with
the digital DNA-DNA hybridization matrix ("ddh"). Use the flags --x and --y
to define the matrices to compare.

Before the comparison, both matrices are made symmetric, using the median of
the two values of each pair. Use the flag --rule to define a different rule.
Valid values are "mean" and "median". Pairs with missing values are ignored.

The output is printed in the standard output, and includes the correlation
coefficient, the number of pairs, and the p-value.

If the flag --plot is defined, a scatter plot of the values will be saved in
the indicated file. The plot includes reference lines at 95% and 96% of the
x matrix, and 70% of the y matrix, the usual thresholds for species
delimitation.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var xFlag string
var yFlag string
var ruleFlag string
var plotFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&xFlag, "x", string(project.ANI), "")
	c.Flags().StringVar(&yFlag, "y", string(project.DDH), "")
	c.Flags().StringVar(&ruleFlag, "rule", "median", "")
	c.Flags().StringVar(&plotFile, "plot", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	xSet, err := project.ParseMatrix(xFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}
	ySet, err := project.ParseMatrix(yFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}
	rule, err := matrix.ParseRule(ruleFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	x, err := readMatrix(p, xSet, rule)
	if err != nil {
		return err
	}
	y, err := readMatrix(p, ySet, rule)
	if err != nil {
		return err
	}
	if x.Len() != y.Len() {
		fmt.Fprintf(c.Stderr(), "WARNING: matrices with different number of genomes: %d and %d\n", x.Len(), y.Len())
	}

	xv, yv, err := correlate.Pairs(x, y)
	if err != nil {
		return err
	}
	res, err := correlate.Pearson(xv, yv)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.Stdout(), "x\ty\tpairs\tr\tp-value\n")
	fmt.Fprintf(c.Stdout(), "%s\t%s\t%d\t%.6f\t%s\n", xSet, ySet, res.N, res.R, res.PValueString())

	if plotFile != "" {
		xl := strings.ToUpper(string(xSet))
		yl := strings.ToUpper(string(ySet))
		if err := makePlot(xv, yv, res, xl, yl); err != nil {
			return err
		}
	}
	return nil
}

func readMatrix(p *project.Project, set project.Dataset, rule matrix.Rule) (*matrix.Matrix, error) {
	m, err := p.Matrix(set)
	if err != nil {
		return nil, err
	}
	m, err = m.Symmetrize(rule)
	if err != nil {
		return nil, fmt.Errorf("matrix %s: %v", set, err)
	}
	return m, nil
}

var thresholdColor = color.RGBA{196, 57, 57, 255}

func makePlot(xv, yv []float64, res correlate.Result, xl, yl string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Pearson r = %.2f, p-value: %s", res.R, res.PValueString())
	p.X.Label.Text = xl + " (%)"
	p.Y.Label.Text = yl + " (%)"

	pts := make(plotter.XYs, len(xv))
	for i := range xv {
		pts[i].X = xv[i]
		pts[i].Y = yv[i]
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("while building plot: %v", err)
	}
	sc.GlyphStyle.Radius = vg.Points(2)
	p.Add(sc)

	xMin, xMax, yMin, yMax := plotter.XYRange(pts)
	for _, v := range []float64{95, 96} {
		ln, err := plotter.NewLine(plotter.XYs{{X: v, Y: yMin}, {X: v, Y: yMax}})
		if err != nil {
			return fmt.Errorf("while building plot: %v", err)
		}
		ln.Color = thresholdColor
		ln.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		p.Add(ln)
	}
	ln, err := plotter.NewLine(plotter.XYs{{X: xMin, Y: 70}, {X: xMax, Y: 70}})
	if err != nil {
		return fmt.Errorf("while building plot: %v", err)
	}
	ln.Color = thresholdColor
	ln.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(ln)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, plotFile); err != nil {
		return err
	}
	return nil
}
