// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package hist implements a command to draw
// a histogram of the values of a similarity matrix.
package hist

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/matrix"
	"github.com/js-arias/genocmp/project"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `hist [--set <dataset>] [--rule <rule>]
	[--bins <number>]
	[-o|--output <file>] <project-file>`,
	Short: "draw a histogram of matrix values",
	Long: `
Command hist reads a similarity matrix from a genocmp project, and draws a
histogram with the values of each pair of genomes.

The argument of the command is the name of the project file.

By default the average nucleotide identity matrix ("ani") will be used. Use
the flag --set to use a different matrix.

Before drawing the histogram, the matrix is made symmetric, using the mean of
the two values of each pair. Use the flag --rule to define a different rule.
Valid values are "mean" and "median".

By default, the histogram has 28 bins. Use the flag --bins to define a
different number of bins.

By default, the histogram is saved as "<project>-<dataset>-hist.png". Use the
flag --output, or -o, to define a different file name. The format of the
image is defined by the file extension (for example ".svg" or ".pdf").
	`,
	SetFlags: setFlags,
	Run:      run,
}

var setFlag string
var ruleFlag string
var bins int
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&setFlag, "set", string(project.ANI), "")
	c.Flags().StringVar(&ruleFlag, "rule", "mean", "")
	c.Flags().IntVar(&bins, "bins", 28, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	set, err := project.ParseMatrix(setFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}
	rule, err := matrix.ParseRule(ruleFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}
	if bins < 1 {
		return c.UsageError(fmt.Sprintf("invalid number of bins: %d", bins))
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	m, err := p.Matrix(set)
	if err != nil {
		return err
	}
	m, err = m.Symmetrize(rule)
	if err != nil {
		return err
	}

	var vals plotter.Values
	for _, v := range m.Upper() {
		if math.IsNaN(v) {
			continue
		}
		vals = append(vals, v)
	}
	if len(vals) == 0 {
		return fmt.Errorf("matrix %s: no values", set)
	}

	if output == "" {
		output = fmt.Sprintf("%s-%s-hist.png", args[0], set)
	}
	return makePlot(vals, strings.ToUpper(string(set)))
}

func makePlot(vals plotter.Values, label string) error {
	p := plot.New()
	p.X.Label.Text = label + " (%)"
	p.Y.Label.Text = "frequency"

	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return fmt.Errorf("while building histogram: %v", err)
	}
	h.FillColor = color.RGBA{62, 123, 184, 255}
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, output); err != nil {
		return err
	}
	return nil
}
