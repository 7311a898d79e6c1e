// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package heat implements a command to draw
// a clustered heat map of a similarity matrix.
package heat

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/heatmap"
	"github.com/js-arias/genocmp/linkage"
	"github.com/js-arias/genocmp/matrix"
	"github.com/js-arias/genocmp/project"
)

var Command = &command.Command{
	Usage: `heat [--set <dataset>] [--rule <rule>] [--scale <value>]
	[--cell <number>] [--gradient <name>]
	[-o|--output <file>] [--reordered <file>]
	<project-file>`,
	Short: "draw a clustered heat map of a matrix",
	Long: `
Command heat reads a similarity matrix from a genocmp project, clusters the
genomes using UPGMA, and draws the matrix as a heat map, with the rows and
columns in the order of the leaves of the tree.

The argument of the command is the name of the project file.

By default the average nucleotide identity matrix ("ani") will be used. Use
the flag --set to use a different matrix.

The matrix is made symmetric using the mean of the two values of each pair.
Use the flag --rule to define a different rule. Valid values are "mean" and
"median". The distance is calculated by subtracting the similarity from 100.
Use the flag --scale to define a different scale, it can be a number, or
"max" to use the maximum value of the matrix.

By default, each cell is drawn with 10 pixels. Use the flag --cell to define
a different size. By default, the iridescent color scheme of Paul Tol is used.
Use the flag --gradient to define a different color scheme. Valid values
are "iridescent", "incandescent", "rainbow", and "gray".

By default, the image is saved as "<project>-<dataset>-heat.png". Use the
flag --output, or -o, to define a different file name.

If the flag --reordered is defined, the symmetric matrix, with the genomes in
the order of the heat map, will be saved in the indicated file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var setFlag string
var ruleFlag string
var scaleFlag string
var cellSize int
var gradFlag string
var output string
var reorderFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&setFlag, "set", string(project.ANI), "")
	c.Flags().StringVar(&ruleFlag, "rule", "mean", "")
	c.Flags().StringVar(&scaleFlag, "scale", "100", "")
	c.Flags().IntVar(&cellSize, "cell", heatmap.DefaultCell, "")
	c.Flags().StringVar(&gradFlag, "gradient", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&reorderFile, "reordered", "", "")
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
	scale, err := matrix.ParseScale(scaleFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}
	grad, err := heatmap.ParseGradient(gradFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	m, err := p.Matrix(set)
	if err != nil {
		return err
	}
	sym, err := m.Symmetrize(rule)
	if err != nil {
		return err
	}
	t, err := linkage.Cluster(sym, rule, scale)
	if err != nil {
		return err
	}
	order, err := t.OrderLabels()
	if err != nil {
		return err
	}
	sym, err = sym.Reorder(order)
	if err != nil {
		return err
	}

	img := &heatmap.Image{
		Matrix:   sym,
		Cell:     cellSize,
		Gradient: grad,
	}
	img.Format()

	if output == "" {
		output = fmt.Sprintf("%s-%s-heat.png", args[0], set)
	}
	if err := writeImage(output, img); err != nil {
		return err
	}

	if reorderFile != "" {
		if err := writeMatrix(reorderFile, sym); err != nil {
			return err
		}
	}
	return nil
}

func writeImage(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("when encoding image file %q: %v", name, err)
	}
	return nil
}

func writeMatrix(name string, m *matrix.Matrix) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := m.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
