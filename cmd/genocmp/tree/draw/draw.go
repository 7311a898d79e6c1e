// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// trees in a genocmp project as SVG files.
package draw

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/project"
)

var Command = &command.Command{
	Usage: `draw [--tree <tree>]
	[--step <value>] [--tick <tick-value>]
	[--cut <value>]
	[-o|--output <out-prefix>]
	<project-file>`,
	Short: "draw project trees as SVG files",
	Long: `
Command draw reads a genocmp project and draws the trees into SVG-encoded
files.

The argument of the command is the name of the project file.

By default, 10 pixel units will be used per unit of branch length; use the
flag --step to define a different value (it can have decimal points).

By default, all trees in the project will be drawn. If the flag --tree is set,
only the indicated tree will be printed.

If the flag --cut is defined, the tree is cut at the indicated height, and
each cluster below that height is drawn with a different color. For example,
in an UPGMA tree of an average nucleotide identity matrix, with the default
height rule, a cut at 2.5 produces the clusters of genomes with 95% or more
of identity.

By default, a scale with ticks every unit will be added at the bottom of the
drawing. Use the flag --tick to define the tick lines, using the following
format: "<min-tick>,<max-tick>,<label-tick>", in which min-tick indicates
minor ticks, max-tick indicates major ticks, and label-tick the ticks that
will be labeled; for example, the default is "1,5,5" which means that small
ticks will be added each unit, major ticks will be added every 5 units, and
labels will be added every 5 units.

By default, the names of the trees will be used as the output file names. Use
the flag -o, or --output, to define a prefix for the resulting files.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var stepX float64
var cutFlag float64
var treeName string
var tickFlag string
var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&stepX, "step", 10, "")
	c.Flags().Float64Var(&cutFlag, "cut", 0, "")
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().StringVar(&tickFlag, "tick", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	tv, err := parseTick()
	if err != nil {
		return c.UsageError(err.Error())
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	if p.Path(project.Trees) == "" {
		return nil
	}
	tc, err := p.Trees()
	if err != nil {
		return err
	}

	ls := tc.Names()
	if treeName != "" {
		if tc.Tree(treeName) == nil {
			return fmt.Errorf("tree %q not found in project %q", treeName, args[0])
		}
		ls = []string{treeName}
	}
	for _, tn := range ls {
		t := tc.Tree(tn)
		st := copyTree(t, stepX, tv)
		if cutFlag > 0 {
			st.setColor(cutFlag)
		}
		if err := writeSVG(tn, st); err != nil {
			return err
		}
	}
	return nil
}

func writeSVG(name string, t svgTree) (err error) {
	if outPrefix != "" {
		name = fmt.Sprintf("%s-%s.svg", outPrefix, name)
	} else {
		name += ".svg"
	}

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

	bw := bufio.NewWriter(f)
	if err := t.draw(bw); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}

type tickValues struct {
	min   int
	max   int
	label int
}

func parseTick() (tickValues, error) {
	if tickFlag == "" {
		return tickValues{
			min:   1,
			max:   5,
			label: 5,
		}, nil
	}

	vals := strings.Split(tickFlag, ",")
	if len(vals) != 3 {
		return tickValues{}, fmt.Errorf("invalid tick values: %q", tickFlag)
	}

	min, err := strconv.Atoi(vals[0])
	if err != nil {
		return tickValues{}, fmt.Errorf("invalid minor tick value: %q: %v", tickFlag, err)
	}

	max, err := strconv.Atoi(vals[1])
	if err != nil {
		return tickValues{}, fmt.Errorf("invalid major tick value: %q: %v", tickFlag, err)
	}

	label, err := strconv.Atoi(vals[2])
	if err != nil {
		return tickValues{}, fmt.Errorf("invalid label tick value: %q: %v", tickFlag, err)
	}
	if min < 1 || max < 1 || label < 1 {
		return tickValues{}, fmt.Errorf("invalid tick values: %q: values must be positive", tickFlag)
	}

	return tickValues{
		min:   min,
		max:   max,
		label: label,
	}, nil
}
