// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package upgma implements a command to build
// an UPGMA tree from a similarity matrix.
package upgma

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/linkage"
	"github.com/js-arias/genocmp/matrix"
	"github.com/js-arias/genocmp/project"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: `upgma [--set <dataset>] [--rule <rule>]
	[--scale <value>] [--height <rule>]
	[--name <tree-name>] [-f|--file <tree-file>]
	[-o|--output <file>] <project-file>`,
	Short: "build an UPGMA tree from a similarity matrix",
	Long: `
Command upgma reads a similarity matrix from a genocmp project, and builds a
tree using the average linkage (UPGMA) clustering algorithm.

The argument of the command is the name of the project file.

By default the average nucleotide identity matrix ("ani") will be used. Use
the flag --set to use a different matrix.

The matrix is made symmetric using the mean of the two values of each pair.
Use the flag --rule to define a different rule. Valid values are "mean" and
"median". The distance is calculated by subtracting the similarity from 100.
Use the flag --scale to define a different scale, it can be a number, or
"max" to use the maximum value of the matrix.

By default, the height of each node is half of the distance between the two
clusters joined at the node, so the sum of the branch lengths between two
genomes is the distance between them. Use the flag --height with "full" to
use the clustering distance as the height of the node.

The tree is written in Newick format in the standard output. Use the flag
--output, or -o, to write the tree to a file.

The tree is also added to the trees of the project, as a time calibrated tree
in which the branch lengths are interpreted as million years. By default the
name of the tree is the name of the matrix dataset. Use the flag --name to
define a different name. If the project already has a tree with that name,
the old tree is replaced. By default, the tree is stored in the tree file
currently defined for the project, or in "trees.tab" if the project does not
have a tree file. Use the flag --file, or -f, to define a different tree
file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var setFlag string
var ruleFlag string
var scaleFlag string
var heightFlag string
var treeName string
var treeFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&setFlag, "set", string(project.ANI), "")
	c.Flags().StringVar(&ruleFlag, "rule", "mean", "")
	c.Flags().StringVar(&scaleFlag, "scale", "100", "")
	c.Flags().StringVar(&heightFlag, "height", "half", "")
	c.Flags().StringVar(&treeName, "name", "", "")
	c.Flags().StringVar(&treeFile, "file", "", "")
	c.Flags().StringVar(&treeFile, "f", "", "")
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
	scale, err := matrix.ParseScale(scaleFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}
	h, err := linkage.ParseHeight(heightFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}
	if treeName == "" {
		treeName = string(set)
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	m, err := p.Matrix(set)
	if err != nil {
		return err
	}

	t, err := linkage.Cluster(m, rule, scale)
	if err != nil {
		return err
	}
	if err := writeNewick(c, t, h); err != nil {
		return err
	}

	tt, err := t.TimeTree(treeName, h)
	if err != nil {
		fmt.Fprintf(c.Stderr(), "WARNING: tree not added to project: %v\n", err)
		return nil
	}
	nc := timetree.NewCollection()
	if err := nc.Add(tt); err != nil {
		return err
	}
	if err := p.AddTrees(nc, treeFile); err != nil {
		return err
	}
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func writeNewick(c *command.Command, t *linkage.Tree, h linkage.Height) (err error) {
	if output == "" {
		return t.WriteNewick(c.Stdout(), h)
	}

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

	if err := t.WriteNewick(f, h); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}
