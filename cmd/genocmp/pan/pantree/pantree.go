// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package pantree implements a command to build
// a tree of genomes from their gene content.
package pantree

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/linkage"
	"github.com/js-arias/genocmp/matrix"
	"github.com/js-arias/genocmp/pangenome"
	"github.com/js-arias/genocmp/project"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: `tree [--skip <number>] [--height <rule>]
	[--name <tree-name>] [-f|--file <tree-file>]
	[-o|--output <file>] [--matrix <file>]
	<project-file>`,
	Short: "build a tree from gene content",
	Long: `
Command tree reads the gene presence-absence table of a genocmp project, and
builds a tree of the genomes using their gene content. The similarity between
two genomes is the percentage of shared genes (i.e., the Jaccard index), and
the tree is built with the average linkage (UPGMA) clustering algorithm, using
100 minus the similarity as the distance.

The argument of the command is the name of the project file.

By default, the three columns after the gene identifier are ignored. Use the
flag --skip to define a different number of annotation columns.

By default, the height of each node is half of the distance between the two
clusters joined at the node. Use the flag --height with "full" to use the
clustering distance as the height of the node.

The tree is written in Newick format in the standard output. Use the flag
--output, or -o, to write the tree to a file. If the flag --matrix is
defined, the similarity matrix will be saved in the indicated file.

The tree is also added to the trees of the project, by default, with the name
"pan". Use the flag --name to define a different name. A tree of the project
with the same name is replaced. Use the flag --file, or -f, to define a
different tree file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var skip int
var heightFlag string
var treeName string
var treeFile string
var output string
var matrixFile string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&skip, "skip", pangenome.DefaultSkip, "")
	c.Flags().StringVar(&heightFlag, "height", "half", "")
	c.Flags().StringVar(&treeName, "name", "pan", "")
	c.Flags().StringVar(&treeFile, "file", "", "")
	c.Flags().StringVar(&treeFile, "f", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&matrixFile, "matrix", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	h, err := linkage.ParseHeight(heightFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	t, err := p.Presence(skip)
	if err != nil {
		return err
	}
	m, err := t.Similarity()
	if err != nil {
		return err
	}
	if matrixFile != "" {
		if err := writeMatrix(matrixFile, m); err != nil {
			return err
		}
	}

	tr, err := linkage.Cluster(m, matrix.Mean, matrix.Fixed(100))
	if err != nil {
		return err
	}
	if err := writeNewick(c, tr, h); err != nil {
		return err
	}

	tt, err := tr.TimeTree(treeName, h)
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
