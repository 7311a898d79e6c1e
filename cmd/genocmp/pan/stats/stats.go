// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stats implements a command to print
// the statistics of a pan-genome.
package stats

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/pangenome"
	"github.com/js-arias/genocmp/project"
)

var Command = &command.Command{
	Usage: "stats [--skip <number>] <project-file>",
	Short: "print pan-genome statistics",
	Long: `
Command stats reads the gene presence-absence table of a genocmp project, and
prints the number of genes in each category of the pan-genome:

	- core       genes present in 99% or more of the genomes
	- soft-core  genes present in at least 95% of the genomes
	- shell      genes present in at least 15% of the genomes
	- cloud      genes present in at least 1% of the genomes
	- unique     genes present in a single genome
	- pan        total number of genes

The argument of the command is the name of the project file.

By default, the three columns after the gene identifier are ignored. Use the
flag --skip to define a different number of annotation columns.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var skip int

func setFlags(c *command.Command) {
	c.Flags().IntVar(&skip, "skip", pangenome.DefaultSkip, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	t, err := p.Presence(skip)
	if err != nil {
		return err
	}

	st := t.Stats()
	fmt.Fprintf(c.Stdout(), "# %d genomes\n", len(t.Genomes()))
	fmt.Fprintf(c.Stdout(), "category\tgenes\n")
	fmt.Fprintf(c.Stdout(), "core\t%d\n", st.Core)
	fmt.Fprintf(c.Stdout(), "soft-core\t%d\n", st.SoftCore)
	fmt.Fprintf(c.Stdout(), "shell\t%d\n", st.Shell)
	fmt.Fprintf(c.Stdout(), "cloud\t%d\n", st.Cloud)
	fmt.Fprintf(c.Stdout(), "unique\t%d\n", st.Unique)
	fmt.Fprintf(c.Stdout(), "pan\t%d\n", st.Pan)
	return nil
}
