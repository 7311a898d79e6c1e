// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package net implements a command to build
// a co-occurrence network of genes.
package net

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/project"
)

var Command = &command.Command{
	Usage: `net [--min <number>]
	[-o|--output <file>] [--centrality <file>]
	[--plot <file>] <project-file>`,
	Short: "build a co-occurrence network of genes",
	Long: `
Command net reads the resistance and virulence gene tables of a genocmp
project, and builds a network in which two genes are connected if they are
found together in the same isolates. The weight of each connection is the
number of isolates in which both genes are found.

The argument of the command is the name of the project file. At least one
gene table must be defined in the project (see 'genocmp genes add').

By default, two genes are connected if they are found together in at least
one isolate. Use the flag --min to define a different minimum number of
isolates.

The edges of the network are written as a tab-delimited table. By default it
is printed in the standard output. Use the flag --output, or -o, to define an
output file.

If the flag --centrality is defined, the degree, weighted degree, and
betweenness centrality of each gene will be written in the indicated file.

If the flag --plot is defined, a drawing of the network will be saved in the
indicated file. Genes are drawn in a circle, with a color for each kind of
gene. Connections between genes of the same kind are drawn with solid or
dashed lines, and connections between genes of different kinds are drawn with
dotted lines.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var minCount int
var output string
var centralityFile string
var plotFile string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&minCount, "min", 1, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&centralityFile, "centrality", "", "")
	c.Flags().StringVar(&plotFile, "plot", "", "")
}

func run(c *command.Command, args []string) (err error) {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if minCount < 1 {
		return c.UsageError(fmt.Sprintf("invalid minimum number of isolates: %d", minCount))
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	t, err := p.Genes()
	if err != nil {
		return err
	}
	n, err := t.Network(minCount)
	if err != nil {
		return err
	}

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
		fmt.Fprintf(w, "# gene co-occurrence network of project %q\n", args[0])
		fmt.Fprintf(w, "# date: %s\n", time.Now().Format(time.RFC3339))
	}
	if err := n.TSV(w); err != nil {
		return err
	}

	if centralityFile != "" {
		if err := writeCentrality(n); err != nil {
			return err
		}
	}

	if plotFile != "" {
		if err := makePlot(n); err != nil {
			return err
		}
	}
	return nil
}
