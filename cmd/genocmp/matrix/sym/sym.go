// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sym implements a command to write
// a symmetric version of a similarity matrix.
package sym

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/matrix"
	"github.com/js-arias/genocmp/project"
)

var Command = &command.Command{
	Usage: `sym [--set <dataset>] [--rule <rule>]
	[--distance <scale>]
	[-o|--output <file>] <project-file>`,
	Short: "write a symmetric similarity matrix",
	Long: `
Command sym reads a similarity matrix from a genocmp project, and writes a
symmetric version of the matrix.

The argument of the command is the name of the project file.

By default the average nucleotide identity matrix ("ani") will be used. Use
the flag --set to use a different matrix.

For each pair of genomes, the values in both directions are combined using
the mean. Use the flag --rule to define a different rule. Valid values are
"mean" and "median". If one of the values is missing, the other value is
used.

If the flag --distance is defined, the matrix will be transformed into a
distance matrix, by subtracting each value from the indicated scale. The
scale can be a number, or "max" to use the maximum value of the matrix.

By default the result will be printed in the standard output. Use the flag
--output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var setFlag string
var ruleFlag string
var distFlag string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&setFlag, "set", string(project.ANI), "")
	c.Flags().StringVar(&ruleFlag, "rule", "mean", "")
	c.Flags().StringVar(&distFlag, "distance", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) (err error) {
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
	if distFlag != "" {
		sc, err := matrix.ParseScale(distFlag)
		if err != nil {
			return c.UsageError(err.Error())
		}
		m, err = m.Distance(sc)
		if err != nil {
			return err
		}
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
	}

	if err := m.TSV(w); err != nil {
		return fmt.Errorf("while writing matrix: %v", err)
	}
	return nil
}
