// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the list of trees in a genocmp project.
package list

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/linkage"
	"github.com/js-arias/genocmp/project"
)

var Command = &command.Command{
	Usage: "list [--age] <project-file>",
	Short: "print a list of the trees in a project",
	Long: `
Command list reads the trees from a genocmp project and prints the tree names
in the standard output.

The argument of the command is the name of the project file.

If the flag --age is defined, the number of terminals and the height of the
root of each tree will be printed.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var printAge bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&printAge, "age", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	tc, err := p.Trees()
	if err != nil {
		return err
	}

	ls := tc.Names()
	for _, tn := range ls {
		if !printAge {
			fmt.Fprintf(c.Stdout(), "%s\n", tn)
			continue
		}
		t := tc.Tree(tn)
		age := float64(t.Age(t.Root())) / linkage.MillionYears
		fmt.Fprintf(c.Stdout(), "%s\t%d\t%.6f\n", tn, len(t.Terms()), age)
	}
	return nil
}
