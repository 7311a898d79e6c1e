// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add
// a gene table to a genocmp project.
package add

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/cooccur"
	"github.com/js-arias/genocmp/project"
)

var Command = &command.Command{
	Usage: "add [--kind <kind>] <project-file> <gene-file>",
	Short: "add a resistance or virulence gene table to a project",
	Long: `
Command add reads a table of genes found in a set of isolates, and if it is a
valid table, adds it to a genocmp project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

The second argument is the name of the gene file. See 'genocmp help
gene-files' for the format of the file.

By default the table is added as a table of resistance genes. Use the flag
--kind with "virulence" to add a table of virulence factors.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var kindFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&kindFlag, "kind", string(project.Resistance), "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting gene file")
	}

	set := project.Dataset(strings.ToLower(kindFlag))
	if set != project.Resistance && set != project.Virulence {
		return c.UsageError(fmt.Sprintf("invalid gene kind %q", kindFlag))
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	f, err := os.Open(args[1])
	if err != nil {
		return err
	}
	defer f.Close()
	t, err := cooccur.ReadTSV(f, string(set))
	if err != nil {
		return fmt.Errorf("on file %q: %v", args[1], err)
	}
	fmt.Fprintf(c.Stderr(), "# %d genes in %d isolates\n", len(t.Genes()), len(t.Isolates()))

	p.Add(set, args[1])
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}
