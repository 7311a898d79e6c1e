// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add
// a gene presence-absence table to a genocmp project.
package add

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/pangenome"
	"github.com/js-arias/genocmp/project"
)

var Command = &command.Command{
	Usage: "add [--skip <number>] <project-file> <presence-file>",
	Short: "add a gene presence-absence table to a project",
	Long: `
Command add reads a gene presence-absence table, and if it is a valid table,
adds it to a genocmp project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

The second argument is the name of the gene presence-absence file. See
'genocmp help presence-files' for the format of the file.

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
	if len(args) < 2 {
		return c.UsageError("expecting gene presence-absence file")
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	t, err := readTable(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Stderr(), "# %d genes in %d genomes\n", len(t.Genes()), len(t.Genomes()))

	p.Add(project.Presence, args[1])
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

func readTable(name string) (*pangenome.Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := pangenome.ReadCSV(f, skip)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return t, nil
}
