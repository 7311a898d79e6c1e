// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package remove implements a command
// to remove tree terminals from a genocmp project
// without data in a dataset.
package remove

import (
	"fmt"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/pangenome"
	"github.com/js-arias/genocmp/project"
)

var Command = &command.Command{
	Usage: "remove [--set <dataset>] <project-file>",
	Short: "remove terminals without data",
	Long: `
Command remove reads the trees of a genocmp project and removes all tree
terminals that are not found in a dataset of the project. It is useful to keep
the trees in sync after some genomes were discarded from the analysis (for
example, because of a low quality assembly).

The argument of the command is the name of the project file.

By default the genomes of the ANIb matrix ("ani") are used. Use the flag --set
to define a different dataset. Valid values are "ani", "aai", "ddh", and
"presence" (the genomes of the gene presence-absence table).

Names are compared ignoring case, and underscores are taken as spaces.

The name of the removed terminals will be printed on the screen.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var setFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&setFlag, "set", "ani", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	if p.Path(project.Trees) == "" {
		msg := fmt.Sprintf("tree file not defined in project %q", args[0])
		return c.UsageError(msg)
	}

	genomes, err := readGenomes(p)
	if err != nil {
		return err
	}
	valid := make(map[string]bool, len(genomes))
	for _, g := range genomes {
		valid[taxonKey(g)] = true
	}

	tc, err := p.Trees()
	if err != nil {
		return err
	}

	changes := false
	for _, tn := range tc.Names() {
		t := tc.Tree(tn)
		if t == nil {
			continue
		}

		for _, tax := range t.Terms() {
			if valid[taxonKey(tax)] {
				continue
			}
			id, ok := t.TaxNode(tax)
			if !ok {
				continue
			}

			if err := t.Delete(id); err != nil {
				return fmt.Errorf("unable to remove terminal %q [%d] of tree %s: %v", tax, id, tn, err)
			}
			fmt.Fprintf(c.Stdout(), "tree %q: %s\n", tn, tax)
			changes = true
		}
	}

	if !changes {
		return nil
	}
	return p.WriteTrees(tc)
}

func readGenomes(p *project.Project) ([]string, error) {
	if strings.ToLower(strings.TrimSpace(setFlag)) == string(project.Presence) {
		t, err := p.Presence(pangenome.DefaultSkip)
		if err != nil {
			return nil, err
		}
		return t.Genomes(), nil
	}

	set, err := project.ParseMatrix(setFlag)
	if err != nil {
		return nil, err
	}
	m, err := p.Matrix(set)
	if err != nil {
		return nil, err
	}
	return m.Labels(), nil
}

func taxonKey(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
