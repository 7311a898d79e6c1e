// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"context"
	"fmt"
	"os"

	"github.com/js-arias/genocmp/assembly"
	"github.com/js-arias/genocmp/cooccur"
	"github.com/js-arias/genocmp/matrix"
	"github.com/js-arias/genocmp/pangenome"
	"github.com/js-arias/timetree"
)

// Assemblies reads the assembly statistics
// of the FASTA files in the assemblies directory
// as defined in a project.
func (p *Project) Assemblies(ctx context.Context, cpu int) ([]assembly.Stats, error) {
	dir := p.Path(Assemblies)
	if dir == "" {
		return nil, fmt.Errorf("assemblies not defined in project %q", p.name)
	}
	return assembly.Dir(ctx, dir, cpu)
}

// Genes reads the resistance and virulence gene tables
// as defined in a project,
// and returns a merged table.
// At least one of the tables must be defined.
func (p *Project) Genes() (*cooccur.Table, error) {
	var tables []*cooccur.Table
	for _, set := range []Dataset{Resistance, Virulence} {
		name := p.Path(set)
		if name == "" {
			continue
		}
		t, err := readGenes(name, string(set))
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("gene tables not defined in project %q", p.name)
	}
	return cooccur.Merge(tables...)
}

func readGenes(name, kind string) (*cooccur.Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := cooccur.ReadTSV(f, kind)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return t, nil
}

// Matrix reads a similarity matrix
// as defined in a project.
func (p *Project) Matrix(set Dataset) (*matrix.Matrix, error) {
	name := p.Path(set)
	if name == "" {
		return nil, fmt.Errorf("%s matrix not defined in project %q", set, p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := matrix.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return m, nil
}

// Presence reads a gene presence-absence table
// as defined in a project.
func (p *Project) Presence(skip int) (*pangenome.Table, error) {
	name := p.Path(Presence)
	if name == "" {
		return nil, fmt.Errorf("gene presence-absence table not defined in project %q", p.name)
	}

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

// Trees reads a tree collection file
// as defined in a project.
func (p *Project) Trees() (*timetree.Collection, error) {
	name := p.Path(Trees)
	if name == "" {
		return nil, fmt.Errorf("trees not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}

// AddTrees adds the trees of a collection
// to the trees of the project,
// and writes the resulting trees file.
// If treeFile is empty,
// the trees file currently defined in the project is used,
// or "trees.tab" if the project does not have one.
// A tree with the same name of a tree already in the project
// replaces the old tree.
// The project file is not updated.
func (p *Project) AddTrees(nc *timetree.Collection, treeFile string) (err error) {
	tc := timetree.NewCollection()
	if p.Path(Trees) != "" {
		old, err := p.Trees()
		if err != nil {
			return err
		}

		// trees with the same name are replaced
		for _, tn := range old.Names() {
			if nc.Tree(tn) != nil {
				continue
			}
			if err := tc.Add(old.Tree(tn)); err != nil {
				return fmt.Errorf("when adding tree %q: %v", tn, err)
			}
		}
	}
	for _, tn := range nc.Names() {
		if err := tc.Add(nc.Tree(tn)); err != nil {
			return fmt.Errorf("when adding tree %q: %v", tn, err)
		}
	}

	if treeFile == "" {
		treeFile = p.Path(Trees)
		if treeFile == "" {
			treeFile = "trees.tab"
		}
	}
	p.Add(Trees, treeFile)
	return p.WriteTrees(tc)
}

// WriteTrees writes a tree collection
// into the tree file of the project.
func (p *Project) WriteTrees(tc *timetree.Collection) (err error) {
	treeFile := p.Path(Trees)
	if treeFile == "" {
		return fmt.Errorf("tree file not defined in project %q", p.name)
	}

	f, err := os.Create(treeFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := tc.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", treeFile, err)
	}
	return nil
}

// Name returns the file name of the project.
func (p *Project) Name() string {
	return p.name
}
