// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/genocmp/project"
	"github.com/js-arias/timetree"
)

type setPath struct {
	set  project.Dataset
	path string
}

func TestProject(t *testing.T) {
	p := project.New()

	sets := []setPath{
		{project.ANI, "ani-matrix.tab"},
		{project.DDH, "ggdc-matrix.tab"},
		{project.Presence, "gene_presence_absence.csv"},
		{project.Resistance, "summary_ncbi.tab"},
		{project.Virulence, "summary_vfdb.tab"},
		{project.Trees, "trees.tab"},
	}

	for _, s := range sets {
		p.Add(s.set, s.path)
	}
	testProject(t, p, sets)

	name := filepath.Join(t.TempDir(), "project.tab")
	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testProject(t, np, sets)

	if prev := np.Add(project.ANI, ""); prev != "ani-matrix.tab" {
		t.Errorf("remove: got previous path %q, want %q", prev, "ani-matrix.tab")
	}
	if path := np.Path(project.ANI); path != "" {
		t.Errorf("removed set: got path %q", path)
	}
}

func testProject(t testing.TB, p *project.Project, sets []setPath) {
	t.Helper()

	for _, s := range sets {
		if path := p.Path(s.set); path != s.path {
			t.Errorf("set %s: got path %q, want %q", s.set, path, s.path)
		}
	}
	datasets := make([]project.Dataset, 0, len(sets))
	for _, v := range sets {
		datasets = append(datasets, v.set)
	}
	slices.Sort(datasets)

	if ls := p.Sets(); !reflect.DeepEqual(ls, datasets) {
		t.Errorf("sets: got %v, want %v", ls, datasets)
	}
}

func TestMatrix(t *testing.T) {
	dir := t.TempDir()
	ani := filepath.Join(dir, "ani.tab")
	data := "genome\tA\tB\nA\t100\t95\nB\t96\t100\n"
	if err := os.WriteFile(ani, []byte(data), 0o644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}

	p := project.New()
	p.SetName(filepath.Join(dir, "project.tab"))
	if _, err := p.Matrix(project.ANI); err == nil {
		t.Errorf("undefined matrix: expecting error")
	}

	p.Add(project.ANI, ani)
	m, err := p.Matrix(project.ANI)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := m.Val("B", "A"); v != 96 {
		t.Errorf("value [B, A]: got %.2f, want %.2f", v, 96.0)
	}
}

func TestParseMatrix(t *testing.T) {
	if set, err := project.ParseMatrix("DDH"); err != nil || set != project.DDH {
		t.Errorf("parse %q: got %q (%v)", "DDH", set, err)
	}
	if _, err := project.ParseMatrix("trees"); err == nil {
		t.Errorf("parse %q: expecting error", "trees")
	}
}

func TestAddTrees(t *testing.T) {
	dir := t.TempDir()
	p := project.New()
	p.SetName(filepath.Join(dir, "project.tab"))

	treeFile := filepath.Join(dir, "trees.tab")
	for _, name := range []string{"ani", "ddh"} {
		nc, err := timetree.Newick(strings.NewReader("((A:5,B:5):40,(C:10,D:10):35);"), name, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := p.AddTrees(nc, treeFile); err != nil {
			t.Fatalf("unable to add tree %q: %v", name, err)
		}
	}

	if path := p.Path(project.Trees); path != treeFile {
		t.Errorf("tree file: got %q, want %q", path, treeFile)
	}
	tc, err := p.Trees()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ls := tc.Names(); !reflect.DeepEqual(ls, []string{"ani", "ddh"}) {
		t.Errorf("trees: got %v, want %v", ls, []string{"ani", "ddh"})
	}
}

func TestWriteTreesWithoutFile(t *testing.T) {
	p := project.New()
	if err := p.WriteTrees(timetree.NewCollection()); err == nil {
		t.Errorf("expecting error when the tree file is not defined")
	}
}

func TestAddTreesReplace(t *testing.T) {
	dir := t.TempDir()
	p := project.New()
	p.SetName(filepath.Join(dir, "project.tab"))
	treeFile := filepath.Join(dir, "trees.tab")

	trees := []struct {
		name   string
		newick string
	}{
		{"ani", "((A:5,B:5):40,(C:10,D:10):35);"},
		{"ddh", "((A:5,B:5):40,(C:10,D:10):35);"},
		{"ani", "((A:5,B:5):40,C:45);"},
	}
	for _, tr := range trees {
		nc, err := timetree.Newick(strings.NewReader(tr.newick), tr.name, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := p.AddTrees(nc, treeFile); err != nil {
			t.Fatalf("unable to add tree %q: %v", tr.name, err)
		}
	}

	tc, err := p.Trees()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ls := tc.Names(); !reflect.DeepEqual(ls, []string{"ani", "ddh"}) {
		t.Errorf("trees: got %v, want %v", ls, []string{"ani", "ddh"})
	}
	if n := len(tc.Tree("ani").Terms()); n != 3 {
		t.Errorf("tree %q: got %d terminals, want %d", "ani", n, 3)
	}
	if n := len(tc.Tree("ddh").Terms()); n != 4 {
		t.Errorf("tree %q: got %d terminals, want %d", "ddh", n, 4)
	}
}

func TestReadParseError(t *testing.T) {
	name := filepath.Join(t.TempDir(), "project.tab")
	data := "dataset\tpath\nan\"i\tani.tab\n"
	if err := os.WriteFile(name, []byte(data), 0o644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}
	if _, err := project.Read(name); err == nil {
		t.Errorf("expecting error on a quoted dataset name")
	}
}
