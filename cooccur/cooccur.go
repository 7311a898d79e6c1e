// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package cooccur implements co-occurrence networks
// of genes
// (for example virulence factors and resistance genes)
// found in a set of isolates.
package cooccur

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Table is an isolate by gene presence table.
type Table struct {
	isolates []string
	genes    []string

	// the kind of each gene
	// (usually the source database)
	kinds []string

	// presence by isolate,
	// then by gene
	p [][]bool
}

// ReadTSV reads a gene presence table
// from a tab-delimited file,
// and assigns to each gene the given kind.
//
// The first column is the isolate name,
// and each additional column is a gene.
// A column called "NUM_FOUND"
// (as produced by abricate summaries)
// is ignored.
// A cell is absent if it is empty,
// a dot,
// or a number less than or equal to zero.
//
// Here is an example file:
//
//	#FILE	NUM_FOUND	blaTEM-1	tet(A)
//	isolate1	2	100.00	99.87
//	isolate2	1	.	100.00
func ReadTSV(r io.Reader, kind string) (*Table, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.FieldsPerRecord = -1

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	if len(head) < 2 {
		return nil, fmt.Errorf("header: expecting at least 2 fields, got %d", len(head))
	}

	t := &Table{}
	var cols []int
	seen := make(map[string]bool)
	for i, h := range head[1:] {
		h = strings.TrimSpace(h)
		if strings.EqualFold(h, "NUM_FOUND") {
			continue
		}
		if h == "" {
			return nil, fmt.Errorf("header: empty gene name at column %d", i+2)
		}
		if seen[h] {
			return nil, fmt.Errorf("header: repeated gene %q", h)
		}
		seen[h] = true
		t.genes = append(t.genes, h)
		t.kinds = append(t.kinds, kind)
		cols = append(cols, i+1)
	}

	isolates := make(map[string]bool)
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("on row %d: %v", pe.Line, pe.Err)
			}
			return nil, err
		}
		ln, _ := tsv.FieldPos(0)
		if len(row) != len(head) {
			return nil, fmt.Errorf("on row %d: got %d fields, want %d", ln, len(row), len(head))
		}

		iso := strings.TrimSpace(row[0])
		if iso == "" {
			return nil, fmt.Errorf("on row %d: empty isolate name", ln)
		}
		if isolates[iso] {
			return nil, fmt.Errorf("on row %d: repeated isolate %q", ln, iso)
		}
		isolates[iso] = true

		p := make([]bool, len(cols))
		for j, c := range cols {
			p[j] = present(row[c])
		}
		t.isolates = append(t.isolates, iso)
		t.p = append(t.p, p)
	}
	return t, nil
}

func present(s string) bool {
	s = strings.TrimSpace(s)
	switch s {
	case "", ".", "-":
		return false
	}
	// values can be separated by semicolons
	// if the gene has multiple hits
	s, _, _ = strings.Cut(s, ";")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return true
	}
	return v > 0
}

// Genes returns the gene names of the table.
func (t *Table) Genes() []string {
	return slices.Clone(t.genes)
}

// Isolates returns the isolate names of the table.
func (t *Table) Isolates() []string {
	return slices.Clone(t.isolates)
}

// Kind returns the kind of the gene
// at the given index.
func (t *Table) Kind(gene int) string {
	return t.kinds[gene]
}

// Present returns true if the gene
// (by its index)
// is present in an isolate
// (by its index).
func (t *Table) Present(isolate, gene int) bool {
	return t.p[isolate][gene]
}

// Merge combines a set of tables
// into a single table.
// Isolates are the union of the isolates of the tables,
// and an isolate missing from a table
// has none of the genes of that table.
// Gene names must be unique across tables.
func Merge(tables ...*Table) (*Table, error) {
	nt := &Table{}
	seen := make(map[string]bool)
	isoIdx := make(map[string]int)
	for _, t := range tables {
		for j, g := range t.genes {
			if seen[g] {
				return nil, fmt.Errorf("cooccur: gene %q defined in more than one table", g)
			}
			seen[g] = true
			nt.genes = append(nt.genes, g)
			nt.kinds = append(nt.kinds, t.kinds[j])
		}
		for _, iso := range t.isolates {
			if _, ok := isoIdx[iso]; ok {
				continue
			}
			isoIdx[iso] = len(nt.isolates)
			nt.isolates = append(nt.isolates, iso)
		}
	}

	nt.p = make([][]bool, len(nt.isolates))
	for i := range nt.p {
		nt.p[i] = make([]bool, len(nt.genes))
	}
	var off int
	for _, t := range tables {
		for i, iso := range t.isolates {
			row := nt.p[isoIdx[iso]]
			copy(row[off:], t.p[i])
		}
		off += len(t.genes)
	}
	return nt, nil
}

// Matrix returns the co-occurrence matrix of the genes,
// i.e. the number of isolates
// in which each pair of genes is found.
// The diagonal is set to zero.
func (t *Table) Matrix() (*mat.SymDense, error) {
	ng := len(t.genes)
	if ng == 0 || len(t.isolates) == 0 {
		return nil, fmt.Errorf("cooccur: empty table: %d isolates, %d genes", len(t.isolates), ng)
	}

	x := mat.NewDense(len(t.isolates), ng, nil)
	for i, r := range t.p {
		for j, ok := range r {
			if ok {
				x.Set(i, j, 1)
			}
		}
	}

	var c mat.SymDense
	c.SymOuterK(1, x.T())
	for i := 0; i < ng; i++ {
		c.SetSym(i, i, 0)
	}
	return &c, nil
}
