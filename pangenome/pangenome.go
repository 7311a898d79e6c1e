// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package pangenome implements gene presence-absence tables
// of a set of genomes,
// and the statistics of the pan-genome
// (core, shell, and cloud genes).
package pangenome

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"

	"github.com/js-arias/genocmp/matrix"
	"gonum.org/v1/gonum/stat"
)

// DefaultSkip is the default number of annotation columns
// after the gene ID
// in a gene presence-absence file.
const DefaultSkip = 3

// Table is a gene presence-absence table.
type Table struct {
	genes   []string
	genomes []string

	// presence by genome,
	// then by gene
	p [][]bool
}

// ReadCSV reads a gene presence-absence table
// from a comma-delimited file.
//
// The first column is the gene
// (or orthologous group)
// identifier,
// the next skip columns are annotations
// and they are ignored,
// and the remaining columns are the genomes.
// A non-empty cell indicates that the gene
// is present in the genome.
//
// Here is an example file
// with three annotation columns:
//
//	Gene,Non-unique Gene name,Annotation,No. isolates,A,B,C
//	group_1,,hypothetical protein,3,A_0001,B_0001,C_0001
//	group_2,,transposase,1,,B_0002,
func ReadCSV(r io.Reader, skip int) (*Table, error) {
	tab := csv.NewReader(r)
	tab.Comment = '#'
	tab.LazyQuotes = true

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	if len(head) < skip+2 {
		return nil, fmt.Errorf("header: expecting at least %d fields, got %d", skip+2, len(head))
	}

	t := &Table{}
	seen := make(map[string]bool)
	for _, g := range head[skip+1:] {
		g = strings.Join(strings.Fields(g), " ")
		if g == "" {
			return nil, errors.New("header: empty genome name")
		}
		if seen[g] {
			return nil, fmt.Errorf("header: repeated genome %q", g)
		}
		seen[g] = true
		t.genomes = append(t.genomes, g)
	}
	t.p = make([][]bool, len(t.genomes))

	for {
		row, err := tab.Read()
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

		t.genes = append(t.genes, row[0])
		for i, c := range row[skip+1:] {
			t.p[i] = append(t.p[i], strings.TrimSpace(c) != "")
		}
	}
	return t, nil
}

// Genes returns the gene identifiers.
func (t *Table) Genes() []string {
	return append([]string(nil), t.genes...)
}

// Genomes returns the genome names.
func (t *Table) Genomes() []string {
	return append([]string(nil), t.genomes...)
}

// Present returns true if the gene
// (by its index)
// is present in a genome
// (by its index).
func (t *Table) Present(genome, gene int) bool {
	return t.p[genome][gene]
}

// Frequency returns the number of genomes
// in which each gene is present.
func (t *Table) Frequency() []int {
	freq := make([]int, len(t.genes))
	for _, g := range t.p {
		for j, ok := range g {
			if ok {
				freq[j]++
			}
		}
	}
	return freq
}

// Stats is the summary of a pan-genome.
type Stats struct {
	// Core genes are present in 99% or more of the genomes.
	Core int

	// Soft core genes are present
	// in at least 95% but less than 99%
	// of the genomes.
	SoftCore int

	// Shell genes are present
	// in at least 15% but less than 95%
	// of the genomes.
	Shell int

	// Cloud genes are present
	// in at least 1% but less than 15%
	// of the genomes.
	Cloud int

	// Unique genes are present in a single genome.
	Unique int

	// Pan is the number of genes
	// in the pan-genome.
	Pan int
}

// Stats returns the summary statistics of the pan-genome.
func (t *Table) Stats() Stats {
	st := Stats{Pan: len(t.genes)}
	n := float64(len(t.genomes))
	if n == 0 {
		return st
	}

	for _, c := range t.Frequency() {
		if c == 1 {
			st.Unique++
		}
		f := float64(c) / n
		switch {
		case f >= 0.99:
			st.Core++
		case f >= 0.95:
			st.SoftCore++
		case f >= 0.15:
			st.Shell++
		case f >= 0.01:
			st.Cloud++
		}
	}
	return st
}

// Curve is the accumulation curve
// of core and pan-genome sizes
// as genomes are added.
// Index i is for i+1 genomes.
type Curve struct {
	CoreMean, CoreSD []float64
	PanMean, PanSD   []float64
}

// Accumulation calculates the accumulation curves
// of the core and pan genome
// by adding the genomes in iter random orders.
func (t *Table) Accumulation(iter int, rng *rand.Rand) Curve {
	n := len(t.genomes)
	ng := len(t.genes)
	core := make([][]float64, n)
	pan := make([][]float64, n)
	for i := range core {
		core[i] = make([]float64, 0, iter)
		pan[i] = make([]float64, 0, iter)
	}

	inCore := make([]bool, ng)
	inPan := make([]bool, ng)
	for it := 0; it < iter; it++ {
		for j := range inCore {
			inCore[j] = true
			inPan[j] = false
		}
		order := rng.Perm(n)
		for i, g := range order {
			var c, p int
			for j := range inCore {
				ok := t.p[g][j]
				inCore[j] = inCore[j] && ok
				inPan[j] = inPan[j] || ok
				if inCore[j] {
					c++
				}
				if inPan[j] {
					p++
				}
			}
			core[i] = append(core[i], float64(c))
			pan[i] = append(pan[i], float64(p))
		}
	}

	cv := Curve{
		CoreMean: make([]float64, n),
		CoreSD:   make([]float64, n),
		PanMean:  make([]float64, n),
		PanSD:    make([]float64, n),
	}
	for i := 0; i < n; i++ {
		cv.CoreMean[i], cv.CoreSD[i] = meanSD(core[i])
		cv.PanMean[i], cv.PanSD[i] = meanSD(pan[i])
	}
	return cv
}

// meanSD returns the mean
// and the population standard deviation.
func meanSD(x []float64) (mean, sd float64) {
	if len(x) == 0 {
		return 0, 0
	}
	mean, v := stat.PopMeanVariance(x, nil)
	if v < 0 {
		v = 0
	}
	return mean, math.Sqrt(v)
}

// Similarity returns a similarity matrix
// between the genomes,
// as the percentage of shared genes
// (Jaccard index times 100).
func (t *Table) Similarity() (*matrix.Matrix, error) {
	m, err := matrix.New(t.genomes)
	if err != nil {
		return nil, err
	}
	n := len(t.genomes)
	for i := 0; i < n; i++ {
		m.Set(i, i, 100)
		for j := i + 1; j < n; j++ {
			var inter, union int
			for k := range t.genes {
				a, b := t.p[i][k], t.p[j][k]
				if a && b {
					inter++
				}
				if a || b {
					union++
				}
			}
			v := 0.0
			if union > 0 {
				v = float64(inter) / float64(union) * 100
			}
			m.Set(i, j, v)
			m.Set(j, i, v)
		}
	}
	return m, nil
}
