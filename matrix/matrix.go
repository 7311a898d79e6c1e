// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package matrix implements labelled square matrices
// of pairwise similarities between genomes
// (for example ANIb, dDDH, or AAI percentages),
// and their transformation into distances
// suitable for hierarchical clustering.
//
// A matrix is never modified in place:
// every transformation returns a new matrix.
package matrix

import (
	"math"
	"strings"
)

// Tolerance is the numeric tolerance used to accept
// small negative distances,
// and asymmetries produced by floating point roundoff.
const Tolerance = 1e-9

// Matrix is a square matrix
// indexed by a set of unique labels.
// Missing values are stored as NaN.
type Matrix struct {
	labels []string
	index  map[string]int
	m      [][]float64
}

// New creates a new matrix for the given labels,
// with all values set as missing.
func New(labels []string) (*Matrix, error) {
	n := len(labels)
	index := make(map[string]int, n)
	ls := make([]string, 0, n)
	for _, l := range labels {
		l = canon(l)
		if l == "" {
			return nil, &ShapeError{Rows: n, Cols: n, Msg: "empty label"}
		}
		if _, dup := index[l]; dup {
			return nil, &ShapeError{Rows: n, Cols: n, Label: l, Msg: "repeated label"}
		}
		index[l] = len(ls)
		ls = append(ls, l)
	}

	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = math.NaN()
		}
	}

	return &Matrix{
		labels: ls,
		index:  index,
		m:      m,
	}, nil
}

// At returns the value at row i and column j.
func (m *Matrix) At(i, j int) float64 {
	return m.m[i][j]
}

// Index returns the row (and column) index of a label.
func (m *Matrix) Index(label string) (int, bool) {
	i, ok := m.index[canon(label)]
	return i, ok
}

// Label returns the label of the indicated row.
func (m *Matrix) Label(i int) string {
	return m.labels[i]
}

// Labels returns the labels of the matrix,
// in row order.
func (m *Matrix) Labels() []string {
	ls := make([]string, len(m.labels))
	copy(ls, m.labels)
	return ls
}

// Len returns the number of rows
// (and columns)
// of the matrix.
func (m *Matrix) Len() int {
	return len(m.labels)
}

// Max returns the maximum value of the matrix,
// ignoring missing values.
// If all values are missing,
// it returns NaN.
func (m *Matrix) Max() float64 {
	max := math.Inf(-1)
	for _, r := range m.m {
		for _, v := range r {
			if math.IsNaN(v) {
				continue
			}
			if v > max {
				max = v
			}
		}
	}
	if math.IsInf(max, -1) {
		return math.NaN()
	}
	return max
}

// Set sets the value at row i and column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.m[i][j] = v
}

// Val returns the value for a pair of labels.
func (m *Matrix) Val(row, col string) (float64, bool) {
	i, ok := m.index[canon(row)]
	if !ok {
		return 0, false
	}
	j, ok := m.index[canon(col)]
	if !ok {
		return 0, false
	}
	return m.m[i][j], true
}

// Reorder returns a new matrix
// with the rows and columns in the order
// of the given labels.
// The set of labels must be the same set
// of labels in the matrix.
func (m *Matrix) Reorder(labels []string) (*Matrix, error) {
	if len(labels) != len(m.labels) {
		return nil, &ShapeError{Rows: len(m.labels), Cols: len(m.labels), Msg: "reorder: different number of labels"}
	}
	nm, err := New(labels)
	if err != nil {
		return nil, err
	}

	idx := make([]int, len(nm.labels))
	for i, l := range nm.labels {
		p, ok := m.index[l]
		if !ok {
			return nil, &ShapeError{Rows: len(m.labels), Cols: len(m.labels), Label: l, Msg: "reorder: unknown label"}
		}
		idx[i] = p
	}
	for i, pi := range idx {
		for j, pj := range idx {
			nm.m[i][j] = m.m[pi][pj]
		}
	}
	return nm, nil
}

// Upper returns the values of the upper triangle
// (excluding the diagonal)
// in row-major order.
func (m *Matrix) Upper() []float64 {
	n := len(m.labels)
	v := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v = append(v, m.m[i][j])
		}
	}
	return v
}

// Lower returns the values of the lower triangle
// (excluding the diagonal)
// in row-major order.
func (m *Matrix) Lower() []float64 {
	n := len(m.labels)
	v := make([]float64, 0, n*(n-1)/2)
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			v = append(v, m.m[i][j])
		}
	}
	return v
}

func (m *Matrix) clone() *Matrix {
	nm := &Matrix{
		labels: m.Labels(),
		index:  make(map[string]int, len(m.labels)),
		m:      make([][]float64, len(m.m)),
	}
	for l, i := range m.index {
		nm.index[l] = i
	}
	for i, r := range m.m {
		nm.m[i] = make([]float64, len(r))
		copy(nm.m[i], r)
	}
	return nm
}

func canon(label string) string {
	return strings.Join(strings.Fields(label), " ")
}
