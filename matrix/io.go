// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package matrix

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ReadTSV reads a similarity matrix from a TSV file.
//
// The first row is the header,
// and contains the column labels
// (the first field of the header is ignored).
// Each following row starts with the row label
// followed by the values of that row.
// Empty cells,
// or cells with "NA", "NaN", or "-",
// are read as missing values.
// The set of row labels must be the same
// as the set of column labels,
// otherwise a *ShapeError is returned.
//
// Here is an example file:
//
//	# ANIb matrix
//	genome	A	B	C
//	A	100	98.5	81.2
//	B	98.4	100	81.0
//	C	81.3	81.1	100
func ReadTSV(r io.Reader) (*Matrix, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'
	tab.FieldsPerRecord = -1

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	cols := head[1:]
	nc := len(cols)

	var rows []string
	var vals [][]float64
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
		ln, _ := tab.FieldPos(0)
		if len(row) != nc+1 {
			return nil, &ShapeError{Rows: len(rows) + 1, Cols: nc, Label: row[0], Msg: fmt.Sprintf("on row %d: got %d values", ln, len(row)-1)}
		}

		v := make([]float64, nc)
		for i, s := range row[1:] {
			x, err := parseValue(s)
			if err != nil {
				return nil, fmt.Errorf("on row %d: column %q: %v", ln, cols[i], err)
			}
			v[i] = x
		}
		rows = append(rows, row[0])
		vals = append(vals, v)
	}

	if len(rows) != nc {
		return nil, &ShapeError{Rows: len(rows), Cols: nc, Msg: "matrix is not square"}
	}

	m, err := New(rows)
	if err != nil {
		return nil, err
	}
	colIdx := make([]int, nc)
	seen := make(map[int]bool, nc)
	for j, c := range cols {
		i, ok := m.index[canon(c)]
		if !ok {
			return nil, &ShapeError{Rows: nc, Cols: nc, Label: canon(c), Msg: "column label without row"}
		}
		if seen[i] {
			return nil, &ShapeError{Rows: nc, Cols: nc, Label: canon(c), Msg: "repeated column label"}
		}
		seen[i] = true
		colIdx[j] = i
	}

	for i, v := range vals {
		for j, x := range v {
			m.m[i][colIdx[j]] = x
		}
	}
	return m, nil
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "na", "nan", "-":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// TSV writes a matrix as a TSV file.
// Missing values are written as "NA".
func (m *Matrix) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := append([]string{"genome"}, m.labels...)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for i, l := range m.labels {
		row := make([]string, 0, len(m.labels)+1)
		row = append(row, l)
		for _, v := range m.m[i] {
			if math.IsNaN(v) {
				row = append(row, "NA")
				continue
			}
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
