// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package matrix_test

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/genocmp/matrix"
)

const scenario = `# similarity matrix
genome	A	B	C	D
A	100	90	10	10
B	90	100	10	10
C	10	10	100	80
D	10	10	80	100
`

func TestReadTSV(t *testing.T) {
	m, err := matrix.ReadTSV(strings.NewReader(scenario))
	if err != nil {
		t.Fatalf("unable to read matrix: %v", err)
	}

	want := []string{"A", "B", "C", "D"}
	if ls := m.Labels(); !reflect.DeepEqual(ls, want) {
		t.Errorf("labels: got %v, want %v", ls, want)
	}
	if v, _ := m.Val("C", "D"); v != 80 {
		t.Errorf("value [C, D]: got %.6f, want %.6f", v, 80.0)
	}

	var buf bytes.Buffer
	if err := m.TSV(&buf); err != nil {
		t.Fatalf("unable to write matrix: %v", err)
	}
	nm, err := matrix.ReadTSV(&buf)
	if err != nil {
		t.Logf("input data:\n%s\n", buf.String())
		t.Fatalf("unable to read matrix: %v", err)
	}
	testEqual(t, "read", nm, m)
}

func TestReadTSVColumnOrder(t *testing.T) {
	data := `genome	B	A
A	90	100
B	100	NA
`
	m, err := matrix.ReadTSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unable to read matrix: %v", err)
	}
	if v, _ := m.Val("A", "B"); v != 90 {
		t.Errorf("value [A, B]: got %.6f, want %.6f", v, 90.0)
	}
	if v, _ := m.Val("B", "A"); !math.IsNaN(v) {
		t.Errorf("value [B, A]: got %.6f, want NaN", v)
	}
}

func TestReadTSVShapeError(t *testing.T) {
	tests := map[string]string{
		"not square": "genome\tA\tB\nA\t100\t90\n",
		"different labels": `genome	A	B
A	100	90
C	90	100
`,
		"repeated label": `genome	A	A
A	100	90
A	90	100
`,
		"short row": `genome	A	B
A	100
B	90	100
`,
	}

	for name, data := range tests {
		_, err := matrix.ReadTSV(strings.NewReader(data))
		var se *matrix.ShapeError
		if !errors.As(err, &se) {
			t.Errorf("%s: got error %v, want ShapeError", name, err)
		}
	}
}

func TestReadTSVParseError(t *testing.T) {
	tests := map[string]string{
		"quote in row label": "genome\tA\tB\nA\"x\t100\t90\nB\t90\t100\n",
		"quote in value":     "genome\tA\tB\nA\t100\t9\"0\nB\t90\t100\n",
	}

	for name, data := range tests {
		if _, err := matrix.ReadTSV(strings.NewReader(data)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestSymmetrize(t *testing.T) {
	data := `genome	A	B	C
A	100	96	NA
B	98	100	80
C	82	NA	100
`
	m, err := matrix.ReadTSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unable to read matrix: %v", err)
	}

	for _, rule := range []matrix.Rule{matrix.Mean, matrix.Median} {
		s, err := m.Symmetrize(rule)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", rule, err)
		}
		for i := 0; i < s.Len(); i++ {
			for j := 0; j < s.Len(); j++ {
				if s.At(i, j) != s.At(j, i) {
					t.Errorf("%s: value [%d, %d] = %.6f, [%d, %d] = %.6f", rule, i, j, s.At(i, j), j, i, s.At(j, i))
				}
			}
		}
		if v, _ := s.Val("A", "B"); v != 97 {
			t.Errorf("%s: value [A, B]: got %.6f, want %.6f", rule, v, 97.0)
		}
		if v, _ := s.Val("A", "C"); v != 82 {
			t.Errorf("%s: value [A, C]: got %.6f, want %.6f", rule, v, 82.0)
		}
		if v, _ := s.Val("C", "B"); v != 80 {
			t.Errorf("%s: value [C, B]: got %.6f, want %.6f", rule, v, 80.0)
		}
	}

	// input is not modified
	if v, _ := m.Val("A", "C"); !math.IsNaN(v) {
		t.Errorf("input modified: value [A, C]: got %.6f, want NaN", v)
	}
}

func TestSymmetrizeMissingPair(t *testing.T) {
	data := `genome	A	B
A	100	NA
B	NA	100
`
	m, err := matrix.ReadTSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unable to read matrix: %v", err)
	}
	_, err = m.Symmetrize(matrix.Mean)
	var re *matrix.RangeError
	if !errors.As(err, &re) {
		t.Fatalf("got error %v, want RangeError", err)
	}
	if re.Row != "A" || re.Col != "B" {
		t.Errorf("error cell: got [%q, %q], want [%q, %q]", re.Row, re.Col, "A", "B")
	}
}

func TestDistance(t *testing.T) {
	m, err := matrix.ReadTSV(strings.NewReader(scenario))
	if err != nil {
		t.Fatalf("unable to read matrix: %v", err)
	}

	for _, s := range []matrix.Scale{matrix.Fixed(100), matrix.MaxScale} {
		d, err := m.Distance(s)
		if err != nil {
			t.Fatalf("scale %s: unexpected error: %v", s, err)
		}
		for i := 0; i < d.Len(); i++ {
			if v := d.At(i, i); v != 0 {
				t.Errorf("scale %s: diagonal %d: got %.6f, want 0", s, i, v)
			}
			for j := 0; j < d.Len(); j++ {
				if d.At(i, j) < 0 {
					t.Errorf("scale %s: negative distance [%d, %d]: %.6f", s, i, j, d.At(i, j))
				}
			}
		}

		c, err := d.Condensed()
		if err != nil {
			t.Fatalf("scale %s: unexpected error: %v", s, err)
		}
		want := []float64{10, 90, 90, 90, 90, 20}
		if !reflect.DeepEqual(c, want) {
			t.Errorf("scale %s: condensed: got %v, want %v", s, c, want)
		}
	}
}

func TestDistanceRange(t *testing.T) {
	data := `genome	A	B
A	100	100.0000000001
B	100.5	100
`
	m, err := matrix.ReadTSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unable to read matrix: %v", err)
	}

	_, err = m.Distance(matrix.Fixed(100))
	var re *matrix.RangeError
	if !errors.As(err, &re) {
		t.Fatalf("got error %v, want RangeError", err)
	}
	if re.Row != "B" || re.Col != "A" {
		t.Errorf("error cell: got [%q, %q], want [%q, %q]", re.Row, re.Col, "B", "A")
	}

	s, err := m.Symmetrize(matrix.Mean)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, err := s.Distance(matrix.MaxScale)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := d.At(0, 1); v != 0 {
		t.Errorf("distance [A, B]: got %g, want 0", v)
	}
}

func TestCondensedRoundTrip(t *testing.T) {
	labels := []string{"a", "b", "c", "d", "e"}
	c := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	m, err := matrix.Squareform(labels, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < m.Len(); i++ {
		for j := i + 1; j < m.Len(); j++ {
			if m.At(i, j) != c[matrix.CondensedIndex(m.Len(), i, j)] {
				t.Errorf("value [%d, %d]: got %.6f, want %.6f", i, j, m.At(i, j), c[matrix.CondensedIndex(m.Len(), i, j)])
			}
		}
	}

	got, err := m.Condensed()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Errorf("condensed: got %v, want %v", got, c)
	}

	if _, err := matrix.Squareform(labels, c[:9]); err == nil {
		t.Errorf("squareform: expecting error on short vector")
	}
}

func TestCondensedAsymmetric(t *testing.T) {
	data := `genome	A	B
A	0	1
B	2	0
`
	m, err := matrix.ReadTSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unable to read matrix: %v", err)
	}
	_, err = m.Condensed()
	var se *matrix.ShapeError
	if !errors.As(err, &se) {
		t.Errorf("got error %v, want ShapeError", err)
	}
}

func TestTriangles(t *testing.T) {
	data := `genome	A	B	C
A	0	1	2
B	3	0	4
C	5	6	0
`
	m, err := matrix.ReadTSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unable to read matrix: %v", err)
	}

	if u := m.Upper(); !reflect.DeepEqual(u, []float64{1, 2, 4}) {
		t.Errorf("upper: got %v, want %v", u, []float64{1, 2, 4})
	}
	if l := m.Lower(); !reflect.DeepEqual(l, []float64{3, 5, 6}) {
		t.Errorf("lower: got %v, want %v", l, []float64{3, 5, 6})
	}

	r, err := m.Reorder([]string{"C", "A", "B"})
	if err != nil {
		t.Fatalf("reorder: unexpected error: %v", err)
	}
	if u := r.Upper(); !reflect.DeepEqual(u, []float64{5, 6, 1}) {
		t.Errorf("reorder upper: got %v, want %v", u, []float64{5, 6, 1})
	}
	if _, err := m.Reorder([]string{"C", "A", "X"}); err == nil {
		t.Errorf("reorder: expecting error on unknown label")
	}
}

func testEqual(t testing.TB, name string, got, want *matrix.Matrix) {
	t.Helper()

	if !reflect.DeepEqual(got.Labels(), want.Labels()) {
		t.Fatalf("%s: labels: got %v, want %v", name, got.Labels(), want.Labels())
	}
	for i := 0; i < want.Len(); i++ {
		for j := 0; j < want.Len(); j++ {
			g, w := got.At(i, j), want.At(i, j)
			if math.IsNaN(w) && math.IsNaN(g) {
				continue
			}
			if math.Abs(g-w) > 1e-6 {
				t.Errorf("%s: value [%d, %d]: got %.6f, want %.6f", name, i, j, g, w)
			}
		}
	}
}
