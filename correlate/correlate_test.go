// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package correlate_test

import (
	"math"
	"strings"
	"testing"

	"github.com/js-arias/genocmp/correlate"
	"github.com/js-arias/genocmp/matrix"
)

func TestPearson(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	tests := map[string]struct {
		y []float64
		r float64
		p float64
	}{
		"perfect":  {y: []float64{2, 4, 6, 8, 10}, r: 1, p: 0},
		"inverse":  {y: []float64{10, 8, 6, 4, 2}, r: -1, p: 0},
		"positive": {y: []float64{1, 3, 2, 5, 4}, r: 0.8, p: 0.1041},
	}

	for name, test := range tests {
		res, err := correlate.Pearson(x, test.y)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if res.N != len(x) {
			t.Errorf("%s: n: got %d, want %d", name, res.N, len(x))
		}
		if math.Abs(res.R-test.r) > 1e-9 {
			t.Errorf("%s: r: got %.6f, want %.6f", name, res.R, test.r)
		}
		if math.Abs(res.P-test.p) > 1e-3 {
			t.Errorf("%s: p: got %.6f, want %.6f", name, res.P, test.p)
		}
	}
}

func TestPearsonError(t *testing.T) {
	tests := map[string][2][]float64{
		"few values": {{1, 2}, {1, 2}},
		"length":     {{1, 2, 3}, {1, 2}},
		"constant":   {{1, 1, 1}, {1, 2, 3}},
	}
	for name, test := range tests {
		if _, err := correlate.Pearson(test[0], test[1]); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestPValueString(t *testing.T) {
	r := correlate.Result{P: 1e-12}
	if s := r.PValueString(); s != "< 1e-10" {
		t.Errorf("p-value: got %q, want %q", s, "< 1e-10")
	}
	r = correlate.Result{P: 0.25}
	if s := r.PValueString(); s != "0.25" {
		t.Errorf("p-value: got %q, want %q", s, "0.25")
	}
}

const ani = `genome	A	B	C
A	100	98	80
B	98	100	NA
C	80	81	100
`

const ddh = `genome	C	B	A
C	100	20	22
B	20	100	85
A	22	85	100
`

func TestPairs(t *testing.T) {
	x, err := matrix.ReadTSV(strings.NewReader(ani))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	y, err := matrix.ReadTSV(strings.NewReader(ddh))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	xv, yv, err := correlate.Pairs(x, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// [B, C] is missing in ani
	wantX := []float64{98, 80}
	wantY := []float64{85, 22}
	if len(xv) != len(wantX) {
		t.Fatalf("pairs: got %v, %v, want %v, %v", xv, yv, wantX, wantY)
	}
	for i := range wantX {
		if xv[i] != wantX[i] || yv[i] != wantY[i] {
			t.Errorf("pair %d: got %.2f, %.2f, want %.2f, %.2f", i, xv[i], yv[i], wantX[i], wantY[i])
		}
	}
}
