// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package correlate implements the correlation
// between two genome similarity measures.
package correlate

import (
	"fmt"
	"math"
	"strconv"

	"github.com/js-arias/genocmp/matrix"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// MinPValue is the smallest p-value
// reported as a number.
const MinPValue = 1e-10

// Result is the result of a correlation test.
type Result struct {
	// Pearson's correlation coefficient
	R float64

	// Number of observations
	N int

	// Two-sided p-value
	// of a Student's t test
	// with N-2 degrees of freedom.
	P float64
}

// PValueString returns the p-value as a string.
func (r Result) PValueString() string {
	if r.P < MinPValue {
		return "< 1e-10"
	}
	return strconv.FormatFloat(r.P, 'g', 4, 64)
}

// Pearson returns the Pearson's correlation
// between two sets of observations.
func Pearson(x, y []float64) (Result, error) {
	if len(x) != len(y) {
		return Result{}, fmt.Errorf("correlate: different number of observations: %d and %d", len(x), len(y))
	}
	if len(x) < 3 {
		return Result{}, fmt.Errorf("correlate: %d observations, want at least 3", len(x))
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return Result{}, fmt.Errorf("correlate: undefined correlation (constant values)")
	}
	res := Result{R: r, N: len(x)}

	df := float64(len(x) - 2)
	if 1-math.Abs(r) < matrix.Tolerance {
		res.P = 0
		return res, nil
	}
	t := r * math.Sqrt(df/(1-r*r))
	st := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	res.P = 2 * st.Survival(math.Abs(t))
	return res, nil
}

// Pairs returns the paired values
// of the upper triangle of two matrices,
// in the label order of x.
// Pairs with a missing value in any of the matrices
// are ignored.
func Pairs(x, y *matrix.Matrix) (xv, yv []float64, err error) {
	labels := x.Labels()
	for _, l := range labels {
		if _, ok := y.Index(l); !ok {
			return nil, nil, fmt.Errorf("correlate: genome %q not found in both matrices", l)
		}
	}

	for i, a := range labels {
		for _, b := range labels[i+1:] {
			v1, ok1 := x.Val(a, b)
			v2, ok2 := y.Val(a, b)
			if !ok1 || !ok2 || math.IsNaN(v1) || math.IsNaN(v2) {
				continue
			}
			xv = append(xv, v1)
			yv = append(yv, v2)
		}
	}
	return xv, yv, nil
}
