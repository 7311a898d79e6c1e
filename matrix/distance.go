// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package matrix

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Rule is the rule used to combine
// the two reciprocal values of a pair
// when making a matrix symmetric.
type Rule int

// Valid symmetrization rules.
const (
	// Mean uses the arithmetic mean
	// of the reciprocal values.
	Mean Rule = iota

	// Median uses the median
	// of the reciprocal values.
	Median
)

// ParseRule returns a rule from its name.
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mean", "average":
		return Mean, nil
	case "median":
		return Median, nil
	}
	return Mean, fmt.Errorf("unknown symmetrization rule %q", s)
}

func (r Rule) String() string {
	if r == Median {
		return "median"
	}
	return "mean"
}

func (r Rule) combine(v []float64) float64 {
	if r == Median {
		return median(v)
	}
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

func median(v []float64) float64 {
	s := slices.Clone(v)
	slices.Sort(s)
	h := len(s) / 2
	if len(s)%2 == 1 {
		return s[h]
	}
	return (s[h-1] + s[h]) / 2
}

// Symmetrize returns a new symmetric matrix
// in which each pair of reciprocal values
// is replaced by the value produced by the given rule.
// If one of the values of the pair is missing,
// the other value will be used.
// If both values are missing,
// it returns a *RangeError.
// The diagonal is copied without changes.
func (m *Matrix) Symmetrize(rule Rule) (*Matrix, error) {
	nm := m.clone()
	n := len(m.labels)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var v []float64
			if x := m.m[i][j]; !math.IsNaN(x) {
				v = append(v, x)
			}
			if x := m.m[j][i]; !math.IsNaN(x) {
				v = append(v, x)
			}
			if len(v) == 0 {
				return nil, &RangeError{
					Row:   m.labels[i],
					Col:   m.labels[j],
					Value: math.NaN(),
					Msg:   "both reciprocal values are missing",
				}
			}
			s := rule.combine(v)
			nm.m[i][j] = s
			nm.m[j][i] = s
		}
	}
	return nm, nil
}

// Scale is the reference scale
// used to transform similarities into distances.
type Scale struct {
	value float64
	max   bool
}

// MaxScale uses the maximum observed value
// of the matrix as the reference scale.
var MaxScale = Scale{max: true}

// Fixed returns a scale with a fixed value,
// for example 100 for percentages.
func Fixed(v float64) Scale {
	return Scale{value: v}
}

// ParseScale returns a scale from a string,
// either a number,
// or the keyword "max".
func ParseScale(s string) (Scale, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "max" {
		return MaxScale, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Scale{}, fmt.Errorf("invalid scale %q: %v", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Scale{}, fmt.Errorf("invalid scale %q", s)
	}
	return Fixed(v), nil
}

func (s Scale) String() string {
	if s.max {
		return "max"
	}
	return strconv.FormatFloat(s.value, 'f', -1, 64)
}

// Distance returns a distance matrix
// by subtracting each similarity value
// from the reference scale.
// The diagonal is set to 0.
//
// Negative distances within Tolerance are set to 0,
// other negative distances
// (i.e., a similarity larger than the reference scale)
// or missing values,
// return a *RangeError.
func (m *Matrix) Distance(scale Scale) (*Matrix, error) {
	ref := scale.value
	if scale.max {
		ref = m.Max()
		if math.IsNaN(ref) {
			return nil, &ShapeError{Rows: m.Len(), Cols: m.Len(), Msg: "distance: matrix without values"}
		}
	}

	nm := m.clone()
	n := len(m.labels)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				nm.m[i][j] = 0
				continue
			}
			s := m.m[i][j]
			if math.IsNaN(s) {
				return nil, &RangeError{
					Row:   m.labels[i],
					Col:   m.labels[j],
					Value: s,
					Msg:   "undefined similarity",
				}
			}
			d := ref - s
			if d < 0 {
				if d < -Tolerance {
					return nil, &RangeError{
						Row:   m.labels[i],
						Col:   m.labels[j],
						Value: s,
						Msg:   fmt.Sprintf("similarity larger than reference scale %g", ref),
					}
				}
				d = 0
			}
			nm.m[i][j] = d
		}
	}
	return nm, nil
}

// CondensedIndex returns the position of the pair i, j
// in a condensed vector of a matrix of size n.
// The diagonal has no position in the condensed vector.
func CondensedIndex(n, i, j int) int {
	if i > j {
		i, j = j, i
	}
	return n*i - i*(i+1)/2 + j - i - 1
}

// Condensed returns the upper triangle of a symmetric matrix
// as a vector,
// in the order (0, 1), (0, 2), ..., (0, n-1), (1, 2), ..., (n-2, n-1).
// If the matrix is not symmetric,
// it returns a *ShapeError.
func (m *Matrix) Condensed() ([]float64, error) {
	n := len(m.labels)
	c := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			v, r := m.m[i][j], m.m[j][i]
			if math.Abs(v-r) > Tolerance || math.IsNaN(v) != math.IsNaN(r) {
				return nil, &ShapeError{
					Rows:  n,
					Cols:  n,
					Label: m.labels[i],
					Msg:   fmt.Sprintf("condensed: not symmetric with %q", m.labels[j]),
				}
			}
			c = append(c, v)
		}
	}
	if len(c) != n*(n-1)/2 {
		return nil, &ShapeError{Rows: n, Cols: n, Msg: fmt.Sprintf("condensed: got %d values, want %d", len(c), n*(n-1)/2)}
	}
	return c, nil
}

// Squareform returns a symmetric matrix
// from a condensed vector,
// with a diagonal of 0.
func Squareform(labels []string, c []float64) (*Matrix, error) {
	n := len(labels)
	if len(c) != n*(n-1)/2 {
		return nil, &ShapeError{Rows: n, Cols: n, Msg: fmt.Sprintf("squareform: got %d values, want %d", len(c), n*(n-1)/2)}
	}

	m, err := New(labels)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.m[i][i] = 0
		for j := i + 1; j < n; j++ {
			v := c[CondensedIndex(n, i, j)]
			m.m[i][j] = v
			m.m[j][i] = v
		}
	}
	return m, nil
}
