// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package linkage

import "github.com/js-arias/genocmp/matrix"

// Cluster builds an UPGMA tree
// from a similarity matrix.
// The matrix is made symmetric with the given rule,
// and transformed into distances using the given scale.
// The input matrix is not modified.
func Cluster(m *matrix.Matrix, rule matrix.Rule, scale matrix.Scale) (*Tree, error) {
	sym, err := m.Symmetrize(rule)
	if err != nil {
		return nil, err
	}
	dm, err := sym.Distance(scale)
	if err != nil {
		return nil, err
	}
	cond, err := dm.Condensed()
	if err != nil {
		return nil, err
	}
	return Average(dm.Labels(), cond)
}
