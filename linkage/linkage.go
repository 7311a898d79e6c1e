// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package linkage implements average linkage
// (UPGMA)
// hierarchical clustering
// of a condensed distance vector,
// and the serialization of the resulting merge tree
// in Newick format.
//
// In a tree of n leaves,
// the IDs 0 to n-1 are the leaves
// (in the order of the labels),
// and the merge k creates the node with ID n+k.
// The last merge is the root of the tree.
package linkage

import (
	"fmt"
	"math"

	"github.com/js-arias/genocmp/matrix"
)

// Merge is a merge record of a merge tree.
type Merge struct {
	// A and B are the IDs of the merged clusters,
	// with A < B.
	A, B int

	// Dist is the distance between A and B
	// at the moment of the merge.
	Dist float64

	// Size is the number of leaves
	// in the merged cluster.
	Size int
}

// Tree is a merge tree
// produced by a hierarchical clustering.
type Tree struct {
	labels []string
	merges []Merge
}

// New creates a merge tree from a set of labels
// and a list of merge records.
// The merge records are not validated
// until the tree is serialized.
func New(labels []string, merges []Merge) (*Tree, error) {
	n := len(labels)
	if n < 2 {
		return nil, &DegenerateInputError{N: n, Msg: "at least two leaves are required"}
	}
	if len(merges) != n-1 {
		return nil, &DegenerateInputError{N: n, Len: len(merges), Msg: fmt.Sprintf("want %d merges", n-1)}
	}

	t := &Tree{
		labels: make([]string, n),
		merges: make([]Merge, n-1),
	}
	copy(t.labels, labels)
	copy(t.merges, merges)
	return t, nil
}

// Average returns the merge tree
// of an average linkage
// (UPGMA)
// clustering of a condensed distance vector.
// The condensed vector must follow the enumeration order
// of matrix.Condensed.
//
// At each step the pair of clusters with the minimum distance
// is merged,
// and ties are broken by the lowest cluster IDs.
// The distance between the new cluster
// and any other cluster
// is the size weighted average of the distances
// of the merged clusters.
func Average(labels []string, condensed []float64) (*Tree, error) {
	n := len(labels)
	if n < 2 {
		return nil, &DegenerateInputError{N: n, Len: len(condensed), Msg: "at least two leaves are required"}
	}
	if len(condensed) != n*(n-1)/2 {
		return nil, &DegenerateInputError{N: n, Len: len(condensed), Msg: fmt.Sprintf("want %d distances", n*(n-1)/2)}
	}

	// distances are stored by slot,
	// a merged cluster takes the slot of A.
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := matrix.CondensedIndex(n, i, j)
			v := condensed[p]
			if math.IsNaN(v) || v < -matrix.Tolerance {
				return nil, &DegenerateInputError{N: n, Len: len(condensed), Index: p, Msg: fmt.Sprintf("invalid distance %g", v)}
			}
			if v < 0 {
				v = 0
			}
			d[i][j] = v
			d[j][i] = v
		}
	}

	// active cluster IDs,
	// always sorted as new clusters have the largest ID.
	active := make([]int, n)
	slot := make(map[int]int, 2*n-1)
	size := make(map[int]int, 2*n-1)
	for i := range active {
		active[i] = i
		slot[i] = i
		size[i] = 1
	}

	merges := make([]Merge, 0, n-1)
	for k := 0; k < n-1; k++ {
		pa, pb := 0, 1
		min := math.Inf(1)
		for p := 0; p < len(active); p++ {
			sp := slot[active[p]]
			for q := p + 1; q < len(active); q++ {
				if v := d[sp][slot[active[q]]]; v < min {
					min = v
					pa, pb = p, q
				}
			}
		}

		a, b := active[pa], active[pb]
		sa, sb := slot[a], slot[b]
		c := n + k
		szA, szB := size[a], size[b]
		merges = append(merges, Merge{
			A:    a,
			B:    b,
			Dist: min,
			Size: szA + szB,
		})

		for _, x := range active {
			if x == a || x == b {
				continue
			}
			sx := slot[x]
			v := (float64(szA)*d[sa][sx] + float64(szB)*d[sb][sx]) / float64(szA+szB)
			if v < 0 {
				v = 0
			}
			d[sa][sx] = v
			d[sx][sa] = v
		}

		// remove b first as pb > pa
		active = append(active[:pb], active[pb+1:]...)
		active = append(active[:pa], active[pa+1:]...)
		active = append(active, c)
		slot[c] = sa
		size[c] = szA + szB
		delete(slot, a)
		delete(slot, b)
	}

	return &Tree{
		labels: append([]string(nil), labels...),
		merges: merges,
	}, nil
}

// Labels returns the leaf labels of the tree.
func (t *Tree) Labels() []string {
	return append([]string(nil), t.labels...)
}

// Len returns the number of leaves of the tree.
func (t *Tree) Len() int {
	return len(t.labels)
}

// Merges returns the merge records of the tree.
func (t *Tree) Merges() []Merge {
	return append([]Merge(nil), t.merges...)
}

// Root returns the ID of the root node.
func (t *Tree) Root() int {
	return 2*len(t.labels) - 2
}

// Order returns the leaf IDs
// in the order they appear in the dendrogram,
// from the left (first) child to the right (last) child.
func (t *Tree) Order() ([]int, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	n := len(t.labels)
	order := make([]int, 0, n)
	stack := []int{t.Root()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id < n {
			order = append(order, id)
			continue
		}
		m := t.merges[id-n]
		stack = append(stack, m.B, m.A)
	}
	return order, nil
}

// OrderLabels returns the leaf labels
// in the order they appear in the dendrogram.
func (t *Tree) OrderLabels() ([]string, error) {
	order, err := t.Order()
	if err != nil {
		return nil, err
	}
	ls := make([]string, len(order))
	for i, id := range order {
		ls[i] = t.labels[id]
	}
	return ls, nil
}

// validate checks that each node
// is a child of exactly one merge,
// and that children are created before its parent.
func (t *Tree) validate() error {
	n := len(t.labels)
	used := make([]bool, 2*n-1)
	for k, m := range t.merges {
		for _, id := range []int{m.A, m.B} {
			if id < 0 || id > 2*n-2 {
				return &TreeCorruptionError{Node: id, Merge: k, Msg: fmt.Sprintf("ID outside range [0, %d]", 2*n-2)}
			}
			if id >= n+k {
				return &TreeCorruptionError{Node: id, Merge: k, Msg: "node used before being created"}
			}
			if used[id] {
				return &TreeCorruptionError{Node: id, Merge: k, Msg: "node with more than one parent"}
			}
			used[id] = true
		}
	}
	return nil
}
