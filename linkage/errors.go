// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package linkage

import "fmt"

// A DegenerateInputError is returned
// when there are too few leaves to build a tree,
// or the distance vector is malformed.
type DegenerateInputError struct {
	// N is the number of leaves.
	N int

	// Len is the length of the input vector.
	Len int

	// Index is the position of an offending value
	// in the input vector.
	Index int

	Msg string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("linkage: %d leaves, %d values: %s", e.N, e.Len, e.Msg)
}

// A TreeCorruptionError is returned
// when a merge tree references an invalid node.
type TreeCorruptionError struct {
	// Node is the offending node ID.
	Node int

	// Merge is the merge record that references the node.
	Merge int

	Msg string
}

func (e *TreeCorruptionError) Error() string {
	return fmt.Sprintf("linkage: merge %d: node %d: %s", e.Merge, e.Node, e.Msg)
}
