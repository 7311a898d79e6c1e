// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package linkage

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/js-arias/timetree"
)

// Height is the rule used to set the height of a node
// from its merge distance.
// Leaves always have a height of 0.
type Height int

// Valid height rules.
const (
	// HalfHeight sets the height of a node
	// as half of its merge distance,
	// so the path length between two leaves
	// is the distance at which they were merged.
	HalfHeight Height = iota

	// FullHeight sets the height of a node
	// as its merge distance.
	FullHeight
)

// ParseHeight returns a height rule from its name.
func ParseHeight(s string) (Height, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "half":
		return HalfHeight, nil
	case "full":
		return FullHeight, nil
	}
	return HalfHeight, fmt.Errorf("unknown height rule %q", s)
}

func (h Height) String() string {
	if h == FullHeight {
		return "full"
	}
	return "half"
}

// Height returns the height of a node
// under a given height rule.
// Leaves,
// and ids that are not nodes of the tree,
// have height 0.
func (t *Tree) Height(id int, h Height) float64 {
	n := len(t.labels)
	if id < n || id-n >= len(t.merges) {
		return 0
	}
	d := t.merges[id-n].Dist
	if h == FullHeight {
		return d
	}
	return d / 2
}

// Newick returns the tree as a Newick string.
func (t *Tree) Newick(h Height) (string, error) {
	var sb strings.Builder
	if err := t.writeNewick(&sb, h); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteNewick writes the tree in Newick format
// ending with a new line.
func (t *Tree) WriteNewick(w io.Writer, h Height) error {
	bw := bufio.NewWriter(w)
	if err := t.writeNewick(bw, h); err != nil {
		return err
	}
	fmt.Fprintln(bw)
	return bw.Flush()
}

// A newickStep is an element of the explicit stack
// used to write a Newick tree:
// either a node to be visited,
// or a literal text to be written.
type newickStep struct {
	node int
	text string

	// height of the parent node
	parent float64
}

func (t *Tree) writeNewick(w io.StringWriter, h Height) error {
	if err := t.validate(); err != nil {
		return err
	}

	n := len(t.labels)
	root := t.Root()
	stack := []newickStep{{node: root, parent: t.Height(root, h)}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.node < 0 {
			if _, err := w.WriteString(s.text); err != nil {
				return err
			}
			continue
		}

		if s.node > 2*n-2 {
			return &TreeCorruptionError{Node: s.node, Merge: -1, Msg: fmt.Sprintf("ID outside range [0, %d]", 2*n-2)}
		}

		hn := t.Height(s.node, h)
		brLen := ":" + formatLength(s.parent-hn)
		if s.node == root {
			brLen = ""
		}
		if s.node < n {
			if _, err := w.WriteString(quoteLabel(t.labels[s.node]) + brLen); err != nil {
				return err
			}
			continue
		}

		m := t.merges[s.node-n]
		stack = append(stack,
			newickStep{node: -1, text: ")" + brLen},
			newickStep{node: m.B, parent: hn},
			newickStep{node: -1, text: ","},
			newickStep{node: m.A, parent: hn},
		)
		if _, err := w.WriteString("("); err != nil {
			return err
		}
	}

	_, err := w.WriteString(";")
	return err
}

func formatLength(v float64) string {
	if v < 0 && v > -1e-12 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// quoteLabel quotes a label
// if it contains Newick metacharacters.
func quoteLabel(s string) string {
	if !strings.ContainsAny(s, " \t()[]':;,") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// MillionYears is the number of units
// of a time calibrated tree
// for a branch length of one.
const MillionYears = 1_000_000

// TimeTree returns the tree as a time calibrated tree
// using the height rule,
// in which the branch lengths are interpreted
// as million years.
func (t *Tree) TimeTree(name string, h Height) (*timetree.Tree, error) {
	nw, err := t.Newick(h)
	if err != nil {
		return nil, err
	}

	c, err := timetree.Newick(strings.NewReader(nw), name, 0)
	if err != nil {
		return nil, fmt.Errorf("tree %q: %v", name, err)
	}
	if tt := c.Tree(name); tt != nil {
		return tt, nil
	}
	ls := c.Names()
	if len(ls) == 0 {
		return nil, fmt.Errorf("tree %q: tree not found after parsing", name)
	}
	return c.Tree(ls[0]), nil
}
