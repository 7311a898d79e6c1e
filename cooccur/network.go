// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package cooccur

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// Network is a co-occurrence network of genes.
// Node IDs are the gene indexes of the source table.
type Network struct {
	genes []string
	kinds []string
	g     *simple.WeightedUndirectedGraph
}

// Network returns the co-occurrence network of the table.
// There is an edge between two genes
// if they are found together in at least minCount isolates.
// The weight of the edge is the number of isolates.
func (t *Table) Network(minCount int) (*Network, error) {
	m, err := t.Matrix()
	if err != nil {
		return nil, err
	}
	if minCount < 1 {
		minCount = 1
	}
	return newNetwork(t.genes, t.kinds, m, float64(minCount)), nil
}

func newNetwork(genes, kinds []string, m *mat.SymDense, minW float64) *Network {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := range genes {
		g.AddNode(simple.Node(int64(i)))
	}
	n := m.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := m.At(i, j)
			if w < minW {
				continue
			}
			g.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(int64(i)),
				T: simple.Node(int64(j)),
				W: w,
			})
		}
	}
	return &Network{
		genes: slices.Clone(genes),
		kinds: slices.Clone(kinds),
		g:     g,
	}
}

// Edge is a co-occurrence between two genes.
type Edge struct {
	A, B  string
	Kind  string
	Count int
}

// Edges returns the edges of the network,
// sorted by decreasing count,
// and then by gene names.
func (n *Network) Edges() []Edge {
	var edges []Edge
	it := n.g.WeightedEdges()
	for it.Next() {
		e := it.WeightedEdge()
		a, b := int(e.From().ID()), int(e.To().ID())
		if a > b {
			a, b = b, a
		}
		edges = append(edges, Edge{
			A:     n.genes[a],
			B:     n.genes[b],
			Kind:  edgeKind(n.kinds[a], n.kinds[b]),
			Count: int(e.Weight()),
		})
	}
	slices.SortFunc(edges, func(x, y Edge) int {
		if x.Count != y.Count {
			return y.Count - x.Count
		}
		if x.A != y.A {
			if x.A < y.A {
				return -1
			}
			return 1
		}
		if x.B < y.B {
			return -1
		}
		if x.B > y.B {
			return 1
		}
		return 0
	})
	return edges
}

// edgeKind returns the kind of an edge
// from the kinds of its genes.
func edgeKind(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "-" + b
}

// Genes returns the gene names,
// in node ID order.
func (n *Network) Genes() []string {
	return slices.Clone(n.genes)
}

// Kind returns the kind of a gene
// by its node ID.
func (n *Network) Kind(id int) string {
	return n.kinds[id]
}

// Neighbors returns the node IDs
// connected to the given node.
func (n *Network) Neighbors(id int) []int {
	var ns []int
	it := n.g.From(int64(id))
	for it.Next() {
		ns = append(ns, int(it.Node().ID()))
	}
	slices.Sort(ns)
	return ns
}

// Weight returns the weight of the edge
// between two nodes,
// and false if there is no edge.
func (n *Network) Weight(a, b int) (float64, bool) {
	if a == b {
		return 0, false
	}
	return n.g.Weight(int64(a), int64(b))
}

// Centrality is the centrality of a gene
// in a co-occurrence network.
type Centrality struct {
	Gene string
	Kind string

	// Number of connected genes
	Degree int

	// Sum of the weights of the edges of the gene
	Weighted float64

	// Betweenness centrality
	Betweenness float64
}

// Centrality returns the centrality of each gene,
// in node ID order.
func (n *Network) Centrality() []Centrality {
	bt := network.Betweenness(n.g)

	cs := make([]Centrality, len(n.genes))
	for i, g := range n.genes {
		c := Centrality{
			Gene:        g,
			Kind:        n.kinds[i],
			Betweenness: bt[int64(i)],
		}
		it := n.g.From(int64(i))
		for it.Next() {
			c.Degree++
			w, _ := n.g.Weight(int64(i), it.Node().ID())
			c.Weighted += w
		}
		cs[i] = c
	}
	return cs
}

// TSV writes the edges of the network
// as a TSV file.
func (n *Network) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write([]string{"gene1", "gene2", "kind", "count"}); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}
	for _, e := range n.Edges() {
		row := []string{
			e.A,
			e.B,
			e.Kind,
			strconv.Itoa(e.Count),
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

// CentralityTSV writes the centrality of the genes
// as a TSV file.
func (n *Network) CentralityTSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write([]string{"gene", "kind", "degree", "weighted", "betweenness"}); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}
	for _, c := range n.Centrality() {
		row := []string{
			c.Gene,
			c.Kind,
			strconv.Itoa(c.Degree),
			strconv.FormatFloat(c.Weighted, 'f', 0, 64),
			strconv.FormatFloat(c.Betweenness, 'f', 6, 64),
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
