// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package linkage_test

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/genocmp/linkage"
	"github.com/js-arias/genocmp/matrix"
	"github.com/js-arias/timetree"
)

var scenarioLabels = []string{"A", "B", "C", "D"}

// distances for the similarity matrix
//
//	A	100	90	10	10
//	B	90	100	10	10
//	C	10	10	100	80
//	D	10	10	80	100
var scenarioDist = []float64{10, 90, 90, 90, 90, 20}

func TestAverage(t *testing.T) {
	tr, err := linkage.Average(scenarioLabels, scenarioDist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []linkage.Merge{
		{A: 0, B: 1, Dist: 10, Size: 2},
		{A: 2, B: 3, Dist: 20, Size: 2},
		{A: 4, B: 5, Dist: 90, Size: 4},
	}
	if got := tr.Merges(); !reflect.DeepEqual(got, want) {
		t.Errorf("merges: got %v, want %v", got, want)
	}

	order, err := tr.OrderLabels()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(order, scenarioLabels) {
		t.Errorf("order: got %v, want %v", order, scenarioLabels)
	}
}

func TestHeight(t *testing.T) {
	tr, err := linkage.Average(scenarioLabels, scenarioDist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]struct {
		id   int
		h    linkage.Height
		want float64
	}{
		"leaf":           {0, linkage.HalfHeight, 0},
		"half":           {4, linkage.HalfHeight, 5},
		"full":           {4, linkage.FullHeight, 10},
		"root":           {tr.Root(), linkage.HalfHeight, 45},
		"outside tree":   {tr.Root() + 1, linkage.HalfHeight, 0},
		"negative":       {-1, linkage.FullHeight, 0},
		"far from range": {100, linkage.FullHeight, 0},
	}

	for name, test := range tests {
		if got := tr.Height(test.id, test.h); got != test.want {
			t.Errorf("%s: height of %d: got %.6f, want %.6f", name, test.id, got, test.want)
		}
	}
}

func TestAverageWeighted(t *testing.T) {
	// a, b merge first,
	// then c joins at the weighted average
	// (size 2 and size 1).
	labels := []string{"a", "b", "c", "d"}
	dist := []float64{
		2, 6, 10, // a
		8, 12, // b
		20, // c
	}
	tr, err := linkage.Average(labels, dist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []linkage.Merge{
		{A: 0, B: 1, Dist: 2, Size: 2},
		{A: 2, B: 4, Dist: 7, Size: 3},
		{A: 3, B: 5, Dist: (10 + 12 + 20) / 3.0, Size: 4},
	}
	got := tr.Merges()
	for i, m := range want {
		g := got[i]
		if g.A != m.A || g.B != m.B || g.Size != m.Size || math.Abs(g.Dist-m.Dist) > 1e-9 {
			t.Errorf("merge %d: got %v, want %v", i, g, m)
		}
	}
}

func TestAverageTies(t *testing.T) {
	labels := []string{"a", "b", "c", "d"}
	dist := []float64{1, 1, 1, 1, 1, 1}

	want := []linkage.Merge{
		{A: 0, B: 1, Dist: 1, Size: 2},
		{A: 2, B: 3, Dist: 1, Size: 2},
		{A: 4, B: 5, Dist: 1, Size: 4},
	}
	for i := 0; i < 5; i++ {
		tr, err := linkage.Average(labels, dist)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := tr.Merges(); !reflect.DeepEqual(got, want) {
			t.Errorf("run %d: merges: got %v, want %v", i, got, want)
		}
	}
}

func TestAverageProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for _, n := range []int{2, 3, 10, 57} {
		labels, dist := randomPoints(rng, n)

		tr, err := linkage.Average(labels, dist)
		if err != nil {
			t.Fatalf("n = %d: unexpected error: %v", n, err)
		}
		merges := tr.Merges()
		if len(merges) != n-1 {
			t.Errorf("n = %d: got %d merges, want %d", n, len(merges), n-1)
		}
		if sz := merges[len(merges)-1].Size; sz != n {
			t.Errorf("n = %d: root size: got %d, want %d", n, sz, n)
		}
		for k := 0; k < len(merges)-1; k++ {
			if merges[k].Dist > merges[k+1].Dist+matrix.Tolerance {
				t.Errorf("n = %d: merge %d: distance %.6f > next distance %.6f", n, k, merges[k].Dist, merges[k+1].Dist)
			}
		}

		order, err := tr.Order()
		if err != nil {
			t.Fatalf("n = %d: unexpected error: %v", n, err)
		}
		slices.Sort(order)
		for i, id := range order {
			if i != id {
				t.Errorf("n = %d: order: missing leaf %d", n, i)
				break
			}
		}
	}
}

func randomPoints(rng *rand.Rand, n int) ([]string, []float64) {
	type point struct{ x, y float64 }
	pts := make([]point, n)
	labels := make([]string, n)
	for i := range pts {
		pts[i] = point{rng.Float64() * 100, rng.Float64() * 100}
		labels[i] = "g" + strings.Repeat("x", i)
	}

	var dist []float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist = append(dist, math.Hypot(pts[i].x-pts[j].x, pts[i].y-pts[j].y))
		}
	}
	return labels, dist
}

func TestAverageDegenerate(t *testing.T) {
	tests := map[string]struct {
		labels []string
		dist   []float64
	}{
		"empty":        {},
		"single leaf":  {labels: []string{"a"}},
		"short vector": {labels: []string{"a", "b", "c"}, dist: []float64{1, 2}},
		"long vector":  {labels: []string{"a", "b"}, dist: []float64{1, 2}},
		"nan value":    {labels: []string{"a", "b", "c"}, dist: []float64{1, math.NaN(), 2}},
		"negative":     {labels: []string{"a", "b", "c"}, dist: []float64{1, -2, 2}},
	}

	for name, test := range tests {
		_, err := linkage.Average(test.labels, test.dist)
		var de *linkage.DegenerateInputError
		if !errors.As(err, &de) {
			t.Errorf("%s: got error %v, want DegenerateInputError", name, err)
		}
	}
}

func TestNewick(t *testing.T) {
	tr, err := linkage.Average(scenarioLabels, scenarioDist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[linkage.Height]string{
		linkage.HalfHeight: "((A:5,B:5):40,(C:10,D:10):35);",
		linkage.FullHeight: "((A:10,B:10):80,(C:20,D:20):70);",
	}
	for h, want := range tests {
		got, err := tr.Newick(h)
		if err != nil {
			t.Fatalf("height %s: unexpected error: %v", h, err)
		}
		if got != want {
			t.Errorf("height %s: got %q, want %q", h, got, want)
		}
	}

	var sb strings.Builder
	if err := tr.WriteNewick(&sb, linkage.HalfHeight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := sb.String(); got != tests[linkage.HalfHeight]+"\n" {
		t.Errorf("write: got %q", got)
	}
}

func TestNewickQuote(t *testing.T) {
	tr, err := linkage.Average([]string{"E. coli K12", "it's"}, []float64{4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := tr.Newick(linkage.FullHeight)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "('E. coli K12':4,'it''s':4);"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNewickDeep(t *testing.T) {
	// a caterpillar tree
	// to check deep trees.
	n := 5000
	labels := make([]string, n)
	merges := make([]linkage.Merge, 0, n-1)
	for i := range labels {
		labels[i] = "t"
	}
	merges = append(merges, linkage.Merge{A: 0, B: 1, Dist: 1, Size: 2})
	for k := 1; k < n-1; k++ {
		merges = append(merges, linkage.Merge{A: k + 1, B: n + k - 1, Dist: float64(k + 1), Size: k + 2})
	}
	tr, err := linkage.New(labels, merges)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nw, err := tr.Newick(linkage.FullHeight)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c := strings.Count(nw, "("); c != n-1 {
		t.Errorf("got %d internal nodes, want %d", c, n-1)
	}
	if !strings.HasSuffix(nw, ";") {
		t.Errorf("newick without ending semicolon")
	}
}

func TestNewickCorruption(t *testing.T) {
	labels := []string{"a", "b", "c"}
	tests := map[string][]linkage.Merge{
		"out of range": {
			{A: 0, B: 1, Dist: 1, Size: 2},
			{A: 2, B: 7, Dist: 2, Size: 3},
		},
		"negative": {
			{A: -1, B: 1, Dist: 1, Size: 2},
			{A: 2, B: 3, Dist: 2, Size: 3},
		},
		"not created": {
			{A: 0, B: 3, Dist: 1, Size: 2},
			{A: 1, B: 2, Dist: 2, Size: 3},
		},
		"repeated": {
			{A: 0, B: 1, Dist: 1, Size: 2},
			{A: 1, B: 3, Dist: 2, Size: 3},
		},
	}

	for name, merges := range tests {
		tr, err := linkage.New(labels, merges)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		_, err = tr.Newick(linkage.HalfHeight)
		var tc *linkage.TreeCorruptionError
		if !errors.As(err, &tc) {
			t.Errorf("%s: got error %v, want TreeCorruptionError", name, err)
		}
	}
}

func TestNewickRoundTrip(t *testing.T) {
	labels := []string{"Ecoli", "Salmonella", "Shigella", "Klebsiella", "Vibrio", "Pseudomonas"}
	dist := []float64{
		20, 4, 40, 80, 100,
		20, 40, 80, 100,
		40, 80, 100,
		80, 100,
		60,
	}
	tr, err := linkage.Average(labels, dist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tt, err := tr.TimeTree("enterobacteria", linkage.HalfHeight)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gotTerms := tt.Terms()
	slices.Sort(gotTerms)
	wantTerms := append([]string(nil), labels...)
	slices.Sort(wantTerms)
	if !reflect.DeepEqual(gotTerms, wantTerms) {
		t.Errorf("terms: got %v, want %v", gotTerms, wantTerms)
	}

	got := timeTreeSplits(tt)
	want := mergeSplits(tr)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splits: got %v, want %v", got, want)
	}

	rootAge := tt.Age(tt.Root())
	wantAge := int64(tr.Height(tr.Root(), linkage.HalfHeight) * linkage.MillionYears)
	if rootAge != wantAge {
		t.Errorf("root age: got %d, want %d", rootAge, wantAge)
	}
}

func timeTreeSplits(t *timetree.Tree) map[string]bool {
	splits := make(map[string]bool)
	var terms func(id int) []string
	terms = func(id int) []string {
		if t.IsTerm(id) {
			return []string{t.Taxon(id)}
		}
		var ls []string
		for _, c := range t.Children(id) {
			ls = append(ls, terms(c)...)
		}
		slices.Sort(ls)
		splits[strings.Join(ls, ",")] = true
		return ls
	}
	terms(t.Root())
	return splits
}

func mergeSplits(t *linkage.Tree) map[string]bool {
	labels := t.Labels()
	n := len(labels)
	sets := make(map[int][]string)
	splits := make(map[string]bool)
	for k, m := range t.Merges() {
		var ls []string
		for _, id := range []int{m.A, m.B} {
			if id < n {
				ls = append(ls, labels[id])
				continue
			}
			ls = append(ls, sets[id]...)
		}
		slices.Sort(ls)
		sets[n+k] = ls
		splits[strings.Join(ls, ",")] = true
	}
	return splits
}

func TestCluster(t *testing.T) {
	data := `genome	A	B	C	D
A	100	90	10	10
B	90	100	10	10
C	10	10	100	80
D	10	10	80	100
`
	m, err := matrix.ReadTSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, sc := range []matrix.Scale{matrix.Fixed(100), matrix.MaxScale} {
		tr, err := linkage.Cluster(m, matrix.Mean, sc)
		if err != nil {
			t.Fatalf("scale %s: unexpected error: %v", sc, err)
		}
		nw, err := tr.Newick(linkage.HalfHeight)
		if err != nil {
			t.Fatalf("scale %s: unexpected error: %v", sc, err)
		}
		want := "((A:5,B:5):40,(C:10,D:10):35);"
		if nw != want {
			t.Errorf("scale %s: got %q, want %q", sc, nw, want)
		}
	}
}
