// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package pangenome_test

import (
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/genocmp/pangenome"
)

// Four genomes:
// g1 is core,
// g2 is in three genomes (shell),
// g3 and g4 are unique,
// g5 is in two genomes.
const presence = `Gene,Non-unique Gene name,Annotation,No. isolates,A,B,C,D
g1,,dnaA,4,A_1,B_1,C_1,D_1
g2,,transposase,3,A_2,,C_2,D_2
g3,,"hypothetical, protein",1,A_3,,,
g4,,,1,,,,D_4
g5,,,2,,B_5,C_5,
`

func readTable(t testing.TB) *pangenome.Table {
	t.Helper()

	tab, err := pangenome.ReadCSV(strings.NewReader(presence), pangenome.DefaultSkip)
	if err != nil {
		t.Fatalf("unable to read table: %v", err)
	}
	return tab
}

func TestReadCSV(t *testing.T) {
	tab := readTable(t)

	if g := tab.Genomes(); !reflect.DeepEqual(g, []string{"A", "B", "C", "D"}) {
		t.Errorf("genomes: got %v", g)
	}
	if g := tab.Genes(); len(g) != 5 {
		t.Errorf("genes: got %d, want %d", len(g), 5)
	}
	want := []int{4, 3, 1, 1, 2}
	if f := tab.Frequency(); !reflect.DeepEqual(f, want) {
		t.Errorf("frequency: got %v, want %v", f, want)
	}
	if !tab.Present(0, 2) || tab.Present(1, 2) {
		t.Errorf("presence of g3: got %v in A, %v in B", tab.Present(0, 2), tab.Present(1, 2))
	}
}

func TestReadCSVFieldCount(t *testing.T) {
	data := `Gene,Non-unique Gene name,Annotation,No. isolates,A,B
g1,,dnaA,2,A_1,B_1
g2,,,1,A_2
`
	if _, err := pangenome.ReadCSV(strings.NewReader(data), pangenome.DefaultSkip); err == nil {
		t.Errorf("expecting error on a short row")
	}
}

func TestStats(t *testing.T) {
	tab := readTable(t)

	want := pangenome.Stats{
		Core:   1,
		Shell:  4,
		Unique: 2,
		Pan:    5,
	}
	if st := tab.Stats(); st != want {
		t.Errorf("stats: got %+v, want %+v", st, want)
	}
}

func TestAccumulation(t *testing.T) {
	tab := readTable(t)
	cv := tab.Accumulation(50, rand.New(rand.NewSource(1)))

	n := len(tab.Genomes())
	if len(cv.CoreMean) != n || len(cv.PanMean) != n {
		t.Fatalf("curve length: got %d, %d, want %d", len(cv.CoreMean), len(cv.PanMean), n)
	}

	// with all genomes the values are fixed
	last := n - 1
	if cv.CoreMean[last] != 1 || cv.CoreSD[last] != 0 {
		t.Errorf("core with all genomes: got %.6f (sd %.6f), want 1", cv.CoreMean[last], cv.CoreSD[last])
	}
	if cv.PanMean[last] != 5 || cv.PanSD[last] != 0 {
		t.Errorf("pan with all genomes: got %.6f (sd %.6f), want 5", cv.PanMean[last], cv.PanSD[last])
	}

	for i := 1; i < n; i++ {
		if cv.CoreMean[i] > cv.CoreMean[i-1] {
			t.Errorf("core curve increases at %d genomes", i+1)
		}
		if cv.PanMean[i] < cv.PanMean[i-1] {
			t.Errorf("pan curve decreases at %d genomes", i+1)
		}
	}
}

func TestSimilarity(t *testing.T) {
	tab := readTable(t)
	m, err := tab.Similarity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A: g1 g2 g3; B: g1 g5
	// shared 1, union 4
	if v, _ := m.Val("A", "B"); math.Abs(v-25) > 1e-9 {
		t.Errorf("similarity [A, B]: got %.6f, want %.6f", v, 25.0)
	}
	if v, _ := m.Val("C", "C"); v != 100 {
		t.Errorf("similarity [C, C]: got %.6f, want %.6f", v, 100.0)
	}
}
