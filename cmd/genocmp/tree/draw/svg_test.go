// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package draw

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/js-arias/timetree"
)

func TestSVGTree(t *testing.T) {
	c, err := timetree.Newick(strings.NewReader("((A:5,B:5):40,(C:10,D:10):35);"), "ani", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tr := c.Tree(c.Names()[0])

	st := copyTree(tr, 10, tickValues{min: 1, max: 5, label: 5})
	if st.root.age != 45 {
		t.Errorf("root age: got %.2f, want %.2f", st.root.age, 45.0)
	}

	st.setColor(20)
	var terms []*node
	st.root.clusters(20, &terms)
	if len(terms) != 2 {
		t.Fatalf("clusters: got %d, want %d", len(terms), 2)
	}
	if terms[0].color == terms[1].color {
		t.Errorf("clusters with the same color: %v", terms[0].color)
	}
	for _, d := range terms[0].desc {
		if d.color != terms[0].color {
			t.Errorf("terminal %q: got color %v, want %v", d.tax, d.color, terms[0].color)
		}
	}

	var sb strings.Builder
	if err := st.draw(&sb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svg := sb.String()
	for _, tax := range []string{"A", "B", "C", "D"} {
		if !strings.Contains(svg, ">"+tax+"</text>") {
			t.Errorf("terminal %q not found in SVG", tax)
		}
	}

	d := xml.NewDecoder(strings.NewReader(svg))
	for {
		_, err := d.Token()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.Errorf("invalid SVG: %v", err)
			}
			break
		}
	}
}
