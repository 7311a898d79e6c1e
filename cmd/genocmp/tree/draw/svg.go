// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package draw

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/js-arias/blind"
	"github.com/js-arias/genocmp/linkage"
	"github.com/js-arias/timetree"
)

const yStep = 12

type node struct {
	x     float64
	y     int
	topY  int
	botY  int
	color color.RGBA

	id  int
	tax string
	age float64

	anc  *node
	desc []*node
}

type svgTree struct {
	y     int
	x     float64
	taxSz int
	step  float64
	tick  tickValues
	root  *node
}

func copyTree(t *timetree.Tree, xStep float64, tv tickValues) svgTree {
	maxSz := 0
	var root *node
	ids := make(map[int]*node)
	for _, id := range t.Nodes() {
		var anc *node
		p := t.Parent(id)
		if p >= 0 {
			anc = ids[p]
		}

		n := &node{
			id:    id,
			tax:   t.Taxon(id),
			anc:   anc,
			age:   float64(t.Age(id)) / linkage.MillionYears,
			color: color.RGBA{0, 0, 0, 255},
		}
		if anc == nil {
			root = n
		} else {
			anc.desc = append(anc.desc, n)
		}
		ids[id] = n
		if len(n.tax) > maxSz {
			maxSz = len(n.tax)
		}
	}

	s := svgTree{
		root: root,
		step: xStep,
		tick: tv,
	}
	s.prepare(root, xStep)
	s.y = s.y * yStep
	s.taxSz = maxSz

	return s
}

func (s *svgTree) prepare(n *node, xStep float64) {
	n.x = (s.root.age-n.age)*xStep + 10
	if s.x < n.x {
		s.x = n.x
	}

	if n.desc == nil {
		n.y = s.y*yStep + 5
		s.y += 1
		return
	}

	botY := 0
	topY := math.MaxInt
	for _, d := range n.desc {
		s.prepare(d, xStep)
		if d.y < topY {
			topY = d.y
		}
		if d.y > botY {
			botY = d.y
		}
	}
	n.topY = topY
	n.botY = botY
	n.y = topY + (botY-topY)/2
}

// setColor colors the clusters
// with an age younger or equal to the cut.
func (s *svgTree) setColor(cut float64) {
	var clusters []*node
	s.root.clusters(cut, &clusters)

	for i, n := range clusters {
		v := 0.5
		if len(clusters) > 1 {
			v = float64(i) / float64(len(clusters)-1)
		}
		n.setColor(blind.Sequential(blind.RainbowPurpleToRed, v))
	}
}

func (n *node) clusters(cut float64, cls *[]*node) {
	if n.age <= cut {
		*cls = append(*cls, n)
		return
	}
	for _, d := range n.desc {
		d.clusters(cut, cls)
	}
}

func (n *node) setColor(c color.RGBA) {
	n.color = c
	for _, d := range n.desc {
		d.setColor(c)
	}
}

func (s *svgTree) draw(w io.Writer) error {
	fmt.Fprintf(w, "%s", xml.Header)
	e := xml.NewEncoder(w)
	svg := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "height"}, Value: strconv.Itoa(s.y + 40)},
			// assume that each character has 6 pixels wide
			{Name: xml.Name{Local: "width"}, Value: strconv.Itoa(int(s.x) + s.taxSz*6 + 20)},
			{Name: xml.Name{Local: "xmlns"}, Value: "http://www.w3.org/2000/svg"},
		},
	}
	e.EncodeToken(svg)

	g := xml.StartElement{
		Name: xml.Name{Local: "g"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "stroke-width"}, Value: "2"},
			{Name: xml.Name{Local: "stroke"}, Value: "black"},
			{Name: xml.Name{Local: "stroke-linecap"}, Value: "round"},
			{Name: xml.Name{Local: "font-family"}, Value: "Verdana"},
			{Name: xml.Name{Local: "font-size"}, Value: "10"},
		},
	}
	e.EncodeToken(g)

	s.root.draw(e)
	s.root.label(e)
	s.scale(e)

	e.EncodeToken(g.End())
	e.EncodeToken(svg.End())
	if err := e.Flush(); err != nil {
		return err
	}
	return nil
}

func (n node) draw(e *xml.Encoder) {
	rgb := fmt.Sprintf("rgb(%d,%d,%d)", n.color.R, n.color.G, n.color.B)

	// horizontal line
	ln := xml.StartElement{
		Name: xml.Name{Local: "line"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "x1"}, Value: strconv.Itoa(int(n.x - 5))},
			{Name: xml.Name{Local: "y1"}, Value: strconv.Itoa(int(n.y))},
			{Name: xml.Name{Local: "x2"}, Value: strconv.Itoa(int(n.x))},
			{Name: xml.Name{Local: "y2"}, Value: strconv.Itoa(int(n.y))},
			{Name: xml.Name{Local: "stroke"}, Value: rgb},
		},
	}
	if n.anc != nil {
		ln.Attr[0].Value = strconv.Itoa(int(n.anc.x))
	}
	e.EncodeToken(ln)
	e.EncodeToken(ln.End())

	// terminal name
	if n.desc == nil {
		return
	}

	// draws vertical line
	ln.Attr[0].Value = ln.Attr[2].Value
	ln.Attr[1].Value = strconv.Itoa(int(n.topY))
	ln.Attr[3].Value = strconv.Itoa(int(n.botY))
	e.EncodeToken(ln)
	e.EncodeToken(ln.End())

	for _, d := range n.desc {
		d.draw(e)
	}
}

func (n node) label(e *xml.Encoder) {
	if n.desc == nil {
		rgb := fmt.Sprintf("rgb(%d,%d,%d)", n.color.R, n.color.G, n.color.B)
		tx := xml.StartElement{
			Name: xml.Name{Local: "text"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "x"}, Value: strconv.Itoa(int(n.x + 10))},
				{Name: xml.Name{Local: "y"}, Value: strconv.Itoa(int(n.y + 5))},
				{Name: xml.Name{Local: "stroke-width"}, Value: "0"},
				{Name: xml.Name{Local: "fill"}, Value: rgb},
				{Name: xml.Name{Local: "font-style"}, Value: "italic"},
			},
		}
		e.EncodeToken(tx)
		e.EncodeToken(xml.CharData(n.tax))
		e.EncodeToken(tx.End())
	}

	for _, d := range n.desc {
		d.label(e)
	}
}

// scale draws the scale of branch lengths
// at the bottom of the tree.
func (s *svgTree) scale(e *xml.Encoder) {
	y := s.y + 10
	xOf := func(age float64) int {
		return int((s.root.age-age)*s.step + 10)
	}

	ln := xml.StartElement{
		Name: xml.Name{Local: "line"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "x1"}, Value: strconv.Itoa(xOf(s.root.age))},
			{Name: xml.Name{Local: "y1"}, Value: strconv.Itoa(y)},
			{Name: xml.Name{Local: "x2"}, Value: strconv.Itoa(xOf(0))},
			{Name: xml.Name{Local: "y2"}, Value: strconv.Itoa(y)},
			{Name: xml.Name{Local: "stroke-width"}, Value: "1"},
		},
	}
	e.EncodeToken(ln)
	e.EncodeToken(ln.End())

	for a := 0; float64(a) <= s.root.age; a += s.tick.min {
		x := strconv.Itoa(xOf(float64(a)))
		sz := 3
		if a%s.tick.max == 0 {
			sz = 6
		}
		ln.Attr[0].Value = x
		ln.Attr[1].Value = strconv.Itoa(y)
		ln.Attr[2].Value = x
		ln.Attr[3].Value = strconv.Itoa(y + sz)
		e.EncodeToken(ln)
		e.EncodeToken(ln.End())

		if a%s.tick.label != 0 {
			continue
		}
		tx := xml.StartElement{
			Name: xml.Name{Local: "text"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "x"}, Value: x},
				{Name: xml.Name{Local: "y"}, Value: strconv.Itoa(y + 18)},
				{Name: xml.Name{Local: "stroke-width"}, Value: "0"},
				{Name: xml.Name{Local: "text-anchor"}, Value: "middle"},
			},
		}
		e.EncodeToken(tx)
		e.EncodeToken(xml.CharData(strconv.Itoa(a)))
		e.EncodeToken(tx.End())
	}
}
