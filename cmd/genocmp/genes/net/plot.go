// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package net

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"slices"

	"github.com/js-arias/blind"
	"github.com/js-arias/genocmp/cooccur"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A networkPlot is a drawing of a co-occurrence network
// with the genes in a circle.
type networkPlot struct {
	n     *cooccur.Network
	pos   plotter.XYs
	kinds []string
	max   float64
}

func newNetworkPlot(n *cooccur.Network) *networkPlot {
	genes := n.Genes()
	np := &networkPlot{
		n:   n,
		pos: make(plotter.XYs, len(genes)),
	}
	for i := range genes {
		a := 2 * math.Pi * float64(i) / float64(len(genes))
		np.pos[i].X = math.Cos(a)
		np.pos[i].Y = math.Sin(a)

		k := n.Kind(i)
		if !slices.Contains(np.kinds, k) {
			np.kinds = append(np.kinds, k)
		}
	}
	slices.Sort(np.kinds)

	for _, e := range n.Edges() {
		if float64(e.Count) > np.max {
			np.max = float64(e.Count)
		}
	}
	return np
}

// DataRange implements the plot.DataRanger interface.
func (np *networkPlot) DataRange() (xMin, xMax, yMin, yMax float64) {
	return -1.3, 1.3, -1.3, 1.3
}

// Plot implements the plot.Plotter interface.
func (np *networkPlot) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	ids := make(map[string]int, len(np.pos))
	for i, g := range np.n.Genes() {
		ids[g] = i
	}

	for _, e := range np.n.Edges() {
		a, b := ids[e.A], ids[e.B]
		style := np.edgeStyle(a, b, float64(e.Count))
		c.StrokeLines(style, []vg.Point{
			{X: trX(np.pos[a].X), Y: trY(np.pos[a].Y)},
			{X: trX(np.pos[b].X), Y: trY(np.pos[b].Y)},
		})
	}

	for i, pt := range np.pos {
		gs := draw.GlyphStyle{
			Color:  np.kindColor(np.n.Kind(i)),
			Radius: vg.Points(5),
			Shape:  draw.CircleGlyph{},
		}
		c.DrawGlyph(gs, vg.Point{X: trX(pt.X), Y: trY(pt.Y)})
	}
}

var edgeColors = []color.Gray{{122}, {66}, {0}}

func (np *networkPlot) edgeStyle(a, b int, w float64) draw.LineStyle {
	ls := draw.LineStyle{
		Width: vg.Points(0.5 + 2*w/np.max),
	}
	ka, kb := np.n.Kind(a), np.n.Kind(b)
	switch {
	case ka != kb:
		ls.Color = edgeColors[2]
		ls.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	case ka == np.kinds[0]:
		ls.Color = edgeColors[0]
	default:
		ls.Color = edgeColors[1]
		ls.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	}
	return ls
}

func (np *networkPlot) kindColor(k string) color.Color {
	i := slices.Index(np.kinds, k)
	if len(np.kinds) < 2 {
		return blind.Sequential(blind.Iridescent, 0.5)
	}
	return blind.Sequential(blind.Iridescent, float64(i)/float64(len(np.kinds)-1))
}

func makePlot(n *cooccur.Network) error {
	p := plot.New()
	p.HideAxes()

	np := newNetworkPlot(n)
	p.Add(np)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    np.pos,
		Labels: n.Genes(),
	})
	if err != nil {
		return fmt.Errorf("while building plot: %v", err)
	}
	p.Add(labels)

	for _, k := range np.kinds {
		sc, err := plotter.NewScatter(plotter.XYs{})
		if err != nil {
			return fmt.Errorf("while building plot: %v", err)
		}
		sc.GlyphStyle.Color = np.kindColor(k)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Legend.Add(k, sc)
	}

	if err := p.Save(8*vg.Inch, 8*vg.Inch, plotFile); err != nil {
		return err
	}
	return nil
}

func writeCentrality(n *cooccur.Network) (err error) {
	f, err := os.Create(centralityFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := n.CentralityTSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", centralityFile, err)
	}
	return nil
}
