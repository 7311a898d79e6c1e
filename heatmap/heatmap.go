// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package heatmap implements a heat map image
// of a genome similarity matrix.
package heatmap

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/js-arias/blind"
	"github.com/js-arias/genocmp/matrix"
)

// DefaultCell is the default size of a cell,
// in pixels.
const DefaultCell = 10

// Missing is the color used for missing values.
var Missing = color.RGBA{211, 211, 211, 255}

// Image is a heat map of a matrix.
// Rows and columns are drawn in the order of the matrix.
type Image struct {
	// The matrix
	Matrix *matrix.Matrix

	// Size of each cell in pixels
	Cell int

	// Range of values.
	// If both are zero,
	// the range of the matrix is used.
	Min, Max float64

	// A Gradient color scheme
	Gradient Gradienter
}

// Format sets the default values of an image.
func (i *Image) Format() {
	if i.Cell <= 0 {
		i.Cell = DefaultCell
	}
	if i.Gradient == nil {
		i.Gradient = Iridescent{}
	}
	if i.Min == 0 && i.Max == 0 {
		i.Min = math.Inf(1)
		i.Max = math.Inf(-1)
		n := i.Matrix.Len()
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				v := i.Matrix.At(r, c)
				if math.IsNaN(v) {
					continue
				}
				i.Min = math.Min(i.Min, v)
				i.Max = math.Max(i.Max, v)
			}
		}
		if math.IsInf(i.Min, 1) {
			i.Min, i.Max = 0, 1
		}
	}
}

func (i *Image) ColorModel() color.Model { return color.RGBAModel }
func (i *Image) Bounds() image.Rectangle {
	sz := i.Matrix.Len() * i.Cell
	return image.Rect(0, 0, sz, sz)
}
func (i *Image) At(x, y int) color.Color {
	r, c := y/i.Cell, x/i.Cell
	n := i.Matrix.Len()
	if x < 0 || y < 0 || r >= n || c >= n {
		return color.RGBA{}
	}

	v := i.Matrix.At(r, c)
	if math.IsNaN(v) {
		return Missing
	}
	if i.Max == i.Min {
		return i.Gradient.Gradient(1)
	}
	return i.Gradient.Gradient((v - i.Min) / (i.Max - i.Min))
}

// Gradienter is an interface for types
// that return a color gradient.
type Gradienter interface {
	Gradient(v float64) color.Color
}

// ParseGradient returns a gradient from its name.
func ParseGradient(name string) (Gradienter, error) {
	switch strings.ToLower(name) {
	case "", "iridescent":
		return Iridescent{}, nil
	case "incandescent":
		return Incandescent{}, nil
	case "rainbow":
		return RainbowPurpleToRed{}, nil
	case "gray", "grey":
		return GrayScale{}, nil
	}
	return nil, fmt.Errorf("unknown gradient %q", name)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// GrayScale returns a gray scale
// between 200 (light gray)
// and 0 (black).
type GrayScale struct{}

func (g GrayScale) Gradient(v float64) color.Color {
	c := 200 - uint8(clamp(v)*200)
	return color.RGBA{c, c, c, 255}
}

// Incandescent is the incandescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_incandescent>.
type Incandescent struct{}

func (i Incandescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Incandescent, clamp(v))
}

// Iridescent is the iridescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_iridescent>.
type Iridescent struct{}

func (i Iridescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Iridescent, clamp(v))
}

// RainbowPurpleToRed is the rainbow color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_rainbow_smooth>
// starting at purple and ending at red.
type RainbowPurpleToRed struct{}

func (r RainbowPurpleToRed) Gradient(v float64) color.Color {
	return blind.Sequential(blind.RainbowPurpleToRed, clamp(v))
}
