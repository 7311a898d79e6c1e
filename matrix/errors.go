// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package matrix

import "fmt"

// A ShapeError is returned when the dimensions
// or the labels of a matrix
// are not the expected ones.
type ShapeError struct {
	// Rows and Cols are the observed dimensions.
	Rows, Cols int

	// Label is the offending label,
	// if any.
	Label string

	Msg string
}

func (e *ShapeError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("matrix shape [%d x %d]: label %q: %s", e.Rows, e.Cols, e.Label, e.Msg)
	}
	return fmt.Sprintf("matrix shape [%d x %d]: %s", e.Rows, e.Cols, e.Msg)
}

// A RangeError is returned when a value of a matrix
// is outside its expected numeric domain.
type RangeError struct {
	// Row and Col are the labels of the offending cell.
	Row, Col string

	Value float64
	Msg   string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %g at [%q, %q]: %s", e.Value, e.Row, e.Col, e.Msg)
}
