package s102

import (
	"fmt"
)

// ErrShapeMismatch indicates depth and uncertainty grids of different shape.
type ErrShapeMismatch struct {
	DepthRows, DepthCols             int
	UncertaintyRows, UncertaintyCols int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("depth grid (%d,%d) and uncertainty grid (%d,%d) have different shapes",
		e.DepthRows, e.DepthCols, e.UncertaintyRows, e.UncertaintyCols)
}

// ErrInvalidDatumCode indicates a horizontal datum code outside the set the
// product specification allows.
type ErrInvalidDatumCode struct {
	Code int
}

func (e *ErrInvalidDatumCode) Error() string {
	return fmt.Sprintf("EPSG code %d is not within the specified values", e.Code)
}

// ErrEmptyGrid indicates a grid with a zero dimension or no cells holding
// data.
type ErrEmptyGrid struct {
	Reason string
}

func (e *ErrEmptyGrid) Error() string {
	return "empty grid: " + e.Reason
}
