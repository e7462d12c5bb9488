package panel

import "errors"

// Domain errors for panel geometry construction.
var (
	// ErrDegeneratePanel indicates a zero-length panel in the input points.
	ErrDegeneratePanel = errors.New("panel: degenerate panel (zero length)")

	// ErrLengthMismatch indicates coordinate slices of unequal length.
	ErrLengthMismatch = errors.New("panel: x and y coordinate lengths differ")

	// ErrTooFewPoints indicates fewer than two boundary points.
	ErrTooFewPoints = errors.New("panel: at least two boundary points required")

	// ErrOrientation indicates concatenated bodies with opposite traversal sense.
	ErrOrientation = errors.New("panel: inconsistent traversal orientation between bodies")

	// ErrUnknownField indicates an unrecognized attribute selector.
	ErrUnknownField = errors.New("panel: unknown field selector")

	// ErrUnknownOrder indicates an unsupported panel-order selector.
	ErrUnknownOrder = errors.New("panel: unknown panel order")

	// ErrDimensionMismatch indicates a strength vector of the wrong length.
	ErrDimensionMismatch = errors.New("panel: strength vector length differs from panel count")
)
