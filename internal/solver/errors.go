package solver

import "errors"

// Configuration and numerical errors surfaced by assembly and solve.
var (
	// ErrKuttaIndex indicates a trailing-edge index outside the panel range.
	ErrKuttaIndex = errors.New("solver: trailing-edge index out of range")

	// ErrKuttaDuplicate indicates a panel referenced by more than one
	// trailing-edge pair, or a pair referencing one panel twice.
	ErrKuttaDuplicate = errors.New("solver: duplicate trailing-edge index")

	// ErrOpenBody indicates a linear-order solve on a body whose boundary
	// does not close, leaving the end-node continuity undefined.
	ErrOpenBody = errors.New("solver: linear order requires closed bodies")

	// ErrSingular indicates the influence matrix could not be factorized.
	ErrSingular = errors.New("solver: singular influence matrix")

	// ErrIllConditioned indicates a solve whose condition number exceeds the
	// configured maximum, typically degenerate or self-intersecting geometry.
	ErrIllConditioned = errors.New("solver: influence matrix ill-conditioned")
)
