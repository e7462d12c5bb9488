// Package solver assembles and solves the no-slip boundary-condition system
// of a panel array.
//
// For N panels the assembler builds a dense N x N influence matrix A and
// right-hand side b such that A*gamma = b zeroes the tangential velocity at
// one collocation point per panel: the center for constant-strength panels,
// the quarter point for linear ones. Declared trailing-edge pairs each trade
// their two no-slip rows for the Kutta constraint gamma_i + gamma_j = 0 and
// a no-slip equation sampled inside the trailing-edge gap, keeping the
// system square. The dense solve is delegated to gonum; a singular system is
// surfaced as an error, never regularized.
package solver
