// Package panel provides the core primitives of the vortex panel method.
//
// A body surface is discretized into straight segments, each carrying a
// vortex sheet of piecewise-constant or piecewise-linear strength:
//
//   - [Array]: an ordered arena of panel geometry and sheet strengths
//   - [Geometry]: one panel's endpoints, center, tangent and normal
//   - [ConstantInfluence] / [LinearInfluence]: unit-strength velocity kernels
//   - [Field]: typed selector for per-panel attribute extraction
//
// Geometry is immutable after construction; only the strength values are
// overwritten, once per solve. The induced-velocity kernels are pure
// functions of (geometry, field point), so the boundary-condition system
// stays linear in the unknown strengths.
//
// # Example
//
//	arr, _ := geom.Circle(64)
//	_ = solver.Solve(arr, solver.Options{Alpha: 0.1})
//	u, v := arr.Velocity(2.0, 0.5)
//
// # Thread Safety
//
// Array instances are NOT safe for concurrent solves: a solve overwrites the
// strength fields. Concurrent solves on distinct arrays are race-free, and
// Velocity/Values are safe to call concurrently between solves.
package panel
