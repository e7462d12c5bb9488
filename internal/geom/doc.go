// Package geom builds panel arrays for canonical and user-supplied shapes.
//
// All factories reduce to generating ordered boundary points and calling
// [Panelize]. Closed shapes are traversed counter-clockwise so that the
// outward normals of the resulting panels point away from the body.
// Multi-body configurations are assembled with [panel.Concatenate].
package geom
