// Package field samples the induced flow field of a solved panel array over
// a rectangular grid, for consumption by external plotting tools.
package field

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/flowlab/panelflow/internal/panel"
)

// Grid is a rectangular sampling window with NX x NY points.
type Grid struct {
	X0, X1 float64
	Y0, Y1 float64
	NX, NY int
}

// Sample is the flow velocity at one grid point.
type Sample struct {
	X, Y float64
	U, V float64
}

// Evaluate computes the total velocity at every grid point, row-parallel.
// Points falling on a panel evaluate to the sheet's one-sided limit; callers
// masking body interiors do so downstream.
func Evaluate(arr *panel.Array, g Grid) ([]Sample, error) {
	if g.NX < 2 || g.NY < 2 {
		return nil, fmt.Errorf("field: grid must be at least 2x2, got %dx%d", g.NX, g.NY)
	}

	dx := (g.X1 - g.X0) / float64(g.NX-1)
	dy := (g.Y1 - g.Y0) / float64(g.NY-1)

	samples := make([]Sample, g.NX*g.NY)
	panel.ParallelFor(g.NY, 1, func(start, end int) {
		for j := start; j < end; j++ {
			y := g.Y0 + float64(j)*dy
			for i := 0; i < g.NX; i++ {
				x := g.X0 + float64(i)*dx
				u, v := arr.Velocity(x, y)
				samples[j*g.NX+i] = Sample{X: x, Y: y, U: u, V: v}
			}
		}
	})
	return samples, nil
}

// WriteCSV streams samples as x,y,u,v rows with a header.
func WriteCSV(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"x", "y", "u", "v"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.X, 'f', 6, 64),
			strconv.FormatFloat(s.Y, 'f', 6, 64),
			strconv.FormatFloat(s.U, 'f', 6, 64),
			strconv.FormatFloat(s.V, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
