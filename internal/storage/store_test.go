package storage

import (
	"testing"

	"github.com/flowlab/panelflow/internal/geom"
	"github.com/flowlab/panelflow/internal/panel"
	"github.com/flowlab/panelflow/internal/solver"
)

func solvedCircle(t *testing.T) *panel.Array {
	t.Helper()
	arr, err := geom.Circle(32)
	if err != nil {
		t.Fatalf("Circle: %v", err)
	}
	if err := solver.Solve(arr, solver.Options{Alpha: 0.1, Order: panel.OrderConstant}); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return arr
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	arr := solvedCircle(t)
	runID, err := store.Save("circle", 5.73, nil, arr)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.ID != runID || meta.Shape != "circle" {
		t.Errorf("metadata = %+v", meta)
	}
	if meta.Panels != arr.Len() {
		t.Errorf("panels = %d, want %d", meta.Panels, arr.Len())
	}
	if meta.AlphaDeg != 5.73 {
		t.Errorf("alpha_deg = %g, want 5.73", meta.AlphaDeg)
	}
	if meta.Order != "constant" {
		t.Errorf("order = %q, want constant", meta.Order)
	}
	if meta.Chord == 0 {
		t.Error("chord should be recorded")
	}
}

func TestSaveRecordsKuttaPairs(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	arr, err := geom.JoukowskiFoil(32, -0.1, 0)
	if err != nil {
		t.Fatalf("JoukowskiFoil: %v", err)
	}
	kutta := [][2]int{{0, -1}}
	if err := solver.Solve(arr, solver.Options{Alpha: 0.1, Order: panel.OrderConstant, Kutta: kutta}); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	runID, err := store.Save("jfoil", 5.73, kutta, arr)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	meta, err := store.Load(runID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(meta.Kutta) != 1 || meta.Kutta[0] != [2]int{0, -1} {
		t.Errorf("kutta = %v, want [[0 -1]]", meta.Kutta)
	}
}

func TestLoadPanels(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	arr := solvedCircle(t)
	runID, err := store.Save("circle", 5.73, nil, arr)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	cols, err := store.LoadPanels(runID)
	if err != nil {
		t.Fatalf("LoadPanels: %v", err)
	}

	for _, name := range []string{"arc", "xc", "yc", "s", "gamma"} {
		col, ok := cols[name]
		if !ok {
			t.Fatalf("column %q missing", name)
		}
		if len(col) != arr.Len() {
			t.Errorf("column %q has %d rows, want %d", name, len(col), arr.Len())
		}
	}

	// spot-check the written strengths against the array, within the CSV's
	// printed precision
	gamma := cols["gamma"]
	for i := 0; i < arr.Len(); i++ {
		if diff := gamma[i] - arr.Gamma(i); diff > 1e-8 || diff < -1e-8 {
			t.Errorf("gamma[%d] = %g, want %g", i, gamma[i], arr.Gamma(i))
		}
	}
}

func TestListReturnsSavedRuns(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("fresh store lists %d runs", len(runs))
	}

	arr := solvedCircle(t)
	if _, err := store.Save("circle", 0, nil, arr); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := store.Save("circle", 2, nil, arr); err != nil {
		t.Fatalf("Save: %v", err)
	}

	runs, err = store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("listed %d runs, want 2", len(runs))
	}
}

func TestLoadMissingRun(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Load("no_such_run"); err == nil {
		t.Error("loading a missing run should fail")
	}
	if _, err := store.LoadPanels("no_such_run"); err == nil {
		t.Error("loading panels of a missing run should fail")
	}
}
