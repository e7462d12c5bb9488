package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Shape != "circle" {
		t.Errorf("shape = %q, want circle", cfg.Shape)
	}
	if cfg.Panels != DefaultPanels {
		t.Errorf("panels = %d, want %d", cfg.Panels, DefaultPanels)
	}
	if cfg.Order != DefaultOrder {
		t.Errorf("order = %q, want %q", cfg.Order, DefaultOrder)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solve.yaml")

	cfg := DefaultConfig()
	cfg.Shape = "jfoil"
	cfg.Panels = 96
	cfg.AlphaDeg = 5
	cfg.Kutta = [][]int{{0, -1}}
	cfg.Body.XCen = -0.2
	cfg.Grid = &GridConfig{X0: -2, X1: 2, Y0: -1, Y1: 1, NX: 40, NY: 20}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Shape != cfg.Shape || loaded.Panels != cfg.Panels || loaded.AlphaDeg != cfg.AlphaDeg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
	if loaded.Body.XCen != -0.2 {
		t.Errorf("body xcen = %g, want -0.2", loaded.Body.XCen)
	}
	if loaded.Grid == nil || loaded.Grid.NX != 40 {
		t.Errorf("grid not preserved: %+v", loaded.Grid)
	}
	pairs := loaded.KuttaPairs()
	if len(pairs) != 1 || pairs[0] != [2]int{0, -1} {
		t.Errorf("kutta pairs = %v, want [[0 -1]]", pairs)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("shape: ellipse\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Shape != "ellipse" {
		t.Errorf("shape = %q, want ellipse", cfg.Shape)
	}
	if cfg.Panels != DefaultPanels {
		t.Errorf("unset panels should default to %d, got %d", DefaultPanels, cfg.Panels)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"few_panels.yaml": "panels: 2\n",
		"bad_kutta.yaml":  "panels: 8\nkutta: [[1, 2, 3]]\n",
		"bad_points.yaml": "panels: 8\nshape: points\nbody: {x: [0, 1], y: [0]}\n",
	}
	for name, body := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: Load should fail", name)
		}
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file: Load should fail")
	}
}

func TestPresets(t *testing.T) {
	cruise := GetPreset("jfoil", "cruise")
	if cruise == nil {
		t.Fatal("jfoil/cruise preset missing")
	}
	if cruise.AlphaDeg != 5 || len(cruise.Kutta) != 1 {
		t.Errorf("cruise preset = %+v", cruise)
	}
	if err := cruise.Validate(); err != nil {
		t.Errorf("cruise preset should validate: %v", err)
	}

	// presets are returned by value
	cruise.Panels = 1
	if again := GetPreset("jfoil", "cruise"); again.Panels == 1 {
		t.Error("mutating a returned preset must not alter the catalog")
	}

	if GetPreset("jfoil", "nope") != nil {
		t.Error("unknown preset name should return nil")
	}
	if GetPreset("wing3d", "cruise") != nil {
		t.Error("unknown shape should return nil")
	}

	names := ListPresets("circle")
	if len(names) != 3 {
		t.Errorf("circle presets = %v, want 3 names", names)
	}
	if ListPresets("wing3d") != nil {
		t.Error("unknown shape should list nil")
	}
}

func TestAllPresetsValidate(t *testing.T) {
	for shape, byName := range Presets {
		for name, cfg := range byName {
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s/%s: %v", shape, name, err)
			}
			if cfg.Shape != shape {
				t.Errorf("%s/%s declares shape %q", shape, name, cfg.Shape)
			}
		}
	}
}
