package config

var Presets = map[string]map[string]*Config{
	"circle": {
		"coarse": {
			Shape: "circle", Panels: 32, AlphaDeg: 0, Order: "constant",
		},
		"fine": {
			Shape: "circle", Panels: 128, AlphaDeg: 0, Order: "constant",
		},
		"linear": {
			Shape: "circle", Panels: 32, AlphaDeg: 0, Order: "linear",
		},
	},
	"ellipse": {
		"thin": {
			Shape: "ellipse", Panels: 64, AlphaDeg: 0, Order: "constant",
			Body: BodyConfig{Thickness: 0.1},
		},
		"thick": {
			Shape: "ellipse", Panels: 64, AlphaDeg: 0, Order: "constant",
			Body: BodyConfig{Thickness: 0.4},
		},
	},
	"jfoil": {
		"cruise": {
			Shape: "jfoil", Panels: 64, AlphaDeg: 5, Order: "constant",
			Kutta: [][]int{{0, -1}},
			Body:  BodyConfig{XCen: -0.1},
		},
		"climb": {
			Shape: "jfoil", Panels: 64, AlphaDeg: 10, Order: "constant",
			Kutta: [][]int{{0, -1}},
			Body:  BodyConfig{XCen: -0.1},
		},
		"thick": {
			Shape: "jfoil", Panels: 96, AlphaDeg: 5, Order: "constant",
			Kutta: [][]int{{0, -1}},
			Body:  BodyConfig{XCen: -0.2},
		},
		"no-kutta": {
			Shape: "jfoil", Panels: 64, AlphaDeg: 5, Order: "constant",
			Body: BodyConfig{XCen: -0.1},
		},
	},
}

// GetPreset returns a named preset for a shape, or nil when either is
// unknown.
func GetPreset(shape, name string) *Config {
	shapePresets, ok := Presets[shape]
	if !ok {
		return nil
	}
	cfg, ok := shapePresets[name]
	if !ok {
		return nil
	}
	out := *cfg
	return &out
}

// ListPresets returns the preset names for a shape, or nil when unknown.
func ListPresets(shape string) []string {
	shapePresets, ok := Presets[shape]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(shapePresets))
	for name := range shapePresets {
		names = append(names, name)
	}
	return names
}
