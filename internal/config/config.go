package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPanels   = 64
	DefaultAlphaDeg = 0.0
	DefaultOrder    = "constant"
	DefaultFoilXCen = -0.1
	DefaultEllipseT = 0.2
)

// Config describes one solve: the body, its discretization, the free-stream
// angle, the panel order, and any trailing-edge pairs for the Kutta
// condition.
type Config struct {
	Shape    string      `yaml:"shape"`
	Panels   int         `yaml:"panels"`
	AlphaDeg float64     `yaml:"alpha_deg"`
	Order    string      `yaml:"order"`
	Kutta    [][]int     `yaml:"kutta"`
	Body     BodyConfig  `yaml:"body"`
	Grid     *GridConfig `yaml:"grid,omitempty"`
}

// BodyConfig holds shape parameters.
type BodyConfig struct {
	Thickness float64   `yaml:"thickness"` // ellipse thickness-to-chord ratio
	XCen      float64   `yaml:"xcen"`      // mapped-circle center (jfoil) or body center
	YCen      float64   `yaml:"ycen"`
	X         []float64 `yaml:"x,omitempty"` // explicit boundary points (shape: points)
	Y         []float64 `yaml:"y,omitempty"`
}

// GridConfig bounds an optional field-sampling window.
type GridConfig struct {
	X0 float64 `yaml:"x0"`
	X1 float64 `yaml:"x1"`
	Y0 float64 `yaml:"y0"`
	Y1 float64 `yaml:"y1"`
	NX int     `yaml:"nx"`
	NY int     `yaml:"ny"`
}

func DefaultConfig() *Config {
	return &Config{
		Shape:    "circle",
		Panels:   DefaultPanels,
		AlphaDeg: DefaultAlphaDeg,
		Order:    DefaultOrder,
		Body: BodyConfig{
			Thickness: DefaultEllipseT,
			XCen:      DefaultFoilXCen,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects malformed solve descriptions before geometry is built.
func (c *Config) Validate() error {
	if c.Panels < 3 {
		return fmt.Errorf("config: panels must be at least 3, got %d", c.Panels)
	}
	for _, pair := range c.Kutta {
		if len(pair) != 2 {
			return fmt.Errorf("config: kutta pair must have two indices, got %v", pair)
		}
	}
	if c.Shape == "points" && len(c.Body.X) != len(c.Body.Y) {
		return fmt.Errorf("config: body point coordinate lengths differ: %d vs %d",
			len(c.Body.X), len(c.Body.Y))
	}
	return nil
}

// KuttaPairs converts the YAML pair lists to index pairs.
func (c *Config) KuttaPairs() [][2]int {
	pairs := make([][2]int, 0, len(c.Kutta))
	for _, p := range c.Kutta {
		if len(p) == 2 {
			pairs = append(pairs, [2]int{p[0], p[1]})
		}
	}
	return pairs
}
