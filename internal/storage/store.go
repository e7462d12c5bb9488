// Package storage persists solved panel runs: one directory per run holding
// metadata.json and a panels.csv of per-panel attributes.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/flowlab/panelflow/internal/aero"
	"github.com/flowlab/panelflow/internal/panel"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Shape       string    `json:"shape"`
	Timestamp   time.Time `json:"timestamp"`
	Panels      int       `json:"panels"`
	AlphaDeg    float64   `json:"alpha_deg"`
	Order       string    `json:"order"`
	Kutta       [][2]int  `json:"kutta,omitempty"`
	Chord       float64   `json:"chord"`
	Circulation float64   `json:"circulation"`
	Lift        float64   `json:"lift_coefficient"`
}

// panelColumns is the fixed panels.csv layout, aligned with panel order.
var panelColumns = []panel.Field{
	panel.FieldXC, panel.FieldYC, panel.FieldS,
	panel.FieldSX, panel.FieldSY, panel.FieldNX, panel.FieldNY,
	panel.FieldGamma, panel.FieldGammaA, panel.FieldGammaB,
}

// Save writes one run directory and returns its ID.
func (s *Store) Save(shape string, alphaDeg float64, kutta [][2]int, arr *panel.Array) (string, error) {
	runID := fmt.Sprintf("%s_%d", shape, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	chord := aero.Chord(arr)
	meta := RunMetadata{
		ID:          runID,
		Shape:       shape,
		Timestamp:   time.Now(),
		Panels:      arr.Len(),
		AlphaDeg:    alphaDeg,
		Order:       arr.Order().String(),
		Kutta:       kutta,
		Chord:       chord,
		Circulation: aero.Circulation(arr),
		Lift:        aero.LiftCoefficient(arr, chord),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writePanels(filepath.Join(runDir, "panels.csv"), arr); err != nil {
		return "", err
	}
	return runID, nil
}

func (s *Store) writePanels(path string, arr *panel.Array) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"arc"}
	cols := make([][]float64, 0, len(panelColumns))
	for _, field := range panelColumns {
		header = append(header, field.String())
		vals, err := arr.Values(field)
		if err != nil {
			return err
		}
		cols = append(cols, vals)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	arc := arr.Distance()
	for i := 0; i < arr.Len(); i++ {
		row := []string{strconv.FormatFloat(arc[i], 'f', 9, 64)}
		for _, col := range cols {
			row = append(row, strconv.FormatFloat(col[i], 'f', 9, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadPanels reads a run's panels.csv back as named columns.
func (s *Store) LoadPanels(runID string) (map[string][]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "panels.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("storage: run %s has no panel data", runID)
	}

	header := records[0]
	cols := make(map[string][]float64, len(header))
	for _, name := range header {
		cols[name] = make([]float64, 0, len(records)-1)
	}
	for _, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("storage: run %s has a malformed panel row", runID)
		}
		for c, cell := range rec {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, err
			}
			cols[header[c]] = append(cols[header[c]], v)
		}
	}
	return cols, nil
}
