package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/flowlab/panelflow/internal/aero"
	"github.com/flowlab/panelflow/internal/config"
	"github.com/flowlab/panelflow/internal/field"
	"github.com/flowlab/panelflow/internal/geom"
	"github.com/flowlab/panelflow/internal/panel"
	"github.com/flowlab/panelflow/internal/solver"
	"github.com/flowlab/panelflow/internal/storage"
	"github.com/flowlab/panelflow/internal/tui"
)

var (
	dataDir    string
	panels     int
	alphaDeg   float64
	order      string
	kuttaSpec  string
	thickness  float64
	xcen, ycen float64
	configFile string
	preset     string

	// sweep range
	sweepFrom float64
	sweepTo   float64
	sweepStep float64

	// field grid
	gridX0, gridX1 float64
	gridY0, gridY1 float64
	gridNX, gridNY int
	fieldOut       string
)

var log = logrus.New()

func main() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	rootCmd := &cobra.Command{
		Use:   "panelflow",
		Short: "2d vortex panel method solver",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".panelflow", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve [shape]",
		Short: "solve the no-slip system for a body",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	addShapeFlags(solveCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [shape]",
		Short: "lift-coefficient sweep over angle of attack",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addShapeFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", -10, "start angle (deg)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 10, "end angle (deg)")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 1, "angle step (deg)")

	fieldCmd := &cobra.Command{
		Use:   "field [shape]",
		Short: "sample the flow field on a grid and export CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runField,
	}
	addShapeFlags(fieldCmd)
	fieldCmd.Flags().Float64Var(&gridX0, "x0", -2, "grid window")
	fieldCmd.Flags().Float64Var(&gridX1, "x1", 3, "grid window")
	fieldCmd.Flags().Float64Var(&gridY0, "y0", -2, "grid window")
	fieldCmd.Flags().Float64Var(&gridY1, "y1", 2, "grid window")
	fieldCmd.Flags().IntVar(&gridNX, "nx", 80, "grid points in x")
	fieldCmd.Flags().IntVar(&gridNY, "ny", 60, "grid points in y")
	fieldCmd.Flags().StringVar(&fieldOut, "out", "field.csv", "output file")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved strength distribution",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  runList,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [shape]",
		Short: "list available presets for a shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for shape: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui [shape]",
		Short: "interactive angle-of-attack explorer",
		Args:  cobra.ExactArgs(1),
		RunE:  runTUI,
	}
	addShapeFlags(tuiCmd)

	rootCmd.AddCommand(solveCmd, sweepCmd, fieldCmd, plotCmd, listCmd, exportCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addShapeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&panels, "panels", "n", config.DefaultPanels, "panel count")
	cmd.Flags().Float64Var(&alphaDeg, "alpha", 0, "angle of attack (deg)")
	cmd.Flags().StringVar(&order, "order", config.DefaultOrder, "panel order: constant|linear")
	cmd.Flags().StringVar(&kuttaSpec, "kutta", "", "trailing-edge pairs, e.g. '0,-1' or '0,-1;12,51'")
	cmd.Flags().Float64Var(&thickness, "thickness", config.DefaultEllipseT, "ellipse thickness-to-chord ratio")
	cmd.Flags().Float64Var(&xcen, "xcen", config.DefaultFoilXCen, "mapped-circle center x (jfoil)")
	cmd.Flags().Float64Var(&ycen, "ycen", 0, "mapped-circle center y (jfoil)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset, config file, and CLI flags into one solve
// description, flags taking precedence.
func resolveConfig(cmd *cobra.Command, shape string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Shape = shape

	if preset != "" {
		p := config.GetPreset(shape, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(shape))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		cfg.Shape = shape
	}

	if cmd.Flags().Changed("panels") {
		cfg.Panels = panels
	}
	if cmd.Flags().Changed("alpha") {
		cfg.AlphaDeg = alphaDeg
	}
	if cmd.Flags().Changed("order") {
		cfg.Order = order
	}
	if cmd.Flags().Changed("thickness") {
		cfg.Body.Thickness = thickness
	}
	if cmd.Flags().Changed("xcen") {
		cfg.Body.XCen = xcen
	}
	if cmd.Flags().Changed("ycen") {
		cfg.Body.YCen = ycen
	}
	if cmd.Flags().Changed("kutta") {
		pairs, err := parseKutta(kuttaSpec)
		if err != nil {
			return nil, err
		}
		cfg.Kutta = pairs
	}
	return cfg, cfg.Validate()
}

// parseKutta reads "i,j" pairs separated by ';'.
func parseKutta(spec string) ([][]int, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	var pairs [][]int
	for _, part := range strings.Split(spec, ";") {
		fields := strings.Split(strings.TrimSpace(part), ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("bad kutta pair %q, want 'i,j'", part)
		}
		i, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, err
		}
		j, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, []int{i, j})
	}
	return pairs, nil
}

// buildArray constructs the panel geometry a config describes.
func buildArray(cfg *config.Config) (*panel.Array, error) {
	switch cfg.Shape {
	case "circle":
		return geom.Circle(cfg.Panels)
	case "ellipse":
		return geom.Ellipse(cfg.Panels, cfg.Body.Thickness, cfg.Body.XCen, cfg.Body.YCen)
	case "jfoil":
		return geom.JoukowskiFoil(cfg.Panels, cfg.Body.XCen, cfg.Body.YCen)
	case "points":
		return geom.Panelize(cfg.Body.X, cfg.Body.Y)
	default:
		return nil, fmt.Errorf("unknown shape: %s (want circle|ellipse|jfoil|points)", cfg.Shape)
	}
}

func solveOptions(cfg *config.Config) (solver.Options, error) {
	o, err := panel.ParseOrder(cfg.Order)
	if err != nil {
		return solver.Options{}, err
	}
	return solver.Options{
		Alpha: cfg.AlphaDeg * math.Pi / 180,
		Order: o,
		Kutta: cfg.KuttaPairs(),
	}, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	arr, err := buildArray(cfg)
	if err != nil {
		return err
	}
	opts, err := solveOptions(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := solver.Solve(arr, opts); err != nil {
		if errors.Is(err, solver.ErrIllConditioned) || errors.Is(err, solver.ErrSingular) {
			log.WithField("shape", cfg.Shape).Error("geometry produced an unsolvable system")
		}
		return err
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.Shape, cfg.AlphaDeg, opts.Kutta, arr)
	if err != nil {
		return err
	}

	chord := aero.Chord(arr)
	fmt.Printf("solved %s in %v\n", cfg.Shape, elapsed)
	fmt.Printf("run id: %s\n\n", runID)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PANELS\tALPHA\tORDER\tCHORD\tC_L\tCIRCULATION")
	fmt.Fprintf(w, "%d\t%.2f°\t%s\t%.4f\t%+.4f\t%+.4f\n",
		arr.Len(), cfg.AlphaDeg, arr.Order(), chord,
		aero.LiftCoefficient(arr, chord), aero.Circulation(arr))
	if err := w.Flush(); err != nil {
		return err
	}

	for _, p := range opts.Kutta {
		resolved, err := solver.ResolveKutta([][2]int{p}, arr.Len())
		if err != nil {
			continue
		}
		res := arr.Gamma(resolved[0][0]) + arr.Gamma(resolved[0][1])
		fmt.Printf("kutta residual (%d,%d): %.3e\n", p[0], p[1], res)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	if sweepStep <= 0 {
		return fmt.Errorf("sweep step must be positive, got %f", sweepStep)
	}
	arr, err := buildArray(cfg)
	if err != nil {
		return err
	}
	opts, err := solveOptions(cfg)
	if err != nil {
		return err
	}

	chord := aero.Chord(arr)
	var alphas, lifts []float64
	for a := sweepFrom; a <= sweepTo+1e-9; a += sweepStep {
		opts.Alpha = a * math.Pi / 180
		if err := solver.Solve(arr, opts); err != nil {
			return fmt.Errorf("alpha %.2f°: %w", a, err)
		}
		alphas = append(alphas, a)
		lifts = append(lifts, aero.LiftCoefficient(arr, chord))
	}

	graph := asciigraph.Plot(lifts,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("C_L vs alpha (%.1f° to %.1f°)", sweepFrom, sweepTo)),
	)
	fmt.Println(graph)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALPHA\tC_L")
	for i := range alphas {
		fmt.Fprintf(w, "%.2f°\t%+.4f\n", alphas[i], lifts[i])
	}
	return w.Flush()
}

func runField(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	arr, err := buildArray(cfg)
	if err != nil {
		return err
	}
	opts, err := solveOptions(cfg)
	if err != nil {
		return err
	}
	if err := solver.Solve(arr, opts); err != nil {
		return err
	}

	grid := field.Grid{X0: gridX0, X1: gridX1, Y0: gridY0, Y1: gridY1, NX: gridNX, NY: gridNY}
	if cfg.Grid != nil && !cmd.Flags().Changed("x0") {
		grid = field.Grid{
			X0: cfg.Grid.X0, X1: cfg.Grid.X1,
			Y0: cfg.Grid.Y0, Y1: cfg.Grid.Y1,
			NX: cfg.Grid.NX, NY: cfg.Grid.NY,
		}
	}

	start := time.Now()
	samples, err := field.Evaluate(arr, grid)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"points":  len(samples),
		"elapsed": time.Since(start),
	}).Info("sampled flow field")

	f, err := os.Create(fieldOut)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := field.WriteCSV(f, samples); err != nil {
		return err
	}
	fmt.Printf("field written to %s (%d points)\n", fieldOut, len(samples))
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	cols, err := st.LoadPanels(args[0])
	if err != nil {
		return err
	}
	gamma := cols["gamma"]
	if len(gamma) == 0 {
		return fmt.Errorf("run %s has no gamma column", args[0])
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("shape: %s  alpha: %.2f°  order: %s  C_L: %+.4f\n\n",
		meta.Shape, meta.AlphaDeg, meta.Order, meta.Lift)

	graph := asciigraph.Plot(gamma,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption("gamma vs arc length"),
	)
	fmt.Println(graph)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSHAPE\tTIME\tPANELS\tALPHA\tORDER\tC_L")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f°\t%s\t%+.4f\n",
			run.ID,
			run.Shape,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Panels,
			run.AlphaDeg,
			run.Order,
			run.Lift,
		)
	}
	return w.Flush()
}

func runExport(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	arr, err := buildArray(cfg)
	if err != nil {
		return err
	}
	opts, err := solveOptions(cfg)
	if err != nil {
		return err
	}
	return tui.Run(cfg.Shape, arr, opts)
}
