// Package tui provides an interactive terminal view of a panel solve: the
// angle of attack is adjusted live, the array re-solved, and the strength
// distribution re-plotted against arc length.
package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/flowlab/panelflow/internal/aero"
	"github.com/flowlab/panelflow/internal/panel"
	"github.com/flowlab/panelflow/internal/solver"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	errStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Italic(true)
)

const alphaStepDeg = 0.5

type model struct {
	shape string
	arr   *panel.Array
	opts  solver.Options

	alphaDeg float64
	solveErr error
	width    int
}

// Run starts the interactive session on an already-built array. The initial
// solve uses opts as given; arrow keys then sweep the angle of attack.
func Run(shape string, arr *panel.Array, opts solver.Options) error {
	m := model{
		shape:    shape,
		arr:      arr,
		opts:     opts,
		alphaDeg: opts.Alpha * 180 / math.Pi,
		width:    80,
	}
	m.solve()

	_, err := tea.NewProgram(m).Run()
	return err
}

func (m *model) solve() {
	m.opts.Alpha = m.alphaDeg * math.Pi / 180
	m.solveErr = solver.Solve(m.arr, m.opts)
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.alphaDeg -= alphaStepDeg
			m.solve()
		case "right", "l":
			m.alphaDeg += alphaStepDeg
			m.solve()
		case "up", "k":
			m.alphaDeg += 5 * alphaStepDeg
			m.solve()
		case "down", "j":
			m.alphaDeg -= 5 * alphaStepDeg
			m.solve()
		case "o":
			if m.opts.Order == panel.OrderConstant {
				m.opts.Order = panel.OrderLinear
			} else {
				m.opts.Order = panel.OrderConstant
			}
			m.solve()
		case "0":
			m.alphaDeg = 0
			m.solve()
		}
	}
	return m, nil
}

func (m model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("panelflow · %s · %d panels", m.shape, m.arr.Len())))
	sb.WriteString("\n\n")

	if m.solveErr != nil {
		sb.WriteString(errStyle.Render("solve failed: " + m.solveErr.Error()))
		sb.WriteString("\n\n")
		sb.WriteString(hintStyle.Render("←/→ alpha  o order  0 reset  q quit"))
		return sb.String()
	}

	gamma, _ := m.arr.Values(panel.FieldGamma)
	plotWidth := m.width - 12
	if plotWidth < 20 {
		plotWidth = 20
	}
	graph := asciigraph.Plot(gamma,
		asciigraph.Height(12),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("gamma vs panel (surface traversal order)"),
	)
	sb.WriteString(graph)
	sb.WriteString("\n\n")

	chord := aero.Chord(m.arr)
	sb.WriteString(labelStyle.Render("alpha ") + valueStyle.Render(fmt.Sprintf("%+.1f°", m.alphaDeg)))
	sb.WriteString(labelStyle.Render("   order ") + valueStyle.Render(m.opts.Order.String()))
	sb.WriteString(labelStyle.Render("   C_L ") + valueStyle.Render(fmt.Sprintf("%+.4f", aero.LiftCoefficient(m.arr, chord))))
	sb.WriteString(labelStyle.Render("   Γ ") + valueStyle.Render(fmt.Sprintf("%+.4f", aero.Circulation(m.arr))))
	sb.WriteString("\n\n")
	sb.WriteString(hintStyle.Render("←/→ alpha ±0.5°  ↑/↓ ±2.5°  o order  0 reset  q quit"))
	sb.WriteString("\n")

	return sb.String()
}
