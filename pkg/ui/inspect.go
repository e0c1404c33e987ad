package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"emuweb/pkg/layout"
)

// maxScaleCap bounds interactive range growth; beyond this the table stops
// being a plausible set of zoom levels.
const maxScaleCap = 32

type inspectKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	GrowMax   key.Binding
	ShrinkMax key.Binding
	GrowMin   key.Binding
	ShrinkMin key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func (k inspectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.GrowMax, k.ShrinkMax, k.Help, k.Quit}
}

func (k inspectKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.GrowMax, k.ShrinkMax, k.GrowMin, k.ShrinkMin},
		{k.Help, k.Quit},
	}
}

var inspectKeys = inspectKeyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous scale")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next scale")),
	GrowMax:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "raise max scale")),
	ShrinkMax: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "lower max scale")),
	GrowMin:   key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "raise min scale")),
	ShrinkMin: key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "lower min scale")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// InspectModel is an interactive view over the breakpoint table. The scale
// range can be adjusted live; the underlying geometry stays validated.
type InspectModel struct {
	geometry layout.Geometry
	cursor   int
	keys     inspectKeyMap
	help     help.Model
	width    int
}

// NewInspectModel creates the inspect model for g.
func NewInspectModel(g layout.Geometry) InspectModel {
	return InspectModel{
		geometry: g,
		keys:     inspectKeys,
		help:     help.New(),
	}
}

// Geometry returns the geometry as currently adjusted.
func (m InspectModel) Geometry() layout.Geometry {
	return m.geometry
}

// Init implements tea.Model.
func (m InspectModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.geometry.Count()-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.GrowMax):
			m.adjust(func(g *layout.Geometry) { g.MaxScale++ })
		case key.Matches(msg, m.keys.ShrinkMax):
			m.adjust(func(g *layout.Geometry) { g.MaxScale-- })
		case key.Matches(msg, m.keys.GrowMin):
			m.adjust(func(g *layout.Geometry) { g.MinScale++ })
		case key.Matches(msg, m.keys.ShrinkMin):
			m.adjust(func(g *layout.Geometry) { g.MinScale-- })
		}
	}
	return m, nil
}

// adjust applies fn and keeps the result only if it is a valid geometry
// within the interactive cap.
func (m *InspectModel) adjust(fn func(*layout.Geometry)) {
	g := m.geometry
	fn(&g)
	if g.MaxScale > maxScaleCap || g.Validate() != nil {
		return
	}
	m.geometry = g
	if last := g.Count() - 1; m.cursor > last {
		if last < 0 {
			last = 0
		}
		m.cursor = last
	}
}

// View implements tea.Model.
func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("emuweb inspect"))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%dx%d units, scales %d-%d",
		m.geometry.ScreenWidth, m.geometry.ScreenHeight,
		m.geometry.MinScale, m.geometry.MaxScale-1)))
	b.WriteString("\n\n")

	bps := m.geometry.Breakpoints()
	if len(bps) == 0 {
		b.WriteString(mutedStyle.Render("empty scale range"))
		b.WriteString("\n")
	} else {
		rows := make([][]string, 0, len(bps))
		for _, bp := range bps {
			rows = append(rows, tableRow(bp))
		}
		widths := columnWidths(tableColumns, rows)

		for i, label := range tableColumns {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(headerStyle.Render(pad(label, widths[i])))
		}
		b.WriteString("\n")
		for i, row := range rows {
			style := cellStyle
			if i == m.cursor {
				style = selectedRowStyle
			}
			line := make([]string, len(row))
			for j, cell := range row {
				line[j] = pad(cell, widths[j])
			}
			b.WriteString(style.Render(strings.Join(line, "  ")))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
