package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"chartdeck/internal/chart"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2)
		}
		// dimensions changed: the whole geometry snapshot is rebuilt
		m.recompute()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "b":
			m.setType(chart.Bar)
		case "l":
			m.setType(chart.Line)
		case "a":
			m.setType(chart.Area)
		case "p":
			m.setType(chart.Pie)
		case "d":
			m.setType(chart.Donut)
		case "g":
			m.cfg.ShowGrid = !m.cfg.ShowGrid
			m.recompute()
			m.status = fmt.Sprintf("grid: %v", m.cfg.ShowGrid)
		case "n":
			m.cfg.ShowLegend = !m.cfg.ShowLegend
			m.recompute() // legend column changes the chart width
			m.status = fmt.Sprintf("legend: %v", m.cfg.ShowLegend)
		case "o":
			m.cfg.ShowTooltip = !m.cfg.ShowTooltip
			m.status = fmt.Sprintf("tooltip: %v", m.cfg.ShowTooltip)
		case "i":
			m.cfg.Interactive = !m.cfg.Interactive
			if !m.cfg.Interactive {
				m.inter = chart.NoHover
				m.pos.Reset()
			}
			m.status = fmt.Sprintf("interactive: %v", m.cfg.Interactive)
		case "t":
			m.showTable = !m.showTable
			if m.showTable {
				m.refreshDataTable()
			}
		case "e":
			m.pasteMode = true
			m.ta.SetValue("")
			m.ta.Focus()
			m.status = "paste mode"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-1-2)
			}
			m.recompute()
		case "u", "backspace":
			if m.nav.Up() {
				m.inter = chart.NoHover
				m.pos.Reset()
				m.recompute()
				if m.showTable {
					m.refreshDataTable()
				}
				m.status = fmt.Sprintf("up to depth %d", m.nav.Depth())
			} else {
				m.status = "at root"
			}
		case "r":
			for m.nav.Up() {
			}
			m.inter = chart.NoHover
			m.pos.Reset()
			m.recompute()
			if m.showTable {
				m.refreshDataTable()
			}
			m.status = "back to root"
		case "h":
			m.helpVisible = !m.helpVisible
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		}
	case tea.MouseMsg:
		m = m.updateMouse(msg)
	}
	// Pass messages to focused widgets
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.showTable {
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	case "enter":
		raw := strings.TrimSpace(m.ta.Value())
		if raw == "" {
			m.status = "paste: empty"
			return m, nil
		}
		s, title, err := chart.ParseJSON([]byte(raw))
		if err != nil {
			m.status = "json error: " + err.Error()
			return m, nil
		}
		m.installSeries(s, title, "<pasted>")
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// updateMouse hit-tests the pointer against the current geometry
// snapshot and drives hover state, callbacks, and drill-down.
func (m Model) updateMouse(msg tea.MouseMsg) Model {
	if !m.cfg.Interactive || m.pasteMode || m.showTable {
		return m
	}
	l := m.layout()
	cx, cy := msg.X, msg.Y
	if cx < l.chartX || cx >= l.chartX+l.chartW || cy < l.chartY || cy >= l.chartY+l.chartH {
		m = m.clearHover()
		return m
	}
	// engine coordinates of the hovered cell's centre
	ex := float64(cx-l.chartX)*microX + 1
	ey := float64(cy-l.chartY)*microY + 2
	idx, ok := chart.Locate(ex, ey, m.geo)
	if !ok {
		m = m.clearHover()
		return m
	}
	changed := idx != m.inter.Hovered
	m.inter = m.inter.WithHover(idx, float64(cx-l.chartX), float64(cy-l.chartY))
	cur := m.nav.Current()
	if changed && m.cfg.OnPointHover != nil {
		p := cur[idx]
		m.cfg.OnPointHover(&p, idx)
	}
	if changed {
		p := cur[idx]
		m.status = fmt.Sprintf("%s = %s", p.Label, formatValue(p.Value))
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		p := cur[idx]
		if m.cfg.OnPointClick != nil {
			m.cfg.OnPointClick(p, idx)
		}
		if m.cfg.EnableDrillDown && m.nav.Drill(idx) {
			m.inter = chart.NoHover
			m.pos.Reset()
			m.recompute()
			if m.showTable {
				m.refreshDataTable()
			}
			m.status = fmt.Sprintf("drilled into %s (depth %d)", p.Label, m.nav.Depth())
		} else {
			m.status = fmt.Sprintf("selected %s = %s", p.Label, formatValue(p.Value))
		}
	}
	return m
}

func (m Model) clearHover() Model {
	if m.inter.Hovered != -1 {
		m.inter = m.inter.Cleared()
		m.pos.Reset()
		if m.cfg.OnPointHover != nil {
			m.cfg.OnPointHover(nil, -1)
		}
	}
	return m
}
