package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chartdeck/internal/chart"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, l.contentH-2)
	}

	// Header
	header := titleStyle.Render(" chartdeck ─ " + m.title + " ")
	header = lipgloss.NewStyle().Width(l.contentW).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(l.sidebarW).Render(m.l.View())
	}

	// Chart viewport
	var chartView string
	switch {
	case m.showTable:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, l.contentW-6)
		}
		maxW := min(l.chartW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(l.chartH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		chartView = lipgloss.Place(l.chartW, l.chartH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(l.chartW)
		m.ta.SetHeight(min(l.chartH, 12))
		chartView = lipgloss.NewStyle().Width(l.chartW).Height(l.chartH).Render(m.ta.View())
	default:
		cv := newCellCanvas(l.chartW, l.chartH)
		drawFrame(cv, m.frame, m.geo, m.inter.Hovered)
		if m.cfg.ShowTooltip && m.cfg.Interactive && m.inter.Hovered >= 0 {
			lines := m.tooltipLines(m.inter.Hovered)
			boxW, boxH := tooltipSize(lines)
			x, y := m.pos.Place(m.inter.Hovered, m.inter.PointerX, m.inter.PointerY,
				float64(boxW), float64(boxH), float64(l.chartW), float64(l.chartH))
			drawTooltip(cv, int(x), int(y), lines)
		}
		chartView = lipgloss.NewStyle().Width(l.chartW).Height(l.chartH).Render(cv.render())
	}

	// Legend column
	var legendCol string
	if m.cfg.ShowLegend && l.legendW > 0 {
		legendCol = lipgloss.NewStyle().Width(l.legendW).Render(m.renderLegend(l.chartH))
	}

	// Body row
	parts := make([]string, 0, 4)
	if m.showSidebar {
		parts = append(parts, sidebar, " ")
	}
	parts = append(parts, chartView)
	if legendCol != "" {
		parts = append(parts, legendCol)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	hover := ""
	if m.inter.Hovered >= 0 {
		cur := m.nav.Current()
		if m.inter.Hovered < len(cur) {
			p := cur[m.inter.Hovered]
			hover = dimStyle.Render(fmt.Sprintf("  %s = %s  ", p.Label, formatValue(p.Value)))
		}
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, l.contentW-lipgloss.Width(left)-lipgloss.Width(hover))
	right := lipgloss.Place(spacerW+lipgloss.Width(hover), 1, lipgloss.Right, lipgloss.Center, hover)
	footer := lipgloss.NewStyle().Width(l.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(l.contentW).Height(m.height).Render(ui)
}

// tooltipLines builds the text for the hovered point's tooltip.
func (m Model) tooltipLines(idx int) []string {
	cur := m.nav.Current()
	if idx < 0 || idx >= len(cur) {
		return nil
	}
	p := cur[idx]
	lines := []string{p.Label, "value: " + formatValue(p.Value)}
	sum := 0.0
	for _, q := range cur {
		if q.Value > 0 {
			sum += q.Value
		}
	}
	if sum > 0 && p.Value > 0 {
		lines = append(lines, fmt.Sprintf("share: %.1f%%", p.Value/sum*100))
	}
	if m.cfg.EnableDrillDown && len(p.Children) > 0 {
		lines = append(lines, "click to drill in")
	}
	return lines
}

// tooltipSize returns the outer box dimensions for drawTooltip.
func tooltipSize(lines []string) (int, int) {
	w := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > w {
			w = n
		}
	}
	return w + 4, len(lines) + 2
}

func (m Model) renderLegend(h int) string {
	entries := chart.Legend(m.nav.Current(), m.cfg.Palette)
	var sb strings.Builder
	sb.WriteString(dimStyle.Render(" Legend"))
	if d := m.nav.Depth(); d > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf(" (depth %d)", d)))
	}
	sb.WriteByte('\n')
	for i, e := range entries {
		if i+1 >= h {
			sb.WriteString(dimStyle.Render(" …"))
			break
		}
		sw := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render("■")
		sb.WriteString(" " + sw + " " + chart.TruncateLabel(e.Label))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"b/l/a/p/d type",
		"g grid",
		"n legend",
		"o tooltip",
		"u up",
		"Tab sidebar",
		"Enter open",
		"e paste",
		"t table",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
