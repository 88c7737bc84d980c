package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshDataTable rebuilds the tabular view of the current series.
func (m *Model) refreshDataTable() {
	cur := m.nav.Current()
	if len(cur) == 0 {
		m.showTable = false
		m.status = "no data to tabulate"
		return
	}
	labelW := 8
	for _, p := range cur {
		if n := len([]rune(p.Label)) + 2; n > labelW {
			labelW = n
		}
	}
	if labelW > 24 {
		labelW = 24
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "label", Width: labelW},
		{Title: "value", Width: 10},
		{Title: "share", Width: 8},
		{Title: "children", Width: 8},
	}
	sum := 0.0
	for _, p := range cur {
		if p.Value > 0 {
			sum += p.Value
		}
	}
	rows := make([]table.Row, 0, len(cur))
	for i, p := range cur {
		share := ""
		if sum > 0 && p.Value > 0 {
			share = fmt.Sprintf("%.1f%%", p.Value/sum*100)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			p.Label,
			formatValue(p.Value),
			share,
			fmt.Sprintf("%d", len(p.Children)),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
