package tui

import (
	"fmt"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"chartdeck/internal/chart"
)

const sidebarWidth = 28

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool
	showTable   bool
	pasteMode   bool

	// engine state
	cfg   chart.Config
	nav   *chart.Navigator
	geo   chart.Table
	frame chart.Frame
	inter chart.Interaction
	pos   *chart.Positioner

	title  string
	status string

	// Dataset explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// paste mode
	ta textarea.Model

	// data table
	tbl table.Model
}

func New() Model {
	m := Model{
		helpVisible: true,
		status:      "chartdeck ready",
		title:       "no dataset",
		cfg:         chart.DefaultConfig(chart.Bar, 0, 0),
		nav:         chart.NewNavigator(nil),
		pos:         chart.NewPositioner(),
		inter:       chart.NoHover,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Datasets"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = `Paste a JSON series: [{"label":"a","value":1}, ...]. Press Enter to render; Esc to cancel.`
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// data table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a dataset file at launch.
func NewWithPath(path string) Model {
	m := New()
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// layout is the cell arithmetic shared by Update (mouse math) and View.
type layout struct {
	sidebarW int
	legendW  int
	chartX   int
	chartY   int
	chartW   int
	chartH   int
	contentW int
	contentH int
}

func (m Model) layout() layout {
	headerHeight := 1
	footerHeight := 2
	var l layout
	l.contentH = m.height - headerHeight - footerHeight
	if l.contentH < 4 {
		l.contentH = 4
	}
	l.contentW = max(10, m.width)
	gap := 0
	if m.showSidebar {
		l.sidebarW = sidebarWidth
		gap = 1
	}
	if m.cfg.ShowLegend {
		l.legendW = legendWidth(m.nav.Current())
	}
	l.chartX = l.sidebarW + gap
	l.chartY = headerHeight
	l.chartW = l.contentW - l.sidebarW - gap - l.legendW
	if l.chartW < 10 {
		l.chartW = 10
	}
	l.chartH = l.contentH
	return l
}

// legendWidth sizes the legend column from the truncated labels.
func legendWidth(series chart.Series) int {
	if len(series) == 0 {
		return 0
	}
	w := 0
	for _, p := range series {
		if n := len([]rune(chart.TruncateLabel(p.Label))); n > w {
			w = n
		}
	}
	return min(w+5, 24) // swatch, space, padding
}

// recompute publishes a fresh geometry snapshot and frame for the
// current series, type, and canvas size. Every later hit-test reads
// this table, never a stale one.
func (m *Model) recompute() {
	l := m.layout()
	m.cfg.Width = float64(l.chartW * microX)
	m.cfg.Height = float64(l.chartH * microY)
	cur := m.nav.Current()
	m.geo = chart.Compute(cur, m.cfg)
	m.frame = chart.RenderFrame(m.geo, cur, m.cfg)
}

// installSeries makes s the new root series and resets all interaction.
func (m *Model) installSeries(s chart.Series, title, src string) {
	m.nav.Reset(s)
	if title == "" {
		title = src
	}
	m.title = title
	m.inter = chart.NoHover
	m.pos.Reset()
	m.recompute()
	m.status = fmt.Sprintf("loaded: %s  points=%d", src, len(s))
	if m.showTable {
		m.refreshDataTable()
	}
}

func (m *Model) setType(t chart.Type) {
	m.cfg.Type = t
	m.inter = m.inter.Cleared()
	m.pos.Reset()
	m.recompute()
	m.status = "type: " + t.String()
}

func formatValue(v float64) string {
	return fmt.Sprintf("%g", v)
}
