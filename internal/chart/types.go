package chart

import (
	"fmt"
	"math"
	"strings"
)

// Type identifies one of the supported chart renderings.
type Type int

const (
	Bar Type = iota
	Line
	Area
	Pie
	Donut
)

func (t Type) String() string {
	switch t {
	case Bar:
		return "bar"
	case Line:
		return "line"
	case Area:
		return "area"
	case Pie:
		return "pie"
	case Donut:
		return "donut"
	}
	return "unknown"
}

// ParseType maps a type name to its Type.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bar":
		return Bar, nil
	case "line":
		return Line, nil
	case "area":
		return Area, nil
	case "pie":
		return Pie, nil
	case "donut":
		return Donut, nil
	}
	return Bar, fmt.Errorf("unknown chart type: %q", s)
}

// DataPoint is the atomic unit of a chart.
type DataPoint struct {
	Label    string
	Value    float64
	Color    string         // overrides the palette color when set
	Metadata map[string]any // opaque, passed through to callbacks
	Children []DataPoint    // nested dataset entered on drill-down
}

// Series is an ordered sequence of data points. Order drives bar/line
// x-position and pie sector order (clockwise from 12 o'clock).
type Series []DataPoint

type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// DefaultMargins leave room for axis labels below and left of the plot.
var DefaultMargins = Margins{Top: 4, Right: 4, Bottom: 8, Left: 16}

// DefaultPalette is cycled over points that carry no explicit color.
var DefaultPalette = []string{
	"#7C3AED", "#2DD4BF", "#F59E0B", "#EF4444",
	"#3B82F6", "#10B981", "#EC4899", "#A3E635",
}

// Config is the per-render chart configuration. The engine never holds
// on to it across renders.
type Config struct {
	Type    Type
	Width   float64
	Height  float64
	Margins Margins
	Palette []string

	Interactive     bool
	ShowTooltip     bool
	ShowLegend      bool
	ShowGrid        bool
	EnableDrillDown bool

	Title    string
	Subtitle string

	// Invoked synchronously from pointer-event handling; panics inside
	// a callback propagate to the host's event loop.
	OnPointClick func(DataPoint, int)
	OnPointHover func(*DataPoint, int)
}

// DefaultConfig returns a fully interactive config with the default
// palette and margins.
func DefaultConfig(t Type, w, h float64) Config {
	return Config{
		Type:            t,
		Width:           w,
		Height:          h,
		Margins:         DefaultMargins,
		Palette:         DefaultPalette,
		Interactive:     true,
		ShowTooltip:     true,
		ShowLegend:      true,
		ShowGrid:        true,
		EnableDrillDown: true,
	}
}

// PointColor resolves the drawing color for one point: the point's own
// color first, otherwise the palette cycled by index.
func PointColor(p DataPoint, i int, palette []string) string {
	if p.Color != "" {
		return p.Color
	}
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return palette[i%len(palette)]
}

// sanitize clamps non-finite values to zero so one bad point degrades
// instead of poisoning the whole scale.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
