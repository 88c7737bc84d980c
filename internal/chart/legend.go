package chart

// LegendEntry pairs a display label with its resolved color.
type LegendEntry struct {
	Label string
	Color string
}

// Legend derives one entry per point of the active series, in series
// order, with the same color resolution the renderers use.
func Legend(series Series, palette []string) []LegendEntry {
	if len(series) == 0 {
		return nil
	}
	out := make([]LegendEntry, len(series))
	for i, p := range series {
		out[i] = LegendEntry{Label: p.Label, Color: PointColor(p, i, palette)}
	}
	return out
}
