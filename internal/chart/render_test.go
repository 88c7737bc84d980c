package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFrameBar(t *testing.T) {
	series := sampleSeries()
	cfg := bareConfig(Bar, 200, 100)
	tbl := Compute(series, cfg)
	f := RenderFrame(tbl, series, cfg)
	require.Len(t, f.Bars, len(series))
	require.Len(t, f.XLabels, len(series))
	assert.Len(t, f.Grid, 5)
	assert.Empty(t, f.Sectors)
	for i, b := range f.Bars {
		assert.Equal(t, tbl.Entries[i].Bar, b.Rect)
		assert.Equal(t, DefaultPalette[i%len(DefaultPalette)], b.Color)
	}
}

func TestRenderFrameGridDisabled(t *testing.T) {
	series := sampleSeries()
	cfg := bareConfig(Bar, 200, 100)
	cfg.ShowGrid = false
	f := RenderFrame(Compute(series, cfg), series, cfg)
	assert.Empty(t, f.Grid)
}

func TestRenderFrameLineSegments(t *testing.T) {
	series := sampleSeries()
	cfg := bareConfig(Line, 90, 100)
	tbl := Compute(series, cfg)
	f := RenderFrame(tbl, series, cfg)
	require.Len(t, f.Points, len(series))
	require.Len(t, f.Segments, len(series)-1)
	for i, s := range f.Segments {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, tbl.Entries[i].Pt, s.From)
		assert.Equal(t, tbl.Entries[i+1].Pt, s.To)
	}
	assert.Empty(t, f.Area)
}

func TestRenderFrameAreaClosesToBaseline(t *testing.T) {
	series := sampleSeries()
	cfg := bareConfig(Area, 90, 100)
	tbl := Compute(series, cfg)
	f := RenderFrame(tbl, series, cfg)
	require.Len(t, f.Area, len(series)+2)
	base := tbl.Plot.Y + tbl.Plot.H
	assert.Equal(t, base, f.Area[len(f.Area)-1].Y)
	assert.Equal(t, base, f.Area[len(f.Area)-2].Y)
	assert.Equal(t, tbl.Entries[0].Pt.X, f.Area[len(f.Area)-1].X)
}

func TestRenderFramePieSectors(t *testing.T) {
	series := sampleSeries()
	cfg := bareConfig(Donut, 100, 100)
	tbl := Compute(series, cfg)
	f := RenderFrame(tbl, series, cfg)
	require.Len(t, f.Sectors, len(series))
	assert.Empty(t, f.Grid, "pie charts have no value axis")
	for i, s := range f.Sectors {
		assert.Equal(t, tbl.Entries[i].Start, s.Start)
		assert.Equal(t, tbl.Entries[i].End, s.End)
	}
}

func TestRenderFrameExplicitColorWins(t *testing.T) {
	series := Series{{Label: "a", Value: 1, Color: "#ABCDEF"}, {Label: "b", Value: 2}}
	cfg := bareConfig(Bar, 100, 100)
	f := RenderFrame(Compute(series, cfg), series, cfg)
	require.Len(t, f.Bars, 2)
	assert.Equal(t, "#ABCDEF", f.Bars[0].Color)
	assert.Equal(t, DefaultPalette[1], f.Bars[1].Color)
}

func TestLegendMatchesRenderColors(t *testing.T) {
	series := sampleSeries()
	cfg := bareConfig(Bar, 100, 100)
	f := RenderFrame(Compute(series, cfg), series, cfg)
	entries := Legend(series, cfg.Palette)
	require.Len(t, entries, len(series))
	for i := range entries {
		assert.Equal(t, f.Bars[i].Color, entries[i].Color)
		assert.Equal(t, series[i].Label, entries[i].Label)
	}
}

func TestLegendEmptySeries(t *testing.T) {
	assert.Nil(t, Legend(nil, DefaultPalette))
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "short", TruncateLabel("short"))
	assert.Equal(t, "exactly8", TruncateLabel("exactly8"))
	assert.Equal(t, "overlong…", TruncateLabel("overlongname"))
	assert.Equal(t, "überlang…", TruncateLabel("überlange Namen"))
}

func TestPaletteCycles(t *testing.T) {
	series := make(Series, len(DefaultPalette)+2)
	for i := range series {
		series[i] = DataPoint{Label: "p", Value: 1}
	}
	cfg := bareConfig(Bar, 400, 100)
	f := RenderFrame(Compute(series, cfg), series, cfg)
	assert.Equal(t, f.Bars[0].Color, f.Bars[len(DefaultPalette)].Color)
}
