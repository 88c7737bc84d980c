package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSeries() Series {
	return Series{
		{Label: "Alpha", Value: 10},
		{Label: "Beta", Value: 25},
		{Label: "Gamma", Value: 5},
		{Label: "Delta", Value: 40},
	}
}

// bareConfig has zero margins so pixel expectations are exact.
func bareConfig(t Type, w, h float64) Config {
	cfg := DefaultConfig(t, w, h)
	cfg.Margins = Margins{}
	return cfg
}

func TestComputeCoverage(t *testing.T) {
	series := sampleSeries()
	for _, typ := range []Type{Bar, Line, Area, Pie, Donut} {
		tbl := Compute(series, bareConfig(typ, 200, 100))
		require.Len(t, tbl.Entries, len(series), "type %s", typ)
		for i, e := range tbl.Entries {
			assert.Equal(t, i, e.Index, "type %s", typ)
		}
	}
}

func TestComputeEmptySeries(t *testing.T) {
	for _, typ := range []Type{Bar, Line, Area, Pie, Donut} {
		tbl := Compute(nil, bareConfig(typ, 200, 100))
		assert.Empty(t, tbl.Entries, "type %s", typ)
	}
}

func TestBarSlotLayout(t *testing.T) {
	series := sampleSeries()
	tbl := Compute(series, bareConfig(Bar, 200, 100))
	require.Len(t, tbl.Entries, 4)
	assert.InDelta(t, 50.0, tbl.Slot, 1e-9)
	for i, e := range tbl.Entries {
		assert.InDelta(t, float64(i)*50+5, e.Bar.X, 1e-9, "bar %d x", i)
		assert.InDelta(t, 40.0, e.Bar.W, 1e-9, "bar %d width", i)
	}
}

func TestBarMonotonicity(t *testing.T) {
	series := Series{
		{Label: "a", Value: 3},
		{Label: "b", Value: 7},
		{Label: "c", Value: 7},
		{Label: "d", Value: 12},
	}
	tbl := Compute(series, bareConfig(Bar, 100, 100))
	for i := 1; i < len(series); i++ {
		if series[i-1].Value <= series[i].Value {
			assert.LessOrEqual(t, tbl.Entries[i-1].Bar.H, tbl.Entries[i].Bar.H)
		}
	}
}

func TestBarRangeIncludesZero(t *testing.T) {
	tbl := Compute(Series{{Label: "x", Value: 10}, {Label: "y", Value: 20}}, bareConfig(Bar, 100, 100))
	assert.Equal(t, 0.0, tbl.RangeMin)
	assert.Equal(t, 20.0, tbl.RangeMax)
}

func TestSingleBarDegenerateRange(t *testing.T) {
	// One point, value 10: range [0,10], bar fills the whole plot height
	// and the full slot width minus the 10% gutters.
	tbl := Compute(Series{{Label: "A", Value: 10}}, bareConfig(Bar, 100, 100))
	require.Len(t, tbl.Entries, 1)
	b := tbl.Entries[0].Bar
	assert.InDelta(t, 10.0, b.X, 1e-9)
	assert.InDelta(t, 80.0, b.W, 1e-9)
	assert.InDelta(t, 100.0, b.H, 1e-9)
	assert.InDelta(t, 0.0, b.Y, 1e-9)
}

func TestLineDegenerateRangeFillsExtent(t *testing.T) {
	// All-equal values must not divide by zero; the single value fills
	// the extent, putting every sample at the top of the plot.
	series := Series{{Label: "a", Value: 5}, {Label: "b", Value: 5}, {Label: "c", Value: 5}}
	tbl := Compute(series, bareConfig(Line, 100, 100))
	for _, e := range tbl.Entries {
		require.False(t, math.IsNaN(e.Pt.Y))
		assert.InDelta(t, 0.0, e.Pt.Y, 1e-9)
	}
}

func TestLineSampleSpacing(t *testing.T) {
	series := sampleSeries()
	tbl := Compute(series, bareConfig(Line, 90, 100))
	assert.InDelta(t, 30.0, tbl.Step, 1e-9)
	for i, e := range tbl.Entries {
		assert.InDelta(t, float64(i)*30, e.Pt.X, 1e-9)
	}
}

func TestPieAngleClosure(t *testing.T) {
	series := sampleSeries()
	tbl := Compute(series, bareConfig(Pie, 100, 100))
	sum := 0.0
	for _, e := range tbl.Entries {
		sum += e.End - e.Start
	}
	assert.InDelta(t, 2*math.Pi, sum, 1e-9)
}

func TestPieSweepProportions(t *testing.T) {
	series := Series{{Label: "a", Value: 1}, {Label: "b", Value: 1}, {Label: "c", Value: 2}}
	tbl := Compute(series, bareConfig(Pie, 100, 100))
	require.Len(t, tbl.Entries, 3)
	assert.InDelta(t, -math.Pi/2, tbl.Entries[0].Start, 1e-9)
	assert.InDelta(t, math.Pi/2, tbl.Entries[0].End-tbl.Entries[0].Start, 1e-9)
	assert.InDelta(t, math.Pi/2, tbl.Entries[1].End-tbl.Entries[1].Start, 1e-9)
	assert.InDelta(t, math.Pi, tbl.Entries[2].End-tbl.Entries[2].Start, 1e-9)
}

func TestPieAllZeroUniform(t *testing.T) {
	series := Series{{Label: "a"}, {Label: "b"}, {Label: "c"}, {Label: "d"}}
	tbl := Compute(series, bareConfig(Pie, 100, 100))
	for _, e := range tbl.Entries {
		assert.InDelta(t, math.Pi/2, e.End-e.Start, 1e-9)
	}
}

func TestPieNegativeValuesClamped(t *testing.T) {
	series := Series{{Label: "neg", Value: -5}, {Label: "pos", Value: 5}}
	tbl := Compute(series, bareConfig(Pie, 100, 100))
	assert.InDelta(t, 0.0, tbl.Entries[0].End-tbl.Entries[0].Start, 1e-9)
	assert.InDelta(t, 2*math.Pi, tbl.Entries[1].End-tbl.Entries[1].Start, 1e-9)
}

func TestDonutInnerRadius(t *testing.T) {
	tbl := Compute(sampleSeries(), bareConfig(Donut, 100, 100))
	require.NotEmpty(t, tbl.Entries)
	assert.InDelta(t, 50.0, tbl.Entries[0].Outer, 1e-9)
	assert.InDelta(t, 20.0, tbl.Entries[0].Inner, 1e-9)
}

func TestNonFiniteValuesDegrade(t *testing.T) {
	series := Series{
		{Label: "ok", Value: 10},
		{Label: "nan", Value: math.NaN()},
		{Label: "inf", Value: math.Inf(1)},
	}
	tbl := Compute(series, bareConfig(Bar, 100, 100))
	require.Len(t, tbl.Entries, 3)
	for _, e := range tbl.Entries {
		assert.False(t, math.IsNaN(e.Bar.H))
		assert.False(t, math.IsInf(e.Bar.H, 0))
	}
}

func TestNegativeDimensionsClampToEmptyPlot(t *testing.T) {
	tbl := Compute(sampleSeries(), bareConfig(Bar, -10, -10))
	assert.Equal(t, 0.0, tbl.Plot.W)
	assert.Equal(t, 0.0, tbl.Plot.H)
	assert.Len(t, tbl.Entries, len(sampleSeries()))
}

func TestNegativeValuesAffectBarScale(t *testing.T) {
	series := Series{{Label: "down", Value: -10}, {Label: "up", Value: 10}}
	tbl := Compute(series, bareConfig(Bar, 100, 100))
	// range is [-10, 10]: the negative bar has zero height from the
	// rangeMin baseline, the positive one spans the full extent.
	assert.InDelta(t, 0.0, tbl.Entries[0].Bar.H, 1e-9)
	assert.InDelta(t, 100.0, tbl.Entries[1].Bar.H, 1e-9)
}
