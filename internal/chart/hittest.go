package chart

import "math"

// Locate resolves a pointer position to the data index it is over.
// Coordinates are in the same pixel space the table was computed in.
// The second return is false when the pointer misses every element.
func Locate(x, y float64, t Table) (int, bool) {
	if len(t.Entries) == 0 {
		return 0, false
	}
	switch t.Type {
	case Bar:
		return locateSlot(x, y, t)
	case Line, Area:
		return locateSample(x, y, t)
	case Pie, Donut:
		return locateSector(x, y, t)
	}
	return 0, false
}

// locateSlot integer-divides the x-offset by the per-slot width.
func locateSlot(x, y float64, t Table) (int, bool) {
	if t.Slot <= 0 || !t.Plot.Contains(x, y) {
		return 0, false
	}
	return clampIndex(int((x-t.Plot.X)/t.Slot), len(t.Entries)), true
}

// locateSample rounds the x-offset to the nearest sample index.
func locateSample(x, y float64, t Table) (int, bool) {
	if t.Step <= 0 || !t.Plot.Contains(x, y) {
		return 0, false
	}
	return clampIndex(int(math.Round((x-t.Plot.X)/t.Step)), len(t.Entries)), true
}

// locateSector finds the sector containing the pointer's polar angle.
// Inside the donut hole, and beyond the outer radius, nothing is hit.
func locateSector(x, y float64, t Table) (int, bool) {
	dx := x - t.Center.X
	dy := y - t.Center.Y
	r := math.Hypot(dx, dy)
	if r < t.Entries[0].Inner || r > t.Entries[0].Outer {
		return 0, false
	}
	// Angle clockwise from 12 o'clock, wrapped to [0, 2π).
	a := math.Mod(math.Atan2(dy, dx)-sectorStart, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	for i, end := range t.cum {
		if a < end {
			return i, true
		}
	}
	return len(t.cum) - 1, true
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
