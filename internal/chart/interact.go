package chart

// Interaction is the host-owned pointer state. Transitions are pure:
// renderers read the state to style the hovered element but never
// write it, and nothing here touches the geometry table.
type Interaction struct {
	Hovered  int // data index under the pointer, -1 when none
	PointerX float64
	PointerY float64
}

// NoHover is the interaction state before any pointer contact.
var NoHover = Interaction{Hovered: -1}

// WithHover returns the state after the pointer resolved to index.
func (s Interaction) WithHover(index int, x, y float64) Interaction {
	s.Hovered = index
	s.PointerX = x
	s.PointerY = y
	return s
}

// Cleared returns the state after the pointer left every element.
func (s Interaction) Cleared() Interaction {
	s.Hovered = -1
	return s
}
