package chart

// Navigator tracks the active series across drill-down selections as
// an explicit stack: the root series at the bottom, one frame pushed
// per drill, popped by Up. The host decides whether to ever call Up;
// a host that only re-renders with fresh root data simply never pops.
type Navigator struct {
	stack []Series
}

func NewNavigator(root Series) *Navigator {
	return &Navigator{stack: []Series{root}}
}

// Reset discards all drill history and installs a new root series.
func (n *Navigator) Reset(root Series) {
	n.stack = append(n.stack[:0], root)
}

// Current returns the series being charted.
func (n *Navigator) Current() Series {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// Drill descends into the child series of the point at index and
// reports whether a transition happened. Points without children, and
// out-of-range indexes, never transition.
func (n *Navigator) Drill(index int) bool {
	cur := n.Current()
	if index < 0 || index >= len(cur) {
		return false
	}
	children := cur[index].Children
	if len(children) == 0 {
		return false
	}
	n.stack = append(n.stack, Series(children))
	return true
}

// Up pops one drill level; false at the root.
func (n *Navigator) Up() bool {
	if len(n.stack) <= 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

// Depth is the number of drill levels below the root.
func (n *Navigator) Depth() int {
	if len(n.stack) == 0 {
		return 0
	}
	return len(n.stack) - 1
}
