package render

// Style is the visual treatment of a pathway handle.
type Style int

const (
	Normal Style = iota
	Highlighted
)

func (s Style) String() string {
	switch s {
	case Normal:
		return "normal"
	case Highlighted:
		return "highlighted"
	}
	return "unknown"
}

// Attributes describe how a surface should paint a style.
type Attributes struct {
	Color   string  // hex
	Weight  int     // stroke width
	Opacity float64 // 0..1
	Dash    []int   // on/off lengths; empty means solid
}

// Solid reports whether the stroke has no dash pattern.
func (a Attributes) Solid() bool { return len(a.Dash) == 0 }

// Attributes returns the paint attributes for s.
func (s Style) Attributes() Attributes {
	if s == Highlighted {
		return Attributes{Color: "#FFD523", Weight: 4, Opacity: 1}
	}
	return Attributes{Color: "#60A5FA", Weight: 2, Opacity: 0.3, Dash: []int{5, 5}}
}
