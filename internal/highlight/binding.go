package highlight

import (
	"campusmap/internal/location"
)

// Selector receives a full replacement selection.
type Selector interface {
	ApplySelection(active []string) Result
}

// Binding derives the active selection from list hover and the compose form.
type Binding struct {
	sel    Selector
	active []string
}

func NewBinding(sel Selector) *Binding {
	return &Binding{sel: sel}
}

// OnHoverLocation selects the connected paths of l. A nil location clears
// the selection.
func (b *Binding) OnHoverLocation(l *location.Location) []string {
	if l == nil {
		return b.forward(nil)
	}
	return b.forward(l.ConnectedPath)
}

// OnComposingPathsChange selects the paths picked in the compose form.
func (b *Binding) OnComposingPathsChange(paths []string) []string {
	return b.forward(paths)
}

// Active returns the last forwarded selection.
func (b *Binding) Active() []string {
	return append([]string(nil), b.active...)
}

func (b *Binding) forward(paths []string) []string {
	b.active = location.CleanPaths(paths)
	b.sel.ApplySelection(b.active)
	return b.Active()
}
