package hud

import "grid-hud/geom"

// ButtonState is the interaction state of a button. The pointer state
// machine only ever assigns Normal and Pressed; Inactive is reserved
// for the host to set directly (e.g. to grey out an action).
type ButtonState int

const (
	StateNormal ButtonState = iota
	StatePressed
	StateInactive
)

// Button is a labeled clickable region inside a panel's grid. Label,
// Event and FontScale are fixed at construction; Area, FontSize and
// State are derived fields recomputed by the owning panel on every
// resize and by the pointer handlers.
type Button struct {
	Label     string
	Event     Event
	FontScale float64 // optional multiplier applied by the renderer, 0 = unset

	Area     geom.Area
	FontSize float64
	State    ButtonState
}

// NewButton creates a button with a degenerate zero area. Until the
// first resize runs it collides with nothing but its own origin.
func NewButton(label string, event Event) *Button {
	return &Button{Label: label, Event: event}
}

// Collides reports whether p lies within the button's rectangle.
// Bounds are inclusive on all edges.
func (b *Button) Collides(p geom.Vec) bool {
	return b.Area.Contains(p)
}
