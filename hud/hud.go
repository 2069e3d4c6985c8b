// Package hud is a responsive panel/grid layout engine for a game UI
// overlay. Panels convert the viewport size into pixel rectangles for
// their buttons, and the HUD routes pointer input against the buttons
// of the currently enabled mode, notifying the host on activation.
package hud

import (
	"fmt"

	"grid-hud/geom"
)

// Event identifies which button action fired. The HUD attaches no
// payload; the receiving host defines all resulting behavior.
type Event int

const (
	EventStartGame Event = iota
	EventSendTurn
	EventQuitGame
	EventZoomIn
	EventZoomOut
)

var eventNames = map[Event]string{
	EventStartGame: "start_game",
	EventSendTurn:  "send_turn",
	EventQuitGame:  "quit_game",
	EventZoomIn:    "zoom_in",
	EventZoomOut:   "zoom_out",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// ParseEvent maps a layout-file event name back to its Event.
func ParseEvent(name string) (Event, error) {
	for e, n := range eventNames {
		if n == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown event %q", name)
}

// Mode names a subset of buttons considered active for pointer
// handling. Buttons of other modes are inert even if drawn.
type Mode int

const (
	ModeMain Mode = iota
	ModeInGame
)

var modeNames = map[Mode]string{
	ModeMain:   "main",
	ModeInGame: "in_game",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps a layout-file mode name back to its Mode.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", name)
}

// Notifier receives button activation events on pointer release.
type Notifier interface {
	Notify(Event)
}

// HUD owns the fixed set of panels and the per-mode button lists.
// Topology is built once at startup; afterwards only button areas,
// font sizes, states and the active mode change.
type HUD struct {
	panels     []*Panel
	modes      map[Mode][]*Button
	curButtons []*Button
	notifier   Notifier
}

func New(notifier Notifier) *HUD {
	return &HUD{
		modes:    make(map[Mode][]*Button),
		notifier: notifier,
	}
}

func (h *HUD) AddPanel(p *Panel) {
	h.panels = append(h.panels, p)
}

// Panels exposes the panel list for rendering.
func (h *HUD) Panels() []*Panel {
	return h.panels
}

// RegisterMode appends buttons to a mode's active set. The buttons are
// shared references into their owning panels, never copies.
func (h *HUD) RegisterMode(mode Mode, buttons ...*Button) {
	h.modes[mode] = append(h.modes[mode], buttons...)
}

// EnableMode replaces the active button set wholesale. An unregistered
// mode leaves the HUD with no active buttons.
func (h *HUD) EnableMode(mode Mode) {
	h.curButtons = h.modes[mode]
}

// ActiveButtons exposes the currently active button set for rendering.
func (h *HUD) ActiveButtons() []*Button {
	return h.curButtons
}

// Resize fans the viewport size out to every panel. Panels lay out
// independently, so order does not matter.
func (h *HUD) Resize(space geom.Vec) {
	for _, p := range h.panels {
		p.Resize(space)
	}
}

func (h *HUD) HandlePointerStart(p geom.Vec) {
	h.mark(p, StatePressed)
}

func (h *HUD) HandlePointerMove(p geom.Vec) {
	h.mark(p, StatePressed)
}

// HandlePointerEnd notifies once per colliding active button, in
// attachment order, then clears the pressed state.
func (h *HUD) HandlePointerEnd(p geom.Vec) {
	for _, b := range h.curButtons {
		if b.Collides(p) {
			h.notifier.Notify(b.Event)
		}
	}
	h.mark(p, StateNormal)
}

// mark resets every active button to Normal, then applies state to the
// buttons under p. A host-set Inactive state is reset along with the
// rest; hosts that care must reapply it after pointer handling.
func (h *HUD) mark(p geom.Vec, state ButtonState) {
	for _, b := range h.curButtons {
		b.State = StateNormal
	}
	for _, b := range h.curButtons {
		if b.Collides(p) {
			b.State = state
		}
	}
}

// Collides reports whether p is over any active button. Hosts use this
// to suppress game-world interaction underneath the HUD.
func (h *HUD) Collides(p geom.Vec) bool {
	for _, b := range h.curButtons {
		if b.Collides(p) {
			return true
		}
	}
	return false
}
