package main

import (
	"os"
	"testing"

	"grid-hud/geom"
	"grid-hud/hud"
)

type eventLog struct {
	events []hud.Event
}

func (l *eventLog) Notify(e hud.Event) {
	l.events = append(l.events, e)
}

func TestLoadHUDLayout(t *testing.T) {
	filename := "test_layout.yaml"
	defer os.Remove(filename)

	src := `
panels:
  - name: bar
    horizontal:
      max_width: 1
      max_height: 1
      grid_cols: 2
      grid_rows: 1
      base_font_size: 100
    vertical:
      max_width: 1
      max_height: 1
      grid_cols: 1
      grid_rows: 2
      base_font_size: 100
    buttons:
      - label: Go
        event: start_game
        modes: [main]
        horizontal: {x: 0, y: 0, w: 1, h: 1}
        vertical: {x: 0, y: 0, w: 1, h: 1}
      - label: Out
        event: quit_game
        modes: [main, in_game]
        horizontal: {x: 1, y: 0, w: 1, h: 1}
        vertical: {x: 0, y: 1, w: 1, h: 1}
`
	if err := os.WriteFile(filename, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	rec := &eventLog{}
	h, err := LoadHUDLayout(filename, rec)
	if err != nil {
		t.Fatalf("failed to load layout: %v", err)
	}
	if len(h.Panels()) != 1 {
		t.Fatalf("expected 1 panel, got %d", len(h.Panels()))
	}

	h.EnableMode(hud.ModeMain)
	if len(h.ActiveButtons()) != 2 {
		t.Fatalf("expected 2 main buttons, got %d", len(h.ActiveButtons()))
	}
	h.EnableMode(hud.ModeInGame)
	if len(h.ActiveButtons()) != 1 {
		t.Fatalf("expected 1 in-game button, got %d", len(h.ActiveButtons()))
	}

	// A quick end-to-end press against the laid-out rectangles.
	h.EnableMode(hud.ModeMain)
	h.Resize(geom.Vec{X: 200, Y: 100})
	h.HandlePointerEnd(geom.Vec{X: 50, Y: 50})
	if len(rec.events) != 1 || rec.events[0] != hud.EventStartGame {
		t.Errorf("expected [start_game], got %v", rec.events)
	}
}

func TestBuildHUDRejectsBadConfig(t *testing.T) {
	base := func() *LayoutSpec {
		return &LayoutSpec{Panels: []PanelSpec{{
			Name:       "p",
			Horizontal: SizingSpec{MaxWidth: 1, MaxHeight: 1, GridCols: 1, GridRows: 1},
			Vertical:   SizingSpec{MaxWidth: 1, MaxHeight: 1, GridCols: 1, GridRows: 1},
			Buttons: []ButtonSpec{{
				Label: "b", Event: "send_turn", Modes: []string{"in_game"},
			}},
		}}}
	}

	spec := base()
	spec.Panels[0].Horizontal.GridCols = 0
	if _, err := BuildHUD(spec, &eventLog{}); err == nil {
		t.Errorf("expected error for zero grid columns")
	}

	spec = base()
	spec.Panels[0].Vertical.Align = "sideways"
	if _, err := BuildHUD(spec, &eventLog{}); err == nil {
		t.Errorf("expected error for unknown align")
	}

	spec = base()
	spec.Panels[0].Buttons[0].Event = "explode"
	if _, err := BuildHUD(spec, &eventLog{}); err == nil {
		t.Errorf("expected error for unknown event")
	}

	spec = base()
	spec.Panels[0].Buttons[0].Modes = []string{"secret"}
	if _, err := BuildHUD(spec, &eventLog{}); err == nil {
		t.Errorf("expected error for unknown mode")
	}
}

func TestDefaultLayoutBuilds(t *testing.T) {
	h, err := BuildHUD(defaultLayout(), &eventLog{})
	if err != nil {
		t.Fatalf("default layout failed to build: %v", err)
	}
	if len(h.Panels()) != 2 {
		t.Errorf("expected 2 panels, got %d", len(h.Panels()))
	}

	// Both orientations must lay out without surprises.
	h.Resize(geom.Vec{X: 1024, Y: 768})
	h.Resize(geom.Vec{X: 480, Y: 800})
	for _, p := range h.Panels() {
		if p.Area.Size.X < 0 || p.Area.Size.Y < 0 {
			t.Errorf("panel collapsed to negative size: %+v", p.Area)
		}
	}
}
