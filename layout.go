package main

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"grid-hud/geom"
	"grid-hud/hud"
)

// The HUD topology is authored declaratively, either in hud.yaml or via
// the built-in defaultLayout. The file describes panels with their two
// sizing profiles and the buttons with one grid cell per orientation;
// everything else (pixel rectangles, font sizes) is derived at runtime.

type SizingSpec struct {
	MaxWidth       float64 `yaml:"max_width"`
	MaxHeight      float64 `yaml:"max_height"`
	GridCols       int     `yaml:"grid_cols"`
	GridRows       int     `yaml:"grid_rows"`
	Buff           float64 `yaml:"buff"`
	BaseFontSize   float64 `yaml:"base_font_size"`
	Align          string  `yaml:"align"`
	AspectRatio    float64 `yaml:"aspect_ratio"`
	MinAspectRatio float64 `yaml:"min_aspect_ratio"`
}

type CellSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type ButtonSpec struct {
	Label      string   `yaml:"label"`
	Event      string   `yaml:"event"`
	FontScale  float64  `yaml:"font_scale"`
	Modes      []string `yaml:"modes"`
	Horizontal CellSpec `yaml:"horizontal"`
	Vertical   CellSpec `yaml:"vertical"`
}

type PanelSpec struct {
	Name       string       `yaml:"name"`
	Horizontal SizingSpec   `yaml:"horizontal"`
	Vertical   SizingSpec   `yaml:"vertical"`
	Buttons    []ButtonSpec `yaml:"buttons"`
}

type LayoutSpec struct {
	Panels []PanelSpec `yaml:"panels"`
}

// LoadHUDLayout reads a layout file and builds the HUD topology from it.
func LoadHUDLayout(filename string, notifier hud.Notifier) (*hud.HUD, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var spec LayoutSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, err
	}
	return BuildHUD(&spec, notifier)
}

// BuildHUD constructs the fixed panel/button/mode topology. The layout
// engine itself never validates grid configuration at runtime, so this
// is the place where a bad file is caught.
func BuildHUD(spec *LayoutSpec, notifier hud.Notifier) (*hud.HUD, error) {
	h := hud.New(notifier)

	for i, ps := range spec.Panels {
		name := ps.Name
		if name == "" {
			name = fmt.Sprintf("panel %d", i)
		}

		horizontal, err := buildSizing(ps.Horizontal)
		if err != nil {
			return nil, fmt.Errorf("%s horizontal: %w", name, err)
		}
		vertical, err := buildSizing(ps.Vertical)
		if err != nil {
			return nil, fmt.Errorf("%s vertical: %w", name, err)
		}

		panel := hud.NewPanel(horizontal, vertical)
		for _, bs := range ps.Buttons {
			event, err := hud.ParseEvent(bs.Event)
			if err != nil {
				return nil, fmt.Errorf("%s button %q: %w", name, bs.Label, err)
			}
			b := hud.NewButton(bs.Label, event)
			b.FontScale = bs.FontScale
			panel.Attach(b, cellArea(bs.Horizontal), cellArea(bs.Vertical))

			for _, m := range bs.Modes {
				mode, err := hud.ParseMode(m)
				if err != nil {
					return nil, fmt.Errorf("%s button %q: %w", name, bs.Label, err)
				}
				h.RegisterMode(mode, b)
			}
		}
		h.AddPanel(panel)
	}

	return h, nil
}

func buildSizing(s SizingSpec) (hud.PanelSizing, error) {
	if s.GridCols < 1 || s.GridRows < 1 {
		return hud.PanelSizing{}, fmt.Errorf("grid must be at least 1x1, got %dx%d", s.GridCols, s.GridRows)
	}

	align := hud.AlignStart
	switch s.Align {
	case "", "start":
	case "center":
		align = hud.AlignCenter
	case "end":
		align = hud.AlignEnd
	default:
		return hud.PanelSizing{}, fmt.Errorf("unknown align %q", s.Align)
	}

	return hud.PanelSizing{
		MaxWidth:       s.MaxWidth,
		MaxHeight:      s.MaxHeight,
		Grid:           geom.Vec{X: float64(s.GridCols), Y: float64(s.GridRows)},
		Buff:           s.Buff,
		BaseFontSize:   s.BaseFontSize,
		Align:          align,
		AspectRatio:    s.AspectRatio,
		MinAspectRatio: s.MinAspectRatio,
	}, nil
}

func cellArea(c CellSpec) geom.Area {
	return geom.Area{
		Start: geom.Vec{X: c.X, Y: c.Y},
		Size:  geom.Vec{X: c.W, Y: c.H},
	}
}

// DefaultHUD builds the built-in topology used when no layout file is
// present. It mirrors the shipped hud.yaml.
func DefaultHUD(notifier hud.Notifier) *hud.HUD {
	h, err := BuildHUD(defaultLayout(), notifier)
	if err != nil {
		log.Fatal("built-in layout is broken:", err)
	}
	return h
}

func defaultLayout() *LayoutSpec {
	return &LayoutSpec{
		Panels: []PanelSpec{
			{
				Name: "menu",
				Horizontal: SizingSpec{
					MaxWidth: 0.4, MaxHeight: 0.5,
					GridCols: 1, GridRows: 2,
					Buff: 0.04, BaseFontSize: 14,
					Align:          "center",
					MinAspectRatio: 0.6,
				},
				Vertical: SizingSpec{
					MaxWidth: 0.8, MaxHeight: 0.4,
					GridCols: 1, GridRows: 2,
					Buff: 0.04, BaseFontSize: 12,
					Align: "center",
				},
				Buttons: []ButtonSpec{
					{
						Label: "Start Game", Event: "start_game", Modes: []string{"main"},
						Horizontal: CellSpec{X: 0, Y: 0, W: 1, H: 1},
						Vertical:   CellSpec{X: 0, Y: 0, W: 1, H: 1},
					},
					{
						Label: "Quit", Event: "quit_game", Modes: []string{"main"},
						Horizontal: CellSpec{X: 0, Y: 1, W: 1, H: 1},
						Vertical:   CellSpec{X: 0, Y: 1, W: 1, H: 1},
					},
				},
			},
			{
				Name: "actions",
				Horizontal: SizingSpec{
					MaxWidth: 0.6, MaxHeight: 0.12,
					GridCols: 5, GridRows: 1,
					Buff: 0.06, BaseFontSize: 20,
					Align: "end",
				},
				Vertical: SizingSpec{
					MaxWidth: 0.9, MaxHeight: 0.22,
					GridCols: 2, GridRows: 2,
					Buff: 0.03, BaseFontSize: 10,
					Align: "end",
				},
				Buttons: []ButtonSpec{
					{
						Label: "Send Turn", Event: "send_turn", Modes: []string{"in_game"},
						Horizontal: CellSpec{X: 0, Y: 0, W: 2, H: 1},
						Vertical:   CellSpec{X: 0, Y: 0, W: 1, H: 1},
					},
					{
						Label: "Menu", Event: "quit_game", Modes: []string{"in_game"},
						Horizontal: CellSpec{X: 4, Y: 0, W: 1, H: 1},
						Vertical:   CellSpec{X: 1, Y: 0, W: 1, H: 1},
					},
					{
						Label: "-", Event: "zoom_out", FontScale: 1.5, Modes: []string{"in_game"},
						Horizontal: CellSpec{X: 2, Y: 0, W: 1, H: 1},
						Vertical:   CellSpec{X: 0, Y: 1, W: 1, H: 1},
					},
					{
						Label: "+", Event: "zoom_in", FontScale: 1.5, Modes: []string{"in_game"},
						Horizontal: CellSpec{X: 3, Y: 0, W: 1, H: 1},
						Vertical:   CellSpec{X: 1, Y: 1, W: 1, H: 1},
					},
				},
			},
		},
	}
}
