package hud

import (
	"math"

	"grid-hud/geom"
)

// Align places a panel within the space left over after sizing.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// PanelSizing is one orientation's complete sizing profile.
type PanelSizing struct {
	MaxWidth     float64  // fraction of available width, 0..1
	MaxHeight    float64  // fraction of available height, 0..1
	Grid         geom.Vec // column and row counts, must be >= 1 each
	Buff         float64  // gutter as a fraction of the panel's shorter side
	BaseFontSize float64  // percent of one grid cell's natural width
	Align        Align

	// AspectRatio forces the panel to exactly width/height. MinAspectRatio
	// is a floor: a panel wider than it passes through untouched, one
	// below it gets its height shrunk until the floor holds. AspectRatio
	// wins when both are set.
	AspectRatio    float64 // 0 = unset
	MinAspectRatio float64 // 0 = unset
}

// orientation pairs a sizing profile with the grid-cell areas of every
// attached button under that profile, parallel to Panel.Buttons.
type orientation struct {
	sizing      PanelSizing
	buttonAreas []geom.Area
}

// Panel is a rectangular HUD region with two alternative grid layouts.
// Each resize picks the horizontal or vertical profile from the current
// viewport aspect ratio and lays the attached buttons into its grid.
type Panel struct {
	horizontal orientation
	vertical   orientation

	Area    geom.Area
	Buttons []*Button
}

func NewPanel(horizontal, vertical PanelSizing) *Panel {
	return &Panel{
		horizontal: orientation{sizing: horizontal},
		vertical:   orientation{sizing: vertical},
	}
}

// Attach adds a button along with its grid-cell area under each
// orientation, both in cell units. Attachment order fixes which cell a
// button occupies for the life of the panel.
func (p *Panel) Attach(b *Button, horizontal, vertical geom.Area) {
	p.Buttons = append(p.Buttons, b)
	p.horizontal.buttonAreas = append(p.horizontal.buttonAreas, horizontal)
	p.vertical.buttonAreas = append(p.vertical.buttonAreas, vertical)
}

// Resize recomputes the panel's pixel area and every attached button's
// rectangle and font size from the available viewport size. A
// non-positive viewport collapses the panel to a zero area; buttons then
// keep their last rectangles.
func (p *Panel) Resize(available geom.Vec) {
	if available.X <= 0 || available.Y <= 0 {
		p.Area = geom.Area{}
		return
	}

	// Ties at exactly square go to the horizontal profile.
	o := &p.vertical
	if available.X/available.Y >= 1 {
		o = &p.horizontal
	}
	sizing := o.sizing

	afterMax := available.MulVec(geom.Vec{X: sizing.MaxWidth, Y: sizing.MaxHeight})
	size := applyAspect(afterMax, sizing)
	p.Area.Size = size

	leftover := available.Sub(size)
	switch sizing.Align {
	case AlignEnd:
		p.Area.Start = leftover
	case AlignCenter:
		p.Area.Start = leftover.Mul(0.5)
	default:
		p.Area.Start = geom.Vec{}
	}

	// One gutter before the first cell, one between each pair and one
	// after the last, on both axes.
	buffer := sizing.Buff * math.Min(size.X, size.Y)
	cellSize := geom.Vec{
		X: (size.X - (sizing.Grid.X+1)*buffer) / sizing.Grid.X,
		Y: (size.Y - (sizing.Grid.Y+1)*buffer) / sizing.Grid.Y,
	}
	fontSize := size.X / sizing.Grid.X * sizing.BaseFontSize / 100

	for i, b := range p.Buttons {
		cell := o.buttonAreas[i]
		b.Area.Size = cell.Size.MulVec(cellSize).Floor()
		b.Area.Start = p.Area.Start.
			Add(cell.Start.MulVec(cellSize)).
			Add(cell.Start.Add(geom.Vec{X: 1, Y: 1}).Mul(buffer)).
			Round()
		b.FontSize = fontSize
	}
}

// applyAspect shapes the max-clamped box to the profile's aspect
// constraint. A box taller than the target ratio keeps its width and
// loses height; a wider one keeps its height and loses width, unless
// the constraint is only a floor, in which case it passes through.
func applyAspect(space geom.Vec, sizing PanelSizing) geom.Vec {
	ratio, floorOnly := sizing.AspectRatio, false
	if ratio == 0 {
		ratio, floorOnly = sizing.MinAspectRatio, true
	}
	if ratio == 0 {
		return space
	}
	if space.Y == 0 {
		return geom.Vec{}
	}
	if space.X/space.Y <= ratio {
		return geom.Vec{X: space.X, Y: space.X / ratio}
	}
	if floorOnly {
		return space
	}
	return geom.Vec{X: space.Y * ratio, Y: space.Y}
}
