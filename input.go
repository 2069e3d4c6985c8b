package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"grid-hud/geom"
)

// InputSystem translates ebiten mouse and touch input into HUD pointer
// events and board panning. Pointer presses that land on the HUD never
// reach the board, and a pan started on the board never triggers HUD
// buttons on release.
type InputSystem struct {
	game *Game

	// Panning state
	isPanning  bool
	lastMouseX int
	lastMouseY int

	// Single-finger touch drives the same pointer machine as the mouse.
	touchActive bool
	touchID     ebiten.TouchID
	lastTouchX  int
	lastTouchY  int
}

func NewInputSystem(g *Game) *InputSystem {
	return &InputSystem{
		game: g,
	}
}

func (is *InputSystem) Update() {
	is.handleMouse()
	is.handleTouch()
	is.handleWheelZoom()
}

func (is *InputSystem) handleMouse() {
	g := is.game
	mx, my := ebiten.CursorPosition()
	p := geom.Vec{X: float64(mx), Y: float64(my)}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if g.hud.Collides(p) {
			g.hud.HandlePointerStart(p)
		} else {
			is.isPanning = true
			is.lastMouseX, is.lastMouseY = mx, my
		}

	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		if is.isPanning {
			is.isPanning = false
		} else {
			g.hud.HandlePointerEnd(p)
		}

	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && is.isPanning:
		g.camera.Pan(float64(mx-is.lastMouseX), float64(my-is.lastMouseY))
		is.lastMouseX, is.lastMouseY = mx, my

	default:
		// Hover highlight follows the cursor even with no button down.
		g.hud.HandlePointerMove(p)
	}
}

func (is *InputSystem) handleTouch() {
	g := is.game

	if !is.touchActive {
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) == 0 {
			return
		}
		is.touchActive = true
		is.touchID = ids[0]
		x, y := ebiten.TouchPosition(is.touchID)
		is.lastTouchX, is.lastTouchY = x, y
		p := geom.Vec{X: float64(x), Y: float64(y)}
		if g.hud.Collides(p) {
			g.hud.HandlePointerStart(p)
		} else {
			is.isPanning = true
		}
		return
	}

	if inpututil.IsTouchJustReleased(is.touchID) {
		p := geom.Vec{X: float64(is.lastTouchX), Y: float64(is.lastTouchY)}
		if is.isPanning {
			is.isPanning = false
		} else {
			g.hud.HandlePointerEnd(p)
		}
		is.touchActive = false
		return
	}

	x, y := ebiten.TouchPosition(is.touchID)
	if is.isPanning {
		g.camera.Pan(float64(x-is.lastTouchX), float64(y-is.lastTouchY))
	} else {
		g.hud.HandlePointerMove(geom.Vec{X: float64(x), Y: float64(y)})
	}
	is.lastTouchX, is.lastTouchY = x, y
}

func (is *InputSystem) handleWheelZoom() {
	_, dy := ebiten.Wheel()
	if dy == 0 {
		return
	}
	if dy > 0 {
		is.game.camera.ZoomBy(1 + ZoomSpeed)
	} else {
		is.game.camera.ZoomBy(1 / (1 + ZoomSpeed))
	}
}
