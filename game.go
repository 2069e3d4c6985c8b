package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"grid-hud/geom"
	"grid-hud/hud"
	"grid-hud/script"
)

// errQuit stops the ebiten run loop cleanly when the player quits from
// the main menu.
var errQuit = errors.New("quit")

type Game struct {
	hud    *hud.HUD
	camera Camera

	// Sub-systems
	input *InputSystem
	fonts *FontCache
	hooks *script.Hooks

	screenWidth  int
	screenHeight int

	mode hud.Mode
	turn int
	quit bool
}

func NewGame() *Game {
	g := &Game{
		camera: Camera{X: DefaultCameraX, Y: DefaultCameraY, Zoom: DefaultCameraZoom},
		fonts:  NewFontCache(),
	}
	g.input = NewInputSystem(g)

	h, err := LoadHUDLayout(LayoutFile, g)
	if err != nil {
		log.Println("NewGame: using built-in layout:", err)
		h = DefaultHUD(g)
	}
	g.hud = h
	g.setMode(hud.ModeMain)

	if hooks, err := script.LoadFile(HooksFile); err == nil {
		g.hooks = hooks
	}

	return g
}

func (g *Game) setMode(mode hud.Mode) {
	g.mode = mode
	g.hud.EnableMode(mode)
}

// Notify implements hud.Notifier. Every button activation lands here.
func (g *Game) Notify(ev hud.Event) {
	switch ev {
	case hud.EventStartGame:
		g.turn = 1
		g.setMode(hud.ModeInGame)
	case hud.EventSendTurn:
		g.turn++
	case hud.EventQuitGame:
		// In-game the quit button returns to the menu; from the menu it
		// leaves the program.
		if g.mode == hud.ModeInGame {
			g.setMode(hud.ModeMain)
		} else {
			g.quit = true
		}
	case hud.EventZoomIn:
		g.camera.ZoomBy(ZoomStep)
	case hud.EventZoomOut:
		g.camera.ZoomBy(1 / ZoomStep)
	}

	if g.hooks != nil {
		if _, err := g.hooks.Call("on_event", ev.String()); err != nil {
			log.Println("hook error:", err)
		}
	}
}

func (g *Game) Update() error {
	if g.quit {
		return errQuit
	}
	g.input.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	cw := float64(g.screenWidth) / 2
	ch := float64(g.screenHeight) / 2
	g.drawBoard(screen, cw, ch)

	g.drawHUD(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"Mode: %s  Turn: %d\n"+
			"Camera: (%.1f, %.1f) Zoom: %.2f",
		g.mode, g.turn,
		g.camera.X, g.camera.Y, g.camera.Zoom,
	), 10, 10)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenWidth || outsideHeight != g.screenHeight {
		g.screenWidth = outsideWidth
		g.screenHeight = outsideHeight
		g.hud.Resize(geom.Vec{X: float64(outsideWidth), Y: float64(outsideHeight)})
	}
	return outsideWidth, outsideHeight
}
