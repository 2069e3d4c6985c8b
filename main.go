package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ebiten.SetWindowSize(DefaultScreenWidth, DefaultScreenHeight)
	ebiten.SetWindowTitle("Grid HUD")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
