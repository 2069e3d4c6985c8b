package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawBoard renders the game board: a bounded tile grid with the space
// outside it dimmed, plus an origin marker.
func (g *Game) drawBoard(screen *ebiten.Image, cw, ch float64) {
	boardW := float64(BoardCols) * TileSize
	boardH := float64(BoardRows) * TileSize

	// Vertical lines
	for col := 0; col <= BoardCols; col++ {
		wx := float64(col) * TileSize
		sx, syTop := g.camera.WorldToScreen(wx, 0, cw, ch)
		_, syBottom := g.camera.WorldToScreen(wx, boardH, cw, ch)
		vector.StrokeLine(screen, float32(sx), float32(syTop),
			float32(sx), float32(syBottom), 1, ColorGrid, false)
	}

	// Horizontal lines
	for row := 0; row <= BoardRows; row++ {
		wy := float64(row) * TileSize
		sxLeft, sy := g.camera.WorldToScreen(0, wy, cw, ch)
		sxRight, _ := g.camera.WorldToScreen(boardW, wy, cw, ch)
		vector.StrokeLine(screen, float32(sxLeft), float32(sy),
			float32(sxRight), float32(sy), 1, ColorGrid, false)
	}

	originX, originY := g.camera.WorldToScreen(0, 0, cw, ch)

	// Dim the void above and left of the board
	if originX > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(originX), float32(g.screenHeight), ColorVoid, false)
	}
	if originY > 0 {
		vector.DrawFilledRect(screen, float32(math.Max(0, originX)), 0, float32(g.screenWidth), float32(originY), ColorVoid, false)
	}

	// Origin Marker
	vector.StrokeLine(screen, float32(originX-15), float32(originY), float32(originX+15), float32(originY), 2, ColorOriginCross, false)
	vector.StrokeLine(screen, float32(originX), float32(originY-15), float32(originX), float32(originY+15), 2, ColorOriginCross, false)
}
