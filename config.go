package main

import "image/color"

const (
	// --- Window & Camera ---
	DefaultScreenWidth  = 1024
	DefaultScreenHeight = 768
	DefaultCameraX      = 300.0
	DefaultCameraY      = 300.0
	DefaultCameraZoom   = 1.0
	ZoomLimitMin        = 0.25
	ZoomLimitMax        = 4.0
	ZoomStep            = 1.25
	ZoomSpeed           = 0.1
	CameraLimitMin      = -200.0

	// --- Board ---
	TileSize  = 100.0
	BoardCols = 12
	BoardRows = 8

	// --- HUD assets ---
	LayoutFile = "hud.yaml"
	HooksFile  = "hooks.star"
	FontFile   = "fonts/Roboto-Regular.ttf"
)

var (
	// --- Colors ---
	ColorBackground     = color.RGBA{30, 30, 35, 255}
	ColorVoid           = color.RGBA{20, 20, 25, 255}
	ColorGrid           = color.RGBA{255, 255, 255, 20}
	ColorOriginCross    = color.RGBA{255, 100, 100, 150}
	ColorPanel          = color.RGBA{40, 40, 48, 210}
	ColorButton         = color.RGBA{60, 60, 70, 230}
	ColorButtonPressed  = color.RGBA{0, 120, 255, 230}
	ColorButtonInactive = color.RGBA{45, 45, 50, 160}
	ColorButtonText     = color.RGBA{230, 230, 230, 255}
)
