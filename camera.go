package main

// Camera controls the viewport onto the game board
type Camera struct {
	X, Y float64 // World position of the center of the screen
	Zoom float64
}

func (c *Camera) WorldToScreen(wx, wy, cw, ch float64) (float64, float64) {
	sx := (wx-c.X)*c.Zoom + cw
	sy := (wy-c.Y)*c.Zoom + ch
	return sx, sy
}

func (c *Camera) ScreenToWorld(sx, sy, cw, ch float64) (float64, float64) {
	wx := (sx-cw)/c.Zoom + c.X
	wy := (sy-ch)/c.Zoom + c.Y
	return wx, wy
}

// ZoomBy scales the zoom level by factor, clamped to the configured limits.
func (c *Camera) ZoomBy(factor float64) {
	newZoom := c.Zoom * factor
	if newZoom < ZoomLimitMin || newZoom > ZoomLimitMax {
		return
	}
	c.Zoom = newZoom
}

// Pan moves the camera by a screen-space delta, clamped so the view
// cannot drift too far into the space above and left of the board.
func (c *Camera) Pan(dx, dy float64) {
	c.X -= dx / c.Zoom
	c.Y -= dy / c.Zoom

	if c.X < CameraLimitMin {
		c.X = CameraLimitMin
	}
	if c.Y < CameraLimitMin {
		c.Y = CameraLimitMin
	}
}
