package geom

import "math"

// Vec is an immutable 2D pair. Depending on context it holds a pixel
// coordinate, a fraction of the viewport, or a grid cell count; callers
// keep track of which space a value lives in.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns the vector scaled uniformly by s.
func (v Vec) Mul(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// MulVec returns the component-wise product of two vectors.
func (v Vec) MulVec(o Vec) Vec {
	return Vec{X: v.X * o.X, Y: v.Y * o.Y}
}

// Floor rounds both components down to whole numbers.
func (v Vec) Floor() Vec {
	return Vec{X: math.Floor(v.X), Y: math.Floor(v.Y)}
}

// Round rounds both components to the nearest whole number.
func (v Vec) Round() Vec {
	return Vec{X: math.Round(v.X), Y: math.Round(v.Y)}
}

// Area is an axis-aligned rectangle in whatever coordinate space it was
// produced in. A zero Size is a valid degenerate (hidden) state.
type Area struct {
	Start, Size Vec
}

// Contains reports whether p lies within the closed rectangle
// [Start, Start+Size] on both axes. Points exactly on an edge count.
func (a Area) Contains(p Vec) bool {
	end := a.Start.Add(a.Size)
	return p.X >= a.Start.X && p.X <= end.X &&
		p.Y >= a.Start.Y && p.Y <= end.Y
}
