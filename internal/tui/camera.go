package tui

import "github.com/jakecoffman/cp"

const (
	defaultScale = 3.0 // canvas dots per world unit
	minScale     = 0.25
	maxScale     = 24.0
	panStep      = 2.0 // world units per key press
	zoomFactor   = 1.25
)

// Camera maps world space onto the canvas dot grid. World y points up,
// dot y points down.
type Camera struct {
	Center cp.Vector
	Scale  float64
}

func NewCamera() Camera {
	return Camera{Scale: defaultScale}
}

// ToDots projects a world point into dot coordinates on a canvas of the
// given cell size.
func (c Camera) ToDots(p cp.Vector, cellsW, cellsH int) (int, int) {
	x := (p.X-c.Center.X)*c.Scale + float64(cellsW)
	y := float64(cellsH*2) - (p.Y-c.Center.Y)*c.Scale
	return int(x + 0.5), int(y + 0.5)
}

// CellToWorld inverts the projection for a terminal cell, as reported by
// mouse events, using the cell's center dot.
func (c Camera) CellToWorld(col, row, cellsW, cellsH int) cp.Vector {
	x := float64(col*2 + 1)
	y := float64(row*4 + 2)
	return cp.Vector{
		X: (x-float64(cellsW))/c.Scale + c.Center.X,
		Y: (float64(cellsH*2)-y)/c.Scale + c.Center.Y,
	}
}

func (c *Camera) Pan(dx, dy float64) {
	c.Center.X += dx * panStep
	c.Center.Y += dy * panStep
}

func (c *Camera) ZoomIn() {
	c.Scale *= zoomFactor
	if c.Scale > maxScale {
		c.Scale = maxScale
	}
}

func (c *Camera) ZoomOut() {
	c.Scale /= zoomFactor
	if c.Scale < minScale {
		c.Scale = minScale
	}
}

func (c *Camera) Reset() {
	c.Center = cp.Vector{}
	c.Scale = defaultScale
}
