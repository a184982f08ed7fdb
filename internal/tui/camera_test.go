package tui

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestCameraCenterProjectsToCanvasCenter(t *testing.T) {
	cam := NewCamera()
	x, y := cam.ToDots(cp.Vector{}, 40, 20)
	if x != 40 || y != 40 {
		t.Errorf("world origin should land on canvas center (40,40), got (%d,%d)", x, y)
	}
}

func TestCameraYAxisFlips(t *testing.T) {
	cam := NewCamera()
	_, yUp := cam.ToDots(cp.Vector{Y: 5}, 40, 20)
	_, yDown := cam.ToDots(cp.Vector{Y: -5}, 40, 20)
	if yUp >= yDown {
		t.Errorf("world up must be screen up: y=+5 -> %d, y=-5 -> %d", yUp, yDown)
	}
}

func TestCameraCellRoundTrip(t *testing.T) {
	cam := NewCamera()
	cam.Pan(1.5, -2)
	cam.ZoomIn()

	const cw, ch = 60, 24
	for _, cell := range [][2]int{{0, 0}, {30, 12}, {59, 23}} {
		p := cam.CellToWorld(cell[0], cell[1], cw, ch)
		x, y := cam.ToDots(p, cw, ch)
		// Back-projection must land inside the same cell.
		if x/2 != cell[0] || y/4 != cell[1] {
			t.Errorf("cell (%d,%d): round trip landed in cell (%d,%d)", cell[0], cell[1], x/2, y/4)
		}
	}
}

func TestCameraZoomClamps(t *testing.T) {
	cam := NewCamera()
	for i := 0; i < 100; i++ {
		cam.ZoomIn()
	}
	if cam.Scale > maxScale {
		t.Errorf("scale %g exceeds max %g", cam.Scale, maxScale)
	}
	for i := 0; i < 200; i++ {
		cam.ZoomOut()
	}
	if cam.Scale < minScale {
		t.Errorf("scale %g below min %g", cam.Scale, minScale)
	}
}

func TestCameraReset(t *testing.T) {
	cam := NewCamera()
	cam.Pan(3, 4)
	cam.ZoomIn()
	cam.Reset()
	if cam.Center != (cp.Vector{}) || math.Abs(cam.Scale-defaultScale) > 1e-12 {
		t.Errorf("reset left camera at %+v scale %g", cam.Center, cam.Scale)
	}
}
