package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/jakecoffman/cp"

	"github.com/san-kum/gravbox/internal/overlay"
	"github.com/san-kum/gravbox/internal/world"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const panelRows = 8

func (m *Model) canvasSize() (int, int) {
	cw := m.width
	ch := m.height - panelRows
	if cw < 40 {
		cw = 40
	}
	if ch < 10 {
		ch = 10
	}
	return cw, ch
}

func (m *Model) View() string {
	if m.err != nil {
		return errStyle.Render("simulation aborted: "+m.err.Error()) + "\n"
	}

	cw, ch := m.canvasSize()
	canvas := NewCanvas(cw, ch)

	if m.showGrid {
		m.drawGrid(canvas, cw, ch)
	}
	m.drawBounds(canvas, cw, ch)

	w := m.ctrl.World()
	for _, b := range w.Bodies() {
		m.drawBody(canvas, b, cw, ch)
	}
	for _, a := range w.Attractors() {
		x, y := m.cam.ToDots(a.Position(), cw, ch)
		canvas.Cross(x, y, 2)
	}

	var info overlay.Info
	var hovered bool
	if m.ctrl.Paused() && m.hasMouse {
		info, hovered = overlay.Pick(w, m.cursorWorld(), m.ctrl.Dt())
		if hovered && !info.Ray.Zero() {
			x0, y0 := m.cam.ToDots(info.Ray.From, cw, ch)
			x1, y1 := m.cam.ToDots(info.Ray.To, cw, ch)
			canvas.Line(x0, y0, x1, y1)
			canvas.Circle(x1, y1, 1)
		}
	}

	var b strings.Builder
	b.WriteString(canvas.String())
	b.WriteString(m.statusLine())
	b.WriteByte('\n')

	switch {
	case m.showHelp:
		b.WriteString(m.helpPanel())
	case m.ctrl.Paused():
		b.WriteString(m.pausedPanel(info, hovered))
	default:
		b.WriteString(dimStyle.Render("space pause   b body   a attractor   click spawn   ? help"))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *Model) drawBody(c *Canvas, b *world.Body, cw, ch int) {
	spec := b.Spec()
	pos := b.Position()
	x, y := m.cam.ToDots(pos, cw, ch)

	switch spec.Shape {
	case "circle":
		r := int(spec.Radius*m.cam.Scale + 0.5)
		c.Circle(x, y, r)
		if b.IsDynamic() && r > 1 {
			// orientation tick from center to rim
			ex, ey := m.cam.ToDots(pos.Add(cp.ForAngle(b.Angle()).Mult(spec.Radius)), cw, ch)
			c.Line(x, y, ex, ey)
		}
	case "box":
		hw, hh := spec.Width/2, spec.Height/2
		rot := cp.ForAngle(b.Angle())
		corners := [4]cp.Vector{
			{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh},
		}
		var px [4]int
		var py [4]int
		for i, corner := range corners {
			px[i], py[i] = m.cam.ToDots(pos.Add(corner.Rotate(rot)), cw, ch)
		}
		for i := 0; i < 4; i++ {
			j := (i + 1) % 4
			c.Line(px[i], py[i], px[j], py[j])
		}
	}
}

func (m *Model) drawBounds(c *Canvas, cw, ch int) {
	bounds := m.ctrl.World().Bounds()
	x0, y0 := m.cam.ToDots(cp.Vector{X: bounds.MinX, Y: bounds.MaxY}, cw, ch)
	x1, y1 := m.cam.ToDots(cp.Vector{X: bounds.MaxX, Y: bounds.MinY}, cw, ch)
	c.Line(x0, y0, x1, y0)
	c.Line(x1, y0, x1, y1)
	c.Line(x1, y1, x0, y1)
	c.Line(x0, y1, x0, y0)
}

func (m *Model) drawGrid(c *Canvas, cw, ch int) {
	// one dot per world unit
	bounds := m.ctrl.World().Bounds()
	for gx := math.Ceil(bounds.MinX); gx <= bounds.MaxX; gx++ {
		for gy := math.Ceil(bounds.MinY); gy <= bounds.MaxY; gy++ {
			x, y := m.cam.ToDots(cp.Vector{X: gx, Y: gy}, cw, ch)
			c.Set(x, y)
		}
	}
}

func (m *Model) statusLine() string {
	w := m.ctrl.World()
	stats := m.ctrl.Stats()
	mode := statusStyle.Render(m.ctrl.Mode().String())
	if m.ctrl.Paused() {
		mode = pausedStyle.Render(m.ctrl.Mode().String())
	}
	return fmt.Sprintf("%s  %s  %s",
		statusStyle.Render(m.scene),
		mode,
		dimStyle.Render(fmt.Sprintf("ticks %d  bodies %d  attractors %d  zoom %.2g",
			stats.Ticks, len(w.Bodies()), len(w.Attractors()), m.cam.Scale)))
}

func (m *Model) pausedPanel(info overlay.Info, hovered bool) string {
	var b strings.Builder
	if hovered {
		b.WriteString(overlay.Render(info))
	} else {
		b.WriteString(dimStyle.Render("hover a body for details   u step one tick") + "\n")
	}
	stats := m.ctrl.Stats()
	if history := stats.History(); len(history) >= 2 {
		plot := asciigraph.Plot(history,
			asciigraph.Height(3),
			asciigraph.Width(min(m.width-10, 60)),
			asciigraph.Caption(fmt.Sprintf("step ms (max %.2f)", float64(stats.Max.Microseconds())/1000.0)))
		b.WriteString(dimStyle.Render(plot))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *Model) helpPanel() string {
	lines := []string{
		"space/p  pause and resume",
		"b        spawn body at cursor",
		"a        spawn attractor at cursor",
		"click    spawn body",
		"u        step one tick while paused",
		"arrows   pan   +/- zoom   r reset   g grid",
		"q        quit",
	}
	return dimStyle.Render(strings.Join(lines, "\n")) + "\n"
}
