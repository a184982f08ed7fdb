// Package overlay resolves the body under the cursor while the
// simulation is paused and exposes its kinematic state for display.
// Everything here is read-only with respect to the world.
package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jakecoffman/cp"

	"github.com/san-kum/gravbox/internal/world"
)

// RayScale stretches the velocity-direction ray for visibility, in
// multiples of the tick duration.
const RayScale = 20.0

// Ray is the velocity-direction indicator from the body origin. From and
// To coincide when the body is at rest.
type Ray struct {
	From cp.Vector
	To   cp.Vector
}

func (r Ray) Zero() bool { return r.From == r.To }

// Info is the uniform debug structure shown for a hovered body. The
// fields are identical for every shape variant; the shape only decides
// the point-in-shape test.
type Info struct {
	Body            *world.Body
	Position        cp.Vector
	Velocity        cp.Vector
	AngularVelocity float64
	Ray             Ray
}

// Pick returns debug info for the first dynamic body under the cursor,
// in insertion order, or false when the cursor hovers empty space.
func Pick(w *world.World, cursor cp.Vector, dt float64) (Info, bool) {
	b := w.BodyAt(cursor)
	if b == nil {
		return Info{}, false
	}
	pos := b.Position()
	vel := b.Velocity()
	return Info{
		Body:            b,
		Position:        pos,
		Velocity:        vel,
		AngularVelocity: b.AngularVelocity(),
		Ray:             Ray{From: pos, To: pos.Add(vel.Mult(RayScale * dt))},
	}, true
}

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// Render formats the info block for the paused view.
func Render(info Info) string {
	title := info.Body.Material().Name + " " + info.Body.Spec().Shape
	if name := info.Body.Name(); name != "" {
		title = name
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", label)) + valueStyle.Render(value) + "\n")
	}
	row("position", fmt.Sprintf("(%.2f, %.2f)", info.Position.X, info.Position.Y))
	row("velocity", fmt.Sprintf("(%.2f, %.2f)", info.Velocity.X, info.Velocity.Y))
	row("angular vel", fmt.Sprintf("%.4f", info.AngularVelocity))
	return b.String()
}
