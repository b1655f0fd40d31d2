package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/tTrmc/Orbit-Simulator/camera"
	"github.com/tTrmc/Orbit-Simulator/engine"
	"github.com/tTrmc/Orbit-Simulator/parameter"
	"github.com/tTrmc/Orbit-Simulator/physics"
	"github.com/tTrmc/Orbit-Simulator/vmath"
)

var (
	textStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)

	helpLines = []string{
		"Controls:",
		"Left Click + Drag - Pan",
		"Mouse Wheel - Zoom",
		"Space - Pause/Resume",
		"Esc / q - Quit",
	}
)

// Renderer draws the simulation onto a tcell screen: trails first, then
// bodies, then text overlays. It reads simulation state and writes cells; it
// mutates nothing in the core.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer over the given screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame
func (r *Renderer) Draw(sim *engine.Simulation) {
	r.screen.Clear()

	cam := sim.Camera()
	for _, body := range sim.Bodies() {
		r.drawTrail(body, cam)
	}
	for _, body := range sim.Bodies() {
		r.drawBody(body, cam)
	}

	r.drawHelp()
	r.drawStatus(sim)

	r.screen.Show()
}

// drawTrail renders the body's position history as a stepped polyline of dim
// cells
func (r *Renderer) drawTrail(body *physics.Body, cam *camera.Camera) {
	points := body.Trail.Points()
	if len(points) < 2 {
		return
	}

	style := tcell.StyleDefault.Foreground(body.Color).Dim(true)
	prev := cam.WorldToScreen(points[0])
	for _, p := range points[1:] {
		cur := cam.WorldToScreen(p)
		r.plotLine(prev, cur, style)
		prev = cur
	}
}

// plotLine steps from a to b in screen space, lighting one cell per step
func (r *Renderer) plotLine(a, b vmath.Vec2, style tcell.Style) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		r.screen.SetContent(int(a.X), int(a.Y), '·', nil, style)
		return
	}

	// Skip segments that span a large fraction of typical screens; they are
	// off-viewport jumps at extreme zoom and would waste the frame budget.
	if steps > 4096 {
		return
	}

	for i := 0; i <= steps; i++ {
		progress := float64(i) / float64(steps)
		x := int(a.X + dx*progress)
		y := int(a.Y + dy*progress)
		r.screen.SetContent(x, y, '·', nil, style)
	}
}

// drawBody renders the body as a filled disc plus its distance label
func (r *Renderer) drawBody(body *physics.Body, cam *camera.Camera) {
	center := cam.WorldToScreen(body.Pos)
	cx, cy := int(center.X), int(center.Y)

	radius := dynamicRadius(body.Radius, cam.Scale())
	ry := int(math.Max(1, float64(radius)*parameter.CellAspectY))
	style := tcell.StyleDefault.Foreground(body.Color)

	for oy := -ry; oy <= ry; oy++ {
		for ox := -radius; ox <= radius; ox++ {
			fx := float64(ox) / float64(radius)
			fy := float64(oy) / float64(ry)
			if fx*fx+fy*fy <= 1 {
				r.screen.SetContent(cx+ox, cy+oy, '█', nil, style)
			}
		}
	}

	if !body.Anchor {
		label := fmt.Sprintf("%s: %s km", body.Name, formatThousands(body.DistanceToAnchor/1000))
		r.drawText(cx+radius+2, cy, label, textStyle)
	}
}

// dynamicRadius shrinks a body's display radius as the view zooms out so
// discs do not swallow their orbits, mirroring log2 radius scaling of the
// zoom level against the default scale. Result stays in [1, base].
func dynamicRadius(base int, scale float64) int {
	radius := int(float64(base) * math.Log2(scale/parameter.DefaultScale+1))
	if radius > base {
		radius = base
	}
	if radius < 1 {
		radius = 1
	}
	return radius
}

func (r *Renderer) drawHelp() {
	for i, line := range helpLines {
		r.drawText(1, 1+i, line, textStyle)
	}
}

func (r *Renderer) drawStatus(sim *engine.Simulation) {
	_, height := r.screen.Size()

	status := "Running"
	if sim.Paused() {
		status = "Paused"
	}

	kmPerCell := 1 / sim.Camera().Scale() / 1000
	lines := []string{
		fmt.Sprintf("Scale: 1 cell = %s km", formatThousands(kmPerCell)),
		fmt.Sprintf("Status: %s", status),
		fmt.Sprintf("Elapsed: %.0f days", sim.ElapsedDays()),
	}
	for i, line := range lines {
		r.drawText(1, height-len(lines)-1+i, line, textStyle)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// formatThousands renders v with comma-grouped integer digits and one
// decimal, e.g. 149,597,870.7
func formatThousands(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	dot := len(s) - 2
	intPart, frac := s[:dot], s[dot:]

	neg := false
	if len(intPart) > 0 && intPart[0] == '-' {
		neg = true
		intPart = intPart[1:]
	}

	var out []byte
	for i, ch := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, ch)
	}
	if neg {
		out = append([]byte{'-'}, out...)
	}
	return string(out) + frac
}
