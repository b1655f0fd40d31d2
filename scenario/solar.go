package scenario

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tTrmc/Orbit-Simulator/parameter"
	"github.com/tTrmc/Orbit-Simulator/physics"
	"github.com/tTrmc/Orbit-Simulator/vmath"
)

const au = parameter.AU

// SolarSystem builds the Sun and the eight planets at their configured
// starting positions on the negative X axis with tangential velocities.
// The Sun is the anchor: a force source that is never integrated.
func SolarSystem() ([]*physics.Body, error) {
	configs := []physics.BodyConfig{
		{
			Name:   "Sun",
			Mass:   1.98892e30,
			Radius: 16,
			Color:  tcell.NewRGBColor(255, 255, 0),
			Anchor: true,
		},
		{
			Name:   "Mercury",
			Pos:    vmath.Vec2{X: -0.39 * au},
			Vel:    vmath.Vec2{Y: 47.87e3},
			Mass:   3.285e23,
			Radius: 4,
			Color:  tcell.NewRGBColor(169, 169, 169),
		},
		{
			Name:   "Venus",
			Pos:    vmath.Vec2{X: -0.723 * au},
			Vel:    vmath.Vec2{Y: 35.02e3},
			Mass:   4.8675e24,
			Radius: 6,
			Color:  tcell.NewRGBColor(205, 200, 149),
		},
		{
			Name:   "Earth",
			Pos:    vmath.Vec2{X: -1 * au},
			Vel:    vmath.Vec2{Y: 29.783e3},
			Mass:   5.97219e24,
			Radius: 6,
			Color:  tcell.NewRGBColor(70, 130, 180),
		},
		{
			Name:   "Mars",
			Pos:    vmath.Vec2{X: -1.524 * au},
			Vel:    vmath.Vec2{Y: 24.077e3},
			Mass:   6.4171e23,
			Radius: 4,
			Color:  tcell.NewRGBColor(188, 39, 50),
		},
		{
			Name:   "Jupiter",
			Pos:    vmath.Vec2{X: -5.203 * au},
			Vel:    vmath.Vec2{Y: 13.07e3},
			Mass:   1.898e27,
			Radius: 12,
			Color:  tcell.NewRGBColor(238, 232, 170),
		},
		{
			Name:   "Saturn",
			Pos:    vmath.Vec2{X: -9.537 * au},
			Vel:    vmath.Vec2{Y: 9.69e3},
			Mass:   5.683e26,
			Radius: 10,
			Color:  tcell.NewRGBColor(210, 180, 140),
		},
		{
			Name:   "Uranus",
			Pos:    vmath.Vec2{X: -19.191 * au},
			Vel:    vmath.Vec2{Y: 6.81e3},
			Mass:   8.681e25,
			Radius: 8,
			Color:  tcell.NewRGBColor(135, 206, 235),
		},
		{
			Name:   "Neptune",
			Pos:    vmath.Vec2{X: -30.069 * au},
			Vel:    vmath.Vec2{Y: 5.43e3},
			Mass:   1.024e26,
			Radius: 8,
			Color:  tcell.NewRGBColor(30, 144, 255),
		},
	}

	bodies := make([]*physics.Body, 0, len(configs))
	for _, cfg := range configs {
		body, err := physics.NewBody(cfg)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, body)
	}
	return bodies, nil
}
