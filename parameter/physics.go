package parameter

// Physical constants, SI units throughout

const (
	// G is the gravitational constant. physics.Gravity carries its own copy so
	// tests and alternate scenarios can override it without touching this value.
	G = 6.67430e-11

	// AU is one astronomical unit in meters
	AU = 149597870.7 * 1000

	// Timestep is the simulated seconds advanced per integration step (one day)
	Timestep = 3600.0 * 24

	// TrailCap bounds each body's position history; the oldest point is
	// evicted once the cap is reached
	TrailCap = 1000
)
