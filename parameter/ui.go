package parameter

import "time"

// Frame loop timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 100
)

// Camera and viewport
const (
	// DefaultScale is the initial view scale in cells per meter (20 cells per AU)
	DefaultScale = 20.0 / AU

	// ZoomStep is the multiplicative scale change per wheel tick; zoom-out
	// applies the reciprocal so repeated ticks feel exponential, not linear
	ZoomStep = 1.1

	// ScaleMin and ScaleMax clamp the camera scale at the ZoomAt boundary,
	// keeping the scale strictly positive under extreme zoom-out and bounded
	// under extreme zoom-in
	ScaleMin = 1e-16
	ScaleMax = 1.0

	// CellAspectY compensates for terminal cells being roughly twice as tall
	// as they are wide; world Y is compressed by this factor on screen
	CellAspectY = 0.5
)
