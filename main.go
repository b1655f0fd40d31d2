package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tTrmc/Orbit-Simulator/audio"
	"github.com/tTrmc/Orbit-Simulator/camera"
	"github.com/tTrmc/Orbit-Simulator/engine"
	"github.com/tTrmc/Orbit-Simulator/input"
	"github.com/tTrmc/Orbit-Simulator/parameter"
	"github.com/tTrmc/Orbit-Simulator/render"
	"github.com/tTrmc/Orbit-Simulator/scenario"
	"github.com/tTrmc/Orbit-Simulator/vmath"
)

// App wires the simulation core to the terminal: input events mutate the
// camera and pause state, the frame ticker drives integration and rendering
type App struct {
	screen   tcell.Screen
	sim      *engine.Simulation
	machine  *input.Machine
	renderer *render.Renderer
	cue      *audio.Cue
}

func newApp() (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	bodies, err := scenario.SolarSystem()
	if err != nil {
		screen.Fini()
		return nil, err
	}

	width, height := screen.Size()
	cam := camera.New(width, height, parameter.DefaultScale)

	cue, err := audio.NewCue()
	if err != nil {
		// Non-fatal, the simulation can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	return &App{
		screen:   screen,
		sim:      engine.NewSimulation(bodies, cam),
		machine:  input.NewMachine(),
		renderer: render.NewRenderer(screen),
		cue:      cue,
	}, nil
}

// handleIntent applies one parsed input action; returns false to quit
func (a *App) handleIntent(in *input.Intent) bool {
	if in == nil {
		return true
	}

	cam := a.sim.Camera()
	cursor := vmath.Vec2{X: float64(in.X), Y: float64(in.Y)}

	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentPauseToggle:
		if a.sim.TogglePause() {
			a.cue.Pause()
		} else {
			a.cue.Resume()
		}
	case input.IntentPanStart:
		cam.BeginDrag(cursor)
	case input.IntentPanMove:
		cam.UpdateDrag(cursor)
	case input.IntentPanEnd:
		cam.EndDrag()
	case input.IntentZoomIn:
		cam.ZoomAt(cursor, parameter.ZoomStep)
	case input.IntentZoomOut:
		cam.ZoomAt(cursor, 1/parameter.ZoomStep)
	case input.IntentResize:
		a.screen.Sync()
		cam.Resize(a.screen.Size())
	}
	return true
}

func (a *App) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, parameter.EventQueueSize)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			if !a.handleIntent(a.machine.Process(ev)) {
				return
			}
		case <-ticker.C:
			a.sim.Tick()
			a.renderer.Draw(a.sim)
		}
	}
}

func (a *App) cleanup() {
	a.cue.Close()
	a.screen.Fini()
}

func main() {
	app, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}
