package input

import "github.com/gdamore/tcell/v2"

// Machine parses tcell events into semantic Intents. The only state it
// carries is the held-button tracking needed to distinguish press, drag and
// release from tcell's level-triggered mouse reports.
type Machine struct {
	leftHeld bool
}

// NewMachine creates an input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Process parses a terminal event and returns an Intent, or nil when the
// event maps to no action
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return &Intent{Type: IntentPauseToggle}
		case 'q':
			return &Intent{Type: IntentQuit}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	buttons := ev.Buttons()

	// Wheel bits are reported as one-shot presses
	if buttons&tcell.WheelUp != 0 {
		return &Intent{Type: IntentZoomIn, X: x, Y: y}
	}
	if buttons&tcell.WheelDown != 0 {
		return &Intent{Type: IntentZoomOut, X: x, Y: y}
	}

	held := buttons&tcell.Button1 != 0
	switch {
	case held && !m.leftHeld:
		m.leftHeld = true
		return &Intent{Type: IntentPanStart, X: x, Y: y}
	case held && m.leftHeld:
		return &Intent{Type: IntentPanMove, X: x, Y: y}
	case !held && m.leftHeld:
		m.leftHeld = false
		return &Intent{Type: IntentPanEnd, X: x, Y: y}
	}
	return nil
}
