package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestProcessKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"Space toggles pause", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentPauseToggle},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"Escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"Ctrl+C quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), IntentQuit},
		{"Resize", tcell.NewEventResize(120, 40), IntentResize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewMachine().Process(tt.ev)
			if in == nil {
				t.Fatal("Expected an intent, got nil")
			}
			if in.Type != tt.want {
				t.Errorf("Expected intent %v, got %v", tt.want, in.Type)
			}
		})
	}
}

func TestProcessIgnoresUnboundKeys(t *testing.T) {
	for _, r := range []rune{'a', 'x', '1'} {
		ev := tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
		if in := NewMachine().Process(ev); in != nil {
			t.Errorf("Expected no intent for %q, got %v", r, in.Type)
		}
	}
}

func TestProcessWheelZoom(t *testing.T) {
	m := NewMachine()

	in := m.Process(tcell.NewEventMouse(42, 17, tcell.WheelUp, tcell.ModNone))
	if in == nil || in.Type != IntentZoomIn {
		t.Fatalf("Expected zoom-in intent, got %v", in)
	}
	if in.X != 42 || in.Y != 17 {
		t.Errorf("Expected cursor (42, 17), got (%d, %d)", in.X, in.Y)
	}

	in = m.Process(tcell.NewEventMouse(5, 9, tcell.WheelDown, tcell.ModNone))
	if in == nil || in.Type != IntentZoomOut {
		t.Fatalf("Expected zoom-out intent, got %v", in)
	}
}

func TestProcessDragSequence(t *testing.T) {
	m := NewMachine()

	steps := []struct {
		name string
		ev   *tcell.EventMouse
		want IntentType
	}{
		{"Press starts pan", tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone), IntentPanStart},
		{"Held motion pans", tcell.NewEventMouse(14, 12, tcell.Button1, tcell.ModNone), IntentPanMove},
		{"More motion pans", tcell.NewEventMouse(20, 15, tcell.Button1, tcell.ModNone), IntentPanMove},
		{"Release ends pan", tcell.NewEventMouse(20, 15, tcell.ButtonNone, tcell.ModNone), IntentPanEnd},
	}

	for _, step := range steps {
		in := m.Process(step.ev)
		if in == nil {
			t.Fatalf("%s: expected an intent, got nil", step.name)
		}
		if in.Type != step.want {
			t.Errorf("%s: expected %v, got %v", step.name, step.want, in.Type)
		}
	}

	// Motion with no button held and no drag in progress maps to nothing
	if in := m.Process(tcell.NewEventMouse(30, 30, tcell.ButtonNone, tcell.ModNone)); in != nil {
		t.Errorf("Expected no intent for idle motion, got %v", in.Type)
	}
}
