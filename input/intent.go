package input

// IntentType identifies the semantic action parsed from a terminal event
type IntentType int

const (
	IntentNone IntentType = iota
	IntentQuit
	IntentPauseToggle
	IntentPanStart
	IntentPanMove
	IntentPanEnd
	IntentZoomIn
	IntentZoomOut
	IntentResize
)

// Intent is a parsed input action. X and Y carry the cursor cell position
// for pan and zoom intents.
type Intent struct {
	Type IntentType
	X, Y int
}
