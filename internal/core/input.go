package core

// Action is a semantic input, decoupled from the physical key that
// produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // move cursor up
	ActionDown           // move cursor down
	ActionLeft           // move cursor left
	ActionRight          // move cursor right
	ActionReveal         // reveal the cell under the cursor
	ActionFlag           // toggle a flag under the cursor
	ActionConfirm        // confirm a menu selection
	ActionBack           // leave the game for the menu
	ActionRestart        // start a new board
	ActionQuit           // exit the program or session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionReveal:
		return "Reveal"
	case ActionFlag:
		return "Flag"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input received between two ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the screen cell of the last mouse press, valid when
	// HasPointer is set. Reveal and Flag then apply to that cell instead of
	// the keyboard cursor.
	Pointer    Point
	HasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetPointer records a mouse press at (x, y) together with its action.
func (f *InputFrame) SetPointer(x, y int, a Action) {
	f.Pointer = Point{X: x, Y: y}
	f.HasPointer = true
	f.Set(a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether nothing was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Pointer = Point{}
	f.HasPointer = false
}
