package sweeper

// Status is the lifecycle state of a session.
type Status int

const (
	StatusNotStarted Status = iota // Init has not been called
	StatusInProgress               // accepting reveals
	StatusWon                      // every safe cell revealed
	StatusLost                     // a mine was revealed
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not started"
	case StatusInProgress:
		return "in progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further reveals are accepted.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}
