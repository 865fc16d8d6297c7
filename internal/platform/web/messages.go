package web

import (
	"errors"

	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

// Client message types.
const (
	msgReveal = "reveal"
	msgNew    = "new"
)

// Server message types.
const (
	msgInit       = "init"
	msgMineHit    = "mine_hit"
	msgSafeReveal = "safe_reveal"
	msgError      = "error"
)

// Error kinds sent in error messages.
const (
	kindBadRequest           = "bad_request"
	kindOutOfBounds          = "out_of_bounds"
	kindInvalidConfiguration = "invalid_configuration"
	kindSessionOver          = "session_over"
	kindNotInitialized       = "not_initialized"
)

// clientMessage is any message a client sends. X and Y are pointers so a
// reveal without coordinates can be told apart from a reveal of (0,0).
type clientMessage struct {
	Type   string `json:"type"`
	X      *int   `json:"x,omitempty"`
	Y      *int   `json:"y,omitempty"`
	Preset string `json:"preset,omitempty"`
	Size   int    `json:"size,omitempty"`
	Mines  int    `json:"mines,omitempty"`
	Seed   uint64 `json:"seed,omitempty"`
}

type initMessage struct {
	Type   string `json:"type"`
	Preset string `json:"preset,omitempty"`
	Size   int    `json:"size"`
	Mines  int    `json:"mines"`
}

type mineHitMessage struct {
	Type  string               `json:"type"`
	X     int                  `json:"x"`
	Y     int                  `json:"y"`
	Mines []sweeper.Coordinate `json:"mines"`
}

type safeRevealMessage struct {
	Type        string                 `json:"type"`
	X           int                    `json:"x"`
	Y           int                    `json:"y"`
	MinesAround int                    `json:"mines_around"`
	Expanded    []sweeper.RevealedCell `json:"expanded"`
	UserWins    bool                   `json:"user_wins"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func newInitMessage(board boardSpec) initMessage {
	return initMessage{Type: msgInit, Preset: board.Preset, Size: board.Size, Mines: board.Mines}
}

// newResultMessage converts an engine result into its wire form.
func newResultMessage(res sweeper.SweepResult) any {
	switch r := res.(type) {
	case sweeper.MineHit:
		return mineHitMessage{Type: msgMineHit, X: r.Cell.X, Y: r.Cell.Y, Mines: r.Mines}
	case sweeper.SafeReveal:
		expanded := r.Expanded
		if expanded == nil {
			expanded = []sweeper.RevealedCell{}
		}
		return safeRevealMessage{
			Type:        msgSafeReveal,
			X:           r.Cell.X,
			Y:           r.Cell.Y,
			MinesAround: r.MinesAround,
			Expanded:    expanded,
			UserWins:    r.UserWins,
		}
	}
	return newErrorMessage(kindBadRequest, "unknown result")
}

func newErrorMessage(kind, message string) errorMessage {
	return errorMessage{Type: msgError, Kind: kind, Message: message}
}

// engineErrorMessage maps engine errors onto error kinds.
func engineErrorMessage(err error) errorMessage {
	kind := kindBadRequest
	switch {
	case errors.Is(err, sweeper.ErrOutOfBounds):
		kind = kindOutOfBounds
	case errors.Is(err, sweeper.ErrInvalidConfiguration):
		kind = kindInvalidConfiguration
	case errors.Is(err, sweeper.ErrSessionOver):
		kind = kindSessionOver
	case errors.Is(err, sweeper.ErrNotInitialized):
		kind = kindNotInitialized
	}
	return newErrorMessage(kind, err.Error())
}
