package web

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

const writeWait = 5 * time.Second

// session is one websocket connection and the engine it owns. Only the
// goroutine in run touches the engine, so it needs no locking.
type session struct {
	conn    *websocket.Conn
	engine  *sweeper.Engine
	maxSize int
	logger  *log.Logger
}

func newSession(conn *websocket.Conn, readLimit int64, maxSize int, logger *log.Logger) *session {
	if readLimit > 0 {
		conn.SetReadLimit(readLimit)
	}
	return &session{conn: conn, maxSize: maxSize, logger: logger}
}

// run starts the first board and serves client messages until the
// connection closes. Errors in messages are reported on the socket and
// never close it.
func (s *session) run(board boardSpec) {
	defer s.conn.Close()

	s.logger.Info("websocket session started")
	if !s.start(board) {
		return
	}

	for {
		mt, buf, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("read failed", "error", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			if !s.send(newErrorMessage(kindBadRequest, "expected a text message")) {
				break
			}
			continue
		}
		if !s.handle(buf) {
			break
		}
	}

	s.logger.Info("websocket session ended")
}

// handle executes one client message. It returns false once the
// connection can no longer be written to.
func (s *session) handle(buf []byte) bool {
	var msg clientMessage
	if err := json.Unmarshal(buf, &msg); err != nil {
		return s.send(newErrorMessage(kindBadRequest, "malformed message: "+err.Error()))
	}

	switch msg.Type {
	case msgReveal:
		if msg.X == nil || msg.Y == nil {
			return s.send(newErrorMessage(kindBadRequest, "reveal needs x and y"))
		}
		return s.reveal(*msg.X, *msg.Y)
	case msgNew:
		board, err := resolveBoard(msg.Preset, msg.Size, msg.Mines, msg.Seed, "", s.maxSize)
		if err != nil {
			return s.send(newErrorMessage(kindInvalidConfiguration, err.Error()))
		}
		if board.Preset == "" && board.Size == 0 {
			return s.send(newErrorMessage(kindBadRequest, "new needs a preset or a size"))
		}
		return s.start(board)
	default:
		return s.send(newErrorMessage(kindBadRequest, "unknown message type "+msg.Type))
	}
}

// start replaces the engine with a fresh board. A rejected board keeps
// the previous session.
func (s *session) start(board boardSpec) bool {
	var opts []sweeper.Option
	if board.Seed != 0 {
		opts = append(opts, sweeper.WithSeed(board.Seed))
	}
	engine := sweeper.NewEngine(opts...)
	if err := engine.Init(board.Size, board.Mines); err != nil {
		return s.send(engineErrorMessage(err))
	}

	s.engine = engine
	s.logger.Debug("board started", "preset", board.Preset, "size", board.Size, "mines", board.Mines)
	return s.send(newInitMessage(board))
}

func (s *session) reveal(x, y int) bool {
	if s.engine == nil {
		return s.send(newErrorMessage(kindNotInitialized, "no board yet, send a new message first"))
	}

	res, err := s.engine.Reveal(x, y)
	if err != nil {
		return s.send(engineErrorMessage(err))
	}

	s.logger.Debug("reveal", "x", x, "y", y, "moves", s.engine.Moves(), "status", s.engine.Status())
	return s.send(newResultMessage(res))
}

func (s *session) send(v any) bool {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return false
	}
	if err := s.conn.WriteJSON(v); err != nil {
		s.logger.Warn("write failed", "error", err)
		return false
	}
	return true
}

// closeGoingAway tells the client the server is shutting down and closes
// the connection, which ends the read loop.
func (s *session) closeGoingAway() {
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	err := s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		s.logger.Debug("close failed", "error", err)
	}
	s.conn.Close()
}
