// Package web serves sweeper sessions to browser front ends over
// websockets. Every connection owns one engine.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/schema"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-sweeper/internal/config"
)

const shutdownTimeout = 10 * time.Second

// Server is the websocket front door.
type Server struct {
	config        config.WebConfig
	defaultPreset string
	logger        *log.Logger

	cors     *cors.Cors
	decoder  *schema.Decoder
	upgrader websocket.Upgrader
	handler  http.Handler
}

// NewServer creates a server from the web section of cfg.
func NewServer(cfg config.SweeperConfig, logger *log.Logger) *Server {
	s := &Server{
		config:        cfg.Web,
		defaultPreset: cfg.DefaultPreset,
		logger:        logger,
		decoder:       schema.NewDecoder(),
	}
	s.decoder.IgnoreUnknownKeys(true)

	s.cors = cors.New(cors.Options{
		AllowedOrigins: cfg.Web.AllowedOrigins,
		AllowedMethods: []string{http.MethodHead, http.MethodGet},
	})
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /presets", s.handlePresets)
	mux.HandleFunc("GET /ws", s.handleConnect)

	s.handler = s.logging(s.cors.Handler(mux))
	return s
}

// Handler returns the HTTP handler with CORS and request logging applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.config.Address
}

// ListenAndServe serves until ctx is cancelled, then shuts down
// gracefully. Open websocket connections are closed with the context.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	s.logger.Info("starting web server", "address", s.config.Address)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("web: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		s.logger.Info("shutting down web server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// checkOrigin accepts requests without an Origin header (non-browser
// clients) and otherwise defers to the CORS policy.
func (s *Server) checkOrigin(r *http.Request) bool {
	if r.Header.Get("Origin") == "" {
		return true
	}
	return s.cors.OriginAllowed(r)
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(config.Presets()); err != nil {
		s.logger.Error("cannot write presets", "error", err)
	}
}

func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	var params connectParams
	if err := s.decoder.Decode(&params, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	board, err := params.board(s.defaultPreset, s.config.MaxSize)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		s.logger.Warn("upgrade failed", "error", err)
		return
	}

	sess := newSession(conn, s.config.ReadLimit, s.config.MaxSize, s.logger.With("remote", r.RemoteAddr))
	stop := context.AfterFunc(r.Context(), sess.closeGoingAway)
	defer stop()

	sess.run(board)
}
