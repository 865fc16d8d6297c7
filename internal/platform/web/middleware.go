package web

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"time"
)

// loggingWriter records the status code. It passes Hijack through so
// websocket upgrades keep working behind the logger.
type loggingWriter struct {
	http.ResponseWriter
	statusCode int
	hijacked   bool
}

func (w *loggingWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *loggingWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijack not supported")
	}
	w.hijacked = true
	return h.Hijack()
}

// logging logs one line per request once it has been handled.
func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &loggingWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		s.logger.Info("handled request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"hijacked", wrapped.hijacked,
			"remote", r.RemoteAddr,
			"duration", time.Since(start),
		)
	})
}
