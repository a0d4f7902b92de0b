// Package server exposes the pathfinder over HTTP and WebSocket.
//
//	GET  /healthz     liveness probe
//	POST /v1/path     one PathRequest in, one PathResponse out
//	GET  /v1/stream   WebSocket; each PathRequest message gets one reply
package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathery/internal/config"
	"github.com/katalvlaran/pathery/pathfinder"
)

// Route paths.
const (
	URIHealth = "/healthz"
	URIPath   = "/v1/path"
	URIStream = "/v1/stream"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 16 << 20
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server routes requests to the pathfinder.
type Server struct {
	router *way.Router
	cfg    config.Config
	log    logrus.FieldLogger
}

// New returns a Server using cfg limits and logging through log.
func New(cfg config.Config, log logrus.FieldLogger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Server{cfg: cfg, log: log}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URIHealth, s.handleHealth)
	s.router.HandleFunc("POST", URIPath, s.handlePath)
	s.router.HandleFunc("GET", URIStream, s.handleStream)
}

// ServeHTTP logs every request and dispatches it through the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.router.ServeHTTP(rec, r)
	s.log.WithFields(logrus.Fields{
		"method":   r.Method,
		"path":     r.URL.Path,
		"status":   rec.status,
		"duration": time.Since(start),
	}).Info("request")
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	body := http.MaxBytesReader(w, r.Body, maxMessageSize)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.fail(w, ErrTooLarge)
			return
		}
		s.fail(w, errors.Join(ErrBadRequest, err))
		return
	}

	resp, err := s.solve(r.Context(), &req)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			s.log.WithError(err).Debug("failed to close websocket connection")
		}
	}()
	conn.SetReadLimit(maxMessageSize)

	for {
		var req PathRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.WithError(err).Warn("websocket read failed")
			}
			return
		}

		var reply any
		resp, err := s.solve(r.Context(), &req)
		if err != nil {
			reply = ErrorResponse{Error: err.Error()}
		} else {
			reply = resp
		}

		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			s.log.WithError(err).Warn("failed to set write deadline")
		}
		if err := conn.WriteJSON(reply); err != nil {
			s.log.WithError(err).Warn("websocket write failed")
			return
		}
	}
}

// solve builds the grid for req and runs the pathfinder under the configured
// timeout.
func (s *Server) solve(ctx context.Context, req *PathRequest) (PathResponse, error) {
	g, err := req.build(s.cfg)
	if err != nil {
		return PathResponse{}, err
	}
	pf, err := pathfinder.New(g, pathfinder.WithLogger(s.log))
	if err != nil {
		return PathResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()
	route, err := pf.Solve(ctx)
	if err != nil {
		return PathResponse{}, err
	}
	return newPathResponse(g, route, req.Render), nil
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	entry := s.log.WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusRecorder captures the status code for the request log. It forwards
// Hijack so the WebSocket upgrade keeps working.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("server: response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return h.Hijack()
}
