// Package server exposes a row engine over HTTP.
//
// The server is a host like any other: it owns the engine, serializes the
// press/move/release events it receives, and reports state as JSON. It is
// meant for scripting and for driving the engine from a browser front end.
//
//	GET    /row                current snapshot
//	GET    /row/dot            chain as Graphviz DOT
//	POST   /items              add an item          {"label", "width", "id"?}
//	DELETE /items/{id}         destroy an item
//	POST   /items/{id}/detach  move a row item to the pool
//	POST   /events/press       {"target", "button"?, "x", "y"}
//	POST   /events/move        {"x", "y"}
//	POST   /events/release
//	POST   /events/cancel
//
// Errors are returned as {"code", "message"} with a status derived from the
// error code.
package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/stackrow/pkg/errors"
	"github.com/matzehuels/stackrow/pkg/export"
	"github.com/matzehuels/stackrow/pkg/row"
)

// maxBodyBytes bounds request bodies; every payload is a handful of fields.
const maxBodyBytes = 1 << 16

// Server serves a single engine. All engine access goes through mu because
// net/http handles requests concurrently.
type Server struct {
	mu     sync.Mutex
	engine *row.Engine
	logger *log.Logger
	router chi.Router
}

// New creates a server for engine.
func New(engine *row.Engine, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{engine: engine, logger: logger}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/row", func(r chi.Router) {
		r.Get("/", s.handleSnapshot)
		r.Get("/dot", s.handleDOT)
	})
	r.Route("/items", func(r chi.Router) {
		r.Post("/", s.handleAddItem)
		r.Delete("/{id}", s.handleRemoveItem)
		r.Post("/{id}/detach", s.handleDetach)
	})
	r.Route("/events", func(r chi.Router) {
		r.Post("/press", s.handlePress)
		r.Post("/move", s.handleMove)
		r.Post("/release", s.handleRelease)
		r.Post("/cancel", s.handleCancel)
	})
	return r
}

// =============================================================================
// Handlers
// =============================================================================

type pressRequest struct {
	Target string `json:"target"`
	Button string `json:"button"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

type moveRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type pressResponse struct {
	Started bool         `json:"started"`
	State   row.Snapshot `json:"state"`
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.engine.Snapshot()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	dot := export.ToDOT(s.engine, export.Options{Detailed: r.URL.Query().Get("detailed") == "true"})
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/vnd.graphviz")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(dot))
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req row.ItemConfig
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	it, err := s.engine.AddItem(req)
	var state row.ItemState
	if err == nil {
		state = it.State()
	}
	s.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, state)
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	err := s.engine.Remove(id)
	s.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDetach(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.engine.Locate(id)
	if it == nil {
		writeError(w, errors.New(errors.ErrCodeNotFound, "item %q not found", id))
		return
	}
	if s.engine.Dragging() == it {
		writeError(w, errors.New(errors.ErrCodeSessionActive, "item %q is being dragged", id))
		return
	}
	if err := s.engine.Detach(it); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.Snapshot())
}

func (s *Server) handlePress(w http.ResponseWriter, r *http.Request) {
	var req pressRequest
	if !decode(w, r, &req) {
		return
	}
	button, err := row.ParseButton(req.Button)
	if err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	started := s.engine.Press(req.Target, button, req.X, req.Y)
	snap := s.engine.Snapshot()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, pressResponse{Started: started, State: snap})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	s.engine.Move(req.X, req.Y)
	snap := s.engine.Snapshot()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleRelease(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.engine.Release()
	snap := s.engine.Snapshot()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.engine.Cancel()
	snap := s.engine.Snapshot()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, snap)
}

// =============================================================================
// Helpers
// =============================================================================

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path,
			"status", ww.Status(), "id", middleware.GetReqID(r.Context()))
	})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return false
	}
	return true
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), errorResponse{Code: code, Message: errors.UserMessage(err)})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidLabel, errors.ErrCodeInvalidWidth:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeDuplicateID, errors.ErrCodeNotInRow, errors.ErrCodeSessionActive, errors.ErrCodeNotNeighbors:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
