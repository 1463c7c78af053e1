package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/uber-go/tally"

	"github.com/njchilds90/gopoly"
)

// server serves gopoly tool calls over HTTP.
type server struct {
	log          logr.Logger
	scope        tally.Scope
	maxBodyBytes int64
	now          func() time.Time
}

func newServer(log logr.Logger, scope tally.Scope, maxBodyBytes int64) *server {
	return &server{log: log, scope: scope, maxBodyBytes: maxBodyBytes, now: time.Now}
}

func (s *server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/tool", s.handleTool)
	mux.HandleFunc("/schema", s.handleSchema)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// POST /tool — handle a tool call
func (s *server) handleTool(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	log := s.log.WithValues("request_id", reqID)
	w.Header().Set("X-Request-Id", reqID)

	defer func() {
		if rec := recover(); rec != nil {
			log.Error(fmt.Errorf("%v", rec), "panic in /tool", "stack", string(debug.Stack()))
			s.scope.Counter("panics").Inc(1)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req gopoly.ToolRequest
	if err := dec.Decode(&req); err != nil {
		s.scope.Counter("bad_requests").Inc(1)
		log.V(1).Info("rejected tool request", "error", err.Error())
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	// Ensure there's no trailing junk.
	if dec.More() {
		s.scope.Counter("bad_requests").Inc(1)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: trailing data"})
		return
	}

	tagged := s.scope.Tagged(map[string]string{"tool": req.Tool})
	start := s.now()
	resp := gopoly.HandleToolCall(req)
	elapsed := s.now().Sub(start)

	tagged.Counter("calls").Inc(1)
	tagged.Timer("latency").Record(elapsed)
	if resp.Error != "" {
		tagged.Counter("errors").Inc(1)
	}
	log.Info("tool call", "tool", req.Tool, "duration", elapsed, "error", resp.Error)
	writeJSON(w, http.StatusOK, resp)
}

// GET /schema — return tool schema for agent registration
func (s *server) handleSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, gopoly.MCPToolSpec())
}

// GET /health — liveness check
func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   s.now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
