// Package server wires the HTTP surface: health check, debug state
// snapshot, and the /subscribe WebSocket upgrade that hands connections to
// the lobby engine.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/arcflux/dazzle/actor"
	"github.com/arcflux/dazzle/lobby"
	"github.com/arcflux/dazzle/transport"
)

const debugAskTimeout = 2 * time.Second

// Server owns the engine handle needed to answer /debug/state and to
// register /subscribe connections with the lobby.
type Server struct {
	engine    *actor.Engine
	enginePID *actor.PID
}

// New returns a Server bound to the already-spawned lobby engine.
func New(engine *actor.Engine, enginePID *actor.PID) *Server {
	return &Server{engine: engine, enginePID: enginePID}
}

// ListenAndServe blocks serving /healthz, /debug/state and /subscribe on
// addr.
func (s *Server) ListenAndServe(addr string) error {
	return transport.ListenAndServe(addr, s.onAccept, map[string]http.HandlerFunc{
		"/healthz":     s.handleHealthCheck,
		"/debug/state": s.handleDebugState,
	})
}

func (s *Server) onAccept(conn transport.Conn) {
	lobby.Accept(s.engine, s.enginePID, conn)
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		log.Printf("server: encoding health check response: %v", err)
	}
}

func (s *Server) handleDebugState(w http.ResponseWriter, r *http.Request) {
	reply, err := s.engine.Ask(s.enginePID, lobby.DebugStateRequest{}, debugAskTimeout)
	if err != nil {
		http.Error(w, "engine did not respond in time", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(reply); err != nil {
		log.Printf("server: encoding debug state response: %v", err)
	}
}
