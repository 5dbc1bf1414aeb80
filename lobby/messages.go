package lobby

import (
	"github.com/arcflux/dazzle/protocol"
	"github.com/arcflux/dazzle/transport"
)

// acceptedMsg is sent by a freshly dialed connection's reader goroutine,
// asking the engine to register it and hand back a stable connID.
type acceptedMsg struct {
	conn transport.Conn
}

// acceptedReply is the Ask response to acceptedMsg.
type acceptedReply struct {
	connID uint64
}

// mailMsg carries one decoded-later text frame read off a connection.
type mailMsg struct {
	connID uint64
	text   string
}

// disconnectedMsg reports that a connection's read side ended, by error or
// by the remote closing cleanly.
type disconnectedMsg struct {
	connID uint64
}

// tickMsg paces the lifecycle and simulation; sent by the background
// ticker goroutine started in Started.
type tickMsg struct{}

// requeueMsg re-admits a game survivor into the queue without sending any
// reply and without logging the handshake, matching the "not interactive"
// internal handshake mode of §4.6.1.
type requeueMsg struct {
	player protocol.Player
}

// DebugStateRequest is answered via Engine.Ask by the /debug/state HTTP
// handler.
type DebugStateRequest struct{}

// DebugStateResponse reports the lifecycle phase name and, when a game is
// active, its latest Overview.
type DebugStateResponse struct {
	Phase    string            `json:"phase"`
	Overview *protocol.Overview `json:"overview,omitempty"`
}
