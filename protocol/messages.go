package protocol

import (
	"encoding/json"
	"fmt"
)

// RoleKind discriminates the ClientRole union.
type RoleKind int

const (
	RoleViewer RoleKind = iota
	RolePlayer
)

// ClientRole is the handshake payload: either a bare "Viewer" tag or a
// {"Player": {"name": ...}} object.
type ClientRole struct {
	Kind   RoleKind
	Player PlayerInfo // only meaningful when Kind == RolePlayer
}

func (r ClientRole) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case RoleViewer:
		return json.Marshal("Viewer")
	case RolePlayer:
		return json.Marshal(struct {
			Player PlayerInfo `json:"Player"`
		}{Player: r.Player})
	default:
		return nil, fmt.Errorf("protocol: unknown ClientRole kind %d", r.Kind)
	}
}

func (r *ClientRole) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != "Viewer" {
			return fmt.Errorf("protocol: unknown ClientRole tag %q", tag)
		}
		r.Kind = RoleViewer
		return nil
	}

	var wrapper struct {
		Player *PlayerInfo `json:"Player"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return fmt.Errorf("protocol: invalid ClientRole: %w", err)
	}
	if wrapper.Player == nil {
		return fmt.Errorf("protocol: ClientRole object missing Player")
	}
	r.Kind = RolePlayer
	r.Player = *wrapper.Player
	return nil
}

// CommandKind discriminates the ClientCommand union.
type CommandKind int

const (
	CommandNothing CommandKind = iota
	CommandMove
)

// ClientCommand is the per-tick action a player submits: either the bare
// "Nothing" tag or {"Move": "Up"|"Down"|"Left"|"Right"}.
type ClientCommand struct {
	Kind      CommandKind
	Direction Direction // only meaningful when Kind == CommandMove
}

func (c ClientCommand) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CommandNothing:
		return json.Marshal("Nothing")
	case CommandMove:
		return json.Marshal(struct {
			Move Direction `json:"Move"`
		}{Move: c.Direction})
	default:
		return nil, fmt.Errorf("protocol: unknown ClientCommand kind %d", c.Kind)
	}
}

func (c *ClientCommand) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != "Nothing" {
			return fmt.Errorf("protocol: unknown ClientCommand tag %q", tag)
		}
		c.Kind = CommandNothing
		return nil
	}

	var wrapper struct {
		Move *Direction `json:"Move"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return fmt.Errorf("protocol: invalid ClientCommand: %w", err)
	}
	if wrapper.Move == nil {
		return fmt.Errorf("protocol: ClientCommand object missing Move")
	}
	switch *wrapper.Move {
	case Up, Down, Left, Right:
	default:
		return fmt.Errorf("protocol: unknown direction %q", *wrapper.Move)
	}
	c.Kind = CommandMove
	c.Direction = *wrapper.Move
	return nil
}

// ServerResponse acknowledges a handshake or command: either the bare "Ok"
// tag or {"Error": "reason"}.
type ServerResponse struct {
	OK    bool
	Error string // only meaningful when OK == false
}

func OK() ServerResponse              { return ServerResponse{OK: true} }
func ErrorResponse(reason string) ServerResponse { return ServerResponse{OK: false, Error: reason} }

func (r ServerResponse) MarshalJSON() ([]byte, error) {
	if r.OK {
		return json.Marshal("Ok")
	}
	return json.Marshal(struct {
		Error string `json:"Error"`
	}{Error: r.Error})
}

func (r *ServerResponse) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != "Ok" {
			return fmt.Errorf("protocol: unknown ServerResponse tag %q", tag)
		}
		r.OK = true
		r.Error = ""
		return nil
	}

	var wrapper struct {
		Error *string `json:"Error"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return fmt.Errorf("protocol: invalid ServerResponse: %w", err)
	}
	if wrapper.Error == nil {
		return fmt.Errorf("protocol: ServerResponse object missing Error")
	}
	r.OK = false
	r.Error = *wrapper.Error
	return nil
}

// MessageKind discriminates the ClientMessage union.
type MessageKind int

const (
	MessageHandShake MessageKind = iota
	MessageCommand
)

// ClientMessage is the top-level envelope a client sends: either
// {"HandShake": ClientRole} or {"Command": ClientCommand}.
type ClientMessage struct {
	Kind      MessageKind
	HandShake ClientRole
	Command   ClientCommand
}

func (m ClientMessage) MarshalJSON() ([]byte, error) {
	switch m.Kind {
	case MessageHandShake:
		return json.Marshal(struct {
			HandShake ClientRole `json:"HandShake"`
		}{HandShake: m.HandShake})
	case MessageCommand:
		return json.Marshal(struct {
			Command ClientCommand `json:"Command"`
		}{Command: m.Command})
	default:
		return nil, fmt.Errorf("protocol: unknown ClientMessage kind %d", m.Kind)
	}
}

func (m *ClientMessage) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		HandShake *ClientRole    `json:"HandShake"`
		Command   *ClientCommand `json:"Command"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return fmt.Errorf("protocol: invalid ClientMessage: %w", err)
	}
	switch {
	case wrapper.HandShake != nil:
		m.Kind = MessageHandShake
		m.HandShake = *wrapper.HandShake
	case wrapper.Command != nil:
		m.Kind = MessageCommand
		m.Command = *wrapper.Command
	default:
		return fmt.Errorf("protocol: ClientMessage has neither HandShake nor Command")
	}
	return nil
}
