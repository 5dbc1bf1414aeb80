// Package transport exposes WebSocket connections to the rest of the
// engine behind a small interface, so the lobby can be driven by a fake
// Conn in tests instead of a real socket.
package transport

import (
	"io"
	"net"

	"golang.org/x/net/websocket"
)

// Conn is the subset of *websocket.Conn the lobby depends on.
type Conn interface {
	io.Closer
	ReadMessage() (string, error)
	WriteMessage(text string) error
	RemoteAddr() net.Addr
}

// wsConn adapts *websocket.Conn to Conn, using the Codec's text framing
// so each ReadMessage/WriteMessage call maps onto exactly one JSON object.
type wsConn struct {
	ws *websocket.Conn
}

func newWSConn(ws *websocket.Conn) *wsConn {
	return &wsConn{ws: ws}
}

func (c *wsConn) ReadMessage() (string, error) {
	var text string
	if err := websocket.Message.Receive(c.ws, &text); err != nil {
		return "", err
	}
	return text, nil
}

func (c *wsConn) WriteMessage(text string) error {
	return websocket.Message.Send(c.ws, text)
}

func (c *wsConn) Close() error {
	return c.ws.Close()
}

func (c *wsConn) RemoteAddr() net.Addr {
	return c.ws.RemoteAddr()
}
