package transport

import (
	"log"
	"net/http"

	"golang.org/x/net/websocket"
)

// ListenAndServe binds an HTTP server exposing /subscribe as a WebSocket
// upgrade endpoint. Every successful handshake invokes onAccept with a Conn
// on its own goroutine (the one golang.org/x/net/websocket.Handler already
// gives the connection), which is also what owns that goroutine's blocking
// read loop once the caller starts one.
//
// extraHandlers lets the caller register additional routes (health check,
// debug snapshot) on the same mux without transport needing to know
// anything about their payloads.
func ListenAndServe(addr string, onAccept func(Conn), extraHandlers map[string]http.HandlerFunc) error {
	mux := http.NewServeMux()
	for pattern, handler := range extraHandlers {
		mux.HandleFunc(pattern, handler)
	}
	mux.Handle("/subscribe", websocket.Handler(func(ws *websocket.Conn) {
		conn := newWSConn(ws)
		defer conn.Close()
		onAccept(conn)
	}))

	log.Printf("transport: listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}
