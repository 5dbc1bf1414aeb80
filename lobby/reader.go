package lobby

import (
	"log"
	"time"

	"github.com/arcflux/dazzle/actor"
	"github.com/arcflux/dazzle/transport"
)

const acceptAskTimeout = 2 * time.Second

// Accept is the transport.ListenAndServe onAccept callback. It asks the
// engine to register conn and obtain a stable connID, then becomes that
// connection's reader goroutine for the rest of its life — the same
// goroutine golang.org/x/net/websocket.Handler already dedicates to this
// connection, so no second goroutine needs to be spawned to satisfy the
// "one reader per connection" rule of §4.4/§5.
func Accept(eng *actor.Engine, enginePID *actor.PID, conn transport.Conn) {
	reply, err := eng.Ask(enginePID, acceptedMsg{conn: conn}, acceptAskTimeout)
	if err != nil {
		log.Printf("lobby: engine did not accept new connection from %s: %v", conn.RemoteAddr(), err)
		conn.Close()
		return
	}
	connID := reply.(acceptedReply).connID

	for {
		text, err := conn.ReadMessage()
		if err != nil {
			eng.Send(enginePID, disconnectedMsg{connID: connID}, nil)
			return
		}
		eng.Send(enginePID, mailMsg{connID: connID, text: text}, nil)
	}
}
