package lobby

import (
	"log"

	"github.com/arcflux/dazzle/actor"
	"github.com/arcflux/dazzle/protocol"
)

// send writes v to the connection identified by connID, retrying once on a
// flush-style failure. A hard failure is treated as a close: it is logged
// and a disconnectedMsg is fed back through the engine's own mailbox so
// teardown always goes through the normal accepted/disconnected path.
func (e *Engine) send(ctx actor.Context, connID uint64, v interface{}) {
	rec, ok := e.conns[connID]
	if !ok {
		return
	}
	data, err := protocol.Encode(v)
	if err != nil {
		log.Printf("lobby: encoding message for conn %d: %v", connID, err)
		return
	}
	if err := rec.conn.WriteMessage(string(data)); err != nil {
		// one retry, matching the single flush attempt the would-block
		// case gets before it is treated as a hard failure.
		if err := rec.conn.WriteMessage(string(data)); err != nil {
			log.Printf("lobby: write to conn %d failed, disconnecting: %v", connID, err)
			ctx.Engine().Send(ctx.Self(), disconnectedMsg{connID: connID}, nil)
		}
	}
}
