package lobby

import "github.com/arcflux/dazzle/actor"

func (e *Engine) handleAccepted(ctx actor.Context, msg acceptedMsg) {
	e.nextConnID++
	id := e.nextConnID
	e.conns[id] = &connRecord{id: id, role: roleUnknown, conn: msg.conn}

	ctx.Engine().Send(ctx.Sender(), acceptedReply{connID: id}, ctx.Self())
}

func (e *Engine) handleDisconnected(msg disconnectedMsg) {
	rec, ok := e.conns[msg.connID]
	if !ok {
		return
	}
	delete(e.conns, msg.connID)
	if rec.role == rolePlayer {
		delete(e.queue, rec.playerID)
		if e.game != nil {
			delete(e.game.Players(), rec.playerID)
		}
	}
	rec.conn.Close()
}
