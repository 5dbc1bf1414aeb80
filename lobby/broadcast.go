package lobby

import "github.com/arcflux/dazzle/actor"

// broadcast builds one Overview from the current game and fans it out to
// every viewer and every still-active player connection, best-effort; a
// failed send is reconciled on the engine's next receive via send's own
// disconnectedMsg synthesis.
func (e *Engine) broadcast(ctx actor.Context) {
	overview := e.game.Overview(uint64(e.cfg.TickTimeMs))
	e.lastOverview = &overview

	for _, rec := range e.conns {
		switch rec.role {
		case roleViewer:
			e.send(ctx, rec.id, overview)
		case rolePlayer:
			if _, stillIn := e.game.Players()[rec.playerID]; stillIn {
				e.send(ctx, rec.id, overview)
			}
		}
	}
}
