package lobby

import "github.com/arcflux/dazzle/actor"

// phaseName reports a human-readable lifecycle phase for /debug/state,
// independent of the lifecycleAction vocabulary used internally by ticks.
func (e *Engine) phaseName() string {
	switch {
	case e.game != nil:
		return "Active"
	case len(e.queue) >= 2:
		return "Starting"
	default:
		return "Idle"
	}
}

func (e *Engine) handleDebugState(ctx actor.Context) {
	resp := DebugStateResponse{Phase: e.phaseName()}
	if e.game != nil {
		resp.Overview = e.lastOverview
	}
	ctx.Engine().Send(ctx.Sender(), resp, ctx.Self())
}
