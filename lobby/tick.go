package lobby

import (
	"github.com/arcflux/dazzle/actor"
	"github.com/arcflux/dazzle/gamecore"
	"github.com/arcflux/dazzle/protocol"
)

func (e *Engine) handleTick(ctx actor.Context) {
	action := nextAction(lifecycleInputs{
		gameActive:   e.game != nil,
		gameFinished: e.game != nil && e.game.Finished(),
		queueLen:     len(e.queue),
		countdown:    e.countdown,
	})

	switch action {
	case actionCountdown:
		e.countdown--
	case actionStartGame:
		e.startGame()
		e.game.Tick()
		e.broadcast(ctx)
	case actionTickGame:
		e.game.Tick()
		e.broadcast(ctx)
	case actionEndGame:
		e.endGame()
	case actionNone:
		// nothing to do this tick
	}
}

// startGame constructs a new Game at the current gameIDCounter value (0 for
// the very first game) and bumps the counter afterward, matching §4.6.3's
// "construct Game; game.tick(); broadcast overview; game_id += 1" ordering.
func (e *Engine) startGame() {
	players := make(map[uint64]*protocol.Player, len(e.queue))
	for id, p := range e.queue {
		players[id] = p
	}
	e.queue = make(map[uint64]*protocol.Player)
	e.game = gamecore.New(players, e.cfg.GameTurns, e.gameIDCounter, e.cfg.TokenRate)
	e.gameIDCounter++
}

// endGame collects surviving players' names, tears the game down, resets
// the countdown, and silently re-queues each survivor under a fresh
// handshake so the usual duplicate-name and queue-insertion logic applies
// uniformly to rejoining players.
func (e *Engine) endGame() {
	for _, p := range e.game.Players() {
		e.handleRequeue(requeueMsg{player: protocol.Player{ID: p.ID, Name: p.Name}})
	}
	e.game = nil
	e.countdown = e.cfg.GameStartTicks
}
