// Package lobby implements the authoritative engine actor: connection
// bookkeeping, the matchmaking queue, the lifecycle state machine, and
// per-tick simulation advancement and broadcast.
package lobby

import (
	"log"
	"time"

	"github.com/arcflux/dazzle/actor"
	"github.com/arcflux/dazzle/config"
	"github.com/arcflux/dazzle/gamecore"
	"github.com/arcflux/dazzle/protocol"
	"github.com/arcflux/dazzle/transport"
)

type role int

const (
	roleUnknown role = iota
	roleViewer
	rolePlayer
)

type connRecord struct {
	id       uint64
	role     role
	playerID uint64
	conn     transport.Conn
}

// Engine is the single authoritative actor. Every field below is owned
// exclusively by the goroutine running this actor's Receive; nothing else
// may read or write them.
type Engine struct {
	cfg config.Config

	conns      map[uint64]*connRecord
	nextConnID uint64

	queue     map[uint64]*protocol.Player
	countdown int

	game          *gamecore.Game
	gameIDCounter uint64

	lastOverview *protocol.Overview

	tickerStop chan struct{}
}

// NewProducer returns an actor.Producer that builds a fresh Engine bound to
// cfg. Pass the result to actor.NewProps and Engine.Spawn once at process
// start.
func NewProducer(cfg config.Config) actor.Producer {
	return func() actor.Actor {
		return &Engine{
			cfg:        cfg,
			conns:      make(map[uint64]*connRecord),
			queue:      make(map[uint64]*protocol.Player),
			countdown:  cfg.GameStartTicks,
			tickerStop: make(chan struct{}),
		}
	}
}

// Receive dispatches on the concrete type of the incoming message.
func (e *Engine) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case actor.Started:
		e.startTicker(ctx)
	case actor.Stopping:
		e.closeAllConnections()
		close(e.tickerStop)
	case actor.Stopped:
		// no further action; process is about to be removed.
	case acceptedMsg:
		e.handleAccepted(ctx, msg)
	case mailMsg:
		e.handleMail(ctx, msg)
	case disconnectedMsg:
		e.handleDisconnected(msg)
	case tickMsg:
		e.handleTick(ctx)
	case requeueMsg:
		e.handleRequeue(msg)
	case DebugStateRequest:
		e.handleDebugState(ctx)
	default:
		log.Printf("lobby: engine received unhandled message %T", msg)
	}
}

func (e *Engine) startTicker(ctx actor.Context) {
	eng := ctx.Engine()
	self := ctx.Self()
	period := e.cfg.TickPeriod()
	stop := e.tickerStop
	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				eng.Send(self, tickMsg{}, nil)
			}
		}
	}()
}

func (e *Engine) closeAllConnections() {
	for _, rec := range e.conns {
		rec.conn.Close()
	}
}
