package lobby

import (
	"log"
	"strings"

	"github.com/arcflux/dazzle/actor"
	"github.com/arcflux/dazzle/hashid"
	"github.com/arcflux/dazzle/protocol"
)

const forbiddenNameChars = " \t\n\r"

func (e *Engine) handleMail(ctx actor.Context, msg mailMsg) {
	rec, ok := e.conns[msg.connID]
	if !ok {
		return
	}

	decoded, err := protocol.Decode([]byte(msg.text))
	if err != nil {
		log.Printf("lobby: dropping unparseable message from conn %d: %v", msg.connID, err)
		return
	}

	switch decoded.Kind {
	case protocol.MessageHandShake:
		e.handleHandShake(ctx, rec, decoded.HandShake, true)
	case protocol.MessageCommand:
		e.handleCommand(ctx, rec, decoded.Command)
	}
}

// handleHandShake processes a ClientRole handshake for rec. When
// interactive is false, no reply is sent. Game survivors are not re-queued
// through here but through handleRequeue, which applies the same duplicate
// check silently.
func (e *Engine) handleHandShake(ctx actor.Context, rec *connRecord, role protocol.ClientRole, interactive bool) {
	switch role.Kind {
	case protocol.RoleViewer:
		rec.role = roleViewer
		if interactive {
			e.send(ctx, rec.id, protocol.OK())
		}
	case protocol.RolePlayer:
		e.handlePlayerHandShake(ctx, rec, role.Player, interactive)
	}
}

func (e *Engine) handlePlayerHandShake(ctx actor.Context, rec *connRecord, info protocol.PlayerInfo, interactive bool) {
	trimmed := strings.TrimSpace(info.Name)
	pid := hashid.Hash(trimmed)

	if _, taken := e.queue[pid]; taken || strings.ContainsAny(trimmed, forbiddenNameChars) {
		if interactive {
			e.send(ctx, rec.id, protocol.ErrorResponse("Username already taken"))
		}
		return
	}

	rec.role = rolePlayer
	rec.playerID = pid
	e.queue[pid] = &protocol.Player{ID: pid, Name: trimmed, Points: 0, Position: protocol.Point{}}

	if e.game == nil {
		e.countdown = e.cfg.GameStartTicks
	}

	if interactive {
		e.send(ctx, rec.id, protocol.OK())
	}
}

func (e *Engine) handleCommand(ctx actor.Context, rec *connRecord, cmd protocol.ClientCommand) {
	if rec.role == roleUnknown {
		log.Printf("lobby: command from unregistered conn %d, dropping", rec.id)
		return
	}
	if e.game == nil {
		e.send(ctx, rec.id, protocol.ErrorResponse("No active game"))
		return
	}
	if rec.role != rolePlayer {
		e.send(ctx, rec.id, protocol.ErrorResponse("Operation not allowed"))
		return
	}

	if err := e.game.Action(rec.playerID, cmd); err != nil {
		e.send(ctx, rec.id, protocol.ErrorResponse(err.Error()))
		return
	}
	e.send(ctx, rec.id, protocol.OK())
}

// handleRequeue re-admits a game survivor without any connection-facing
// reply, matching the not-interactive internal handshake mode used when
// the tick handler ends a finished game.
func (e *Engine) handleRequeue(msg requeueMsg) {
	if _, taken := e.queue[msg.player.ID]; taken {
		return
	}
	e.queue[msg.player.ID] = &protocol.Player{
		ID:     msg.player.ID,
		Name:   msg.player.Name,
		Points: 0,
		Position: protocol.Point{},
	}
	if e.game == nil {
		e.countdown = e.cfg.GameStartTicks
	}
}
