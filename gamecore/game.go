// Package gamecore implements the grid-capture simulation: player
// placement, the per-tick flood-fill capture rule, token collection and
// spawning, and per-player move validation.
package gamecore

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log"
	mrand "math/rand"
	"time"

	"github.com/arcflux/dazzle/protocol"
)

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Player is a participant in an active game.
type Player struct {
	ID       uint64
	Name     string
	Points   uint64
	Position Point
}

// Game holds everything needed to advance one grid-capture match by one
// tick. The zero value is not usable; construct with New.
type Game struct {
	GameID    uint64
	Rows      int
	Cols      int
	TokenRate float64

	grid      [][]*uint64
	tokens    map[Point]struct{}
	turnsLeft uint64
	players   map[uint64]*Player
	moved     map[uint64]bool
	rng       *mrand.Rand
}

// New allocates a game for the given players, placing each at a uniformly
// random in-bounds cell. Collisions between starting positions are
// permitted; the first Tick's flood-fill and stamping resolve them exactly
// as any later-tick collision would.
func New(players map[uint64]*protocol.Player, totalTurns uint64, gameID uint64, tokenRate float64) *Game {
	rows := 8 + len(players)/2
	cols := 2*rows + 1

	g := &Game{
		GameID:    gameID,
		Rows:      rows,
		Cols:      cols,
		TokenRate: tokenRate,
		grid:      make([][]*uint64, rows),
		tokens:    make(map[Point]struct{}),
		turnsLeft: totalTurns,
		players:   make(map[uint64]*Player, len(players)),
		moved:     make(map[uint64]bool, len(players)),
		rng:       mrand.New(mrand.NewSource(seed())),
	}
	for i := range g.grid {
		g.grid[i] = make([]*uint64, cols)
	}

	for id, p := range players {
		player := &Player{ID: id, Name: p.Name, Points: p.Points}
		player.Position = Point{X: g.rng.Intn(cols), Y: g.rng.Intn(rows)}
		g.players[id] = player
		g.moved[id] = false
	}
	return g
}

// seed draws entropy from crypto/rand, falling back to the wall clock if
// the OS source errors — logged as a warning, not fatal, since a weaker
// seed does not corrupt gameplay, only its unpredictability.
func seed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		log.Printf("gamecore: crypto/rand unavailable, falling back to clock seed: %v", err)
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// Finished reports whether the match has reached its final tick.
func (g *Game) Finished() bool {
	return g.turnsLeft == 0
}

// Players returns the current player set, keyed by id. The returned map is
// the game's own map, not a copy: removing an entry from it (as the lobby
// does for a disconnected player) removes that player from the game.
func (g *Game) Players() map[uint64]*Player {
	return g.players
}

// TurnsLeft reports the number of ticks remaining before the match ends.
func (g *Game) TurnsLeft() uint64 {
	return g.turnsLeft
}

var (
	errAlreadyMoved = errors.New("Already moved")
	errBadMove      = errors.New("Moved out of grid or in a cell already taken")
)

// Action validates and applies a single player's command for the current
// tick. At most one successful call is accepted per player per tick; after
// it, further calls return errAlreadyMoved until the next Tick. A rejected
// move does not use up the player's turn.
func (g *Game) Action(id uint64, cmd protocol.ClientCommand) error {
	if moved, ok := g.moved[id]; !ok || moved {
		return errAlreadyMoved
	}
	g.moved[id] = true

	if cmd.Kind == protocol.CommandNothing {
		return nil
	}

	player, ok := g.players[id]
	if !ok {
		g.moved[id] = false
		return errBadMove
	}

	occupied := make(map[Point]bool, len(g.players))
	for _, p := range g.players {
		occupied[p.Position] = true
	}

	target := step(player.Position, cmd.Direction)
	if target.X < 0 || target.X >= g.Cols || target.Y < 0 || target.Y >= g.Rows {
		g.moved[id] = false
		return errBadMove
	}
	if occupied[target] {
		g.moved[id] = false
		return errBadMove
	}

	player.Position = target
	return nil
}

// step shifts p one cell in dir. Down increments y, Up decrements y, Right
// increments x, Left decrements x — pinned by the original reference
// implementation's game.rs, not left to convention.
func step(p Point, dir protocol.Direction) Point {
	switch dir {
	case protocol.Up:
		return Point{X: p.X, Y: p.Y - 1}
	case protocol.Down:
		return Point{X: p.X, Y: p.Y + 1}
	case protocol.Left:
		return Point{X: p.X - 1, Y: p.Y}
	case protocol.Right:
		return Point{X: p.X + 1, Y: p.Y}
	default:
		return p
	}
}

// Overview snapshots the current state into the wire format broadcast to
// clients.
func (g *Game) Overview(msForTurn uint64) protocol.Overview {
	players := make([]protocol.Player, 0, len(g.players))
	for _, p := range g.players {
		players = append(players, protocol.Player{
			Name:     p.Name,
			Points:   p.Points,
			Position: protocol.Point{X: p.Position.X, Y: p.Position.Y},
			ID:       p.ID,
		})
	}

	grid := make([][]*uint64, g.Rows)
	for y := range grid {
		row := make([]*uint64, g.Cols)
		for x := range row {
			if id := g.grid[y][x]; id != nil {
				v := *id
				row[x] = &v
			}
		}
		grid[y] = row
	}

	tokens := make([]protocol.Point, 0, len(g.tokens))
	for pt := range g.tokens {
		tokens = append(tokens, protocol.Point{X: pt.X, Y: pt.Y})
	}

	return protocol.Overview{
		Players:   players,
		Grid:      grid,
		TurnsLeft: g.turnsLeft,
		MsForTurn: msForTurn,
		Tokens:    tokens,
		GameID:    g.GameID,
	}
}
