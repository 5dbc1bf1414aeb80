package gamecore

import (
	"testing"

	"github.com/arcflux/dazzle/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourPlayers() map[uint64]*protocol.Player {
	return map[uint64]*protocol.Player{
		1: {ID: 1, Name: "a"},
		2: {ID: 2, Name: "b"},
		3: {ID: 3, Name: "c"},
		4: {ID: 4, Name: "d"},
	}
}

func TestNew_GridDimensions(t *testing.T) {
	players := fourPlayers()
	g := New(players, 300, 1, 2.5)

	assert.Equal(t, 8+len(players)/2, g.Rows)
	assert.Equal(t, 2*g.Rows+1, g.Cols)

	for _, p := range g.Players() {
		assert.True(t, p.Position.X >= 0 && p.Position.X < g.Cols)
		assert.True(t, p.Position.Y >= 0 && p.Position.Y < g.Rows)
	}
}

func TestAction_OneMovePerTick(t *testing.T) {
	g := New(fourPlayers(), 10, 1, 2.5)
	var pid uint64
	for id := range g.Players() {
		pid = id
		break
	}

	err := g.Action(pid, protocol.ClientCommand{Kind: protocol.CommandNothing})
	require.NoError(t, err)

	err = g.Action(pid, protocol.ClientCommand{Kind: protocol.CommandNothing})
	assert.EqualError(t, err, "Already moved")

	g.Tick()

	err = g.Action(pid, protocol.ClientCommand{Kind: protocol.CommandNothing})
	assert.NoError(t, err)
}

func TestAction_MoveOutOfBounds(t *testing.T) {
	g := New(map[uint64]*protocol.Player{1: {ID: 1, Name: "solo"}}, 10, 1, 2.5)
	p := g.Players()[1]
	p.Position = Point{X: 0, Y: 0}

	err := g.Action(1, protocol.ClientCommand{Kind: protocol.CommandMove, Direction: protocol.Up})
	assert.EqualError(t, err, "Moved out of grid or in a cell already taken")
	assert.Equal(t, Point{X: 0, Y: 0}, p.Position)
}

func TestAction_MoveBlockedByOtherPlayer(t *testing.T) {
	players := map[uint64]*protocol.Player{1: {ID: 1, Name: "a"}, 2: {ID: 2, Name: "b"}}
	g := New(players, 10, 1, 2.5)
	g.Players()[1].Position = Point{X: 5, Y: 5}
	g.Players()[2].Position = Point{X: 5, Y: 6}

	err := g.Action(1, protocol.ClientCommand{Kind: protocol.CommandMove, Direction: protocol.Down})
	assert.Error(t, err)
	assert.Equal(t, Point{X: 5, Y: 5}, g.Players()[1].Position)
}

func TestAction_MoveSucceeds(t *testing.T) {
	g := New(map[uint64]*protocol.Player{1: {ID: 1, Name: "solo"}}, 10, 1, 2.5)
	p := g.Players()[1]
	p.Position = Point{X: 5, Y: 5}

	err := g.Action(1, protocol.ClientCommand{Kind: protocol.CommandMove, Direction: protocol.Right})
	require.NoError(t, err)
	assert.Equal(t, Point{X: 6, Y: 5}, p.Position)
}

func TestDirectionConvention(t *testing.T) {
	assert.Equal(t, Point{X: 0, Y: 1}, step(Point{X: 0, Y: 0}, protocol.Down))
	assert.Equal(t, Point{X: 0, Y: -1}, step(Point{X: 0, Y: 0}, protocol.Up))
	assert.Equal(t, Point{X: 1, Y: 0}, step(Point{X: 0, Y: 0}, protocol.Right))
	assert.Equal(t, Point{X: -1, Y: 0}, step(Point{X: 0, Y: 0}, protocol.Left))
}

func TestTick_TurnsLeftDecrementsAndFinishes(t *testing.T) {
	g := New(fourPlayers(), 2, 1, 2.5)
	assert.False(t, g.Finished())
	g.Tick()
	assert.Equal(t, uint64(1), g.TurnsLeft())
	g.Tick()
	assert.True(t, g.Finished())
	g.Tick()
	assert.True(t, g.Finished())
}

func TestFloodFill_EnclosedSingleColorIsPainted(t *testing.T) {
	g := New(map[uint64]*protocol.Player{1: {ID: 1, Name: "solo"}}, 10, 1, 2.5)
	g.Rows, g.Cols = 5, 5
	g.grid = make([][]*uint64, 5)
	for y := range g.grid {
		g.grid[y] = make([]*uint64, 5)
	}
	id := uint64(1)
	for x := 0; x < 5; x++ {
		g.grid[0][x] = &id
		g.grid[4][x] = &id
	}
	for y := 0; y < 5; y++ {
		g.grid[y][0] = &id
		g.grid[y][4] = &id
	}
	// interior 3x3 is empty, fully enclosed by color 1

	g.floodFillCapture()

	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			if assert.NotNil(t, g.grid[y][x]) {
				assert.Equal(t, id, *g.grid[y][x])
			}
		}
	}
}

func TestFloodFill_BoundaryRegionNeverPainted(t *testing.T) {
	g := New(map[uint64]*protocol.Player{1: {ID: 1, Name: "solo"}}, 10, 1, 2.5)
	g.Rows, g.Cols = 3, 3
	g.grid = make([][]*uint64, 3)
	for y := range g.grid {
		g.grid[y] = make([]*uint64, 3)
	}
	id := uint64(1)
	g.grid[1][1] = &id // single stamped cell, rest empty and touches boundary

	g.floodFillCapture()

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 1 {
				continue
			}
			assert.Nil(t, g.grid[y][x])
		}
	}
}

func TestFloodFill_MultiColorRegionNeverPainted(t *testing.T) {
	g := New(map[uint64]*protocol.Player{1: {ID: 1}, 2: {ID: 2}}, 10, 1, 2.5)
	g.Rows, g.Cols = 5, 5
	g.grid = make([][]*uint64, 5)
	for y := range g.grid {
		g.grid[y] = make([]*uint64, 5)
	}
	one, two := uint64(1), uint64(2)
	for x := 0; x < 5; x++ {
		g.grid[0][x] = &one
		g.grid[4][x] = &two
	}
	for y := 0; y < 5; y++ {
		g.grid[y][0] = &one
		g.grid[y][4] = &one
	}

	g.floodFillCapture()

	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			assert.Nil(t, g.grid[y][x])
		}
	}
}

func TestCollectTokens_AwardsPointsAndClearsTerritory(t *testing.T) {
	g := New(map[uint64]*protocol.Player{1: {ID: 1, Name: "solo"}}, 10, 1, 2.5)
	g.Rows, g.Cols = 3, 3
	g.grid = make([][]*uint64, 3)
	for y := range g.grid {
		g.grid[y] = make([]*uint64, 3)
	}
	id := uint64(1)
	g.grid[0][0] = &id
	g.grid[0][1] = &id
	g.grid[1][1] = &id

	p := g.Players()[1]
	p.Position = Point{X: 1, Y: 1}
	g.tokens[p.Position] = struct{}{}

	g.collectTokens()

	assert.Equal(t, uint64(3), p.Points)
	assert.Nil(t, g.grid[0][0])
	assert.Nil(t, g.grid[0][1])
	assert.Nil(t, g.grid[1][1])
	_, stillThere := g.tokens[Point{X: 1, Y: 1}]
	assert.False(t, stillThere)
}
