package gamecore

import "math"

// Tick advances the simulation by one step: stamp players onto the grid,
// flood-fill capture of enclosed empty regions, move-reset, token
// collection, turn countdown, and token spawning. Grounded on the tick()
// algorithm of the original reference implementation's game.rs, since
// nothing in the retrieved Go examples implements flood-fill capture.
func (g *Game) Tick() {
	g.stampPlayers()
	g.floodFillCapture()
	g.resetMoves()
	g.collectTokens()
	if g.turnsLeft > 0 {
		g.turnsLeft--
	}
	g.spawnTokens()
}

func (g *Game) stampPlayers() {
	for _, p := range g.players {
		id := p.ID
		g.grid[p.Position.Y][p.Position.X] = &id
	}
}

// floodFillCapture repaints every enclosed empty region bordered by exactly
// one player color. A region that touches the grid boundary, or that
// borders more than one color, is left untouched. Each cell is visited at
// most once across the whole tick.
func (g *Game) floodFillCapture() {
	visited := make([][]bool, g.Rows)
	for y := range visited {
		visited[y] = make([]bool, g.Cols)
	}

	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if visited[y][x] || g.grid[y][x] != nil {
				continue
			}
			g.floodFrom(Point{X: x, Y: y}, visited)
		}
	}
}

func (g *Game) floodFrom(start Point, visited [][]bool) {
	queue := []Point{start}
	visited[start.Y][start.X] = true

	toFill := []Point{start}
	colors := make(map[uint64]struct{})
	valid := true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, n := range neighbors(cur) {
			if n.X < 0 || n.X >= g.Cols || n.Y < 0 || n.Y >= g.Rows {
				valid = false
				continue
			}
			if id := g.grid[n.Y][n.X]; id != nil {
				colors[*id] = struct{}{}
				continue
			}
			if visited[n.Y][n.X] {
				continue
			}
			visited[n.Y][n.X] = true
			toFill = append(toFill, n)
			queue = append(queue, n)
		}
	}

	if !valid || len(colors) != 1 {
		return
	}
	var color uint64
	for c := range colors {
		color = c
	}
	for _, pt := range toFill {
		c := color
		g.grid[pt.Y][pt.X] = &c
	}
}

func neighbors(p Point) [4]Point {
	return [4]Point{
		{X: p.X, Y: p.Y - 1},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y},
	}
}

func (g *Game) resetMoves() {
	for id := range g.moved {
		g.moved[id] = false
	}
}

// collectTokens awards a player the size of their painted territory
// whenever they stand on a token, then clears that territory back to
// empty.
func (g *Game) collectTokens() {
	for _, p := range g.players {
		pt := Point{X: p.Position.X, Y: p.Position.Y}
		if _, onToken := g.tokens[pt]; !onToken {
			continue
		}
		delete(g.tokens, pt)

		count := uint64(0)
		for y := 0; y < g.Rows; y++ {
			for x := 0; x < g.Cols; x++ {
				if id := g.grid[y][x]; id != nil && *id == p.ID {
					count++
					g.grid[y][x] = nil
				}
			}
		}
		p.Points += count
	}
}

// spawnTokens draws new tokens per tick using the reference curve
// cap = min(0.5, 0.025*log2(N)), drawing uniform(0,1) samples until one
// lands at or above cap; the number of samples that fell below it is the
// count of tokens spawned. tokenRate is retained on Game but does not
// influence this formula, matching the original implementation.
func (g *Game) spawnTokens() {
	n := len(g.players)
	if n <= 1 {
		return
	}
	threshold := math.Min(0.5, 0.025*math.Log2(float64(n)))
	if threshold <= 0 {
		return
	}

	for {
		sample := g.rng.Float64()
		if sample >= threshold {
			return
		}
		pt := Point{X: g.rng.Intn(g.Cols), Y: g.rng.Intn(g.Rows)}
		g.tokens[pt] = struct{}{}
	}
}
