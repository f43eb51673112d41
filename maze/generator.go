package maze

import (
	"math/rand"
	"time"

	"github.com/VictorJude046/A-Path-finding-project/core"
)

// Cell types
const (
	Wall    = true
	Passage = false
)

type Config struct {
	Width, Height int

	// Braiding: 0.0 (perfect maze, a tree) to 1.0 (no dead ends)
	// Higher values add cycles, constraints (no plazas, no pillars) take precedence
	Braiding float64

	Seed int64 // Optional (0 = Random)
}

type Result struct {
	Walls      [][]bool // [y][x], Wall or Passage
	Start, End core.Point
}

// WallCells lists wall cells in row-major order
func (r Result) WallCells() []core.Point {
	var out []core.Point
	for y, row := range r.Walls {
		for x, wall := range row {
			if wall {
				out = append(out, core.Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Generate carves a maze with a recursive backtracker, then braids dead ends
// Dimensions round down to the nearest odd number (min 3), Start is (1,1), End the far corner room
func Generate(cfg Config) Result {
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)

	walls := make([][]bool, rows)
	for y := range walls {
		walls[y] = make([]bool, cols)
		for x := range walls[y] {
			walls[y][x] = Wall
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	start := core.Point{X: 1, Y: 1}
	end := core.Point{X: cols - 2, Y: rows - 2}

	carve(walls, start, rng)
	if cfg.Braiding > 0 {
		braid(walls, cfg.Braiding, rng)
	}

	return Result{Walls: walls, Start: start, End: end}
}

// --- Core Algorithms ---

var jumps = [4]core.Point{{X: 0, Y: -2}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: -2, Y: 0}}

// carve builds a uniform spanning tree over odd cells
func carve(walls [][]bool, start core.Point, rng *rand.Rand) {
	rows, cols := len(walls), len(walls[0])

	stack := []core.Point{start}
	walls[start.Y][start.X] = Passage

	candidates := make([]core.Point, 0, 4)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range jumps {
			n := cur.Add(d)
			// Leave a 1-cell border of walls
			if n.X > 0 && n.X < cols-1 && n.Y > 0 && n.Y < rows-1 && walls[n.Y][n.X] == Wall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		next := cur.Add(d)
		walls[cur.Y+d.Y/2][cur.X+d.X/2] = Passage
		walls[next.Y][next.X] = Passage
		stack = append(stack, next)
	}
}

// braid opens one wall at each dead end with the given probability
func braid(walls [][]bool, probability float64, rng *rand.Rand) {
	rows, cols := len(walls), len(walls[0])

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			room := core.Point{X: x, Y: y}
			if walls[y][x] == Wall || exits(walls, room) != 1 || rng.Float64() >= probability {
				continue
			}

			var options []core.Point
			for _, d := range jumps {
				n := room.Add(d)
				between := core.Point{X: x + d.X/2, Y: y + d.Y/2}
				if !n.Within(cols, rows) {
					continue
				}
				if walls[n.Y][n.X] == Passage && walls[between.Y][between.X] == Wall && canRemove(walls, between) {
					options = append(options, between)
				}
			}
			if len(options) > 0 {
				c := options[rng.Intn(len(options))]
				walls[c.Y][c.X] = Passage
			}
		}
	}
}

func exits(walls [][]bool, p core.Point) int {
	n := 0
	for _, d := range core.Cardinals {
		q := p.Add(d)
		if q.Within(len(walls[0]), len(walls)) && walls[q.Y][q.X] == Passage {
			n++
		}
	}
	return n
}

// canRemove rejects removals that create a 2x2 plaza or leave an isolated pillar
func canRemove(walls [][]bool, p core.Point) bool {
	rows, cols := len(walls), len(walls[0])
	open := func(x, y int) bool {
		return x >= 0 && y >= 0 && x < cols && y < rows && walls[y][x] == Passage
	}

	// Plazas: any 2x2 block containing p already open on its other three cells
	for _, q := range [4][2]int{{-1, -1}, {0, -1}, {-1, 0}, {0, 0}} {
		ox, oy := p.X+q[0], p.Y+q[1]
		n := 0
		for _, c := range [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
			cx, cy := ox+c[0], oy+c[1]
			if (cx != p.X || cy != p.Y) && open(cx, cy) {
				n++
			}
		}
		if n == 3 {
			return false
		}
	}

	// Pillars: a neighbouring wall must keep another wall neighbour
	for _, d := range core.Cardinals {
		n := p.Add(d)
		if !n.Within(cols, rows) || walls[n.Y][n.X] != Wall {
			continue
		}
		linked := false
		for _, d2 := range core.Cardinals {
			m := n.Add(d2)
			if m == p || !m.Within(cols, rows) {
				continue
			}
			if walls[m.Y][m.X] == Wall {
				linked = true
				break
			}
		}
		if !linked {
			return false
		}
	}

	return true
}

// --- Helpers ---

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1 // Round down to stay within bounds
	}
	return n
}
