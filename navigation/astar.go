package navigation

import (
	"fmt"

	"github.com/VictorJude046/A-Path-finding-project/core"
	"github.com/VictorJude046/A-Path-finding-project/parameter"
)

// WallChecker is a function that returns true if cell blocks navigation
type WallChecker func(x, y int) bool

// Path is the ordered list of cells after start up to and including goal
// A non-nil empty Path means start == goal
type Path []core.Point

// Contains reports whether p is on the path
func (p Path) Contains(pt core.Point) bool {
	for _, q := range p {
		if q == pt {
			return true
		}
	}
	return false
}

// ErrBudgetExhausted is returned when MaxExpansions is reached, it matches core.ErrNoPathFound
var ErrBudgetExhausted = fmt.Errorf("%w: expansion budget exhausted", core.ErrNoPathFound)

// Stats describes the last search
type Stats struct {
	Expanded int // Cells popped fresh and expanded
	Pushed   int // Frontier insertions
	Stale    int // Popped entries skipped by the freshness check
}

const unvisited = 1<<31 - 1

// Heuristic is the Manhattan distance, admissible and consistent on a 4-connected unit grid
func Heuristic(a, b core.Point) int {
	return a.Manhattan(b)
}

// Planner runs A* over a fixed-size grid and reuses its buffers between searches
// A Planner is not safe for concurrent use
type Planner struct {
	Width, Height int

	// MaxExpansions caps expanded cells per search, 0 is unlimited
	MaxExpansions int

	// Stats of the most recent ComputePath call
	Stats Stats

	blocked  []bool // Snapshot of the predicate for the current search
	gScore   []int
	cameFrom []int
	heap     minHeap
}

// NewPlanner creates a planner for a width×height grid
func NewPlanner(width, height int) *Planner {
	size := width * height
	return &Planner{
		Width:         width,
		Height:        height,
		MaxExpansions: parameter.DefaultMaxExpansions,
		blocked:       make([]bool, size),
		gScore:        make([]int, size),
		cameFrom:      make([]int, size),
		heap:          make(minHeap, 0, size/parameter.PlannerHeapDivisor+1),
	}
}

// ComputePath returns a shortest 4-connected path from start to goal
//
// Errors: core.ErrInvalidRequest when an endpoint is out of bounds or goal is blocked,
// core.ErrNoPathFound when the frontier empties, ErrBudgetExhausted on budget exhaustion
// start == goal yields an empty non-nil Path. isBlocked is sampled once, before the search
func (p *Planner) ComputePath(start, goal core.Point, isBlocked WallChecker) (Path, error) {
	p.Stats = Stats{}

	if !start.Within(p.Width, p.Height) {
		return nil, fmt.Errorf("start (%d,%d) outside %dx%d: %w", start.X, start.Y, p.Width, p.Height, core.ErrInvalidRequest)
	}
	if !goal.Within(p.Width, p.Height) {
		return nil, fmt.Errorf("goal (%d,%d) outside %dx%d: %w", goal.X, goal.Y, p.Width, p.Height, core.ErrInvalidRequest)
	}
	if start == goal {
		return Path{}, nil
	}

	p.snapshot(isBlocked)

	w := p.Width
	startIdx := start.Y*w + start.X
	goalIdx := goal.Y*w + goal.X

	if p.blocked[goalIdx] {
		return nil, fmt.Errorf("goal (%d,%d) is blocked: %w", goal.X, goal.Y, core.ErrInvalidRequest)
	}

	for i := range p.gScore {
		p.gScore[i] = unvisited
		p.cameFrom[i] = -1
	}

	var seq uint64
	p.heap = p.heap[:0]
	p.gScore[startIdx] = 0
	p.heap.push(heapEntry{idx: startIdx, f: Heuristic(start, goal), g: 0, seq: seq})
	p.Stats.Pushed++

	for len(p.heap) > 0 {
		entry := p.heap.pop()

		if entry.g > p.gScore[entry.idx] {
			p.Stats.Stale++
			continue
		}

		if entry.idx == goalIdx {
			return p.reconstruct(startIdx, goalIdx), nil
		}

		if p.MaxExpansions > 0 && p.Stats.Expanded >= p.MaxExpansions {
			return nil, fmt.Errorf("path (%d,%d)->(%d,%d) after %d expansions: %w",
				start.X, start.Y, goal.X, goal.Y, p.Stats.Expanded, ErrBudgetExhausted)
		}
		p.Stats.Expanded++

		cx := entry.idx % w
		cy := entry.idx / w

		for _, d := range core.Cardinals {
			nx, ny := cx+d.X, cy+d.Y
			if nx < 0 || ny < 0 || nx >= p.Width || ny >= p.Height {
				continue
			}

			nIdx := ny*w + nx
			if p.blocked[nIdx] {
				continue
			}

			tentative := entry.g + 1
			if tentative < p.gScore[nIdx] {
				p.gScore[nIdx] = tentative
				p.cameFrom[nIdx] = entry.idx
				seq++
				h := Heuristic(core.Point{X: nx, Y: ny}, goal)
				p.heap.push(heapEntry{idx: nIdx, f: tentative + h, g: tentative, seq: seq})
				p.Stats.Pushed++
			}
		}
	}

	return nil, fmt.Errorf("path (%d,%d)->(%d,%d): %w", start.X, start.Y, goal.X, goal.Y, core.ErrNoPathFound)
}

// snapshot samples isBlocked for every cell so the search sees one consistent state
func (p *Planner) snapshot(isBlocked WallChecker) {
	for y := 0; y < p.Height; y++ {
		row := y * p.Width
		for x := 0; x < p.Width; x++ {
			p.blocked[row+x] = isBlocked(x, y)
		}
	}
}

func (p *Planner) reconstruct(startIdx, goalIdx int) Path {
	path := make(Path, p.gScore[goalIdx])
	for idx, i := goalIdx, len(path)-1; idx != startIdx; idx, i = p.cameFrom[idx], i-1 {
		path[i] = core.Point{X: idx % p.Width, Y: idx / p.Width}
	}
	return path
}
