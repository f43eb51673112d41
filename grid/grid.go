package grid

import (
	"fmt"
	"math"

	"github.com/VictorJude046/A-Path-finding-project/core"
)

// CellState is the permanent state of a grid cell
type CellState uint8

const (
	Free CellState = iota
	Obstacle
)

func (s CellState) String() string {
	switch s {
	case Free:
		return "free"
	case Obstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// AgentProbe reports whether the agent currently stands on p
type AgentProbe func(p core.Point) bool

// Grid is a fixed rows×cols occupancy table
// Obstacles are append-only, there is no clear operation
type Grid struct {
	rows, cols int
	cells      []CellState // index = y*cols + x
	obstacles  int

	agentAt AgentProbe
}

// New creates an all-free grid
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 || rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %dx%d", core.ErrInvalidDimensions, rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]CellState, rows*cols),
	}, nil
}

// SetAgentProbe installs the agent lookup consulted by SetObstacle
func (g *Grid) SetAgentProbe(probe AgentProbe) {
	g.agentAt = probe
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p addresses a cell of this grid
func (g *Grid) InBounds(p core.Point) bool {
	return p.Within(g.cols, g.rows)
}

// SetObstacle marks p as an obstacle
// Re-marking an obstacle is a no-op, the agent cell is rejected
func (g *Grid) SetObstacle(p core.Point) error {
	_, err := g.Mark(p)
	return err
}

// Mark is SetObstacle that also reports whether the cell changed state
func (g *Grid) Mark(p core.Point) (changed bool, err error) {
	if !g.InBounds(p) {
		return false, fmt.Errorf("set obstacle at (%d,%d): %w", p.X, p.Y, core.ErrOutOfBounds)
	}
	if g.agentAt != nil && g.agentAt(p) {
		return false, fmt.Errorf("set obstacle at (%d,%d): %w", p.X, p.Y, core.ErrCellOccupiedByAgent)
	}

	idx := p.Y*g.cols + p.X
	if g.cells[idx] == Obstacle {
		return false, nil
	}
	g.cells[idx] = Obstacle
	g.obstacles++
	return true, nil
}

// IsObstacle returns the stored state of p
func (g *Grid) IsObstacle(p core.Point) (bool, error) {
	if !g.InBounds(p) {
		return false, fmt.Errorf("query (%d,%d): %w", p.X, p.Y, core.ErrOutOfBounds)
	}
	return g.cells[p.Y*g.cols+p.X] == Obstacle, nil
}

// State returns the cell state, out-of-bounds cells report Obstacle
func (g *Grid) State(p core.Point) CellState {
	if !g.InBounds(p) {
		return Obstacle
	}
	return g.cells[p.Y*g.cols+p.X]
}

// Blocked is the unchecked obstacle test used on hot paths
// Out-of-bounds is blocked
func (g *Grid) Blocked(x, y int) bool {
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return true
	}
	return g.cells[y*g.cols+x] == Obstacle
}

// ObstacleCount returns the number of obstacle cells
func (g *Grid) ObstacleCount() int {
	return g.obstacles
}

// Obstacles lists obstacle cells in row-major order
func (g *Grid) Obstacles() []core.Point {
	out := make([]core.Point, 0, g.obstacles)
	for i, s := range g.cells {
		if s == Obstacle {
			out = append(out, core.Point{X: i % g.cols, Y: i / g.cols})
		}
	}
	return out
}
