package world

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/VictorJude046/A-Path-finding-project/config"
	"github.com/VictorJude046/A-Path-finding-project/core"
	"github.com/VictorJude046/A-Path-finding-project/grid"
	"github.com/VictorJude046/A-Path-finding-project/logger"
	"github.com/VictorJude046/A-Path-finding-project/navigation"
	"github.com/VictorJude046/A-Path-finding-project/occupancy"
)

// ObstacleResult reports the outcome of ToggleObstacle
type ObstacleResult struct {
	Accepted bool
	Changed  bool // False when the cell already held an obstacle
	Cell     grid.CellState
}

// StepResult reports one agent step along the active path
type StepResult struct {
	Pos       core.Point
	Remaining int
	Arrived   bool
}

// World is the single authoritative simulation state
// Every request is serialized behind one mutex, searches run under the lock
type World struct {
	mu sync.Mutex

	grid    *grid.Grid
	tracker *occupancy.Tracker
	planner *navigation.Planner
	field   *navigation.FieldCache
	rng     *rand.Rand

	// revision increments on every change to the blocking layers
	revision uint64

	dest    core.Point
	hasDest bool

	path      navigation.Path // nil when no route is active
	cursor    int             // Next index into path
	pathEpoch uint64          // Agent epoch the path was computed under

	log *logrus.Entry
}

// New builds a world from cfg, seeding randomness from the clock
func New(cfg *config.Config) (*World, error) {
	return NewWithRand(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand builds a world from cfg using rng for placement and layouts
// The configured layout is applied before the world is returned
func NewWithRand(cfg *config.Config, rng *rand.Rand) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world config: %w", err)
	}

	g, err := grid.New(cfg.Grid.Rows, cfg.Grid.Cols)
	if err != nil {
		return nil, err
	}

	w := &World{
		grid:    g,
		planner: navigation.NewPlanner(g.Cols(), g.Rows()),
		field:   navigation.NewFieldCache(g.Cols(), g.Rows()),
		rng:     rng,
		log:     logger.For("world"),
	}
	w.planner.MaxExpansions = cfg.Search.MaxExpansions
	w.tracker = occupancy.NewTracker(g, occupancy.Options{
		Policy:               cfg.MovePolicy(),
		MaxPlacementAttempts: cfg.Placement.MaxAttempts,
		Rand:                 rng,
		Reserved:             w.isDestination,
	})

	if _, err := w.ApplyLayout(cfg.Layout); err != nil {
		return nil, err
	}

	w.log.WithFields(logrus.Fields{
		"rows":      g.Rows(),
		"cols":      g.Cols(),
		"policy":    w.tracker.Policy(),
		"layout":    cfg.Layout.Kind,
		"obstacles": g.ObstacleCount(),
	}).Info("World created")

	return w, nil
}

// isDestination is the tracker's reserved-cell hook, called with mu held
func (w *World) isDestination(p core.Point) bool {
	return w.hasDest && w.dest == p
}

func (w *World) Rows() int { return w.grid.Rows() }
func (w *World) Cols() int { return w.grid.Cols() }

// ToggleObstacle marks p as a permanent obstacle
// Cells holding the agent or an object are rejected with core.ErrCellBlocked
func (w *World) ToggleObstacle(p core.Point) (ObstacleResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if e, ok := w.tracker.EntityAt(p); ok && e.Kind == occupancy.KindObject {
		err := fmt.Errorf("set obstacle at (%d,%d): object %s: %w", p.X, p.Y, e.ID, core.ErrCellBlocked)
		w.reject("obstacle", err)
		return ObstacleResult{Cell: w.grid.State(p)}, err
	}

	changed, err := w.grid.Mark(p)
	if err != nil {
		w.reject("obstacle", err)
		return ObstacleResult{Cell: w.grid.State(p)}, err
	}
	if changed {
		w.revision++
		w.log.WithFields(logrus.Fields{"x": p.X, "y": p.Y}).Debug("Obstacle placed")
	}

	return ObstacleResult{Accepted: true, Changed: changed, Cell: grid.Obstacle}, nil
}

// SpawnObject places an object on a random free cell, never on the destination
func (w *World) SpawnObject() (occupancy.Entity, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	e, err := w.tracker.PlaceObjectRandom()
	if err != nil {
		w.reject("spawn", err)
		return occupancy.Entity{}, err
	}
	w.revision++
	w.log.WithFields(logrus.Fields{
		"id":    e.ID,
		"x":     e.Pos.X,
		"y":     e.Pos.Y,
		"shape": e.Look.Shape,
		"color": e.Look.Color,
	}).Debug("Object spawned")
	return e, nil
}

// PlaceAgent creates or relocates the agent and drops any active path
// A destination on the new agent cell is cleared
func (w *World) PlaceAgent(p core.Point) (occupancy.Entity, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	e, err := w.tracker.PlaceAgent(p)
	if err != nil {
		w.reject("agent", err)
		return occupancy.Entity{}, err
	}
	w.clearPath()
	if w.isDestination(p) {
		w.hasDest = false
	}
	w.log.WithFields(logrus.Fields{"x": p.X, "y": p.Y, "epoch": w.tracker.AgentEpoch()}).Debug("Agent placed")
	return e, nil
}

// SetDestination stores p as the destination and plans a route from the agent
// Requires an agent (core.ErrNoAgent) and p distinct from the agent cell
// The destination is kept on core.ErrNoPathFound so Recompute can retry later
func (w *World) SetDestination(p core.Point) (navigation.Path, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	agent, ok := w.tracker.Agent()
	if !ok {
		err := fmt.Errorf("set destination: %w", core.ErrNoAgent)
		w.reject("destination", err)
		return nil, err
	}
	if p == agent.Pos {
		err := fmt.Errorf("set destination at agent cell (%d,%d): %w", p.X, p.Y, core.ErrInvalidRequest)
		w.reject("destination", err)
		return nil, err
	}

	path, err := w.plan(agent, p)
	if err != nil && errors.Is(err, core.ErrInvalidRequest) {
		w.reject("destination", err)
		return nil, err
	}

	w.dest, w.hasDest = p, true
	return path, err
}

// Recompute re-plans from the agent to the stored destination
func (w *World) Recompute() (navigation.Path, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	agent, ok := w.tracker.Agent()
	if !ok {
		return nil, fmt.Errorf("recompute: %w", core.ErrNoAgent)
	}
	if !w.hasDest {
		return nil, fmt.Errorf("recompute: no destination: %w", core.ErrInvalidRequest)
	}
	return w.plan(agent, w.dest)
}

// plan runs the search and installs the result as the active path, mu held
func (w *World) plan(agent occupancy.Entity, goal core.Point) (navigation.Path, error) {
	w.clearPath()

	path, err := w.planner.ComputePath(agent.Pos, goal, w.tracker.Blocked)
	stats := w.planner.Stats
	fields := logrus.Fields{
		"from_x":   agent.Pos.X,
		"from_y":   agent.Pos.Y,
		"to_x":     goal.X,
		"to_y":     goal.Y,
		"expanded": stats.Expanded,
		"pushed":   stats.Pushed,
		"stale":    stats.Stale,
	}

	if err != nil {
		if errors.Is(err, core.ErrNoPathFound) {
			w.field.Update(agent.Pos, w.revision, w.tracker.Blocked)
			fields["connected"] = w.field.Reachable(goal)
		}
		w.log.WithFields(fields).WithError(err).Debug("Search failed")
		return nil, err
	}

	w.path = path
	w.cursor = 0
	w.pathEpoch = w.tracker.AgentEpoch()
	fields["length"] = len(path)
	w.log.WithFields(fields).Debug("Path found")

	out := make(navigation.Path, len(path))
	copy(out, path)
	return out, nil
}

func (w *World) clearPath() {
	w.path = nil
	w.cursor = 0
}

// Step advances the agent one cell along the active path
// Under the validated policy a cell that became blocked fails the step and drops the path
func (w *World) Step() (StepResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	agent, ok := w.tracker.Agent()
	if !ok {
		return StepResult{}, fmt.Errorf("step: %w", core.ErrNoAgent)
	}
	if w.path == nil || w.pathEpoch != w.tracker.AgentEpoch() {
		w.clearPath()
		return StepResult{Pos: agent.Pos}, fmt.Errorf("step: no active path: %w", core.ErrInvalidRequest)
	}

	if w.cursor >= len(w.path) {
		w.arrive()
		return StepResult{Pos: agent.Pos, Arrived: true}, nil
	}

	next := w.path[w.cursor]
	if err := w.tracker.MoveEntity(agent.ID, next); err != nil {
		w.clearPath()
		w.log.WithFields(logrus.Fields{"x": next.X, "y": next.Y}).WithError(err).Debug("Step blocked, path dropped")
		return StepResult{Pos: agent.Pos}, fmt.Errorf("step: %w", err)
	}
	w.cursor++

	res := StepResult{Pos: next, Remaining: len(w.path) - w.cursor}
	if res.Remaining == 0 {
		res.Arrived = true
		w.arrive()
	}
	return res, nil
}

// arrive ends the walk, the destination is consumed
func (w *World) arrive() {
	w.clearPath()
	w.hasDest = false
	w.log.Debug("Agent arrived")
}

// DragEntity moves an entity under the configured move policy
// Dragging the agent drops its path
func (w *World) DragEntity(id occupancy.EntityID, p core.Point) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	e, ok := w.tracker.Get(id)
	if !ok {
		err := fmt.Errorf("drag %s: %w", id, core.ErrUnknownEntity)
		w.reject("drag", err)
		return err
	}
	if err := w.tracker.MoveEntity(id, p); err != nil {
		w.reject("drag", err)
		return err
	}

	if e.Kind == occupancy.KindAgent {
		w.clearPath()
		if w.isDestination(p) {
			w.hasDest = false
		}
	} else {
		w.revision++
	}
	return nil
}

// EntityAt returns the topmost entity at p
func (w *World) EntityAt(p core.Point) (occupancy.Entity, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tracker.EntityAt(p)
}

// ReachableFromAgent reports whether p connects to the agent over free cells
func (w *World) ReachableFromAgent(p core.Point) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	agent, ok := w.tracker.Agent()
	if !ok || !w.grid.InBounds(p) {
		return false
	}
	w.field.Update(agent.Pos, w.revision, w.tracker.Blocked)
	return w.field.Reachable(p)
}

// Revision returns the blocking-layer revision counter
func (w *World) Revision() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.revision
}

func (w *World) reject(op string, err error) {
	w.log.WithField("op", op).WithError(err).Debug("Request rejected")
}
