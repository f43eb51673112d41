package occupancy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/VictorJude046/A-Path-finding-project/core"
	"github.com/VictorJude046/A-Path-finding-project/grid"
	"github.com/VictorJude046/A-Path-finding-project/logger"
	"github.com/VictorJude046/A-Path-finding-project/parameter"
)

// Options configures a Tracker
type Options struct {
	Policy MovePolicy

	// MaxPlacementAttempts bounds random draws in PlaceObjectRandom before the free-cell scan
	MaxPlacementAttempts int

	// Rand drives object placement and looks, nil seeds from the clock
	Rand *rand.Rand

	// Reserved marks cells objects must not spawn on (e.g. the destination)
	Reserved func(p core.Point) bool
}

// Tracker owns movable entities layered over a grid
// Not safe for concurrent use, callers serialize access
type Tracker struct {
	grid *grid.Grid
	opts Options
	rng  *rand.Rand

	entities map[EntityID]*Entity
	order    []EntityID // Creation order, stable iteration
	agentID  EntityID

	// objectsAt counts objects per flat cell index, >1 only under MoveUnchecked
	objectsAt []uint16

	agentEpoch uint64
	log        *logrus.Entry
}

// NewTracker creates a tracker over g and installs its agent probe on the grid
func NewTracker(g *grid.Grid, opts Options) *Tracker {
	if opts.MaxPlacementAttempts <= 0 {
		opts.MaxPlacementAttempts = parameter.DefaultPlacementAttempts
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	t := &Tracker{
		grid:      g,
		opts:      opts,
		rng:       rng,
		entities:  make(map[EntityID]*Entity),
		objectsAt: make([]uint16, g.Rows()*g.Cols()),
		log:       logger.For("occupancy"),
	}
	g.SetAgentProbe(t.isAgentAt)
	return t
}

// Policy returns the active move policy
func (t *Tracker) Policy() MovePolicy {
	return t.opts.Policy
}

// AgentEpoch increments whenever the agent is created, relocated by placement, or removed
// A path computed under an older epoch is stale
func (t *Tracker) AgentEpoch() uint64 {
	return t.agentEpoch
}

func (t *Tracker) isAgentAt(p core.Point) bool {
	if t.agentID == "" {
		return false
	}
	return t.entities[t.agentID].Pos == p
}

func (t *Tracker) idx(p core.Point) int {
	return p.Y*t.grid.Cols() + p.X
}

// PlaceAgent creates the agent at p or relocates the existing one
func (t *Tracker) PlaceAgent(p core.Point) (Entity, error) {
	if !t.grid.InBounds(p) {
		return Entity{}, fmt.Errorf("place agent at (%d,%d): %w", p.X, p.Y, core.ErrOutOfBounds)
	}
	if t.grid.Blocked(p.X, p.Y) || t.objectsAt[t.idx(p)] > 0 {
		return Entity{}, fmt.Errorf("place agent at (%d,%d): %w", p.X, p.Y, core.ErrCellBlocked)
	}

	if t.agentID == "" {
		e := &Entity{ID: newEntityID(KindAgent), Kind: KindAgent, Pos: p, Look: AgentLook}
		t.entities[e.ID] = e
		t.order = append(t.order, e.ID)
		t.agentID = e.ID
	} else {
		t.entities[t.agentID].Pos = p
	}
	t.agentEpoch++

	return *t.entities[t.agentID], nil
}

// Agent returns the agent if one has been placed
func (t *Tracker) Agent() (Entity, bool) {
	if t.agentID == "" {
		return Entity{}, false
	}
	return *t.entities[t.agentID], true
}

// PlaceObjectRandom spawns an object on a uniformly random free cell
// Free excludes obstacles, entity cells and reserved cells
// Random draws are capped, then every free cell is collected and one is drawn
func (t *Tracker) PlaceObjectRandom() (Entity, error) {
	cols, rows := t.grid.Cols(), t.grid.Rows()

	for attempt := 0; attempt < t.opts.MaxPlacementAttempts; attempt++ {
		p := core.Point{X: t.rng.Intn(cols), Y: t.rng.Intn(rows)}
		if t.canSpawnAt(p) {
			return t.spawnObject(p), nil
		}
	}

	free := make([]core.Point, 0, 16)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := core.Point{X: x, Y: y}
			if t.canSpawnAt(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Entity{}, fmt.Errorf("place object: %w", core.ErrNoSpaceAvailable)
	}

	t.log.WithFields(logrus.Fields{
		"attempts":   t.opts.MaxPlacementAttempts,
		"free_cells": len(free),
	}).Warn("Random placement exhausted, falling back to free-cell scan")

	return t.spawnObject(free[t.rng.Intn(len(free))]), nil
}

func (t *Tracker) canSpawnAt(p core.Point) bool {
	if t.grid.Blocked(p.X, p.Y) || t.objectsAt[t.idx(p)] > 0 || t.isAgentAt(p) {
		return false
	}
	if t.opts.Reserved != nil && t.opts.Reserved(p) {
		return false
	}
	return true
}

func (t *Tracker) spawnObject(p core.Point) Entity {
	e := &Entity{ID: newEntityID(KindObject), Kind: KindObject, Pos: p, Look: randomLook(t.rng)}
	t.entities[e.ID] = e
	t.order = append(t.order, e.ID)
	t.objectsAt[t.idx(p)]++
	return *e
}

// MoveEntity relocates id to p according to the move policy
func (t *Tracker) MoveEntity(id EntityID, p core.Point) error {
	e, ok := t.entities[id]
	if !ok {
		return fmt.Errorf("move %s: %w", id, core.ErrUnknownEntity)
	}
	if !t.grid.InBounds(p) {
		return fmt.Errorf("move %s to (%d,%d): %w", id, p.X, p.Y, core.ErrOutOfBounds)
	}
	if e.Pos == p {
		return nil
	}

	if t.opts.Policy == MoveValidated {
		if t.grid.Blocked(p.X, p.Y) {
			return fmt.Errorf("move %s to (%d,%d): obstacle: %w", id, p.X, p.Y, core.ErrCellBlocked)
		}
		if t.objectsAt[t.idx(p)] > 0 || t.isAgentAt(p) {
			return fmt.Errorf("move %s to (%d,%d): occupied: %w", id, p.X, p.Y, core.ErrCellBlocked)
		}
	}

	if e.Kind == KindObject {
		t.objectsAt[t.idx(e.Pos)]--
		t.objectsAt[t.idx(p)]++
	}
	e.Pos = p
	return nil
}

// Remove deletes an entity, removing the agent bumps the agent epoch
func (t *Tracker) Remove(id EntityID) error {
	e, ok := t.entities[id]
	if !ok {
		return fmt.Errorf("remove %s: %w", id, core.ErrUnknownEntity)
	}

	if e.Kind == KindObject {
		t.objectsAt[t.idx(e.Pos)]--
	} else {
		t.agentID = ""
		t.agentEpoch++
	}
	delete(t.entities, id)

	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the entity with the given id
func (t *Tracker) Get(id EntityID) (Entity, bool) {
	e, ok := t.entities[id]
	if !ok {
		return Entity{}, false
	}
	return *e, true
}

// EntityAt returns the most recently created entity at p
func (t *Tracker) EntityAt(p core.Point) (Entity, bool) {
	for i := len(t.order) - 1; i >= 0; i-- {
		if e := t.entities[t.order[i]]; e.Pos == p {
			return *e, true
		}
	}
	return Entity{}, false
}

// Entities returns every entity in creation order
func (t *Tracker) Entities() []Entity {
	out := make([]Entity, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, *t.entities[id])
	}
	return out
}

// Objects returns object entities in creation order
func (t *Tracker) Objects() []Entity {
	out := make([]Entity, 0, len(t.order))
	for _, id := range t.order {
		if e := t.entities[id]; e.Kind == KindObject {
			out = append(out, *e)
		}
	}
	return out
}

// IsBlocked is the planner's blocking predicate: obstacle or object present
// The agent's own cell never blocks, out-of-bounds always does
func (t *Tracker) IsBlocked(p core.Point) bool {
	return t.Blocked(p.X, p.Y)
}

// Blocked is IsBlocked in navigation.WallChecker form
func (t *Tracker) Blocked(x, y int) bool {
	if t.grid.Blocked(x, y) {
		return true
	}
	if t.isAgentAt(core.Point{X: x, Y: y}) {
		return false // Objects stacked onto the agent under MoveUnchecked
	}
	return t.objectsAt[y*t.grid.Cols()+x] > 0
}
