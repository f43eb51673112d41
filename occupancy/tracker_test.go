package occupancy

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VictorJude046/A-Path-finding-project/core"
	"github.com/VictorJude046/A-Path-finding-project/grid"
)

func newTestTracker(t *testing.T, rows, cols int, opts Options) (*grid.Grid, *Tracker) {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(7))
	}
	return g, NewTracker(g, opts)
}

func TestPlaceAgent_CreateThenRelocate(t *testing.T) {
	_, tr := newTestTracker(t, 5, 5, Options{})

	_, ok := tr.Agent()
	assert.False(t, ok, "no agent before first placement")

	first, err := tr.PlaceAgent(core.Point{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, KindAgent, first.Kind)
	assert.True(t, strings.HasPrefix(string(first.ID), "agent_"))
	epoch := tr.AgentEpoch()

	second, err := tr.PlaceAgent(core.Point{X: 3, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "agent is upserted, not duplicated")
	assert.Equal(t, core.Point{X: 3, Y: 2}, second.Pos)
	assert.Greater(t, tr.AgentEpoch(), epoch, "relocation invalidates paths")
	assert.Len(t, tr.Entities(), 1)
}

func TestPlaceAgent_Rejections(t *testing.T) {
	g, tr := newTestTracker(t, 5, 5, Options{})
	require.NoError(t, g.SetObstacle(core.Point{X: 2, Y: 2}))

	_, err := tr.PlaceAgent(core.Point{X: 5, Y: 0})
	assert.ErrorIs(t, err, core.ErrOutOfBounds)

	_, err = tr.PlaceAgent(core.Point{X: 2, Y: 2})
	assert.ErrorIs(t, err, core.ErrCellBlocked)

	obj, err := tr.PlaceObjectRandom()
	require.NoError(t, err)
	_, err = tr.PlaceAgent(obj.Pos)
	assert.ErrorIs(t, err, core.ErrCellBlocked)

	_, ok := tr.Agent()
	assert.False(t, ok, "failed placements create nothing")
	assert.Zero(t, tr.AgentEpoch())
}

func TestTracker_ObstacleOnAgentRejected(t *testing.T) {
	g, tr := newTestTracker(t, 5, 5, Options{})
	agent, err := tr.PlaceAgent(core.Point{X: 0, Y: 0})
	require.NoError(t, err)

	err = g.SetObstacle(agent.Pos)
	assert.ErrorIs(t, err, core.ErrCellBlocked)
	assert.ErrorIs(t, err, core.ErrCellOccupiedByAgent)
	assert.Zero(t, g.ObstacleCount())
}

func TestPlaceObjectRandom_NeverOverlaps(t *testing.T) {
	g, tr := newTestTracker(t, 4, 4, Options{})
	require.NoError(t, g.SetObstacle(core.Point{X: 0, Y: 0}))
	require.NoError(t, g.SetObstacle(core.Point{X: 3, Y: 3}))
	_, err := tr.PlaceAgent(core.Point{X: 1, Y: 1})
	require.NoError(t, err)

	seen := map[core.Point]bool{{X: 0, Y: 0}: true, {X: 3, Y: 3}: true, {X: 1, Y: 1}: true}
	for i := 0; i < 13; i++ {
		obj, err := tr.PlaceObjectRandom()
		require.NoError(t, err, "spawn %d", i)
		assert.Equal(t, KindObject, obj.Kind)
		assert.False(t, seen[obj.Pos], "object %d landed on taken cell %v", i, obj.Pos)
		assert.NotEqual(t, ShapeSquare, obj.Look.Shape, "objects never take the agent glyph")
		seen[obj.Pos] = true
	}

	_, err = tr.PlaceObjectRandom()
	assert.ErrorIs(t, err, core.ErrNoSpaceAvailable, "saturated grid reports instead of spinning")
	assert.Len(t, tr.Objects(), 13)
}

func TestPlaceObjectRandom_FallbackScan(t *testing.T) {
	// One attempt on a nearly full grid forces the scan path
	g, tr := newTestTracker(t, 3, 3, Options{MaxPlacementAttempts: 1})
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 2 && y == 1 {
				continue
			}
			require.NoError(t, g.SetObstacle(core.Point{X: x, Y: y}))
		}
	}

	obj, err := tr.PlaceObjectRandom()
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 2, Y: 1}, obj.Pos)
}

func TestPlaceObjectRandom_RespectsReserved(t *testing.T) {
	dest := core.Point{X: 1, Y: 0}
	_, tr := newTestTracker(t, 1, 2, Options{
		Reserved: func(p core.Point) bool { return p == dest },
	})

	obj, err := tr.PlaceObjectRandom()
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 0, Y: 0}, obj.Pos)

	_, err = tr.PlaceObjectRandom()
	assert.ErrorIs(t, err, core.ErrNoSpaceAvailable)
}

func TestMoveEntity_Validated(t *testing.T) {
	g, tr := newTestTracker(t, 5, 5, Options{Policy: MoveValidated})
	require.NoError(t, g.SetObstacle(core.Point{X: 4, Y: 4}))
	agent, err := tr.PlaceAgent(core.Point{X: 0, Y: 0})
	require.NoError(t, err)
	obj, err := tr.PlaceObjectRandom()
	require.NoError(t, err)

	assert.ErrorIs(t, tr.MoveEntity(obj.ID, core.Point{X: 4, Y: 4}), core.ErrCellBlocked)
	assert.ErrorIs(t, tr.MoveEntity(obj.ID, agent.Pos), core.ErrCellBlocked)
	assert.ErrorIs(t, tr.MoveEntity(agent.ID, obj.Pos), core.ErrCellBlocked)
	assert.ErrorIs(t, tr.MoveEntity(obj.ID, core.Point{X: -1, Y: 0}), core.ErrOutOfBounds)
	assert.ErrorIs(t, tr.MoveEntity("obj_missing", core.Point{X: 1, Y: 1}), core.ErrUnknownEntity)

	got, _ := tr.Get(obj.ID)
	assert.Equal(t, obj.Pos, got.Pos, "rejected moves leave state untouched")

	target := core.Point{X: 2, Y: 3}
	if target == obj.Pos {
		target = core.Point{X: 3, Y: 2}
	}
	require.NoError(t, tr.MoveEntity(obj.ID, target))
	assert.True(t, tr.IsBlocked(target))
	assert.False(t, tr.IsBlocked(obj.Pos), "old cell released")
}

func TestMoveEntity_Unchecked(t *testing.T) {
	g, tr := newTestTracker(t, 3, 3, Options{Policy: MoveUnchecked})
	require.NoError(t, g.SetObstacle(core.Point{X: 2, Y: 2}))
	a, err := tr.PlaceObjectRandom()
	require.NoError(t, err)
	b, err := tr.PlaceObjectRandom()
	require.NoError(t, err)

	require.NoError(t, tr.MoveEntity(a.ID, core.Point{X: 2, Y: 2}), "drag onto obstacle allowed")

	stack := core.Point{X: 0, Y: 1}
	require.NoError(t, tr.MoveEntity(a.ID, stack))
	require.NoError(t, tr.MoveEntity(b.ID, stack), "drag onto another object allowed")

	require.NoError(t, tr.MoveEntity(a.ID, core.Point{X: 1, Y: 0}))
	assert.True(t, tr.IsBlocked(stack), "b still holds the stacked cell")
	assert.ErrorIs(t, tr.MoveEntity(a.ID, core.Point{X: 3, Y: 0}), core.ErrOutOfBounds)
}

func TestIsBlocked_Layers(t *testing.T) {
	g, tr := newTestTracker(t, 3, 3, Options{})
	require.NoError(t, g.SetObstacle(core.Point{X: 0, Y: 0}))
	agent, err := tr.PlaceAgent(core.Point{X: 1, Y: 1})
	require.NoError(t, err)
	obj, err := tr.PlaceObjectRandom()
	require.NoError(t, err)

	assert.True(t, tr.IsBlocked(core.Point{X: 0, Y: 0}), "obstacle blocks")
	assert.True(t, tr.IsBlocked(obj.Pos), "object blocks")
	assert.False(t, tr.IsBlocked(agent.Pos), "agent never blocks")
	assert.True(t, tr.Blocked(-1, 0), "out of bounds blocks")

	blocked, _ := g.IsObstacle(obj.Pos)
	assert.False(t, blocked, "objects never leak into the obstacle layer")
}

func TestRemove(t *testing.T) {
	_, tr := newTestTracker(t, 3, 3, Options{})
	agent, err := tr.PlaceAgent(core.Point{X: 0, Y: 0})
	require.NoError(t, err)
	obj, err := tr.PlaceObjectRandom()
	require.NoError(t, err)

	require.NoError(t, tr.Remove(obj.ID))
	assert.False(t, tr.IsBlocked(obj.Pos))
	_, ok := tr.Get(obj.ID)
	assert.False(t, ok)

	epoch := tr.AgentEpoch()
	require.NoError(t, tr.Remove(agent.ID))
	_, ok = tr.Agent()
	assert.False(t, ok)
	assert.Greater(t, tr.AgentEpoch(), epoch)
	assert.Empty(t, tr.Entities())

	assert.ErrorIs(t, tr.Remove(agent.ID), core.ErrUnknownEntity)
}

func TestEntityAt(t *testing.T) {
	_, tr := newTestTracker(t, 2, 2, Options{})
	agent, err := tr.PlaceAgent(core.Point{X: 1, Y: 0})
	require.NoError(t, err)

	got, ok := tr.EntityAt(core.Point{X: 1, Y: 0})
	require.True(t, ok)
	assert.Equal(t, agent.ID, got.ID)

	_, ok = tr.EntityAt(core.Point{X: 0, Y: 1})
	assert.False(t, ok)
}

func TestParseMovePolicy(t *testing.T) {
	for in, want := range map[string]MovePolicy{"": MoveValidated, "validated": MoveValidated, "unchecked": MoveUnchecked} {
		got, err := ParseMovePolicy(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMovePolicy("lenient")
	assert.Error(t, err)
}

func TestBlocked_AgentCellNeverBlocks(t *testing.T) {
	_, tr := newTestTracker(t, 3, 3, Options{Policy: MoveUnchecked})
	agent, err := tr.PlaceAgent(core.Point{X: 0, Y: 0})
	require.NoError(t, err)
	obj, err := tr.PlaceObjectRandom()
	require.NoError(t, err)

	require.NoError(t, tr.MoveEntity(obj.ID, agent.Pos), "unchecked drag stacks onto the agent")
	assert.False(t, tr.IsBlocked(agent.Pos))
	assert.False(t, tr.Blocked(agent.Pos.X, agent.Pos.Y))

	_, err = tr.PlaceAgent(core.Point{X: 2, Y: 2})
	require.NoError(t, err)
	assert.True(t, tr.IsBlocked(core.Point{X: 0, Y: 0}), "object blocks once the agent leaves")
}
