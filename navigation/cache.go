package navigation

import "github.com/VictorJude046/A-Path-finding-project/core"

// FieldCache keeps a DistanceField current against an occupancy revision and target
type FieldCache struct {
	Field *DistanceField

	LastTarget   core.Point
	LastRevision uint64

	// PendingUpdate latches true on MarkDirty, cleared after compute
	PendingUpdate bool

	// Recomputes counts full field computations
	Recomputes int
}

// NewFieldCache creates a cache that computes on first Update
func NewFieldCache(width, height int) *FieldCache {
	return &FieldCache{
		Field:         NewDistanceField(width, height),
		LastTarget:    core.Point{X: -1, Y: -1},
		PendingUpdate: true,
	}
}

// Update recomputes when the target or revision changed since the last compute
// Returns true if field was recomputed
func (c *FieldCache) Update(target core.Point, revision uint64, isBlocked WallChecker) bool {
	if !c.PendingUpdate && c.Field.Valid && target == c.LastTarget && revision == c.LastRevision {
		return false
	}

	c.Field.Compute(target, isBlocked)
	c.LastTarget = target
	c.LastRevision = revision
	c.PendingUpdate = false
	c.Recomputes++
	return true
}

// MarkDirty forces recomputation on next Update
func (c *FieldCache) MarkDirty() {
	c.PendingUpdate = true
}

// Distance returns cached BFS distance
func (c *FieldCache) Distance(p core.Point) int {
	return c.Field.Distance(p)
}

// Reachable returns true if p connects to the cached target
func (c *FieldCache) Reachable(p core.Point) bool {
	return c.Field.Reachable(p)
}

// IsValid returns true if field has valid data
func (c *FieldCache) IsValid() bool {
	return c.Field.Valid
}
