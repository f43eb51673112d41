package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VictorJude046/A-Path-finding-project/core"
)

func TestFieldCache_RecomputesOnChange(t *testing.T) {
	c := NewFieldCache(4, 4)
	target := core.Point{X: 0, Y: 0}

	assert.True(t, c.Update(target, 1, open), "first update computes")
	assert.False(t, c.Update(target, 1, open), "unchanged target and revision reuse the field")
	assert.True(t, c.Update(target, 2, open), "revision bump recomputes")
	assert.True(t, c.Update(core.Point{X: 1, Y: 1}, 2, open), "target move recomputes")

	c.MarkDirty()
	assert.True(t, c.Update(core.Point{X: 1, Y: 1}, 2, open), "dirty latch recomputes")
	assert.Equal(t, 4, c.Recomputes)

	assert.True(t, c.IsValid())
	assert.Equal(t, 2, c.Distance(core.Point{X: 0, Y: 0}))
	assert.True(t, c.Reachable(core.Point{X: 3, Y: 3}))
}
