package world

import (
	"github.com/VictorJude046/A-Path-finding-project/core"
	"github.com/VictorJude046/A-Path-finding-project/navigation"
	"github.com/VictorJude046/A-Path-finding-project/occupancy"
)

// View is a copy of world state for rendering, safe to read without the lock
type View struct {
	Rows, Cols int
	Obstacles  []core.Point
	Entities   []occupancy.Entity // Creation order, draw in order so later ones are on top

	Agent    occupancy.Entity
	HasAgent bool

	Destination    core.Point
	HasDestination bool

	// Route is the not-yet-walked remainder of the active path
	Route    navigation.Path
	Revision uint64
}

// View snapshots the current state
func (w *World) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	v := View{
		Rows:           w.grid.Rows(),
		Cols:           w.grid.Cols(),
		Obstacles:      w.grid.Obstacles(),
		Entities:       w.tracker.Entities(),
		Destination:    w.dest,
		HasDestination: w.hasDest,
		Revision:       w.revision,
	}
	v.Agent, v.HasAgent = w.tracker.Agent()

	if w.path != nil {
		v.Route = make(navigation.Path, len(w.path)-w.cursor)
		copy(v.Route, w.path[w.cursor:])
	}
	return v
}
