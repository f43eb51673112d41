package world

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/VictorJude046/A-Path-finding-project/config"
	"github.com/VictorJude046/A-Path-finding-project/core"
	"github.com/VictorJude046/A-Path-finding-project/maze"
)

// ApplyLayout adds obstacles from a generated layout and returns how many cells changed
// Obstacles only accumulate, cells holding an entity or outside the grid are skipped
func (w *World) ApplyLayout(lc config.LayoutConfig) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var cells []core.Point
	switch lc.Kind {
	case config.LayoutEmpty, "":
		return 0, nil

	case config.LayoutMaze:
		seed := lc.Seed
		if seed == 0 {
			seed = w.rng.Int63() | 1
		}
		res := maze.Generate(maze.Config{
			Width:    w.grid.Cols(),
			Height:   w.grid.Rows(),
			Braiding: lc.Braiding,
			Seed:     seed,
		})
		cells = res.WallCells()

	case config.LayoutScatter:
		for y := 0; y < w.grid.Rows(); y++ {
			for x := 0; x < w.grid.Cols(); x++ {
				if w.rng.Float64() < lc.Density {
					cells = append(cells, core.Point{X: x, Y: y})
				}
			}
		}

	default:
		return 0, fmt.Errorf("layout %q: %w", lc.Kind, core.ErrInvalidRequest)
	}

	marked := 0
	for _, p := range cells {
		// Mazes are at least 3x3 and may overhang a smaller grid
		if !w.grid.InBounds(p) {
			continue
		}
		if _, ok := w.tracker.EntityAt(p); ok {
			continue
		}
		changed, err := w.grid.Mark(p)
		if errors.Is(err, core.ErrCellBlocked) {
			continue
		}
		if err != nil {
			return marked, fmt.Errorf("layout %s: %w", lc.Kind, err)
		}
		if changed {
			marked++
		}
	}

	if marked > 0 {
		w.revision++
	}
	w.log.WithFields(logrus.Fields{"kind": lc.Kind, "marked": marked}).Debug("Layout applied")
	return marked, nil
}
