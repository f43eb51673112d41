package navigation

import "github.com/VictorJude046/A-Path-finding-project/core"

// Direction constants for the distance field
// Index into core.Cardinals: N=0, E=1, S=2, W=3
const (
	DirNone   int8 = -1 // Blocked or unreachable
	DirTarget int8 = -2 // At target cell
	DirN      int8 = 0
	DirE      int8 = 1
	DirS      int8 = 2
	DirW      int8 = 3
	DirCount  int8 = 4
)

// DistanceField stores unit-cost BFS distances to a target and the descent direction per cell
type DistanceField struct {
	Width, Height int
	Directions    []int8 // Per-cell direction index, DirNone if blocked
	Distances     []int  // Steps to target, unvisited if unreachable

	// Cache state
	Target core.Point
	Valid  bool

	// Reusable BFS queue
	queue []int
}

// NewDistanceField creates an empty field for the given dimensions
func NewDistanceField(width, height int) *DistanceField {
	size := width * height
	return &DistanceField{
		Width:      width,
		Height:     height,
		Directions: make([]int8, size),
		Distances:  make([]int, size),
		Target:     core.Point{X: -1, Y: -1},
		queue:      make([]int, 0, size),
	}
}

// Invalidate marks field for recomputation
func (f *DistanceField) Invalidate() {
	f.Valid = false
}

// Compute runs BFS outward from target, then derives directions by steepest descent
// The target cell itself is seeded even if isBlocked reports it
func (f *DistanceField) Compute(target core.Point, isBlocked WallChecker) {
	if !target.Within(f.Width, f.Height) {
		f.Valid = false
		return
	}

	w := f.Width
	for i := range f.Distances {
		f.Directions[i] = DirNone
		f.Distances[i] = unvisited
	}

	// Phase 1: BFS
	targetIdx := target.Y*w + target.X
	f.Distances[targetIdx] = 0
	f.queue = append(f.queue[:0], targetIdx)

	for head := 0; head < len(f.queue); head++ {
		idx := f.queue[head]
		cx, cy := idx%w, idx/w
		for _, d := range core.Cardinals {
			nx, ny := cx+d.X, cy+d.Y
			if nx < 0 || ny < 0 || nx >= w || ny >= f.Height {
				continue
			}
			nIdx := ny*w + nx
			if f.Distances[nIdx] != unvisited || isBlocked(nx, ny) {
				continue
			}
			f.Distances[nIdx] = f.Distances[idx] + 1
			f.queue = append(f.queue, nIdx)
		}
	}

	// Phase 2: steepest descent, first direction wins ties
	f.Directions[targetIdx] = DirTarget
	for _, idx := range f.queue[1:] {
		x, y := idx%w, idx/w
		for dir := int8(0); dir < DirCount; dir++ {
			nx, ny := x+core.Cardinals[dir].X, y+core.Cardinals[dir].Y
			if nx < 0 || ny < 0 || nx >= w || ny >= f.Height {
				continue
			}
			if f.Distances[ny*w+nx] == f.Distances[idx]-1 {
				f.Directions[idx] = dir
				break
			}
		}
	}

	f.Target = target
	f.Valid = true
}

// Direction returns the descent direction at p, DirNone if invalid/blocked
func (f *DistanceField) Direction(p core.Point) int8 {
	if !f.Valid || !p.Within(f.Width, f.Height) {
		return DirNone
	}
	return f.Directions[p.Y*f.Width+p.X]
}

// Distance returns steps from p to target, -1 if unreachable
func (f *DistanceField) Distance(p core.Point) int {
	if !f.Valid || !p.Within(f.Width, f.Height) {
		return -1
	}
	d := f.Distances[p.Y*f.Width+p.X]
	if d == unvisited {
		return -1
	}
	return d
}

// Reachable reports whether p connects to the target
func (f *DistanceField) Reachable(p core.Point) bool {
	return f.Distance(p) >= 0
}

// Descend follows directions from p to the target, nil if p is unreachable
func (f *DistanceField) Descend(p core.Point) Path {
	d := f.Distance(p)
	if d < 0 {
		return nil
	}
	path := make(Path, 0, d)
	for cur := p; cur != f.Target; {
		cur = cur.Add(core.Cardinals[f.Direction(cur)])
		path = append(path, cur)
	}
	return path
}
