package core

// Point is a grid cell coordinate; X is the column, Y the row
type Point struct {
	X, Y int
}

// Cardinal offsets in search order: N, E, S, W
var Cardinals = [4]Point{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
}

// Add returns p shifted by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns |dx| + |dy| between p and other
func (p Point) Manhattan(other Point) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// IsAdjacent4 reports whether other is exactly one cardinal step away
func (p Point) IsAdjacent4(other Point) bool {
	return p.Manhattan(other) == 1
}

// Within reports whether p lies inside a cols×rows rectangle anchored at origin
func (p Point) Within(cols, rows int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < cols && p.Y < rows
}
