package occupancy

import "math/rand"

// Shape is the renderer's glyph choice for an entity
type Shape uint8

const (
	ShapeSquare Shape = iota
	ShapeCircle
	ShapeTriangle
	ShapeDiamond
	shapeCount
)

func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeCircle:
		return "circle"
	case ShapeTriangle:
		return "triangle"
	case ShapeDiamond:
		return "diamond"
	default:
		return "unknown"
	}
}

// Look is a plain cosmetic descriptor, only renderers read it
type Look struct {
	Shape Shape
	Color string
}

// ObjectColors is the palette randomly assigned to spawned objects
var ObjectColors = []string{"blue", "green", "orange", "purple", "teal", "yellow"}

// AgentLook is the red robot square
var AgentLook = Look{Shape: ShapeSquare, Color: "red"}

func randomLook(rng *rand.Rand) Look {
	return Look{
		Shape: Shape(1 + rng.Intn(int(shapeCount)-1)), // agent keeps the square
		Color: ObjectColors[rng.Intn(len(ObjectColors))],
	}
}
