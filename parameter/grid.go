package parameter

import "time"

// Grid defaults: 500×400 canvas at 20 px per cell
const (
	DefaultRows     = 20
	DefaultCols     = 25
	DefaultCellSize = 2 // Terminal columns per grid cell

	// MaxGridCells caps rows*cols accepted from config
	MaxGridCells = 1 << 20
)

// Placement
const (
	// DefaultPlacementAttempts is random draws before falling back to a free-cell scan
	DefaultPlacementAttempts = 64
)

// Animation
const (
	// DefaultStepInterval is time between agent steps while walking a path
	DefaultStepInterval = 120 * time.Millisecond
)

// Layout
const (
	DefaultScatterDensity = 0.2
	DefaultMazeBraiding   = 0.2
)
