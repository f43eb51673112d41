package core

import (
	"errors"
	"fmt"
)

// Recoverable request failures shared by grid, occupancy, navigation and world
var (
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrOutOfBounds       = errors.New("position out of bounds")
	ErrCellBlocked       = errors.New("cell blocked")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrNoPathFound       = errors.New("no path found")
	ErrNoSpaceAvailable  = errors.New("no space available")
	ErrUnknownEntity     = errors.New("unknown entity")
	ErrNoAgent           = errors.New("no agent placed")
)

// ErrCellOccupiedByAgent matches both itself and ErrCellBlocked under errors.Is
var ErrCellOccupiedByAgent = fmt.Errorf("%w: occupied by agent", ErrCellBlocked)
