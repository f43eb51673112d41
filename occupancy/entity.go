package occupancy

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/VictorJude046/A-Path-finding-project/core"
)

// Kind tags a movable entity
type Kind uint8

const (
	KindAgent Kind = iota + 1
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindAgent:
		return "agent"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// EntityID identifies an entity for its lifetime
type EntityID string

func newEntityID(k Kind) EntityID {
	prefix := "obj"
	if k == KindAgent {
		prefix = "agent"
	}
	return EntityID(fmt.Sprintf("%s_%s", prefix, uuid.NewString()))
}

// Entity is the agent or a field object
// Look is cosmetic and never inspected by the tracker
type Entity struct {
	ID   EntityID
	Kind Kind
	Pos  core.Point
	Look Look
}

// MovePolicy decides whether MoveEntity validates the target cell
type MovePolicy uint8

const (
	// MoveValidated rejects obstacle cells and cells held by another entity
	MoveValidated MovePolicy = iota
	// MoveUnchecked relocates unconditionally once the target is in bounds
	MoveUnchecked
)

func (m MovePolicy) String() string {
	if m == MoveUnchecked {
		return "unchecked"
	}
	return "validated"
}

// ParseMovePolicy accepts "validated" or "unchecked", empty selects validated
func ParseMovePolicy(s string) (MovePolicy, error) {
	switch s {
	case "", "validated":
		return MoveValidated, nil
	case "unchecked":
		return MoveUnchecked, nil
	default:
		return MoveValidated, fmt.Errorf("unknown move policy %q", s)
	}
}
