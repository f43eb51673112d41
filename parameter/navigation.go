package parameter

// Navigation - A* search
const (
	// DefaultMaxExpansions bounds node expansions per search, 0 disables the budget
	DefaultMaxExpansions = 0

	// PlannerHeapDivisor sizes the initial frontier buffer as cells/divisor
	PlannerHeapDivisor = 4
)
