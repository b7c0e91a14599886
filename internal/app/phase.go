package app

// Phase is how far a Generator has got through the pipeline.
type Phase int

const (
	// PhaseSeparate is while rooms are still being pushed apart.
	PhaseSeparate Phase = iota
	// PhaseDone is once main rooms, the graph and corridors exist.
	PhaseDone
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSeparate:
		return "separating"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}
