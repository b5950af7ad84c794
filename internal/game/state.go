package game

import "fmt"

// AssociationState is the derived relationship of an entity to the active
// tasks. States are ordered; within one recompute pass they only move up.
type AssociationState int

const (
	Idle AssociationState = iota
	Associated
	ReadyForResolution
)

func (s AssociationState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Associated:
		return "associated"
	case ReadyForResolution:
		return "ready"
	default:
		return "unknown"
	}
}

func (s AssociationState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *AssociationState) UnmarshalText(text []byte) error {
	for _, st := range []AssociationState{Idle, Associated, ReadyForResolution} {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown association state: %s", text)
}

// Upgrade applies one task's outcome to s. A completed task forces
// ReadyForResolution; an open task lifts Idle to Associated and never
// lowers ReadyForResolution.
func (s AssociationState) Upgrade(completed bool) AssociationState {
	if completed {
		return ReadyForResolution
	}
	if s == ReadyForResolution {
		return s
	}
	return Associated
}
