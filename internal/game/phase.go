package game

import "fmt"

// Phase represents where a match is in its life cycle
type Phase int

const (
	// PhaseConstructing - backgrounds are being discovered
	PhaseConstructing Phase = iota

	// PhaseAdvancing - generations are being computed
	PhaseAdvancing

	// PhaseConverged - both backgrounds became identical
	PhaseConverged

	// PhaseFinished - the generation limit was reached
	PhaseFinished

	// PhaseFailed - a step returned an error
	PhaseFailed
)

// String returns the string representation of a Phase
func (p Phase) String() string {
	switch p {
	case PhaseConstructing:
		return "Constructing"
	case PhaseAdvancing:
		return "Advancing"
	case PhaseConverged:
		return "Converged"
	case PhaseFinished:
		return "Finished"
	case PhaseFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if no further generations can be computed
func (p Phase) IsTerminal() bool {
	return p == PhaseConverged || p == PhaseFinished || p == PhaseFailed
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p Phase) AllowedTransitions() []Phase {
	switch p {
	case PhaseConstructing:
		return []Phase{PhaseAdvancing, PhaseFailed}
	case PhaseAdvancing:
		return []Phase{PhaseConverged, PhaseFinished, PhaseFailed}
	default:
		return []Phase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p Phase) CanTransitionTo(target Phase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// Transition represents a phase change in the match history
type Transition struct {
	From   Phase
	To     Phase
	Reason string
}
