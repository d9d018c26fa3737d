package events

import (
	"time"
)

// Event type constants
const (
	TypeMatchStarted       = "match.started"
	TypeGenerationAdvanced = "generation.advanced"
	TypeMatchConverged     = "match.converged"
	TypeMatchEnded         = "match.ended"
	TypePhaseTransition    = "phase.transition"
)

// MatchStartedEvent is published once both background cycles are known
type MatchStartedEvent struct {
	BaseEvent
	TileSize    int `json:"tile_size"`
	CycleA      int `json:"cycle_a"`
	CycleB      int `json:"cycle_b"`
	Generations int `json:"generations"`
}

func NewMatchStartedEvent(matchID string, tileSize, cycleA, cycleB, generations int) *MatchStartedEvent {
	return &MatchStartedEvent{
		BaseEvent:   newBase(TypeMatchStarted, matchID),
		TileSize:    tileSize,
		CycleA:      cycleA,
		CycleB:      cycleB,
		Generations: generations,
	}
}

// GenerationAdvancedEvent is published after every generation
type GenerationAdvancedEvent struct {
	BaseEvent
	Generation int           `json:"generation"`
	First      int           `json:"first"`
	Last       int           `json:"last"`
	Tracked    int           `json:"tracked"`
	StepTime   time.Duration `json:"step_time"`
}

func NewGenerationAdvancedEvent(matchID string, generation, first, last, tracked int, stepTime time.Duration) *GenerationAdvancedEvent {
	return &GenerationAdvancedEvent{
		BaseEvent:  newBase(TypeGenerationAdvanced, matchID),
		Generation: generation,
		First:      first,
		Last:       last,
		Tracked:    tracked,
		StepTime:   stepTime,
	}
}

// MatchConvergedEvent is published when both backgrounds become identical
type MatchConvergedEvent struct {
	BaseEvent
	Generation int `json:"generation"`
}

func NewMatchConvergedEvent(matchID string, generation int) *MatchConvergedEvent {
	return &MatchConvergedEvent{
		BaseEvent:  newBase(TypeMatchConverged, matchID),
		Generation: generation,
	}
}

// MatchEndedEvent is published with the final score
type MatchEndedEvent struct {
	BaseEvent
	ScoreA      int           `json:"score_a"`
	ScoreB      int           `json:"score_b"`
	Generations int           `json:"generations"`
	Converged   bool          `json:"converged"`
	Duration    time.Duration `json:"duration"`
}

func NewMatchEndedEvent(matchID string, scoreA, scoreB, generations int, converged bool, duration time.Duration) *MatchEndedEvent {
	return &MatchEndedEvent{
		BaseEvent:   newBase(TypeMatchEnded, matchID),
		ScoreA:      scoreA,
		ScoreB:      scoreB,
		Generations: generations,
		Converged:   converged,
		Duration:    duration,
	}
}

// PhaseTransitionEvent records a match phase change
type PhaseTransitionEvent struct {
	BaseEvent
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`
}

func NewPhaseTransitionEvent(matchID, from, to, reason string) *PhaseTransitionEvent {
	return &PhaseTransitionEvent{
		BaseEvent: newBase(TypePhaseTransition, matchID),
		From:      from,
		To:        to,
		Reason:    reason,
	}
}
