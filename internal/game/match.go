package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/LifeStruggle/internal/game/events"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/board"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/core"
)

// Result summarises a finished match.
type Result struct {
	ID          string        `json:"id"`
	Score       board.Score   `json:"score"`
	Generations int           `json:"generations"`
	Converged   bool          `json:"converged"`
	Identical   bool          `json:"identical"`
	CycleA      int           `json:"cycle_a"`
	CycleB      int           `json:"cycle_b"`
	Duration    time.Duration `json:"duration"`
	Phase       Phase         `json:"-"`
	Final       *board.Board  `json:"-"`
}

// Draw reports whether neither player is ahead.
func (r Result) Draw() bool { return r.Score.A == r.Score.B }

// Match drives one board from generation 0 up to a generation limit.
type Match struct {
	mu          sync.RWMutex
	id          string
	board       *board.Board
	phase       Phase
	history     []Transition
	generations int
	bus         events.Bus
	logger      zerolog.Logger
	started     time.Time
}

// NewMatch builds the board for tiles a and b (b already facing x=0) and
// moves the match to PhaseAdvancing. The board errors of board.New are
// returned unchanged so callers can test for board.ErrIdenticalTiles.
func NewMatch(ctx context.Context, a, b *core.Tile, generations int, opts ...Option) (*Match, error) {
	if generations < 0 {
		return nil, fmt.Errorf("generations must be non-negative, got %d", generations)
	}

	o := defaultMatchOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}

	m := &Match{
		id:          o.id,
		phase:       PhaseConstructing,
		generations: generations,
		bus:         o.bus,
		logger:      o.logger.With().Str("match_id", o.id).Logger(),
		started:     time.Now(),
	}

	bd, err := board.New(ctx, a, b, append(o.boardOpts, board.WithLogger(m.logger))...)
	if err != nil {
		return nil, err
	}
	m.board = bd

	if err := m.transitionTo(PhaseAdvancing, "backgrounds discovered"); err != nil {
		return nil, err
	}

	bg := bd.Background()
	m.publish(events.NewMatchStartedEvent(m.id, bd.TileSize(), bg.A.Len(), bg.B.Len(), generations))
	m.logger.Info().
		Int("tile_size", bd.TileSize()).
		Int("cycle_a", bg.A.Len()).
		Int("cycle_b", bg.B.Len()).
		Int("generations", generations).
		Msg("Match started")

	return m, nil
}

// ID returns the match ID.
func (m *Match) ID() string { return m.id }

// Board returns the current generation.
func (m *Match) Board() *board.Board {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.board
}

// Phase returns the current phase.
func (m *Match) Phase() Phase {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.phase
}

// History returns a copy of the phase transitions so far.
func (m *Match) History() []Transition {
	m.mu.RLock()
	defer m.mu.RUnlock()
	history := make([]Transition, len(m.history))
	copy(history, m.history)
	return history
}

// Step advances the match by one generation.
//
// board.ErrConverged is returned when the backgrounds meet; the match is then
// in PhaseConverged. Once the generation limit is reached the match finishes
// and further calls return ErrMatchOver.
func (m *Match) Step(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase.IsTerminal() {
		return ErrMatchOver
	}
	if m.board.Generation() >= m.generations {
		m.finishLocked()
		return ErrMatchOver
	}

	start := time.Now()
	next, err := m.board.NextGeneration(ctx)
	if err != nil {
		if errors.Is(err, board.ErrConverged) {
			gen := m.board.Generation() + 1
			if terr := m.transitionTo(PhaseConverged, fmt.Sprintf("backgrounds equal at generation %d", gen)); terr != nil {
				return terr
			}
			m.publish(events.NewMatchConvergedEvent(m.id, gen))
			m.logger.Info().Int("generation", gen).Msg("Backgrounds converged")
			m.endLocked()
			return err
		}
		if terr := m.transitionTo(PhaseFailed, err.Error()); terr != nil {
			return terr
		}
		m.logger.Error().Err(err).Int("generation", m.board.Generation()).Msg("Generation step failed")
		return fmt.Errorf("generation %d: %w", m.board.Generation()+1, err)
	}
	m.board = next

	first, last, _ := next.Bounds()
	m.publish(events.NewGenerationAdvancedEvent(m.id, next.Generation(), first, last, next.Window().Len(), time.Since(start)))

	if next.Generation() >= m.generations {
		m.finishLocked()
	}
	return nil
}

// Run steps until the match reaches a terminal phase and returns its result.
func (m *Match) Run(ctx context.Context) (Result, error) {
	for !m.Phase().IsTerminal() {
		err := m.Step(ctx)
		switch {
		case err == nil:
		case errors.Is(err, board.ErrConverged), errors.Is(err, ErrMatchOver):
		default:
			return Result{}, err
		}
	}
	return m.Result(), nil
}

// Result reports the match as it stands. A converged match is a draw.
func (m *Match) Result() Result {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.resultLocked()
}

func (m *Match) resultLocked() Result {
	bg := m.board.Background()
	r := Result{
		ID:          m.id,
		Generations: m.board.Generation(),
		Converged:   m.phase == PhaseConverged,
		CycleA:      bg.A.Len(),
		CycleB:      bg.B.Len(),
		Duration:    time.Since(m.started),
		Phase:       m.phase,
		Final:       m.board,
	}
	if !r.Converged {
		r.Score = m.board.Score()
	}
	return r
}

func (m *Match) finishLocked() {
	if err := m.transitionTo(PhaseFinished, "generation limit reached"); err != nil {
		m.logger.Error().Err(err).Msg("Could not finish match")
		return
	}
	m.endLocked()
}

func (m *Match) endLocked() {
	r := m.resultLocked()
	m.publish(events.NewMatchEndedEvent(m.id, r.Score.A, r.Score.B, r.Generations, r.Converged, r.Duration))
	m.logger.Info().
		Int("score_a", r.Score.A).
		Int("score_b", r.Score.B).
		Int("generations", r.Generations).
		Bool("converged", r.Converged).
		Dur("duration", r.Duration).
		Msg("Match ended")
}

// transitionTo must be called with mu held, or before the match is shared.
func (m *Match) transitionTo(target Phase, reason string) error {
	if !m.phase.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, m.phase, target)
	}

	previous := m.phase
	m.phase = target
	m.history = append(m.history, Transition{From: previous, To: target, Reason: reason})

	m.publish(events.NewPhaseTransitionEvent(m.id, previous.String(), target.String(), reason))
	m.logger.Debug().
		Str("from_phase", previous.String()).
		Str("to_phase", target.String()).
		Str("reason", reason).
		Msg("Phase transition completed")
	return nil
}

func (m *Match) publish(e events.Event) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}
