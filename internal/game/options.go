package game

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/LifeStruggle/internal/game/events"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/board"
)

type matchOptions struct {
	id        string
	bus       events.Bus
	logger    zerolog.Logger
	boardOpts []board.Option
}

// Option configures a Match.
type Option func(*matchOptions)

func defaultMatchOptions() matchOptions {
	return matchOptions{
		logger: log.With().Str("component", "match").Logger(),
	}
}

// WithID sets the match ID instead of generating a random one.
func WithID(id string) Option {
	return func(o *matchOptions) { o.id = id }
}

// WithEventBus publishes match events on bus.
func WithEventBus(bus events.Bus) Option {
	return func(o *matchOptions) { o.bus = bus }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *matchOptions) { o.logger = logger }
}

// WithBoardOptions passes storage, worker and cycle options to the board.
func WithBoardOptions(opts ...board.Option) Option {
	return func(o *matchOptions) { o.boardOpts = append(o.boardOpts, opts...) }
}
