package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/mitchelldurbincs/LifeStruggle/internal/common"
	"github.com/mitchelldurbincs/LifeStruggle/internal/config"
	"github.com/mitchelldurbincs/LifeStruggle/internal/game"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/board"
	"github.com/mitchelldurbincs/LifeStruggle/internal/ui/input"
	"github.com/mitchelldurbincs/LifeStruggle/internal/ui/renderer"
)

const (
	tileGap  = 6
	stripTop = 60
)

// Viewer is an ebiten.Game that plays a match on screen.
type Viewer struct {
	ctx           context.Context
	match         *game.Match
	cfg           config.ViewerConfig
	stripRenderer *renderer.StripRenderer
	input         *input.Handler
	defaultFont   font.Face
	logger        zerolog.Logger

	tickTimer int
}

// NewViewer wraps a running match. The match keeps its own generation limit.
func NewViewer(ctx context.Context, match *game.Match, cfg config.ViewerConfig, logger zerolog.Logger) *Viewer {
	return &Viewer{
		ctx:           ctx,
		match:         match,
		cfg:           cfg,
		stripRenderer: renderer.NewStripRenderer(basicfont.Face7x13),
		input:         input.NewHandler(cfg.TicksPerGeneration),
		defaultFont:   basicfont.Face7x13,
		logger:        logger.With().Str("component", "viewer").Logger(),
	}
}

// Update advances the match on its own timer, or one generation per manual step.
func (v *Viewer) Update() error {
	v.input.Update()

	step := v.input.TakeStep()
	if !v.input.Paused() {
		v.tickTimer++
		if v.tickTimer >= v.input.TicksPerGeneration() {
			v.tickTimer = 0
			step = true
		}
	}
	if !step || v.match.Phase().IsTerminal() {
		return nil
	}

	err := v.match.Step(v.ctx)
	switch {
	case err == nil, errors.Is(err, board.ErrConverged), errors.Is(err, game.ErrMatchOver):
		return nil
	default:
		v.logger.Error().Err(err).Msg("Viewer stopped")
		return err
	}
}

// Draw renders the strip and a status line.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(common.BackgroundColor)

	b := v.match.Board()
	v.stripRenderer.Draw(screen, b, renderer.Layout{
		Scale: v.cfg.Scale,
		Gap:   tileGap,
		Top:   stripTop,
		Width: v.cfg.Width,
		Pan:   v.input.Pan(),
	})

	r := v.match.Result()
	status := fmt.Sprintf("Generation %d  %s  Score %s", b.Generation(), r.Phase, r.Score)
	if v.input.Paused() {
		status += "  [paused]"
	}
	text.Draw(screen, status, v.defaultFont, 8, 20, common.OwnerColor(leader(r)))

	layout := renderer.Layout{Scale: v.cfg.Scale, Gap: tileGap, Width: v.cfg.Width, TileSize: b.TileSize(), Pan: v.input.Pan()}
	mx, _ := v.input.GetCursorPosition()
	if x, ok := layout.PositionAt(mx); ok {
		text.Draw(screen, fmt.Sprintf("Position %d", x), v.defaultFont, 8, 40, renderer.LabelColor)
	}
}

// Layout defines the Ebitengine screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return v.cfg.Width, v.cfg.Height
}

func leader(r game.Result) int {
	switch {
	case r.Score.A > r.Score.B:
		return common.PlayerA
	case r.Score.B > r.Score.A:
		return common.PlayerB
	default:
		return common.Contested
	}
}
