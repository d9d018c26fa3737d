package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Command is one viewer action triggered by a key or click.
type Command int

const (
	CommandNone Command = iota
	CommandTogglePause
	CommandStep
	CommandFaster
	CommandSlower
	CommandPanLeft
	CommandPanRight
	CommandRecenter
)

const (
	minTicks = 1
	maxTicks = 240
)

type Handler struct {
	// Mouse state
	mouseX, mouseY int

	paused             bool
	stepPending        bool
	ticksPerGeneration int
	pan                int
}

func NewHandler(ticksPerGeneration int) *Handler {
	if ticksPerGeneration < minTicks {
		ticksPerGeneration = minTicks
	}
	return &Handler{ticksPerGeneration: ticksPerGeneration}
}

// Update polls ebiten for input and applies it.
func (h *Handler) Update() {
	h.mouseX, h.mouseY = ebiten.CursorPosition()

	keys := map[ebiten.Key]Command{
		ebiten.KeySpace: CommandTogglePause,
		ebiten.KeyN:     CommandStep,
		ebiten.KeyUp:    CommandFaster,
		ebiten.KeyDown:  CommandSlower,
		ebiten.KeyLeft:  CommandPanLeft,
		ebiten.KeyRight: CommandPanRight,
		ebiten.KeyHome:  CommandRecenter,
	}
	for key, cmd := range keys {
		if inpututil.IsKeyJustPressed(key) {
			h.Apply(cmd)
		}
	}
}

// Apply changes the handler state for one command.
func (h *Handler) Apply(cmd Command) {
	switch cmd {
	case CommandTogglePause:
		h.paused = !h.paused
	case CommandStep:
		// Stepping by hand only makes sense while paused
		h.paused = true
		h.stepPending = true
	case CommandFaster:
		h.ticksPerGeneration /= 2
		if h.ticksPerGeneration < minTicks {
			h.ticksPerGeneration = minTicks
		}
	case CommandSlower:
		h.ticksPerGeneration *= 2
		if h.ticksPerGeneration > maxTicks {
			h.ticksPerGeneration = maxTicks
		}
	case CommandPanLeft:
		h.pan--
	case CommandPanRight:
		h.pan++
	case CommandRecenter:
		h.pan = 0
	}
}

// TakeStep reports whether a manual step was requested and clears it.
func (h *Handler) TakeStep() bool {
	step := h.stepPending
	h.stepPending = false
	return step
}

func (h *Handler) Paused() bool            { return h.paused }
func (h *Handler) TicksPerGeneration() int { return h.ticksPerGeneration }
func (h *Handler) Pan() int                { return h.pan }

func (h *Handler) GetCursorPosition() (int, int) {
	return h.mouseX, h.mouseY
}
