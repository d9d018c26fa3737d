package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/LifeStruggle/internal/config"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/board"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/core"
	"github.com/mitchelldurbincs/LifeStruggle/internal/testutil"
)

func TestBoardOptions(t *testing.T) {
	opts, err := BoardOptions(config.SimulationConfig{Storage: "sparse", Workers: 2, ParallelThreshold: 1})
	require.NoError(t, err)

	m, err := NewMatch(context.Background(), testutil.LWSS(8), core.New(8), 5, WithBoardOptions(opts...), quiet())
	require.NoError(t, err)
	assert.Equal(t, board.StorageSparse, m.Board().Window().Storage())

	_, err = BoardOptions(config.SimulationConfig{Storage: "ring"})
	assert.ErrorIs(t, err, board.ErrUnknownStorage)
}
