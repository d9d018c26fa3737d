package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/LifeStruggle/internal/common"
	"github.com/mitchelldurbincs/LifeStruggle/internal/game"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/board"
)

func TestLeader(t *testing.T) {
	assert.Equal(t, common.PlayerA, leader(game.Result{Score: board.Score{A: 6, B: -6}}))
	assert.Equal(t, common.PlayerB, leader(game.Result{Score: board.Score{A: -3, B: -1}}))
	assert.Equal(t, common.Contested, leader(game.Result{}))
}
