package common

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerColors(t *testing.T) {
	tests := []struct {
		owner        int
		expectedName string
		checkColor   func(color.Color) bool
	}{
		{
			owner:        Contested,
			expectedName: "contested gray",
			checkColor: func(c color.Color) bool {
				rgba := c.(color.RGBA)
				return rgba.R == rgba.G && rgba.G == rgba.B && rgba.R == 120
			},
		},
		{
			owner:        PlayerA,
			expectedName: "player A red",
			checkColor: func(c color.Color) bool {
				rgba := c.(color.RGBA)
				return rgba.R > rgba.G && rgba.R > rgba.B
			},
		},
		{
			owner:        PlayerB,
			expectedName: "player B blue",
			checkColor: func(c color.Color) bool {
				rgba := c.(color.RGBA)
				return rgba.B > rgba.R && rgba.B > rgba.G
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.expectedName, func(t *testing.T) {
			c, exists := PlayerColors[tt.owner]
			assert.True(t, exists, "owner %d should have a color", tt.owner)
			assert.True(t, tt.checkColor(c), "color for owner %d should be %s", tt.owner, tt.expectedName)
		})
	}
}

func TestOwnerColor(t *testing.T) {
	assert.Equal(t, PlayerColors[PlayerA], OwnerColor(PlayerA))
	assert.Equal(t, PlayerColors[Contested], OwnerColor(7))
}

func TestPalette(t *testing.T) {
	assert.Len(t, Palette, 2)
	assert.Equal(t, 0, Palette.Index(DeadColor))
	assert.Equal(t, 1, Palette.Index(LiveColor))
}
