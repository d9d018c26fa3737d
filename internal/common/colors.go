package common

import (
	"image/color"
)

// Owner ids used when tinting tiles by the background they match.
const (
	Contested = -1
	PlayerA   = 0
	PlayerB   = 1
)

// Cell colors for raster output
var (
	LiveColor color.Color = color.Black
	DeadColor color.Color = color.White
)

// Palette is the board image palette: index 0 is dead, index 1 is live.
var Palette = color.Palette{DeadColor, LiveColor}

// PlayerColors tints tiles in the viewer by which side they currently match
var PlayerColors = map[int]color.Color{
	Contested: color.RGBA{120, 120, 120, 255}, // gray
	PlayerA:   color.RGBA{200, 50, 50, 255},   // red
	PlayerB:   color.RGBA{50, 100, 200, 255},  // blue
}

// UI colors
var (
	BackgroundColor = color.RGBA{50, 50, 50, 255}
	BorderColor     = color.RGBA{230, 200, 40, 255}
)

// OwnerColor returns the tint for an owner id, gray for anything unknown.
func OwnerColor(owner int) color.Color {
	if c, ok := PlayerColors[owner]; ok {
		return c
	}
	return PlayerColors[Contested]
}
