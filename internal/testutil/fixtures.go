package testutil

import (
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/core"
	"github.com/mitchelldurbincs/LifeStruggle/internal/patterns"
)

// LWSS returns a tile with a light weight spaceship heading +x in the corner.
func LWSS(size int) *core.Tile { return patterns.MustBuiltin("lwss", size) }

// Glider returns a tile with a single glider heading +x+y.
func Glider(size int) *core.Tile { return patterns.MustBuiltin("glider", size) }

// Gliders returns the two gliders heading -x+y. Mirror it to send them +x.
func Gliders(size int) *core.Tile { return patterns.MustBuiltin("gliders", size) }

func Blinker(size int) *core.Tile { return patterns.MustBuiltin("blinker", size) }

func Block(size int) *core.Tile { return patterns.MustBuiltin("block", size) }
