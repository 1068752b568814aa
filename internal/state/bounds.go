package state

import (
	"math/rand"

	"fyne.io/fyne/v2"
)

// clampAxis keeps [pos, pos+extent] inside [0, limit]. When the shape is
// larger than the surface the axis is pinned to 0.
func clampAxis(pos, extent, limit float32) float32 {
	if pos+extent > limit {
		pos = limit - extent
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}

// clampToSurface returns the closest top-left that keeps a box of the
// given size on the surface.
func clampToSurface(pos fyne.Position, size, surface fyne.Size) fyne.Position {
	return fyne.NewPos(
		clampAxis(pos.X, size.Width, surface.Width),
		clampAxis(pos.Y, size.Height, surface.Height),
	)
}

// centered returns the top-left that centers a box of the given size.
func centered(size, surface fyne.Size) fyne.Position {
	return fyne.NewPos((surface.Width-size.Width)/2, (surface.Height-size.Height)/2)
}

// randomPosition picks a uniformly random top-left with the whole box on
// the surface, or 0 on an axis where the surface is too small.
func randomPosition(rng *rand.Rand, size, surface fyne.Size) fyne.Position {
	maxX := surface.Width - size.Width
	if maxX < 0 {
		maxX = 0
	}
	maxY := surface.Height - size.Height
	if maxY < 0 {
		maxY = 0
	}
	return fyne.NewPos(rng.Float32()*maxX, rng.Float32()*maxY)
}
