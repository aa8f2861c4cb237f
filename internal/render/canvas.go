// Package render defines the drawing surface the game paints each frame on,
// and a cell-grid implementation used by the terminal backends.
package render

import "github.com/vovakirdan/bubble-dodge/internal/core"

// ShapeKind selects the outline of a Shape.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// Shape is a filled primitive in field coordinates.
type Shape struct {
	Kind  ShapeKind
	Box   core.Box
	Color core.Color
	Rune  rune // Fill character on cell backends
}

// Sprite is a named image or text-art asset placed in field coordinates.
type Sprite struct {
	Name   string
	Box    core.Box   // Area the sprite is centred in, or covers when tiled
	Mirror bool       // Flip horizontally
	Tile   bool       // Repeat to fill Box
	Color  core.Color // Tint on cell backends
}

// Text is a string placed in field coordinates.
type Text struct {
	Pos      core.Vec2 // Top-left of the text, or its vertical position when centred
	Text     string
	Color    core.Color
	Centered bool // Centre horizontally on the field
}

// Canvas is the surface a frame is drawn on. Coordinates are field units;
// each backend maps them onto its own pixels or cells. Presenting the
// finished frame is the backend's job.
type Canvas interface {
	Clear()
	DrawShape(s Shape)
	// DrawSprite draws a sprite and reports false when the backend has no
	// asset by that name, so the caller can fall back to a shape.
	DrawSprite(s Sprite) bool
	DrawText(t Text)
}
