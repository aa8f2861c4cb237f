package sim

import "github.com/vovakirdan/bubble-dodge/internal/core"

// Facing is the horizontal direction the avatar sprite looks at.
// It never affects gameplay.
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

// String returns the facing name.
func (f Facing) String() string {
	if f == FacingRight {
		return "right"
	}
	return "left"
}

// Avatar is the player-controlled fish.
type Avatar struct {
	Pos    core.Vec2 // Centre
	Radius float64
	Facing Facing
}

// Bounds returns the avatar's collision box.
func (a Avatar) Bounds() core.Box {
	return core.BoxAround(a.Pos, a.Radius)
}

// Hazard is a falling bubble that ends the game on contact.
type Hazard struct {
	ID     int
	Pos    core.Vec2 // Centre
	Vel    core.Vec2 // Displacement per unit of dt
	Radius float64
	Lethal bool
}

// Bounds returns the hazard's collision box.
func (h Hazard) Bounds() core.Box {
	return core.BoxAround(h.Pos, h.Radius)
}

// Edible is a falling food item worth points when collected.
type Edible struct {
	ID        int
	Pos       core.Vec2 // Centre
	Vel       core.Vec2 // Displacement per unit of dt
	Radius    float64
	Collected bool
}

// Bounds returns the edible's collision box.
func (e Edible) Bounds() core.Box {
	return core.BoxAround(e.Pos, e.Radius)
}

// below reports whether a circle at pos has left the field through the bottom.
func below(pos core.Vec2, radius, fieldH float64) bool {
	return pos.Y-radius > fieldH
}
