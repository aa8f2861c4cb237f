package core

// Color is a palette slot for a drawn element. Backends decide what each
// slot looks like: ANSI 256 codes in the terminal, RGBA in the window.
type Color uint8

// Palette slots.
const (
	ColorDefault Color = iota
	ColorWater         // background art
	ColorHazard        // falling bubbles
	ColorEdible        // food
	ColorAvatar        // fish drawn as a shape
	ColorButton        // play button face
	ColorTitle         // profile title on the menu
	ColorLabel         // score and button label
	ColorHint          // secondary text
	ColorAlert         // game over banner
)

// String returns the slot name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorWater:
		return "water"
	case ColorHazard:
		return "hazard"
	case ColorEdible:
		return "edible"
	case ColorAvatar:
		return "avatar"
	case ColorButton:
		return "button"
	case ColorTitle:
		return "title"
	case ColorLabel:
		return "label"
	case ColorHint:
		return "hint"
	case ColorAlert:
		return "alert"
	default:
		return "unknown"
	}
}
