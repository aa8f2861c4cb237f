package render

import (
	"math"

	"github.com/vovakirdan/bubble-dodge/internal/assets"
	"github.com/vovakirdan/bubble-dodge/internal/core"
)

// CellCanvas draws onto a core.Screen, scaling the field to fill it.
type CellCanvas struct {
	screen *core.Screen
	fieldW float64
	fieldH float64
	art    map[string]assets.Art
}

// NewCellCanvas creates a canvas mapping a fieldW × fieldH field onto screen.
// art supplies the sprites by name; it may be nil.
func NewCellCanvas(screen *core.Screen, fieldW, fieldH float64, art map[string]assets.Art) *CellCanvas {
	return &CellCanvas{
		screen: screen,
		fieldW: fieldW,
		fieldH: fieldH,
		art:    art,
	}
}

// Screen returns the underlying buffer.
func (c *CellCanvas) Screen() *core.Screen {
	return c.screen
}

func (c *CellCanvas) scale() (sx, sy float64) {
	return float64(c.screen.Width()) / c.fieldW, float64(c.screen.Height()) / c.fieldH
}

// ToCell returns the cell containing field point p.
func (c *CellCanvas) ToCell(p core.Vec2) (col, row int) {
	sx, sy := c.scale()
	return int(math.Floor(p.X * sx)), int(math.Floor(p.Y * sy))
}

// ToField returns the field point at the centre of a cell.
func (c *CellCanvas) ToField(col, row int) core.Vec2 {
	sx, sy := c.scale()
	return core.Vec2{X: (float64(col) + 0.5) / sx, Y: (float64(row) + 0.5) / sy}
}

// cellRect returns the cells covered by box b.
func (c *CellCanvas) cellRect(b core.Box) core.Rect {
	sx, sy := c.scale()
	x0 := int(math.Floor(b.X * sx))
	y0 := int(math.Floor(b.Y * sy))
	x1 := int(math.Ceil(b.Right() * sx))
	y1 := int(math.Ceil(b.Bottom() * sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Clear blanks the screen.
func (c *CellCanvas) Clear() {
	c.screen.Clear()
}

// DrawShape fills the cells whose centres fall inside the shape. A shape
// smaller than a cell still marks the cell holding its centre.
func (c *CellCanvas) DrawShape(s Shape) {
	fill := s.Rune
	if fill == 0 {
		fill = '█'
	}

	r := c.cellRect(s.Box)
	if s.Kind == ShapeRect {
		c.screen.DrawRect(r, fill, s.Color)
		return
	}

	center := s.Box.Center()
	rx, ry := s.Box.W/2, s.Box.H/2
	drawn := false
	for row := r.Y; row < r.Bottom(); row++ {
		for col := r.X; col < r.Right(); col++ {
			p := c.ToField(col, row)
			dx, dy := (p.X-center.X)/rx, (p.Y-center.Y)/ry
			if dx*dx+dy*dy <= 1 {
				c.screen.SetCell(col, row, fill, s.Color)
				drawn = true
			}
		}
	}
	if !drawn {
		col, row := c.ToCell(center)
		c.screen.SetCell(col, row, fill, s.Color)
	}
}

// DrawSprite draws text art. Tiled art repeats across the box; otherwise the
// art is centred on the box centre.
func (c *CellCanvas) DrawSprite(s Sprite) bool {
	art, ok := c.art[s.Name]
	if !ok || art.Height == 0 {
		return false
	}
	if s.Mirror {
		art = art.Mirror()
	}

	if s.Tile {
		r := c.cellRect(s.Box)
		for row := r.Y; row < r.Bottom(); row++ {
			line := []rune(art.Lines[(row-r.Y)%art.Height])
			if len(line) == 0 {
				continue
			}
			for col := r.X; col < r.Right(); col++ {
				ch := line[(col-r.X)%len(line)]
				if ch != ' ' {
					c.screen.SetCell(col, row, ch, s.Color)
				}
			}
		}
		return true
	}

	col, row := c.ToCell(s.Box.Center())
	left := col - art.Width/2
	top := row - art.Height/2
	for i, line := range art.Lines {
		c.screen.DrawTextColor(left, top+i, line, s.Color)
	}
	return true
}

// DrawText writes text at the cell holding t.Pos.
func (c *CellCanvas) DrawText(t Text) {
	col, row := c.ToCell(t.Pos)
	if t.Centered {
		c.screen.DrawTextCentered(row, t.Text, t.Color)
		return
	}
	c.screen.DrawTextColor(col, row, t.Text, t.Color)
}
