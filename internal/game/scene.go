package game

import (
	"fmt"

	"github.com/vovakirdan/bubble-dodge/internal/core"
	"github.com/vovakirdan/bubble-dodge/internal/render"
	"github.com/vovakirdan/bubble-dodge/internal/sim"
)

// Asset names the scene asks the canvas for.
const (
	SpriteBackground = "background"
	SpriteAvatar     = "avatar"
)

// Visual characters for cell backends
const (
	HazardChar = 'O'
	EdibleChar = '*'
	AvatarChar = '@'
	ButtonChar = '█'
)

// Draw paints the current frame.
func (g *Game) Draw(c render.Canvas) {
	c.Clear()

	w := g.machine.World()
	field := core.Box{W: w.Width, H: w.Height}
	c.DrawSprite(render.Sprite{Name: SpriteBackground, Box: field, Tile: true, Color: core.ColorWater})

	if g.machine.Phase() == sim.PhaseMenu {
		g.drawMenu(c)
		return
	}

	for _, h := range w.Hazards {
		c.DrawShape(render.Shape{Kind: render.ShapeCircle, Box: h.Bounds(), Color: core.ColorHazard, Rune: HazardChar})
	}
	for _, e := range w.Edibles {
		c.DrawShape(render.Shape{Kind: render.ShapeCircle, Box: e.Bounds(), Color: core.ColorEdible, Rune: EdibleChar})
	}
	g.drawAvatar(c, w.Avatar)

	c.DrawText(render.Text{Pos: core.Vec2{}, Text: fmt.Sprintf("Score: %d", g.machine.Score()), Color: core.ColorLabel})

	if g.machine.Phase() == sim.PhaseEnded {
		g.drawGameOver(c, w)
	}
}

func (g *Game) drawAvatar(c render.Canvas, a sim.Avatar) {
	drawn := c.DrawSprite(render.Sprite{
		Name:   SpriteAvatar,
		Box:    a.Bounds(),
		Mirror: a.Facing == sim.FacingRight,
		Color:  core.ColorAvatar,
	})
	if !drawn {
		c.DrawShape(render.Shape{Kind: render.ShapeCircle, Box: a.Bounds(), Color: core.ColorAvatar, Rune: AvatarChar})
	}
}

func (g *Game) drawMenu(c render.Canvas) {
	btn := g.machine.PlayButton()
	c.DrawText(render.Text{Pos: core.Vec2{Y: btn.Y - 3*btn.H}, Text: g.profile.Title, Color: core.ColorTitle, Centered: true})
	c.DrawShape(render.Shape{Kind: render.ShapeRect, Box: btn, Color: core.ColorButton, Rune: ButtonChar})
	c.DrawText(render.Text{Pos: btn.Center(), Text: "Play", Color: core.ColorLabel, Centered: true})
	c.DrawText(render.Text{Pos: core.Vec2{Y: btn.Bottom() + 2*btn.H}, Text: "Click Play or press Enter", Color: core.ColorHint, Centered: true})
}

func (g *Game) drawGameOver(c render.Canvas, w *sim.World) {
	mid := w.Height / 2
	line := w.Height / 20
	c.DrawText(render.Text{Pos: core.Vec2{Y: mid - line}, Text: "GAME OVER", Color: core.ColorAlert, Centered: true})
	c.DrawText(render.Text{Pos: core.Vec2{Y: mid}, Text: fmt.Sprintf("Score: %d  |  %s", g.machine.Score(), g.machine.Reason()), Color: core.ColorLabel, Centered: true})
	c.DrawText(render.Text{Pos: core.Vec2{Y: mid + line}, Text: "Press Q to quit", Color: core.ColorHint, Centered: true})
}
