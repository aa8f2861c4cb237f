//go:build window

package window

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/bubble-dodge/internal/assets"
	"github.com/vovakirdan/bubble-dodge/internal/core"
	"github.com/vovakirdan/bubble-dodge/internal/render"
)

// Image asset names used for each sprite.
var spriteImages = map[string]string{
	"background": "background_image",
	"avatar":     "avatar_image",
}

const (
	fontSize  = 24
	fontAsset = "font"

	// debugGlyphW is the width of one character of the debug font.
	debugGlyphW = 6
)

// rgba maps color slots to window colors.
func rgba(c core.Color) color.RGBA {
	switch c {
	case core.ColorWater:
		return color.RGBA{R: 40, G: 90, B: 140, A: 255}
	case core.ColorHazard:
		return color.RGBA{R: 60, G: 170, B: 240, A: 200}
	case core.ColorEdible:
		return color.RGBA{R: 90, G: 200, B: 80, A: 255}
	case core.ColorAvatar:
		return color.RGBA{R: 250, G: 170, B: 40, A: 255}
	case core.ColorButton:
		return color.RGBA{R: 40, G: 160, B: 60, A: 255}
	case core.ColorTitle:
		return color.RGBA{R: 110, G: 170, B: 255, A: 255}
	case core.ColorHint:
		return color.RGBA{R: 150, G: 160, B: 170, A: 255}
	case core.ColorAlert:
		return color.RGBA{R: 230, G: 50, B: 50, A: 255}
	default:
		return color.RGBA{R: 240, G: 240, B: 240, A: 255}
	}
}

// background fills the field before anything is drawn.
var background = color.RGBA{R: 8, G: 24, B: 48, A: 255}

// ImageCanvas draws frames onto an ebiten image sized to the field.
type ImageCanvas struct {
	dst    *ebiten.Image
	images map[string]*ebiten.Image
	art    map[string]assets.Art
	face   *text.GoTextFace
}

// NewImageCanvas prepares GPU images and the font face from the bundle.
// A font that fails to parse leaves text on the debug font.
func NewImageCanvas(b *assets.Bundle) (*ImageCanvas, error) {
	c := &ImageCanvas{images: make(map[string]*ebiten.Image)}
	if b == nil {
		return c, nil
	}

	c.art = b.Art
	for name, img := range b.Images {
		c.images[name] = ebiten.NewImageFromImage(img)
	}
	if data, ok := b.Fonts[fontAsset]; ok {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return c, err
		}
		c.face = &text.GoTextFace{Source: src, Size: fontSize}
	}
	return c, nil
}

// SetTarget sets the image the next frame is drawn on.
func (c *ImageCanvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

// Clear fills the field with the background color.
func (c *ImageCanvas) Clear() {
	c.dst.Fill(background)
}

// DrawShape draws a filled circle or rectangle.
func (c *ImageCanvas) DrawShape(s render.Shape) {
	clr := rgba(s.Color)
	b := s.Box
	switch s.Kind {
	case render.ShapeCircle:
		center := b.Center()
		vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(b.W/2), clr, true)
	default:
		vector.DrawFilledRect(c.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
	}
}

// DrawSprite draws the image for a sprite at its natural size, centred in
// the box or tiled across it. Without an image it falls back to the text art.
func (c *ImageCanvas) DrawSprite(s render.Sprite) bool {
	img, ok := c.images[spriteImages[s.Name]]
	if !ok {
		return c.drawArt(s)
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if s.Tile {
		for y := s.Box.Y; y < s.Box.Bottom(); y += float64(h) {
			for x := s.Box.X; x < s.Box.Right(); x += float64(w) {
				c.drawImage(img, x, y, s.Mirror)
			}
		}
		return true
	}

	center := s.Box.Center()
	c.drawImage(img, center.X-float64(w)/2, center.Y-float64(h)/2, s.Mirror)
	return true
}

func (c *ImageCanvas) drawImage(img *ebiten.Image, x, y float64, mirror bool) {
	op := &ebiten.DrawImageOptions{}
	if mirror {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	op.GeoM.Translate(x, y)
	c.dst.DrawImage(img, op)
}

// drawArt prints text art centred in the sprite box. Tiled art is not
// repeated on the window; the background color stands in for it.
func (c *ImageCanvas) drawArt(s render.Sprite) bool {
	art, ok := c.art[s.Name]
	if !ok {
		return false
	}
	if s.Tile {
		return true
	}
	if s.Mirror {
		art = art.Mirror()
	}

	lineH := c.lineHeight()
	center := s.Box.Center()
	y := center.Y - float64(art.Height)*lineH/2
	for i, line := range art.Lines {
		pos := core.Vec2{X: center.X - c.measure(line)/2, Y: y + float64(i)*lineH}
		c.print(line, pos, s.Color)
	}
	return true
}

// DrawText draws a string with the bundled font, or the debug font.
func (c *ImageCanvas) DrawText(t render.Text) {
	pos := t.Pos
	if t.Centered {
		pos.X = float64(c.dst.Bounds().Dx())/2 - c.measure(t.Text)/2
	}
	c.print(t.Text, pos, t.Color)
}

func (c *ImageCanvas) print(s string, pos core.Vec2, clr core.Color) {
	if c.face == nil {
		ebitenutil.DebugPrintAt(c.dst, s, int(pos.X), int(pos.Y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(rgba(clr))
	text.Draw(c.dst, s, c.face, op)
}

func (c *ImageCanvas) measure(s string) float64 {
	if c.face == nil {
		return float64(len([]rune(s)) * debugGlyphW)
	}
	w, _ := text.Measure(s, c.face, 0)
	return w
}

func (c *ImageCanvas) lineHeight() float64 {
	if c.face == nil {
		return 16
	}
	return c.face.Size * 1.2
}
