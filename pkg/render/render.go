// Package render composes tile images onto a single canvas.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Item is one image drawn with its top-left corner at (X, Y).
type Item struct {
	Image image.Image
	X, Y  int
}

type Renderer struct {
	context    *gg.Context
	background color.Color
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height), background: color.Black}
}

// Render clears the canvas and draws items in order. Later items paint over
// earlier ones where they overlap.
func (r *Renderer) Render(items []Item) {
	r.context.SetColor(r.background)
	r.context.Clear()

	for _, it := range items {
		r.drawItem(it)
	}
}

func (r *Renderer) drawItem(it Item) {
	if it.Image == nil {
		return
	}
	r.context.DrawImage(it.Image, it.X, it.Y)
}

// Image returns the canvas.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}
