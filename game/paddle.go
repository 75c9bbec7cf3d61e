// File: game/paddle.go
package game

import (
	"github.com/lguibr/pongsolo/utils"
)

type Paddle struct {
	X      float64     `json:"x"`
	Y      float64     `json:"y"` // top edge
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Color  utils.Color `json:"color"`
	Dy     float64     `json:"dy"` // reserved, the simulation never reads it
}

// NewPaddle places a paddle at x, vertically centred on the canvas.
func NewPaddle(canvas Canvas, x, width, height float64, color utils.Color) *Paddle {
	return &Paddle{
		X:      x,
		Y:      canvas.Height/2 - height/2,
		Width:  width,
		Height: height,
		Color:  color,
	}
}

func (p *Paddle) Right() float64   { return p.X + p.Width }
func (p *Paddle) Bottom() float64  { return p.Y + p.Height }
func (p *Paddle) CenterY() float64 { return p.Y + p.Height/2 }

// MaxY is the largest top edge that keeps the paddle on the canvas.
func (p *Paddle) MaxY(canvas Canvas) float64 {
	return canvas.Height - p.Height
}

// Clamp pulls the paddle back inside [0, canvas.Height-Height].
func (p *Paddle) Clamp(canvas Canvas) {
	p.Y = utils.Clamp(p.Y, 0, p.MaxY(canvas))
}

// SpansY reports whether y lies strictly between the top and bottom edges.
func (p *Paddle) SpansY(y float64) bool {
	return y > p.Y && y < p.Bottom()
}

// CenterOn moves the paddle so its centre sits at y, clamped to the canvas.
func (p *Paddle) CenterOn(y float64, canvas Canvas) {
	p.Y = y - p.Height/2
	p.Clamp(canvas)
}
