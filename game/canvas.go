package game

// Canvas is the fixed logical playfield. All clamping and collision math is
// relative to its bounds.
type Canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewCanvas(width, height float64) Canvas {
	if width <= 0 || height <= 0 {
		panic("Canvas dimensions must be positive")
	}
	return Canvas{Width: width, Height: height}
}

func (c Canvas) CenterX() float64 { return c.Width / 2 }
func (c Canvas) CenterY() float64 { return c.Height / 2 }
