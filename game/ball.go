package game

type Ball struct {
	X      float64 `json:"x"` // centre
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Speed  float64 `json:"speed"`
	Dx     float64 `json:"dx"`
	Dy     float64 `json:"dy"`
}

func NewBall(canvas Canvas, radius, speed float64) *Ball {
	return &Ball{
		X:      canvas.CenterX(),
		Y:      canvas.CenterY(),
		Radius: radius,
		Speed:  speed,
		Dx:     speed,
		Dy:     speed / 2,
	}
}

// Move integrates one tick. Motion is per tick, never scaled by elapsed time.
func (b *Ball) Move() {
	b.X += b.Dx
	b.Y += b.Dy
}

func (b *Ball) Left() float64   { return b.X - b.Radius }
func (b *Ball) Right() float64  { return b.X + b.Radius }
func (b *Ball) Top() float64    { return b.Y - b.Radius }
func (b *Ball) Bottom() float64 { return b.Y + b.Radius }

// CollideWalls bounces off the top and bottom edges, keeping |Dy|.
func (b *Ball) CollideWalls(canvas Canvas) bool {
	bounced := false
	if b.Top() < 0 {
		b.Y = b.Radius
		b.Dy = -b.Dy
		bounced = true
	}
	if b.Bottom() > canvas.Height {
		b.Y = canvas.Height - b.Radius
		b.Dy = -b.Dy
		bounced = true
	}
	return bounced
}

// OutOfBounds reports whether the ball has left through either side wall.
func (b *Ball) OutOfBounds(canvas Canvas) Side {
	if b.Left() < 0 {
		return SideLeft
	}
	if b.Right() > canvas.Width {
		return SideRight
	}
	return SideNone
}
