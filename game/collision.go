package game

import "math"

// MaxBounceAngle caps the spin deflection for a hit on a paddle's edge.
const MaxBounceAngle = math.Pi / 4

// SpinDy returns the vertical velocity imparted by a hit at ballY: centre hits
// go straight, edge hits leave at up to MaxBounceAngle.
func SpinDy(ballY, speed float64, paddle *Paddle) float64 {
	collidePoint := (ballY - paddle.CenterY()) / (paddle.Height / 2)
	angle := collidePoint * MaxBounceAngle
	return speed * math.Sin(angle)
}

// CollideLeftPaddle handles the player side. The x test is a half-plane
// evaluated once per tick, with no sweep between positions.
func (b *Ball) CollideLeftPaddle(paddle *Paddle) bool {
	if b.Left() < paddle.Right() && paddle.SpansY(b.Y) {
		b.X = paddle.Right() + b.Radius
		b.Dx = -b.Dx
		b.Dy = SpinDy(b.Y, b.Speed, paddle)
		return true
	}
	return false
}

// CollideRightPaddle mirrors CollideLeftPaddle for the AI side.
func (b *Ball) CollideRightPaddle(paddle *Paddle) bool {
	if b.Right() > paddle.X && paddle.SpansY(b.Y) {
		b.X = paddle.X - b.Radius
		b.Dx = -b.Dx
		b.Dy = SpinDy(b.Y, b.Speed, paddle)
		return true
	}
	return false
}
