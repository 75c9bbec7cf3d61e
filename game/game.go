// File: game/game.go
package game

import (
	"math"

	"github.com/lguibr/pongsolo/utils"
)

// RandomSource yields uniform values in [0, 1). *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Launch spread: the vertical relaunch speed is at most this share of Speed.
const resetVerticalSpread = 0.6

// Simulation owns every entity of one game. It is not safe for concurrent
// use: callers serialise input and ticks (see GameActor).
type Simulation struct {
	Canvas  Canvas  `json:"canvas"`
	Player  *Paddle `json:"player"`
	AI      *Paddle `json:"ai"`
	Ball    *Ball   `json:"ball"`
	AISpeed float64 `json:"aiSpeed"`
	Tick    uint64  `json:"tick"`

	rnd RandomSource
}

// StepResult describes what happened during one Step.
type StepResult struct {
	Tick      uint64 `json:"tick"`
	WallHit   bool   `json:"wallHit"`
	PaddleHit Side   `json:"paddleHit"` // side of the paddle that returned the ball
	Scored    Side   `json:"scored"`    // wall the ball left through, SideNone if still in play
}

// NewSimulation builds paddles and ball from cfg and launches the ball.
// cfg is expected to have passed Validate.
func NewSimulation(cfg utils.Config, rnd RandomSource) *Simulation {
	canvas := NewCanvas(cfg.SurfaceWidth, cfg.SurfaceHeight)
	playerColor, _ := utils.ParseHexColor(cfg.PlayerColor)
	aiColor, _ := utils.ParseHexColor(cfg.AIColor)

	sim := &Simulation{
		Canvas:  canvas,
		Player:  NewPaddle(canvas, cfg.PaddleMargin, cfg.PaddleWidth, cfg.PaddleHeight, playerColor),
		AI:      NewPaddle(canvas, canvas.Width-cfg.PaddleMargin-cfg.PaddleWidth, cfg.PaddleWidth, cfg.PaddleHeight, aiColor),
		Ball:    NewBall(canvas, cfg.BallRadius, cfg.BallSpeed),
		AISpeed: cfg.AISpeed,
		rnd:     rnd,
	}
	sim.Reset()
	return sim
}

// Step advances one frame: ball first, then the AI paddle.
func (s *Simulation) Step() StepResult {
	result := s.MoveBall()
	s.MoveAI()
	s.Tick++
	result.Tick = s.Tick
	return result
}

// MoveBall integrates the ball and resolves, in order and independently,
// wall bounces, the player paddle, the AI paddle and the side exits.
func (s *Simulation) MoveBall() StepResult {
	var result StepResult
	ball := s.Ball

	ball.Move()

	result.WallHit = ball.CollideWalls(s.Canvas)

	if ball.CollideLeftPaddle(s.Player) {
		result.PaddleHit = SideLeft
	}
	if ball.CollideRightPaddle(s.AI) {
		result.PaddleHit = SideRight
	}

	if exit := ball.OutOfBounds(s.Canvas); exit != SideNone {
		result.Scored = exit
		s.Reset()
	}
	return result
}

// Reset recentres the ball and relaunches it: a coin flip for the horizontal
// direction, then a vertical speed uniform in ±60% of Speed.
func (s *Simulation) Reset() {
	ball := s.Ball
	ball.X = s.Canvas.CenterX()
	ball.Y = s.Canvas.CenterY()

	direction := -1.0
	if s.rnd.Float64() > 0.5 {
		direction = 1
	}
	ball.Dx = ball.Speed * direction
	ball.Dy = ball.Speed * (s.rnd.Float64()*2 - 1) * resetVerticalSpread
}

// MoveAI chases the ball's current height at no more than AISpeed per tick,
// snapping onto the target once within reach.
func (s *Simulation) MoveAI() {
	ai := s.AI
	target := s.Ball.Y - ai.Height/2
	diff := target - ai.Y
	if math.Abs(diff) > s.AISpeed {
		ai.Y += s.AISpeed * utils.Sign(diff)
	} else {
		ai.Y = target
	}
	ai.Clamp(s.Canvas)
}

// MovePointer is the input adapter: deviceY is the pointer position on the
// display surface and scaleY converts it to logical canvas units.
func (s *Simulation) MovePointer(deviceY, scaleY float64) {
	s.Player.CenterOn(deviceY*scaleY, s.Canvas)
}
