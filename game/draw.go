package game

import "github.com/lguibr/pongsolo/utils"

// Renderer is the only drawing capability the game needs from a host surface.
type Renderer interface {
	FillRect(x, y, w, h float64, c utils.Color)
	FillCircle(x, y, r float64, c utils.Color)
}

// Palette holds the display-only colours.
type Palette struct {
	Ball       utils.Color
	Net        utils.Color
	Background utils.Color
}

const (
	netSegment = 20
	netWidth   = 4
)

func NewPalette(cfg utils.Config) Palette {
	ball, _ := utils.ParseHexColor(cfg.BallColor)
	net, _ := utils.ParseHexColor(cfg.NetColor)
	background, _ := utils.ParseHexColor(cfg.BackgroundColor)
	return Palette{Ball: ball, Net: net, Background: background}
}

// Draw paints one frame: background, dashed net, paddles, ball.
// It only reads the simulation.
func Draw(s *Simulation, r Renderer, palette Palette) {
	r.FillRect(0, 0, s.Canvas.Width, s.Canvas.Height, palette.Background)

	for y := 0.0; y < s.Canvas.Height; y += netSegment * 2 {
		r.FillRect(s.Canvas.CenterX()-netWidth/2, y, netWidth, netSegment, palette.Net)
	}

	for _, p := range []*Paddle{s.Player, s.AI} {
		r.FillRect(p.X, p.Y, p.Width, p.Height, p.Color)
	}
	r.FillCircle(s.Ball.X, s.Ball.Y, s.Ball.Radius, palette.Ball)
}
