package game

import (
	"context"
	"time"
)

// RunFrames calls frame once per period until ctx is cancelled. It is the
// frame driver for hosts that do not run a GameActor; there is no other end
// condition.
func RunFrames(ctx context.Context, period time.Duration, frame func()) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			frame()
		}
	}
}

// StepAndDraw is the body of one frame: simulate, then render.
func StepAndDraw(s *Simulation, r Renderer, palette Palette) StepResult {
	result := s.Step()
	Draw(s, r, palette)
	return result
}
