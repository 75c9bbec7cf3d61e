// File: game/game_actor.go
package game

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/lguibr/pongsolo/bollywood"
	"github.com/lguibr/pongsolo/utils"
)

// GameActor owns one Simulation. Pointer input and frame ticks arrive through
// the same mailbox, so the player paddle is a single-writer register and the
// step always sees the latest committed pointer position.
type GameActor struct {
	cfg      utils.Config
	sim      *Simulation
	palette  Palette
	score    Scoreboard
	renderer Renderer
	onFrame  func(FrameSnapshot)
	last     FrameSnapshot
	manual   bool

	stopTicker context.CancelFunc
	selfPID    *bollywood.PID
}

// GameActorArgs configures a GameActor.
type GameActorArgs struct {
	Config   utils.Config
	Random   RandomSource // nil seeds from Config.Seed
	Renderer Renderer     // optional, drawn into after every step
	OnFrame  func(FrameSnapshot)
	// Manual disables the internal ticker; frames then only advance on StepCommand.
	Manual bool
}

// NewGameActorProducer creates a producer for the GameActor.
func NewGameActorProducer(args GameActorArgs) bollywood.Producer {
	return func() bollywood.Actor {
		rnd := args.Random
		if rnd == nil {
			rnd = utils.NewRand(args.Config.Seed)
		}
		ga := &GameActor{
			cfg:      args.Config,
			sim:      NewSimulation(args.Config, rnd),
			palette:  NewPalette(args.Config),
			renderer: args.Renderer,
			onFrame:  args.OnFrame,
			manual:   args.Manual,
		}
		ga.last = ga.snapshot(SideNone)
		return ga
	}
}

// Receive is the main message handler for the GameActor.
func (a *GameActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in GameActor %s Receive: %v\nStack trace:\n%s\n", a.selfPID, r, string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		fmt.Printf("GameActor %s: started (%vx%v @ %d fps).\n", a.selfPID, a.sim.Canvas.Width, a.sim.Canvas.Height, a.cfg.FrameRate)
		if !a.manual {
			a.startTicker(ctx.Engine())
		}

	case *frameTick, StepCommand:
		a.frame()

	case PointerMoveMessage:
		a.sim.MovePointer(msg.DeviceY, msg.ScaleY)

	case SubscribeFrames:
		a.onFrame = msg.OnFrame

	case GetSnapshotRequest:
		ctx.Reply(a.last)

	case bollywood.Stopping:
		if a.stopTicker != nil {
			a.stopTicker()
		}

	case bollywood.Stopped:
		fmt.Printf("GameActor %s: stopped after %d ticks (player %d - ai %d).\n", a.selfPID, a.sim.Tick, a.score.Player, a.score.AI)

	default:
		fmt.Printf("GameActor %s received unknown message: %T\n", a.selfPID, msg)
	}
}

// frame runs the step, the optional render pass and the frame callback.
func (a *GameActor) frame() {
	result := a.sim.Step()
	a.score.Record(result.Scored)
	if a.renderer != nil {
		Draw(a.sim, a.renderer, a.palette)
	}
	a.last = a.snapshot(result.Scored)
	if a.onFrame != nil {
		a.onFrame(a.last)
	}
}

func (a *GameActor) snapshot(scored Side) FrameSnapshot {
	return FrameSnapshot{
		MessageType: "frame",
		Tick:        a.sim.Tick,
		Player:      *a.sim.Player,
		AI:          *a.sim.AI,
		Ball:        *a.sim.Ball,
		Score:       a.score,
		Scored:      scored,
	}
}

// startTicker posts a frameTick to the actor's own mailbox once per period
// until the actor stops.
func (a *GameActor) startTicker(engine *bollywood.Engine) {
	tickCtx, cancel := context.WithCancel(context.Background())
	a.stopTicker = cancel
	selfPID := a.selfPID
	tick := &frameTick{}
	go RunFrames(tickCtx, a.cfg.TickPeriod(), func() {
		engine.Send(selfPID, tick, nil)
	})
}
