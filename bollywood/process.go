package bollywood

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process represents the running instance of an actor, including its state and mailbox.
type process struct {
	engine   *Engine
	pid      *PID
	actor    Actor
	props    *Props
	mailbox  chan *messageEnvelope
	stopCh   chan struct{} // closed to stop the run loop
	stopOnce sync.Once
	done     chan struct{} // closed after Stopped has been handled
	stopped  atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, defaultMailboxSize),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// deliver enqueues without blocking; a full mailbox drops the message.
func (p *process) deliver(envelope *messageEnvelope) bool {
	if p.stopped.Load() {
		return false
	}
	select {
	case p.mailbox <- envelope:
		return true
	default:
		fmt.Printf("Actor %s mailbox full, dropping message type %T\n", p.pid.ID, envelope.Message)
		return false
	}
}

func (p *process) stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

func (p *process) run() {
	defer func() {
		p.stopped.Store(true)
		if p.actor != nil {
			p.invokeReceive(&messageEnvelope{Message: Stopped{}})
		}
		p.engine.remove(p.pid)
		close(p.done)
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		fmt.Printf("Actor %s producer returned nil actor\n", p.pid.ID)
		return
	}

	for {
		// Drain stop first so a busy mailbox cannot starve shutdown.
		select {
		case <-p.stopCh:
			p.stopped.Store(true)
			p.invokeReceive(&messageEnvelope{Message: Stopping{}})
			return
		default:
		}

		select {
		case <-p.stopCh:
			p.stopped.Store(true)
			p.invokeReceive(&messageEnvelope{Message: Stopping{}})
			return
		case envelope := <-p.mailbox:
			p.invokeReceive(envelope)
		}
	}
}

// invokeReceive calls the actor's Receive method within a protected context.
func (p *process) invokeReceive(envelope *messageEnvelope) {
	ctx := &context{
		engine:  p.engine,
		self:    p.pid,
		sender:  envelope.Sender,
		message: envelope.Message,
		reply:   envelope.reply,
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Actor %s panicked during Receive(%T): %v\nStack trace:\n%s\n", p.pid.ID, envelope.Message, r, string(debug.Stack()))
		}
	}()
	p.actor.Receive(ctx)
}
