package bollywood

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrTimeout is returned by Ask when no reply arrives in time.
	ErrTimeout = errors.New("bollywood: ask timed out")
	// ErrActorNotFound is returned by Ask when the PID is unknown or stopped.
	ErrActorNotFound = errors.New("bollywood: actor not found")
)

// Engine manages the lifecycle and message dispatching for actors.
type Engine struct {
	pidCounter uint64
	actors     map[string]*process
	mu         sync.RWMutex // Protects the actors map
	stopping   atomic.Bool
}

// NewEngine creates a new actor engine.
func NewEngine() *Engine {
	return &Engine{
		actors: make(map[string]*process),
	}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn creates and starts a new actor based on the provided Props.
// It returns nil when the engine is shutting down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		fmt.Println("Engine is stopping, cannot spawn new actors")
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	// Started must be the first envelope in the mailbox.
	proc.deliver(&messageEnvelope{Message: Started{}})
	go proc.run()

	return pid
}

// Send delivers a message to the actor identified by the PID.
// Messages to unknown actors are dropped.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if pid == nil {
		return
	}
	if e.stopping.Load() && !isSystemMessage(message) {
		return
	}
	if proc := e.lookup(pid); proc != nil {
		proc.deliver(&messageEnvelope{Sender: sender, Message: message})
	}
}

// Ask sends message and waits for the actor to call ctx.Reply.
func (e *Engine) Ask(pid *PID, message interface{}, timeout time.Duration) (interface{}, error) {
	if pid == nil || e.stopping.Load() {
		return nil, ErrActorNotFound
	}
	proc := e.lookup(pid)
	if proc == nil {
		return nil, ErrActorNotFound
	}

	reply := make(chan interface{}, 1)
	if !proc.deliver(&messageEnvelope{Message: message, reply: reply}) {
		return nil, ErrActorNotFound
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case response := <-reply:
		return response, nil
	case <-proc.done:
		return nil, ErrActorNotFound
	case <-timer.C:
		return nil, ErrTimeout
	}
}

// Stop requests an actor to stop processing messages and shut down.
func (e *Engine) Stop(pid *PID) {
	if pid == nil {
		return
	}
	if proc := e.lookup(pid); proc != nil {
		proc.stop()
	}
}

// Done returns a channel closed once the actor has fully stopped.
// Unknown PIDs return an already closed channel.
func (e *Engine) Done(pid *PID) <-chan struct{} {
	if proc := e.lookup(pid); proc != nil {
		return proc.done
	}
	closed := make(chan struct{})
	close(closed)
	return closed
}

// Count reports the number of live actors.
func (e *Engine) Count() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.actors)
}

func (e *Engine) lookup(pid *PID) *process {
	if pid == nil {
		return nil
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.actors[pid.ID]
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}

// Shutdown stops all actors and waits for them to terminate gracefully.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		fmt.Println("Engine already shutting down")
		return
	}

	e.mu.RLock()
	procs := make([]*process, 0, len(e.actors))
	for _, proc := range e.actors {
		procs = append(procs, proc)
	}
	e.mu.RUnlock()

	for _, proc := range procs {
		proc.stop()
	}

	deadline := time.After(timeout)
	for _, proc := range procs {
		select {
		case <-proc.done:
		case <-deadline:
			fmt.Printf("Engine shutdown timeout: %d actors did not stop gracefully.\n", e.Count())
			e.mu.Lock()
			e.actors = make(map[string]*process)
			e.mu.Unlock()
			return
		}
	}
}

func isSystemMessage(message interface{}) bool {
	switch message.(type) {
	case Started, Stopping, Stopped:
		return true
	}
	return false
}
