package bollywood

// Actor is the interface implemented by anything that processes messages.
// Receive is never called concurrently for the same actor.
type Actor interface {
	Receive(ctx Context)
}

// Producer creates a fresh Actor instance.
type Producer func() Actor

// Props describes how to create an actor.
type Props struct {
	producer Producer
}

func NewProps(producer Producer) *Props {
	return &Props{producer: producer}
}

// Produce creates a new actor instance using the producer.
func (p *Props) Produce() Actor {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer()
}

// System messages.

// Started is delivered once, before any user message.
type Started struct{}

// Stopping is delivered when the actor has been asked to stop.
type Stopping struct{}

// Stopped is the last message an actor ever sees.
type Stopped struct{}
