package bollywood

// messageEnvelope wraps a message with its sender.
type messageEnvelope struct {
	Sender  *PID
	Message interface{}
	reply   chan interface{}
}

// Context is handed to Actor.Receive for every message.
type Context interface {
	Engine() *Engine
	Self() *PID
	Sender() *PID
	Message() interface{}
	// Reply answers an Ask. It is a no-op for plain Send messages.
	Reply(response interface{})
}

type context struct {
	engine  *Engine
	self    *PID
	sender  *PID
	message interface{}
	reply   chan interface{}
}

func (c *context) Engine() *Engine      { return c.engine }
func (c *context) Self() *PID           { return c.self }
func (c *context) Sender() *PID         { return c.sender }
func (c *context) Message() interface{} { return c.message }

func (c *context) Reply(response interface{}) {
	if c.reply == nil {
		return
	}
	select {
	case c.reply <- response:
	default:
	}
	c.reply = nil
}
