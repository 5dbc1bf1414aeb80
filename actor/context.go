package actor

// Context is the view an actor has of the engine and the message it is
// currently handling. It is only valid for the duration of one Receive call.
type Context interface {
	Engine() *Engine
	Self() *PID
	Sender() *PID
	Message() interface{}
}

type context struct {
	engine  *Engine
	self    *PID
	sender  *PID
	message interface{}
}

func (c *context) Engine() *Engine       { return c.engine }
func (c *context) Self() *PID            { return c.self }
func (c *context) Sender() *PID          { return c.sender }
func (c *context) Message() interface{}  { return c.message }
