package actor

// Producer builds a fresh Actor instance. The Engine calls it exactly once
// per Spawn, on the process's own goroutine, so a Producer may safely
// allocate actor-local state without synchronization.
type Producer func() Actor

// Props bundles the configuration needed to spawn an actor. It exists
// mainly so Spawn can take one argument and so test code can swap in a
// Producer that injects mocks.
type Props struct {
	producer Producer
}

// NewProps wraps a Producer in a Props ready for Engine.Spawn.
func NewProps(producer Producer) *Props {
	return &Props{producer: producer}
}

// Produce invokes the wrapped Producer.
func (p *Props) Produce() Actor {
	return p.producer()
}
