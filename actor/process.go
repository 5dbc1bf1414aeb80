package actor

import (
	"log"
	"sync/atomic"
)

// mailboxSize bounds how many messages a process will buffer before Send
// starts dropping. The busiest actor is the lobby engine, which fans in every
// connected client's messages plus one tick message per tick period.
const mailboxSize = 1024

type process struct {
	engine  *Engine
	pid     *PID
	actor   Actor
	mailbox chan *messageEnvelope
	props   *Props
	stopCh  chan struct{}
	stopped atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, mailboxSize),
		stopCh:  make(chan struct{}),
	}
}

func (p *process) sendMessage(env *messageEnvelope) {
	if p.stopped.Load() {
		return
	}
	select {
	case p.mailbox <- env:
	default:
		log.Printf("actor: mailbox full, dropping message for %s", p.pid)
	}
}

func (p *process) requestStop() {
	select {
	case <-p.stopCh:
	default:
		close(p.stopCh)
	}
}

func (p *process) run() {
	defer p.engine.remove(p.pid)
	defer p.invoke(Stopped{}, nil)

	p.actor = p.props.Produce()
	p.invoke(Started{}, nil)

	stopping := false
	for {
		select {
		case <-p.stopCh:
			if !stopping {
				stopping = true
				p.invoke(Stopping{}, nil)
				p.stopped.Store(true)
				p.drain()
				return
			}
		case env := <-p.mailbox:
			if stopping {
				continue
			}
			p.invoke(env.message, env.sender)
		}
	}
}

// drain delivers whatever is already queued before the process exits, so a
// Stop racing with in-flight Sends does not silently lose messages that were
// already accepted into the mailbox.
func (p *process) drain() {
	for {
		select {
		case env := <-p.mailbox:
			p.invoke(env.message, env.sender)
		default:
			return
		}
	}
}

func (p *process) invoke(message interface{}, sender *PID) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("actor: %s panicked handling %T: %v", p.pid, message, r)
		}
	}()
	ctx := &context{
		engine:  p.engine,
		self:    p.pid,
		sender:  sender,
		message: message,
	}
	p.actor.Receive(ctx)
}
