package actor

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// ErrTimeout is returned by Ask when no reply arrives within the given
// timeout.
var ErrTimeout = errors.New("actor: ask timed out")

// ErrStopped is returned by Ask when the target process is no longer
// registered with the engine.
var ErrStopped = errors.New("actor: target process stopped")

// Engine owns every running process, hands out PIDs, and is the only thing
// that can create or tear down actors. One Engine instance backs the entire
// lobby: the lobby engine actor, every connection's reader goroutine (which
// sends through it), and any ask-helper actor share it.
type Engine struct {
	mu         sync.RWMutex
	actors     map[string]*process
	pidCounter uint64
	stopping   atomic.Bool
}

// NewEngine returns a ready-to-use Engine with no actors spawned.
func NewEngine() *Engine {
	return &Engine{
		actors: make(map[string]*process),
	}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn starts a new actor from props and returns its address. The actor
// receives Started before any other message.
func (e *Engine) Spawn(props *Props) *PID {
	pid := e.nextPID()
	p := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = p
	e.mu.Unlock()

	go p.run()
	return pid
}

// Send delivers message to pid asynchronously. Send never blocks the caller
// beyond a full mailbox check; messages to a stopped process, an unknown
// PID, or a shutting-down engine are silently dropped, matching the
// fire-and-forget contract the lobby relies on for broadcast fan-out.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if pid == nil || e.stopping.Load() {
		return
	}
	e.mu.RLock()
	p, ok := e.actors[pid.ID]
	e.mu.RUnlock()
	if !ok {
		return
	}
	p.sendMessage(&messageEnvelope{sender: sender, message: message})
}

// Ask sends message to pid and blocks until the actor replies by sending
// back to its Sender(), the timeout elapses, or the process is gone.
//
// There is no dedicated reply channel in the wire protocol used elsewhere in
// this runtime: Ask spawns a short-lived internal actor, uses it as the
// envelope's sender, and waits on a channel that actor closes over. This
// gives the lobby's connection registration and the debug snapshot endpoint
// their request/reply shape without adding a second messaging primitive to
// Engine.
func (e *Engine) Ask(pid *PID, message interface{}, timeout time.Duration) (interface{}, error) {
	if pid == nil {
		return nil, ErrStopped
	}
	e.mu.RLock()
	_, ok := e.actors[pid.ID]
	e.mu.RUnlock()
	if !ok {
		return nil, ErrStopped
	}

	replyCh := make(chan interface{}, 1)
	replyPID := e.Spawn(NewProps(func() Actor {
		return &askReplyActor{replyCh: replyCh}
	}))
	defer e.Stop(replyPID)

	e.Send(pid, message, replyPID)

	select {
	case reply := <-replyCh:
		return reply, nil
	case <-time.After(timeout):
		return nil, ErrTimeout
	}
}

// askReplyActor forwards the first non-lifecycle message it receives onto a
// channel, giving Ask a process address to use as a reply target.
type askReplyActor struct {
	replyCh chan interface{}
}

func (a *askReplyActor) Receive(ctx Context) {
	switch ctx.Message().(type) {
	case Started, Stopping, Stopped:
		return
	}
	select {
	case a.replyCh <- ctx.Message():
	default:
	}
}

// Stop requests that pid shut down. It is asynchronous: Stopping and then
// Stopped are delivered to the actor before it is removed.
func (e *Engine) Stop(pid *PID) {
	if pid == nil {
		return
	}
	e.mu.RLock()
	p, ok := e.actors[pid.ID]
	e.mu.RUnlock()
	if !ok {
		return
	}
	p.requestStop()
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}

// Shutdown stops every remaining actor and blocks until they have all been
// removed or timeout elapses.
func (e *Engine) Shutdown(timeout time.Duration) {
	e.stopping.Store(true)

	e.mu.RLock()
	pids := make([]*PID, 0, len(e.actors))
	for _, p := range e.actors {
		pids = append(pids, p.pid)
	}
	e.mu.RUnlock()

	for _, pid := range pids {
		e.Stop(pid)
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		e.mu.RLock()
		remaining := len(e.actors)
		e.mu.RUnlock()
		if remaining == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}
