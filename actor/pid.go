package actor

// PID addresses a running actor. It is opaque outside this package; callers
// pass it to Engine.Send/Ask/Stop and compare it for identity.
type PID struct {
	ID string
}

func (pid *PID) String() string {
	if pid == nil {
		return "<nil>"
	}
	return pid.ID
}
