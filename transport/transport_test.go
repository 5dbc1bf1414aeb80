package transport

import "testing"

// Conn's shape is exercised indirectly through lobby's fake connection in
// lobby/engine_test.go; this file just pins the interface's method set so a
// signature change here is caught at compile time by anything implementing
// it elsewhere in the module.
var _ Conn = (*wsConn)(nil)

func TestConnInterfaceSatisfiedByWSConn(t *testing.T) {
	// compile-time assertion above; nothing to run at test time without a
	// live websocket handshake.
}
