package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientMessage_HandShakeViewer(t *testing.T) {
	raw := []byte(`{"HandShake":"Viewer"}`)
	msg, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, MessageHandShake, msg.Kind)
	assert.Equal(t, RoleViewer, msg.HandShake.Kind)
}

func TestClientMessage_HandShakePlayer(t *testing.T) {
	raw := []byte(`{"HandShake":{"Player":{"name":"nova"}}}`)
	msg, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, MessageHandShake, msg.Kind)
	assert.Equal(t, RolePlayer, msg.HandShake.Kind)
	assert.Equal(t, "nova", msg.HandShake.Player.Name)
}

func TestClientMessage_CommandMove(t *testing.T) {
	raw := []byte(`{"Command":{"Move":"Up"}}`)
	msg, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, MessageCommand, msg.Kind)
	assert.Equal(t, CommandMove, msg.Command.Kind)
	assert.Equal(t, Up, msg.Command.Direction)
}

func TestClientMessage_CommandNothing(t *testing.T) {
	raw := []byte(`{"Command":"Nothing"}`)
	msg, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, CommandNothing, msg.Command.Kind)
}

func TestClientMessage_RoundTrip(t *testing.T) {
	original := ClientMessage{Kind: MessageCommand, Command: ClientCommand{Kind: CommandMove, Direction: Left}}
	data, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestServerResponse_Encoding(t *testing.T) {
	okData, err := Encode(OK())
	require.NoError(t, err)
	assert.JSONEq(t, `"Ok"`, string(okData))

	errData, err := Encode(ErrorResponse("Username already taken"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Error":"Username already taken"}`, string(errData))
}

func TestClientMessage_Invalid(t *testing.T) {
	_, err := Decode([]byte(`{"Bogus":true}`))
	assert.Error(t, err)
}
