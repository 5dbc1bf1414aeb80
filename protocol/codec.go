package protocol

import (
	"encoding/json"
	"fmt"
)

// Decode parses a single text frame as a ClientMessage. Callers that get an
// error should log it and drop the message without closing the connection.
func Decode(text []byte) (ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(text, &msg); err != nil {
		return ClientMessage{}, fmt.Errorf("protocol: decode client message: %w", err)
	}
	return msg, nil
}

// Encode serializes any of the wire types (ServerResponse, Overview, ...)
// to its JSON text form.
func Encode(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("protocol: encode: %w", err)
	}
	return data, nil
}
