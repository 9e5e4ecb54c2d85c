package websocket

import (
	"encoding/json"
	"fmt"
)

// Encode wraps a payload in an envelope of the given type and marshals it.
func Encode(t string, payload interface{}) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("cannot encode envelope with empty type")
	}
	if payload == nil {
		return nil, fmt.Errorf("cannot encode nil payload")
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{T: t, P: pb})
}

// DecodeEnvelope unmarshals the outer envelope without touching the payload.
func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("cannot decode empty envelope")
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, err
	}
	return e, nil
}

// DecodePointer extracts a pointer payload.
func DecodePointer(env Envelope) (Pointer, error) {
	var p Pointer
	if len(env.P) == 0 {
		return p, fmt.Errorf("empty payload for type %q", env.T)
	}
	err := json.Unmarshal(env.P, &p)
	return p, err
}

// DecodeResize extracts a resize payload.
func DecodeResize(env Envelope) (Resize, error) {
	var r Resize
	if len(env.P) == 0 {
		return r, fmt.Errorf("empty payload for type %q", env.T)
	}
	err := json.Unmarshal(env.P, &r)
	return r, err
}
