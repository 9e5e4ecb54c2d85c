package websocket

import (
	"encoding/json"
)

const (
	MsgPointer = "pointer"
	MsgResize  = "resize"
	MsgFrame   = "frame"
)

// TickHz is the simulation and broadcast rate for a browser session. One
// frame message goes out per step.
const TickHz = 30

// Envelope wraps every message in both directions.
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"`
}

// Pointer is the client reporting its cursor. The server derives the
// pointer velocity itself, so only positions and the button state travel.
type Pointer struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Down bool    `json:"down"`
}

// Resize is the client reporting a new canvas size. It triggers a full
// mesh rebuild.
type Resize struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Frame carries the surviving constraint segments of one step for the
// client canvas to draw.
type Frame struct {
	Tick     int    `json:"tick"`
	Segments []Line `json:"segments"`
}

// Line is one drawable segment.
type Line struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}
