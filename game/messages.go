// File: game/messages.go
package game

import "github.com/lguibr/pongsolo/utils"

// --- Message Header ---
// Used for identifying message types after unmarshalling from JSON
type MessageHeader struct {
	MessageType string `json:"messageType"`
}

// --- WebSocket Messages (Client <-> Server) ---

// PointerMessage is what a client sends on every pointer move over its
// surface. Y is in device pixels; ScaleY converts to logical units.
type PointerMessage struct {
	MessageType string  `json:"messageType"` // "pointer"
	Y           float64 `json:"y"`
	ScaleY      float64 `json:"scaleY"`
}

// SurfaceMessage is sent once after connecting so the client can size its
// drawing surface and compute ScaleY.
type SurfaceMessage struct {
	MessageType string      `json:"messageType"` // "surface"
	Canvas      Canvas      `json:"canvas"`
	Ball        utils.Color `json:"ballColor"`
	Net         utils.Color `json:"netColor"`
	Background  utils.Color `json:"backgroundColor"`
	FrameRate   int         `json:"frameRate"`
}

// FrameSnapshot is a value copy of the game after one tick.
type FrameSnapshot struct {
	MessageType string     `json:"messageType"` // "frame"
	Tick        uint64     `json:"tick"`
	Player      Paddle     `json:"player"`
	AI          Paddle     `json:"ai"`
	Ball        Ball       `json:"ball"`
	Score       Scoreboard `json:"score"`
	Scored      Side       `json:"scored"`
}

func NewSurfaceMessage(cfg utils.Config) SurfaceMessage {
	palette := NewPalette(cfg)
	return SurfaceMessage{
		MessageType: "surface",
		Canvas:      NewCanvas(cfg.SurfaceWidth, cfg.SurfaceHeight),
		Ball:        palette.Ball,
		Net:         palette.Net,
		Background:  palette.Background,
		FrameRate:   cfg.FrameRate,
	}
}

// --- Actor Messages ---

// PointerMoveMessage feeds the input adapter of a GameActor.
type PointerMoveMessage struct {
	DeviceY float64
	ScaleY  float64
}

// GetSnapshotRequest asks a GameActor for its latest FrameSnapshot.
type GetSnapshotRequest struct{}

// SubscribeFrames replaces the frame callback of a GameActor. The callback
// runs on the actor goroutine and must not block.
type SubscribeFrames struct {
	OnFrame func(FrameSnapshot)
}

// StepCommand advances exactly one frame, regardless of the ticker.
type StepCommand struct{}

// frameTick is posted by the actor's own ticker.
type frameTick struct{}
