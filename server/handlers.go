// File: server/handlers.go
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/lguibr/pongsolo/bollywood"
	"github.com/lguibr/pongsolo/game"
	"github.com/lguibr/pongsolo/utils"
	"golang.org/x/net/websocket"
)

// frameBuffer bounds how many frames may queue for a slow client before
// new ones are dropped.
const frameBuffer = 8

// StatusResponse is served on GET /.
type StatusResponse struct {
	Status      string       `json:"status"`
	ActiveGames int          `json:"activeGames"`
	Config      utils.Config `json:"config"`
}

// HandleSubscribe spawns a GameActor for the connection, streams its frames
// and forwards pointer messages until the client goes away.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		connectionAddr := ws.Request().RemoteAddr
		fmt.Printf("HandleSubscribe: New connection from %s\n", connectionAddr)

		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("PANIC recovered in HandleSubscribe for %s: %v\nStack trace:\n%s\n", connectionAddr, r, string(debug.Stack()))
			}
			_ = ws.Close()
		}()

		codec := outboundCodec(ws.Request())
		if err := codec.Send(ws, game.NewSurfaceMessage(s.cfg)); err != nil {
			fmt.Printf("HandleSubscribe: Could not send surface to %s: %v\n", connectionAddr, err)
			return
		}

		frames := make(chan game.FrameSnapshot, frameBuffer)
		pid := s.engine.Spawn(bollywood.NewProps(game.NewGameActorProducer(game.GameActorArgs{
			Config: s.cfg,
			OnFrame: func(f game.FrameSnapshot) {
				select {
				case frames <- f:
				default:
				}
			},
		})))
		if pid == nil {
			fmt.Printf("HandleSubscribe: Engine refused to spawn a game for %s\n", connectionAddr)
			return
		}
		s.openGame(ws, pid)

		writerDone := make(chan struct{})
		go s.writeLoop(ws, codec, frames, s.engine.Done(pid), writerDone)

		s.readLoop(ws, pid)

		s.closeGame(ws)
		s.engine.Stop(pid)
		_ = ws.Close() // unblocks a writer stuck in Send
		<-writerDone
		fmt.Printf("HandleSubscribe: Game %s for %s closed.\n", pid, connectionAddr)
	}
}

// writeLoop sends every frame to the client until the game stops or a write fails.
func (s *Server) writeLoop(ws *websocket.Conn, codec websocket.Codec, frames <-chan game.FrameSnapshot, gameDone <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-gameDone:
			return
		case frame := <-frames:
			_ = ws.SetWriteDeadline(time.Now().Add(s.cfg.TickPeriod() * frameBuffer))
			if err := codec.Send(ws, frame); err != nil {
				return
			}
		}
	}
}

// readLoop forwards pointer messages to the game. It returns when the
// connection is closed or unreadable.
func (s *Server) readLoop(ws *websocket.Conn, pid *bollywood.PID) {
	connectionAddr := ws.Request().RemoteAddr
	for {
		var message json.RawMessage
		if err := websocket.JSON.Receive(ws, &message); err != nil {
			var syntaxErr *json.SyntaxError
			switch {
			case errors.Is(err, io.EOF):
			case errors.As(err, &syntaxErr):
				fmt.Printf("ReadLoop: Dropping malformed message from %s: %v\n", connectionAddr, err)
				continue
			default:
				fmt.Printf("ReadLoop: Error receiving from %s: %v\n", connectionAddr, err)
			}
			return
		}

		move, err := parsePointer(message)
		if err != nil {
			fmt.Printf("ReadLoop: Dropping message from %s: %v\n", connectionAddr, err)
			continue
		}
		s.engine.Send(pid, move, nil)
	}
}

func parsePointer(payload []byte) (game.PointerMoveMessage, error) {
	var header game.MessageHeader
	if err := json.Unmarshal(payload, &header); err != nil {
		return game.PointerMoveMessage{}, fmt.Errorf("decode header: %w", err)
	}
	if header.MessageType != "pointer" {
		return game.PointerMoveMessage{}, fmt.Errorf("unexpected message type %q", header.MessageType)
	}

	var pointer game.PointerMessage
	if err := json.Unmarshal(payload, &pointer); err != nil {
		return game.PointerMoveMessage{}, fmt.Errorf("decode pointer: %w", err)
	}
	scale := pointer.ScaleY
	if scale <= 0 {
		scale = 1
	}
	return game.PointerMoveMessage{DeviceY: pointer.Y, ScaleY: scale}, nil
}

// HandleGetStatus reports the server configuration and the number of live games.
func (s *Server) HandleGetStatus() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				fmt.Printf("PANIC recovered in HandleGetStatus: %v\nStack trace:\n%s\n", rec, string(debug.Stack()))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		payload, err := json.Marshal(StatusResponse{
			Status:      "ok",
			ActiveGames: s.ActiveGames(),
			Config:      s.cfg,
		})
		if err != nil {
			http.Error(w, "Error generating status", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(payload); err != nil {
			fmt.Println("Error writing HTTP status:", err)
		}
	}
}
