// File: test/helpers_test.go
package test

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/lguibr/pongsolo/game"
	"golang.org/x/net/websocket"
)

// ReadWsJSONMessage reads a JSON message from the WebSocket with a timeout.
func ReadWsJSONMessage(t *testing.T, ws *websocket.Conn, timeout time.Duration, v interface{}) error {
	t.Helper()
	if ws == nil {
		return errors.New("websocket connection is nil")
	}

	readDone := make(chan error, 1)
	go func() {
		if err := ws.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			if errors.Is(err, net.ErrClosed) {
				readDone <- io.EOF
				return
			}
			readDone <- fmt.Errorf("failed to set read deadline: %w", err)
			return
		}
		err := websocket.JSON.Receive(ws, v)
		_ = ws.SetReadDeadline(time.Time{})
		readDone <- err
	}()

	select {
	case err := <-readDone:
		return err
	case <-time.After(timeout + 500*time.Millisecond):
		_ = ws.Close() // Attempt to close to unblock
		return fmt.Errorf("websocket read timeout after %v (Receive call blocked)", timeout)
	}
}

func isClosedErr(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "closed") || strings.Contains(msg, "reset by peer") ||
		strings.Contains(msg, "broken pipe") || strings.Contains(msg, "timeout")
}

// waitForFrame reads frames until condition holds or timeout passes.
func waitForFrame(t *testing.T, ws *websocket.Conn, timeout time.Duration, condition func(f game.FrameSnapshot) bool) (game.FrameSnapshot, bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	var last game.FrameSnapshot
	for time.Now().Before(deadline) {
		var frame game.FrameSnapshot
		err := ReadWsJSONMessage(t, ws, time.Second, &frame)
		if err != nil {
			if isClosedErr(err) {
				t.Logf("Connection closed or timed out while waiting for frame: %v", err)
				return last, false
			}
			t.Logf("Error reading frame: %v", err)
			continue
		}
		if frame.MessageType != "frame" {
			continue
		}
		last = frame
		if condition(frame) {
			return frame, true
		}
	}
	t.Logf("Timeout waiting for frame condition after %v", timeout)
	return last, false
}
