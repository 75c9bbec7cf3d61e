// File: test/e2e_test.go
package test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/lguibr/pongsolo/game"
	"github.com/lguibr/pongsolo/server"
	"github.com/lguibr/pongsolo/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

const e2eTestTimeout = 20 * time.Second

func TestE2E_ConnectPointDisconnect(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.FrameRate = 120
	setup := SetupE2ETest(t, cfg)
	defer TeardownE2ETest(t, setup, e2eTestTimeout/2)

	ws, err := websocket.Dial(setup.WsURL, "", setup.Origin)
	require.NoError(t, err, "WebSocket dial should succeed")
	defer ws.Close()

	// 1. Surface description comes first
	var surface game.SurfaceMessage
	require.NoError(t, ReadWsJSONMessage(t, ws, 5*time.Second, &surface))
	assert.Equal(t, "surface", surface.MessageType)
	assert.Equal(t, game.Canvas{Width: 800, Height: 500}, surface.Canvas)

	// 2. Frames flow with the player paddle centred
	first, ok := waitForFrame(t, ws, 5*time.Second, func(game.FrameSnapshot) bool { return true })
	require.True(t, ok, "Should receive a frame")
	assert.Equal(t, 205.0, first.Player.Y)

	// 3. A pointer on a half-height surface (scale 2) moves the paddle
	require.NoError(t, websocket.JSON.Send(ws, game.PointerMessage{MessageType: "pointer", Y: 150, ScaleY: 2}))
	moved, ok := waitForFrame(t, ws, 5*time.Second, func(f game.FrameSnapshot) bool { return f.Player.Y == 255 })
	require.True(t, ok, "Player paddle should follow the pointer, last Y %v", moved.Player.Y)

	// 4. Invariants hold in every frame for a while
	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		frame, ok := waitForFrame(t, ws, time.Second, func(game.FrameSnapshot) bool { return true })
		require.True(t, ok)
		for _, p := range []game.Paddle{frame.Player, frame.AI} {
			assert.GreaterOrEqual(t, p.Y, 0.0)
			assert.LessOrEqual(t, p.Y, cfg.SurfaceHeight-cfg.PaddleHeight)
		}
		assert.GreaterOrEqual(t, frame.Ball.Y, cfg.BallRadius)
		assert.LessOrEqual(t, frame.Ball.Y, cfg.SurfaceHeight-cfg.BallRadius)
	}

	// 5. Status reports the live game
	resp, err := http.Get(setup.Server.URL + "/")
	require.NoError(t, err)
	var status server.StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	_ = resp.Body.Close()
	assert.Equal(t, 1, status.ActiveGames)

	// 6. Disconnect stops the game
	require.NoError(t, ws.Close())
	assert.Eventually(t, func() bool {
		return setup.Engine.Count() == 0 && setup.WsServer.ActiveGames() == 0
	}, 5*time.Second, 50*time.Millisecond, "Game actor should stop after disconnect")
}

func TestE2E_ScoreAdvancesWithoutInput(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.FrameRate = 500
	cfg.Seed = 3
	setup := SetupE2ETest(t, cfg)
	defer TeardownE2ETest(t, setup, e2eTestTimeout/2)

	ws, err := websocket.Dial(setup.WsURL, "", setup.Origin)
	require.NoError(t, err)
	defer ws.Close()

	// Park the player at the top; the AI returns everything, so the player
	// eventually concedes.
	require.NoError(t, websocket.JSON.Send(ws, game.PointerMessage{MessageType: "pointer", Y: 0, ScaleY: 1}))
	frame, ok := waitForFrame(t, ws, e2eTestTimeout, func(f game.FrameSnapshot) bool {
		return f.Scored != game.SideNone
	})
	require.True(t, ok, "Someone should score")
	assert.GreaterOrEqual(t, frame.Score.AI+frame.Score.Player, 1)
	assert.Equal(t, cfg.SurfaceWidth/2, frame.Ball.X, "ball is relaunched from the centre on the scoring frame")
}
