// File: test/e2e_setup_test.go
package test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lguibr/pongsolo/bollywood"
	"github.com/lguibr/pongsolo/server"
	"github.com/lguibr/pongsolo/utils"
	"golang.org/x/net/websocket"
)

// E2ESetupResult holds the results of the setup function.
type E2ESetupResult struct {
	Engine   *bollywood.Engine
	WsServer *server.Server
	Server   *httptest.Server
	WsURL    string
	Origin   string
	Cfg      utils.Config
}

// SetupE2ETest initializes the engine and a test server routed like main.
// It accepts a specific config to use.
func SetupE2ETest(t *testing.T, cfg utils.Config) E2ESetupResult {
	t.Helper()

	engine := bollywood.NewEngine()
	wsServer := server.New(engine, cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("/", wsServer.HandleGetStatus())
	mux.Handle("/subscribe", websocket.Handler(wsServer.HandleSubscribe()))
	s := httptest.NewServer(mux)

	return E2ESetupResult{
		Engine:   engine,
		WsServer: wsServer,
		Server:   s,
		WsURL:    "ws" + strings.TrimPrefix(s.URL, "http") + "/subscribe",
		Origin:   "http://localhost/",
		Cfg:      cfg,
	}
}

// TeardownE2ETest shuts down the engine and closes the server.
func TeardownE2ETest(t *testing.T, setupResult E2ESetupResult, shutdownTimeout time.Duration) {
	t.Helper()
	if setupResult.Server != nil {
		setupResult.Server.Close()
	}
	if setupResult.Engine != nil {
		setupResult.Engine.Shutdown(shutdownTimeout)
	}
}
