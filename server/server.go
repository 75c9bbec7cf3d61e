package server

import (
	"sync"

	"github.com/lguibr/pongsolo/bollywood"
	"github.com/lguibr/pongsolo/utils"
	"golang.org/x/net/websocket"
)

// Server hosts one private game per websocket connection.
type Server struct {
	engine *bollywood.Engine
	cfg    utils.Config
	mu     sync.RWMutex
	games  map[*websocket.Conn]*bollywood.PID
}

func New(engine *bollywood.Engine, cfg utils.Config) *Server {
	return &Server{
		engine: engine,
		cfg:    cfg,
		games:  make(map[*websocket.Conn]*bollywood.PID),
	}
}

func (s *Server) GetEngine() *bollywood.Engine { return s.engine }

func (s *Server) openGame(ws *websocket.Conn, pid *bollywood.PID) {
	s.mu.Lock()
	s.games[ws] = pid
	s.mu.Unlock()
}

func (s *Server) closeGame(ws *websocket.Conn) *bollywood.PID {
	s.mu.Lock()
	defer s.mu.Unlock()
	pid := s.games[ws]
	delete(s.games, ws)
	return pid
}

// ActiveGames reports how many connections currently own a game.
func (s *Server) ActiveGames() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
