package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lguibr/pongsolo/bollywood"
	"github.com/lguibr/pongsolo/server"
	"github.com/lguibr/pongsolo/utils"
	"golang.org/x/net/websocket"
)

func loadConfig() utils.Config {
	path := os.Getenv("PONGO_CONFIG")
	if path == "" {
		return utils.DefaultConfig()
	}
	cfg, err := utils.LoadConfig(path)
	if err != nil {
		log.Fatalf("Failed to load config %s: %v", path, err)
	}
	fmt.Printf("Loaded config from %s\n", path)
	return cfg
}

func main() {
	cfg := loadConfig()

	engine := bollywood.NewEngine()
	wsServer := server.New(engine, cfg)

	http.HandleFunc("/", wsServer.HandleGetStatus())
	http.Handle("/subscribe", websocket.Handler(wsServer.HandleSubscribe()))

	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		<-signals
		fmt.Println("Shutting down, stopping games...")
		engine.Shutdown(2 * time.Second)
		os.Exit(0)
	}()

	fmt.Printf("Pong server listening on %s (%d fps)\n", cfg.ListenAddr, cfg.FrameRate)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, nil))
}
