package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lguibr/pongsolo/utils"
)

func main() {
	configPath := flag.String("config", "", "Optional TOML file overriding the default game settings")
	seed := flag.Int64("seed", 0, "Random seed for ball launches (0 seeds from the clock)")
	plain := flag.Bool("plain", false, "Render without ANSI colours")
	flag.Parse()

	cfg := utils.DefaultConfig()
	if *configPath != "" {
		loaded, err := utils.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", *configPath, err)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	m := newModel(cfg, utils.NewRand(cfg.Seed), *plain)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running terminal client: %v\n", err)
		log.Fatal(err)
	}
}
