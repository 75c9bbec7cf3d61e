package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lguibr/pongsolo/game"
	"github.com/lguibr/pongsolo/render"
	"github.com/lguibr/pongsolo/utils"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the configured rate.
func tickCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type styles struct {
	player lipgloss.Style
	ai     lipgloss.Style
	dim    lipgloss.Style
}

func newStyles(cfg utils.Config) styles {
	hex := func(s string) lipgloss.Color {
		c, err := utils.ParseHexColor(s)
		if err != nil {
			return lipgloss.Color("7")
		}
		return lipgloss.Color(c.Hex())
	}
	return styles{
		player: lipgloss.NewStyle().Bold(true).Foreground(hex(cfg.PlayerColor)),
		ai:     lipgloss.NewStyle().Bold(true).Foreground(hex(cfg.AIColor)),
		dim:    lipgloss.NewStyle().Faint(true),
	}
}

type model struct {
	cfg     utils.Config
	sim     *game.Simulation
	palette game.Palette
	score   game.Scoreboard
	raster  *render.Raster // nil until the terminal size is known
	plain   bool
	styles  styles
}

func newModel(cfg utils.Config, rnd game.RandomSource, plain bool) model {
	return model{
		cfg:     cfg,
		sim:     game.NewSimulation(cfg, rnd),
		palette: game.NewPalette(cfg),
		plain:   plain,
		styles:  newStyles(cfg),
	}
}

func (m model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickPeriod())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		// One row is reserved for the status line.
		rows := msg.Height - 1
		if msg.Width <= 0 || rows <= 0 {
			m.raster = nil
			return m, nil
		}
		m.raster = render.NewRaster(msg.Width, rows, m.cfg.SurfaceWidth, m.cfg.SurfaceHeight)

	case tea.MouseMsg:
		if m.raster == nil {
			return m, nil
		}
		scaleY := m.cfg.SurfaceHeight / float64(m.raster.Rows)
		// Aim at the middle of the hovered row.
		m.sim.MovePointer(float64(msg.Y)+0.5, scaleY)

	case TickMsg:
		var result game.StepResult
		if m.raster != nil {
			result = game.StepAndDraw(m.sim, m.raster, m.palette)
		} else {
			result = m.sim.Step()
		}
		m.score.Record(result.Scored)
		return m, tickCmd(m.cfg.TickPeriod())
	}
	return m, nil
}

func (m model) statusLine() string {
	return fmt.Sprintf("%s  %s  %s",
		m.styles.player.Render(fmt.Sprintf("PLAYER %d", m.score.Player)),
		m.styles.ai.Render(fmt.Sprintf("AI %d", m.score.AI)),
		m.styles.dim.Render(fmt.Sprintf("tick %d · move the mouse · q quits", m.sim.Tick)),
	)
}

func (m model) View() string {
	if m.raster == nil {
		return "Waiting for terminal size...\n"
	}
	field := m.raster.String()
	if m.plain {
		field = m.raster.Plain()
	}
	return field + "\n" + m.statusLine()
}
