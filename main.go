package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/meghashyamc/clickcircle/config"
	"github.com/meghashyamc/clickcircle/display"
	"github.com/meghashyamc/clickcircle/game"
	"github.com/meghashyamc/clickcircle/logger"
	"github.com/meghashyamc/clickcircle/sound"
	"github.com/meghashyamc/clickcircle/terminal"
)

const (
	frontendWindow   = "window"
	frontendTerminal = "terminal"
	defaultTitle     = "Timed Click-the-Circle Game"
)

// frontend is a game.Renderer that can also run the input loop.
type frontend interface {
	game.Renderer
	Attach(controller *game.Controller)
	Run() error
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.GetLogLevel())

	if err := run(cfg, log); err != nil {
		log.Error("error running game", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	settings := game.NewSettings(cfg, log)
	scheduler := game.NewTickScheduler()

	ui, err := newFrontend(cfg, settings, scheduler, log)
	if err != nil {
		return err
	}

	player := sound.NewPlayer(cfg.GetAudioEnabled(), log)
	if err := player.Init(); err != nil {
		log.Warn("audio disabled", "err", err)
	}
	defer player.Close()

	hooks := game.Hooks{
		OnHit: func(int) { player.PlayHit() },
		OnRoundOver: func(_, _ int, newRecord bool) {
			player.PlayRoundOver(newRecord)
		},
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	controller := game.NewController(settings, ui, scheduler, rng, log, hooks)
	ui.Attach(controller)

	return ui.Run()
}

func newFrontend(cfg *config.Config, settings game.Settings, scheduler *game.TickScheduler, log logger.Logger) (frontend, error) {
	switch name := cfg.GetFrontend(); name {
	case frontendTerminal:
		screen, err := terminal.NewScreen(settings, scheduler, log)
		if err != nil {
			return nil, err
		}
		return screen, nil
	case frontendWindow, "":
		title := cfg.GetWindowTitle()
		if len(title) == 0 {
			title = defaultTitle
		}
		return display.NewWindow(settings, title, cfg.GetPanelHeight(), scheduler, log), nil
	default:
		return nil, fmt.Errorf("unknown frontend %q", name)
	}
}
