package main

import (
	"flag"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/sound"
)

func main() {
	debug := flag.Bool("debug", false, "write a debug log to blockfall-debug.log")
	envFile := flag.String("env", ".env", "settings file loaded before the environment")
	muted := flag.Bool("muted", false, "start with audio muted")
	seed := flag.Uint64("seed", 0, "piece sequence seed (0 picks one at random)")
	volume := flag.Float64("volume", -1, "tone volume in [0, 1]")
	flag.Parse()

	// The alternate screen owns stdout, so logs go to a file or nowhere.
	if *debug {
		f, err := tea.LogToFile("blockfall-debug.log", "debug")
		if err != nil {
			log.Fatalf("Failed to open debug log: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}
	cfg.Muted = cfg.Muted || *muted
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *volume >= 0 && *volume <= 1 {
		cfg.Volume = *volume
	}
	log.Printf("Starting blockfall-tui: muted=%t seed=%d volume=%.2f", cfg.Muted, cfg.Seed, cfg.Volume)

	input := &termInput{}
	scr := newScreen()

	opts := []engine.Option{
		engine.WithInput(input),
		engine.WithRenderer(scr),
		engine.WithHUD(scr),
		engine.WithMuted(cfg.Muted),
	}
	if cfg.Seed != 0 {
		opts = append(opts, engine.WithSeed(cfg.Seed))
	}
	player, err := sound.NewPlayer(cfg.Volume)
	if err != nil {
		log.Printf("Audio disabled: %v", err)
	} else {
		opts = append(opts, engine.WithAudio(player))
	}

	program := tea.NewProgram(NewModel(engine.New(opts...), input, scr), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Printf("Program error: %v", err)
		os.Exit(1)
	}
}
