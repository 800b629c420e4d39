package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/engine/debugui"
	debugui_ebiten "github.com/plus3/blockfall/engine/debugui/ebiten"
	"github.com/plus3/blockfall/haptics"
	"github.com/plus3/blockfall/sound"
)

const windowTitle = "Blockfall"

func main() {
	envFile := flag.String("env", ".env", "settings file loaded before the environment")
	scale := flag.Int("scale", 0, "window scale (overrides BLOCKFALL_SCALE)")
	muted := flag.Bool("muted", false, "start with audio muted")
	noHaptics := flag.Bool("no-haptics", false, "disable vibration feedback")
	debugUI := flag.Bool("debug-ui", false, "show the ImGui inspector")
	seed := flag.Uint64("seed", 0, "piece sequence seed (0 picks one at random)")
	volume := flag.Float64("volume", -1, "tone volume in [0, 1]")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *scale > 0 {
		cfg.Scale = *scale
	}
	cfg.Muted = cfg.Muted || *muted
	cfg.Haptics = cfg.Haptics && !*noHaptics
	cfg.DebugUI = cfg.DebugUI || *debugUI
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *volume >= 0 && *volume <= 1 {
		cfg.Volume = *volume
	}

	log.Printf("Starting blockfall: scale=%d muted=%t haptics=%t debugUI=%t seed=%d volume=%.2f",
		cfg.Scale, cfg.Muted, cfg.Haptics, cfg.DebugUI, cfg.Seed, cfg.Volume)

	input := newKeyInput()
	scr := newScreen()

	opts := []engine.Option{
		engine.WithInput(input),
		engine.WithRenderer(scr),
		engine.WithHUD(scr),
		engine.WithMuted(cfg.Muted),
		engine.WithHaptics(haptics.NewPlayer(vibrate, cfg.Haptics)),
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

	e := engine.New(opts...)

	game := &Game{
		engine: e,
		input:  input,
		screen: scr,
		scale:  float64(cfg.Scale),
	}

	if cfg.DebugUI {
		game.imguiBackend = debugui_ebiten.NewImguiBackend(windowTitle+" (debug)", 1280, 720)
		game.imguiStage = debugui.Attach(e)
	} else {
		ebiten.SetWindowSize(screenWidth*cfg.Scale, screenHeight*cfg.Scale)
		ebiten.SetWindowTitle(windowTitle)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
	log.Println("Goodbye")
}
