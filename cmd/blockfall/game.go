package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/engine/debugui"
	debugui_ebiten "github.com/plus3/blockfall/engine/debugui/ebiten"
)

// Game implements ebiten.Game. Each Update polls the keyboard and ticks the
// engine with the measured frame time.
type Game struct {
	engine *engine.Engine
	input  *keyInput
	screen *screen
	scale  float64

	// Set only when the debug inspector is enabled.
	imguiBackend *debugui_ebiten.ImguiBackend
	imguiStage   *debugui.ImguiStage

	canvas   *ebiten.Image
	lastTick time.Time
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	dt := now.Sub(g.lastTick)
	if g.lastTick.IsZero() {
		dt = 0
	}
	g.lastTick = now

	if g.imguiStage == nil || !g.imguiStage.InputState.WantCaptureKeyboard {
		g.input.poll(inpututil.IsKeyJustPressed)
	}

	if g.imguiBackend != nil {
		g.imguiBackend.BeginFrame()
	}

	g.engine.Tick(dt)

	if g.imguiBackend != nil {
		g.imguiBackend.EndFrame()
	}
	return nil
}

func (g *Game) Draw(dst *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(screenWidth, screenHeight)
	}
	g.screen.draw(g.canvas)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	dst.DrawImage(g.canvas, op)

	if g.imguiBackend != nil {
		g.imguiBackend.DrawOver(dst)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return int(screenWidth * g.scale), int(screenHeight * g.scale)
}
