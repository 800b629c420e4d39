package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/engine"
)

// defaultBindings is the keyboard layout: arrows or WASD, with Down only on
// the arrow keys.
var defaultBindings = []struct {
	key ebiten.Key
	cmd engine.Command
}{
	{ebiten.KeyArrowLeft, engine.CmdLeft},
	{ebiten.KeyA, engine.CmdLeft},
	{ebiten.KeyArrowRight, engine.CmdRight},
	{ebiten.KeyD, engine.CmdRight},
	{ebiten.KeyArrowDown, engine.CmdDown},
	{ebiten.KeyArrowUp, engine.CmdRotate},
	{ebiten.KeyW, engine.CmdRotate},
	{ebiten.KeySpace, engine.CmdSpace},
	{ebiten.KeyP, engine.CmdPause},
	{ebiten.KeyM, engine.CmdMute},
}

// keyInput latches key presses between engine ticks. It implements
// engine.Input.
type keyInput struct {
	bindings *intmap.Map[ebiten.Key, engine.Command]
	keys     []ebiten.Key
	pending  engine.CommandSet
}

func newKeyInput() *keyInput {
	in := &keyInput{
		bindings: intmap.New[ebiten.Key, engine.Command](len(defaultBindings)),
	}
	for _, b := range defaultBindings {
		in.bind(b.key, b.cmd)
	}
	return in
}

func (in *keyInput) bind(key ebiten.Key, cmd engine.Command) {
	if _, ok := in.bindings.Get(key); !ok {
		in.keys = append(in.keys, key)
	}
	in.bindings.Put(key, cmd)
}

// poll records every bound key that went down this frame.
func (in *keyInput) poll(justPressed func(ebiten.Key) bool) {
	for _, key := range in.keys {
		if !justPressed(key) {
			continue
		}
		if cmd, ok := in.bindings.Get(key); ok {
			in.pending.Add(cmd)
		}
	}
}

func (in *keyInput) JustPressed(cmd engine.Command) bool {
	if !in.pending.Has(cmd) {
		return false
	}
	in.pending.Remove(cmd)
	return true
}
