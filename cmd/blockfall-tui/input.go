package main

import (
	"github.com/plus3/blockfall/engine"
)

// keyCommands maps bubbletea key strings to commands.
var keyCommands = map[string]engine.Command{
	"left":  engine.CmdLeft,
	"a":     engine.CmdLeft,
	"A":     engine.CmdLeft,
	"right": engine.CmdRight,
	"d":     engine.CmdRight,
	"D":     engine.CmdRight,
	"down":  engine.CmdDown,
	"up":    engine.CmdRotate,
	"w":     engine.CmdRotate,
	"W":     engine.CmdRotate,
	" ":     engine.CmdSpace,
	"p":     engine.CmdPause,
	"P":     engine.CmdPause,
	"m":     engine.CmdMute,
	"M":     engine.CmdMute,
}

// termInput latches key messages until the next engine tick reads them.
// Terminals only report key presses, so every message is a fresh press.
type termInput struct {
	pending engine.CommandSet
}

// press records a key and reports whether it is bound.
func (in *termInput) press(key string) bool {
	cmd, ok := keyCommands[key]
	if ok {
		in.pending.Add(cmd)
	}
	return ok
}

func (in *termInput) JustPressed(cmd engine.Command) bool {
	if !in.pending.Has(cmd) {
		return false
	}
	in.pending.Remove(cmd)
	return true
}
