package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/engine"
)

// idle stands for a tick where the bot presses nothing.
const idle engine.Command = -1

// botMoves weights the commands the bot picks while playing. Hard drops
// are rare enough that pieces usually travel a few columns first.
var botMoves = []struct {
	cmd    engine.Command
	weight int
}{
	{engine.CmdLeft, 6},
	{engine.CmdRight, 6},
	{engine.CmdRotate, 4},
	{engine.CmdDown, 6},
	{engine.CmdSpace, 1},
	{idle, 12},
}

// bot is a random player. It implements engine.Input and presses at most
// one command per tick.
type bot struct {
	rng     *rand.Rand
	total   int
	pending engine.CommandSet
}

func newBot(seed uint64) *bot {
	b := &bot{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
	for _, m := range botMoves {
		b.total += m.weight
	}
	return b
}

// press picks the command for the next tick. Outside of play it always
// presses space so finished games restart.
func (b *bot) press(mode engine.Mode) {
	b.pending = 0
	if mode != engine.ModePlaying {
		b.pending.Add(engine.CmdSpace)
		return
	}
	n := b.rng.IntN(b.total)
	for _, m := range botMoves {
		if n < m.weight {
			if m.cmd != idle {
				b.pending.Add(m.cmd)
			}
			return
		}
		n -= m.weight
	}
}

func (b *bot) JustPressed(cmd engine.Command) bool {
	if !b.pending.Has(cmd) {
		return false
	}
	b.pending.Remove(cmd)
	return true
}
