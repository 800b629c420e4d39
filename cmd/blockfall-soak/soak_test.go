package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/engine"
)

func TestBotRestartsOutsidePlay(t *testing.T) {
	b := newBot(1)

	for _, mode := range []engine.Mode{engine.ModeMenu, engine.ModeGameOver, engine.ModePaused} {
		b.press(mode)
		assert.True(t, b.JustPressed(engine.CmdSpace), mode.String())
		assert.False(t, b.JustPressed(engine.CmdSpace), mode.String())
	}
}

func TestBotPressesAtMostOneCommand(t *testing.T) {
	b := newBot(7)
	moves := map[engine.Command]int{}

	for range 2000 {
		b.press(engine.ModePlaying)
		pressed := 0
		for _, cmd := range engine.Commands {
			if b.JustPressed(cmd) {
				moves[cmd]++
				pressed++
			}
		}
		require.LessOrEqual(t, pressed, 1)
	}

	assert.NotZero(t, moves[engine.CmdLeft])
	assert.NotZero(t, moves[engine.CmdSpace])
	assert.Zero(t, moves[engine.CmdPause])
	assert.Zero(t, moves[engine.CmdMute])
}

func TestBotIsDeterministic(t *testing.T) {
	a, b := newBot(3), newBot(3)
	for range 200 {
		a.press(engine.ModePlaying)
		b.press(engine.ModePlaying)
		require.Equal(t, a.pending, b.pending)
	}
}

func TestReportTalliesEvents(t *testing.T) {
	r := NewReport(time.Second, 16*time.Millisecond, 1)

	for _, ev := range []engine.Event{
		{Kind: engine.EventHardDrop},
		{Kind: engine.EventLineClear, Rows: 1},
		{Kind: engine.EventLineClear, Rows: 4},
		{Kind: engine.EventLineClear, Rows: 1},
		{Kind: engine.EventLevelUp, Level: 2},
		{Kind: engine.EventGameOver},
		{Kind: engine.EventMove},
	} {
		r.Notify(ev)
	}
	r.Observe(engine.Stats{Score: 900, Level: 2})
	r.Observe(engine.Stats{Score: 100, Level: 1})

	assert.Equal(t, 1, r.HardDrops)
	assert.Equal(t, 1, r.LevelUps)
	assert.Equal(t, 1, r.Games)
	assert.Equal(t, 6, r.Lines)
	assert.Equal(t, 900, r.BestScore)
	assert.Equal(t, 2, r.BestLevel)
	assert.Equal(t, []ClearBin{{1, 2}, {2, 0}, {3, 0}, {4, 1}}, r.Clears())
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestRunAndGenerate(t *testing.T) {
	report := NewReport(50*time.Millisecond, 100*time.Millisecond, 5)
	player := newBot(5)
	e := engine.New(engine.WithSeed(5), engine.WithInput(player), engine.WithAudio(report))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	run(ctx, e, player, report)

	require.Positive(t, report.TotalTicks)
	assert.Equal(t, time.Duration(report.TotalTicks)*report.Step, report.SimTime)
	require.NotNil(t, report.Scheduler)
	assert.Len(t, report.Scheduler.Stages, 3)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "# Blockfall Soak Report")
	assert.Contains(t, out, "- 4 rows:")
	assert.Contains(t, out, "| playStage |")
}
