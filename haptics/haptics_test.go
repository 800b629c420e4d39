package haptics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/engine"
)

func TestPatternFor(t *testing.T) {
	ms := time.Millisecond
	tests := []struct {
		name string
		ev   engine.Event
		want Pattern
	}{
		{"hard drop", engine.Event{Kind: engine.EventHardDrop}, Pattern{30 * ms}},
		{"single", engine.Event{Kind: engine.EventLineClear, Rows: 1}, Pattern{30 * ms}},
		{"triple", engine.Event{Kind: engine.EventLineClear, Rows: 3}, Pattern{30 * ms}},
		{"tetris", engine.Event{Kind: engine.EventLineClear, Rows: 4}, Pattern{50 * ms, 20 * ms, 50 * ms}},
		{"game over", engine.Event{Kind: engine.EventGameOver}, Pattern{100 * ms, 50 * ms, 100 * ms, 50 * ms, 200 * ms}},
		{"move", engine.Event{Kind: engine.EventMove}, nil},
		{"level up", engine.Event{Kind: engine.EventLevelUp, Level: 2}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PatternFor(tt.ev))
		})
	}
}

func TestPatternTotal(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, PatternFor(engine.Event{Kind: engine.EventGameOver}).Total())
	assert.Equal(t, time.Duration(0), Pattern(nil).Total())
}

func TestPlayPulsesOnlyVibrateSteps(t *testing.T) {
	var pulses, slept []time.Duration
	p := NewPlayer(func(d time.Duration) { pulses = append(pulses, d) }, true)
	p.sleep = func(d time.Duration) { slept = append(slept, d) }

	p.play(PatternFor(engine.Event{Kind: engine.EventGameOver}))

	ms := time.Millisecond
	assert.Equal(t, []time.Duration{100 * ms, 100 * ms, 200 * ms}, pulses)
	assert.Equal(t, []time.Duration{100 * ms, 50 * ms, 100 * ms, 50 * ms, 200 * ms}, slept)
}

func TestNotifyDelivers(t *testing.T) {
	got := make(chan time.Duration, 1)
	p := NewPlayer(func(d time.Duration) { got <- d }, true)
	p.sleep = func(time.Duration) {}

	p.Notify(engine.Event{Kind: engine.EventHardDrop})

	select {
	case d := <-got:
		assert.Equal(t, 30*time.Millisecond, d)
	case <-time.After(time.Second):
		t.Fatal("no pulse")
	}
}

func TestNotifyDisabled(t *testing.T) {
	called := false
	p := NewPlayer(func(time.Duration) { called = true }, false)

	p.Notify(engine.Event{Kind: engine.EventHardDrop})
	p.Notify(engine.Event{Kind: engine.EventMove})

	// Nothing is scheduled, so there is no goroutine to wait for.
	assert.False(t, called)
}
