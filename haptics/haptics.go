// Package haptics maps gameplay events to vibration patterns.
package haptics

import (
	"time"

	"github.com/plus3/blockfall/engine"
)

// Pattern alternates vibrate and pause durations, starting with vibrate.
type Pattern []time.Duration

// PatternFor returns the vibration pattern for ev, or nil.
func PatternFor(ev engine.Event) Pattern {
	switch ev.Kind {
	case engine.EventHardDrop:
		return Pattern{30 * time.Millisecond}
	case engine.EventLineClear:
		if ev.Rows == 4 {
			return Pattern{50 * time.Millisecond, 20 * time.Millisecond, 50 * time.Millisecond}
		}
		return Pattern{30 * time.Millisecond}
	case engine.EventGameOver:
		return Pattern{
			100 * time.Millisecond, 50 * time.Millisecond,
			100 * time.Millisecond, 50 * time.Millisecond,
			200 * time.Millisecond,
		}
	default:
		return nil
	}
}

// Total is the time from the first pulse starting to the last one ending.
func (p Pattern) Total() time.Duration {
	var d time.Duration
	for _, step := range p {
		d += step
	}
	return d
}

// Vibrator drives one pulse of the device motor.
type Vibrator func(d time.Duration)

// Player turns events into pulses. It implements engine.Listener.
type Player struct {
	vibrate Vibrator
	sleep   func(time.Duration)
	enabled bool
}

// NewPlayer creates a player that sends pulses to vibrate.
func NewPlayer(vibrate Vibrator, enabled bool) *Player {
	return &Player{vibrate: vibrate, sleep: time.Sleep, enabled: enabled}
}

func (p *Player) SetEnabled(enabled bool) {
	p.enabled = enabled
}

// Notify plays the pattern for ev on a separate goroutine.
func (p *Player) Notify(ev engine.Event) {
	pattern := PatternFor(ev)
	if !p.enabled || p.vibrate == nil || len(pattern) == 0 {
		return
	}
	go p.play(pattern)
}

func (p *Player) play(pattern Pattern) {
	for i, d := range pattern {
		if i%2 == 0 {
			p.vibrate(d)
		}
		p.sleep(d)
	}
}
