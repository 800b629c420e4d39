package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// vibrate drives the device motor at full strength. It is a no-op on
// platforms without a vibrator.
func vibrate(d time.Duration) {
	ebiten.Vibrate(&ebiten.VibrateOptions{
		Duration:  d,
		Magnitude: 1,
	})
}
