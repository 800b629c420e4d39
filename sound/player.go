package sound

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/plus3/blockfall/engine"
)

const sampleRate = 44100

// Player plays event cues through oto. It implements engine.Listener.
type Player struct {
	ctx    *oto.Context
	mu     sync.RWMutex
	volume float64
}

// NewPlayer opens the audio device and waits until it is ready.
func NewPlayer(volume float64) (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	return &Player{ctx: ctx, volume: clampVolume(volume)}, nil
}

func (p *Player) SetVolume(volume float64) {
	p.mu.Lock()
	p.volume = clampVolume(volume)
	p.mu.Unlock()
}

func (p *Player) Volume() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.volume
}

// Notify renders the cue for ev and plays it without blocking the caller.
func (p *Player) Notify(ev engine.Event) {
	tones := TonesFor(ev)
	if len(tones) == 0 {
		return
	}
	volume := p.Volume()

	go func() {
		player := p.ctx.NewPlayer(bytes.NewReader(Render(tones, sampleRate, volume)))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(5 * time.Millisecond)
		}
		_ = player.Close()
	}()
}
