package sound

import (
	"math"
	"time"

	"github.com/plus3/blockfall/engine"
)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Sawtooth
)

// Tone is one oscillator voice. Voices in a cue start together unless
// delayed and their samples are summed.
type Tone struct {
	Frequency float64
	Duration  time.Duration
	Delay     time.Duration
	Wave      Wave
	Volume    float64
}

func (t Tone) end() time.Duration {
	return t.Delay + t.Duration
}

var lineClearBase = [...]float64{200, 250, 300, 350}

// TonesFor returns the cue for a gameplay event. Events without a cue
// return nil.
func TonesFor(ev engine.Event) []Tone {
	switch ev.Kind {
	case engine.EventMove:
		return []Tone{{Frequency: 200, Duration: 50 * time.Millisecond, Wave: Square, Volume: 0.05}}
	case engine.EventRotate:
		return []Tone{{Frequency: 300, Duration: 80 * time.Millisecond, Wave: Square, Volume: 0.08}}
	case engine.EventHardDrop:
		return []Tone{
			{Frequency: 150, Duration: 100 * time.Millisecond, Wave: Square, Volume: 0.15},
			{Frequency: 100, Duration: 150 * time.Millisecond, Wave: Square, Volume: 0.1},
		}
	case engine.EventLineClear:
		if ev.Rows < 1 {
			return nil
		}
		freq := lineClearBase[min(ev.Rows, len(lineClearBase))-1]
		return []Tone{
			{Frequency: freq, Duration: 200 * time.Millisecond, Wave: Square, Volume: 0.2},
			{Frequency: freq * 1.5, Duration: 150 * time.Millisecond, Wave: Square, Volume: 0.15},
		}
	case engine.EventLevelUp:
		return []Tone{
			{Frequency: 400, Duration: 100 * time.Millisecond, Wave: Sine, Volume: 0.2},
			{Frequency: 500, Duration: 100 * time.Millisecond, Wave: Sine, Volume: 0.2},
			{Frequency: 600, Duration: 200 * time.Millisecond, Wave: Sine, Volume: 0.2},
		}
	case engine.EventGameOver:
		return []Tone{
			{Frequency: 150, Duration: 300 * time.Millisecond, Wave: Sawtooth, Volume: 0.3},
			{Frequency: 100, Duration: 500 * time.Millisecond, Delay: 200 * time.Millisecond, Wave: Sawtooth, Volume: 0.3},
		}
	default:
		return nil
	}
}

const (
	bytesPerFrame = 4
	decayFloor    = 0.01
)

// Render mixes tones into interleaved stereo signed 16-bit little endian
// PCM. Each voice decays exponentially from its volume toward 1% over its
// duration.
func Render(tones []Tone, sampleRate int, masterVolume float64) []byte {
	var length time.Duration
	for _, t := range tones {
		length = max(length, t.end())
	}
	frames := samplesFor(length, sampleRate)
	mix := make([]float64, frames)

	master := clampVolume(masterVolume)
	for _, t := range tones {
		start := samplesFor(t.Delay, sampleRate)
		n := min(samplesFor(t.Duration, sampleRate), frames-start)
		if n <= 0 || t.Volume <= 0 {
			continue
		}
		ratio := decayFloor / t.Volume
		for i := range n {
			progress := float64(i) / float64(n)
			gain := t.Volume * math.Pow(ratio, progress)
			phase := t.Frequency * float64(i) / float64(sampleRate)
			mix[start+i] += oscillate(t.Wave, phase) * gain * master
		}
	}

	const maxInt16 = 1<<15 - 1
	buffer := make([]byte, frames*bytesPerFrame)
	for i, s := range mix {
		value := int16(max(-1, min(1, s)) * maxInt16)
		buffer[i*4] = byte(value)
		buffer[i*4+1] = byte(value >> 8)
		buffer[i*4+2] = byte(value)
		buffer[i*4+3] = byte(value >> 8)
	}
	return buffer
}

// oscillate samples a unit-amplitude wave at phase cycles.
func oscillate(w Wave, phase float64) float64 {
	_, frac := math.Modf(phase)
	switch w {
	case Square:
		if frac < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*frac - 1
	default:
		return math.Sin(2 * math.Pi * frac)
	}
}

func samplesFor(d time.Duration, sampleRate int) int {
	return int(float64(sampleRate) * d.Seconds())
}

func clampVolume(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
