package engine

import (
	"math"
	"time"
)

// Input reports edge-triggered commands. JustPressed returns true at most
// once per physical activation and consumes it.
type Input interface {
	JustPressed(cmd Command) bool
}

// Renderer draws the engine state once per tick.
type Renderer interface {
	Render(view *View)
}

// Listener receives gameplay notifications. Audio and haptics backends
// implement it.
type Listener interface {
	Notify(ev Event)
}

// HUD displays score, level and lines and the mode overlay.
type HUD interface {
	ModeChanged(mode Mode, overlay Overlay)
	MuteChanged(muted bool)
	StatsChanged(stats Stats)
}

// PieceView is a read-only description of a piece for drawing.
type PieceView struct {
	Kind     Kind
	X, Y     int
	Rotation int
	Color    Color
	Size     int
	Cells    []Offset
}

// ClearedRow is a row removed by the last lock, kept for the flash effect.
type ClearedRow struct {
	Index int
	Cells Row
}

// View is a snapshot of everything a renderer needs for one frame.
type View struct {
	Mode  Mode
	Grid  [Height]Row
	Stats Stats
	Muted bool

	// Active and GhostY are only set while playing.
	Active *PieceView
	GhostY int
	Next   *PieceView

	// Clearing holds the rows removed by the last lock while the clear
	// hold is running, with the time spent in the hold so far.
	Clearing     []ClearedRow
	ClearElapsed time.Duration

	Overlay Overlay
}

// ClearAlpha is the opacity of the cleared rows at this point of the clear
// hold. It pulses between 0 and 1 with a period of about 314ms.
func (v *View) ClearAlpha() float64 {
	ms := float64(v.ClearElapsed) / float64(time.Millisecond)
	return 0.5 + 0.5*math.Sin(ms/50)
}

// ShowGhost reports whether the landing preview is drawn: only while a
// piece is active and the preview is not where the piece already is.
func (v *View) ShowGhost() bool {
	return v.Active != nil && v.GhostY != v.Active.Y
}

func newPieceView(p *Piece) *PieceView {
	if p == nil {
		return nil
	}
	return &PieceView{
		Kind:     p.Kind(),
		X:        p.X,
		Y:        p.Y,
		Rotation: p.Rotation(),
		Color:    p.Color(),
		Size:     p.Size(),
		Cells:    p.Cells(),
	}
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(ev Event)

func (f ListenerFunc) Notify(ev Event) {
	f(ev)
}

// RendererFunc adapts a function to a Renderer.
type RendererFunc func(view *View)

func (f RendererFunc) Render(view *View) {
	f(view)
}

// notify calls l and swallows any panic so a failing collaborator cannot
// break the tick.
func notify(l Listener, ev Event) {
	defer func() { _ = recover() }()
	l.Notify(ev)
}

func render(r Renderer, view *View) {
	defer func() { _ = recover() }()
	r.Render(view)
}

func hudCall(fn func()) {
	defer func() { _ = recover() }()
	fn()
}
