package engine

import (
	"context"
	"math/rand/v2"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Option configures an Engine.
type Option func(*Engine)

// WithInput sets the command source polled at the start of every tick.
func WithInput(in Input) Option {
	return func(e *Engine) { e.input = in }
}

// WithRenderer sets the renderer called at the end of every tick.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// WithAudio sets the listener for sound effects. It is skipped while muted.
func WithAudio(l Listener) Option {
	return func(e *Engine) { e.audio = l }
}

// WithHaptics sets the listener for vibration feedback.
func WithHaptics(l Listener) Option {
	return func(e *Engine) { e.haptics = l }
}

// WithHUD sets the score and overlay display.
func WithHUD(h HUD) Option {
	return func(e *Engine) { e.hud = h }
}

// WithSource sets the random source shared by every bag the engine creates.
func WithSource(src rand.Source) Option {
	return func(e *Engine) { e.source = src }
}

// WithSeed makes the piece sequence reproducible.
func WithSeed(seed uint64) Option {
	return WithSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// WithMuted sets the initial mute state.
func WithMuted(muted bool) Option {
	return func(e *Engine) { e.muted = muted }
}

type clearHold struct {
	rows    []ClearedRow
	elapsed time.Duration
}

func (h *clearHold) active() bool {
	return len(h.rows) > 0
}

// Engine owns the board, the falling piece and the randomizer for a play
// session and advances them one tick at a time. It is not safe for
// concurrent use.
type Engine struct {
	mode       Mode
	board      *Board
	randomizer *Randomizer
	source     rand.Source
	current    *Piece
	next       *Piece
	stats      Stats
	gravity    time.Duration
	hold       clearHold
	muted      bool

	input    Input
	renderer Renderer
	audio    Listener
	haptics  Listener
	hud      HUD

	scheduler *Scheduler
	printer   *message.Printer
}

// New creates an engine in the menu mode with a queued next piece.
func New(opts ...Option) *Engine {
	e := &Engine{
		mode:    ModeMenu,
		board:   NewBoard(),
		stats:   Stats{Level: 1},
		printer: message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.source == nil {
		e.source = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	e.randomizer = NewRandomizer(e.source)
	e.next = NewPiece(e.randomizer.Next())

	e.scheduler = NewScheduler(e.deliver)
	e.scheduler.Register(&inputStage{engine: e})
	e.scheduler.Register(&playStage{engine: e})
	e.scheduler.Register(&presentStage{engine: e, lastMode: -1})

	return e
}

// AddStage appends a stage that runs after the built-in ones on every tick.
// Stages see the commands pressed this tick and may defer work until the
// tick's notifications are delivered.
func (e *Engine) AddStage(s Stage) {
	e.scheduler.Register(s)
}

// Tick advances the engine by dt: input, then play, then notifications.
func (e *Engine) Tick(dt time.Duration) {
	e.scheduler.Once(dt)
}

// Run ticks the engine at the given interval until ctx is cancelled.
func (e *Engine) Run(ctx context.Context, interval time.Duration) {
	e.scheduler.Run(ctx, interval)
}

// Start begins a new game from the menu or the game over screen. It reports
// whether the mode changed.
func (e *Engine) Start() bool {
	if e.mode != ModeMenu && e.mode != ModeGameOver {
		return false
	}
	e.start(e.scheduler.events)
	return true
}

// Pause suspends a running game.
func (e *Engine) Pause() bool {
	if e.mode != ModePlaying {
		return false
	}
	e.mode = ModePaused
	return true
}

// Resume continues a paused game.
func (e *Engine) Resume() bool {
	if e.mode != ModePaused {
		return false
	}
	e.mode = ModePlaying
	return true
}

// ToggleMute flips the mute state and returns the new value.
func (e *Engine) ToggleMute() bool {
	e.toggleMute(e.scheduler.events)
	return e.muted
}

func (e *Engine) Mode() Mode {
	return e.mode
}

func (e *Engine) Stats() Stats {
	return e.stats
}

func (e *Engine) Muted() bool {
	return e.muted
}

// Board returns the live board. Callers must treat it as read-only.
func (e *Engine) Board() *Board {
	return e.board
}

// Current returns the falling piece, or nil before the first game.
func (e *Engine) Current() *Piece {
	return e.current
}

// Next returns the queued piece shown in the preview.
func (e *Engine) Next() *Piece {
	return e.next
}

// Holding reports whether the line clear hold is running.
func (e *Engine) Holding() bool {
	return e.hold.active()
}

// GravityElapsed is the time accumulated toward the next automatic descent.
func (e *Engine) GravityElapsed() time.Duration {
	return e.gravity
}

// BagRemaining lists the kinds left in the current bag in draw order.
func (e *Engine) BagRemaining() []Kind {
	return e.randomizer.Peek()
}

func (e *Engine) SchedulerStats() *SchedulerStats {
	return e.scheduler.GetStats()
}

// Overlay returns the message box for the current mode.
func (e *Engine) Overlay() Overlay {
	switch e.mode {
	case ModeMenu:
		return Overlay{Visible: true, Title: "BLOCKFALL", Message: "Press SPACE to start"}
	case ModePaused:
		return Overlay{Visible: true, Title: "PAUSED", Message: "Press P to resume"}
	case ModeGameOver:
		return Overlay{
			Visible: true,
			Title:   "GAME OVER",
			Message: e.printer.Sprintf("Final Score: %d\nPress SPACE to restart", e.stats.Score),
		}
	default:
		return Overlay{}
	}
}

// View builds a snapshot of the current state for rendering.
func (e *Engine) View() *View {
	v := &View{
		Mode:    e.mode,
		Grid:    e.board.Grid(),
		Stats:   e.stats,
		Muted:   e.muted,
		Next:    newPieceView(e.next),
		Overlay: e.Overlay(),
	}

	if e.mode == ModePlaying && e.current != nil {
		v.Active = newPieceView(e.current)
		v.GhostY = e.board.GhostY(e.current, e.current.X, e.current.Y)
	}

	if e.hold.active() {
		v.Clearing = append([]ClearedRow(nil), e.hold.rows...)
		v.ClearElapsed = e.hold.elapsed
	}

	return v
}

func (e *Engine) start(ev *Events) {
	e.stats = Stats{Level: 1}
	e.gravity = 0
	e.hold = clearHold{}
	e.board = NewBoard()
	e.randomizer = NewRandomizer(e.source)
	e.current = nil
	e.mode = ModePlaying
	e.spawn(ev)
}

func (e *Engine) pause() {
	e.mode = ModePaused
}

func (e *Engine) toggleMute(ev *Events) {
	e.muted = !e.muted
	ev.Push(Event{Kind: EventMuteToggled, Muted: e.muted})
}

// spawn promotes the queued piece, queues a new one and places the current
// piece centered on the top row. A blocked spawn ends the game.
func (e *Engine) spawn(ev *Events) {
	if e.next == nil {
		e.next = NewPiece(e.randomizer.Next())
	}

	p := e.next
	e.next = NewPiece(e.randomizer.Next())
	p.X = (Width - p.Size()) / 2
	p.Y = 0
	e.current = p

	if !e.board.IsValidPosition(p, p.X, p.Y) {
		e.gameOver(ev)
	}
}

func (e *Engine) gameOver(ev *Events) {
	e.mode = ModeGameOver
	ev.Push(Event{Kind: EventGameOver})
}

func (e *Engine) shift(dx int, ev *Events) {
	p := e.current
	if !e.board.IsValidPosition(p, p.X+dx, p.Y) {
		return
	}
	p.X += dx
	ev.Push(Event{Kind: EventMove})
}

func (e *Engine) rotate(dir int, ev *Events) {
	p := e.current
	x, y, ok := p.Rotate(dir, e.board, p.X, p.Y)
	if !ok {
		return
	}
	p.X, p.Y = x, y
	ev.Push(Event{Kind: EventRotate})
}

func (e *Engine) softDrop(ev *Events) {
	p := e.current
	if !e.board.IsValidPosition(p, p.X, p.Y+1) {
		return
	}
	p.Y++
	e.stats.Score += softDropPoints
	ev.Push(Event{Kind: EventSoftDrop})
}

func (e *Engine) hardDrop(ev *Events) {
	p := e.current
	landing := e.board.GhostY(p, p.X, p.Y)
	e.stats.Score += (landing - p.Y) * hardDropPoints
	p.Y = landing
	ev.Push(Event{Kind: EventHardDrop})
	e.lock(ev)
}

func (e *Engine) applyGravity(dt time.Duration, ev *Events) {
	e.gravity += dt
	if e.gravity < GravityInterval(e.stats.Level) {
		return
	}
	e.gravity = 0

	p := e.current
	if e.board.IsValidPosition(p, p.X, p.Y+1) {
		p.Y++
		return
	}
	e.lock(ev)
}

func (e *Engine) advanceHold(dt time.Duration) {
	e.hold.elapsed += dt
	if e.hold.elapsed > clearHoldDelay {
		e.hold = clearHold{}
	}
}

// lock fixes the current piece into the board, clears full rows and spawns
// the next piece. The spawn happens even when a clear hold starts, so a
// blocked spawn ends the game before the hold runs out.
func (e *Engine) lock(ev *Events) {
	p := e.current
	e.board.PlacePiece(p, p.X, p.Y)

	if rows := e.board.FullRows(); len(rows) > 0 {
		held := make([]ClearedRow, len(rows))
		for i, y := range rows {
			held[i] = ClearedRow{Index: y, Cells: e.board.Row(y)}
		}

		n, _ := e.board.ClearLines()
		e.stats.Score += LineClearScore(n, e.stats.Level)
		e.stats.Lines += n
		if level := LevelForLines(e.stats.Lines); level > e.stats.Level {
			e.stats.Level = level
			ev.Push(Event{Kind: EventLevelUp, Level: level})
		}
		ev.Push(Event{Kind: EventLineClear, Rows: n})

		e.hold = clearHold{rows: held}
	}

	e.spawn(ev)
}

// deliver routes a flushed event to the feedback collaborators.
func (e *Engine) deliver(ev Event) {
	if e.audio != nil && (!e.muted || ev.Kind == EventMuteToggled) {
		notify(e.audio, ev)
	}
	if e.haptics != nil {
		notify(e.haptics, ev)
	}
}
