package engine

// inputStage polls every command exactly once per tick. Commands that the
// current mode does not use are consumed and dropped.
type inputStage struct {
	engine *Engine
}

func (s *inputStage) Execute(frame *UpdateFrame) {
	e := s.engine
	if e.input == nil {
		return
	}

	for _, cmd := range Commands {
		if e.input.JustPressed(cmd) {
			frame.Pressed.Add(cmd)
		}
	}

	if frame.Pressed.Has(CmdMute) {
		e.toggleMute(frame.Events)
	}
}

// playStage is the mode dispatch. Each case lists the triggers its mode
// accepts; everything else is ignored.
type playStage struct {
	engine *Engine
}

func (s *playStage) Execute(frame *UpdateFrame) {
	e := s.engine
	pressed := frame.Pressed

	switch e.mode {
	case ModeMenu, ModeGameOver:
		if pressed.Has(CmdSpace) {
			e.start(frame.Events)
		}
	case ModePaused:
		if pressed.Has(CmdPause) {
			e.mode = ModePlaying
		}
	case ModePlaying:
		s.play(frame)
	}
}

func (s *playStage) play(frame *UpdateFrame) {
	e := s.engine
	pressed := frame.Pressed
	ev := frame.Events

	if e.hold.active() {
		if pressed.Has(CmdPause) {
			e.pause()
			return
		}
		e.advanceHold(frame.Delta)
		return
	}

	if pressed.Has(CmdLeft) {
		e.shift(-1, ev)
	}
	if pressed.Has(CmdRight) {
		e.shift(1, ev)
	}
	if pressed.Has(CmdRotate) {
		e.rotate(1, ev)
	}
	if pressed.Has(CmdDown) {
		e.softDrop(ev)
	}
	if pressed.Has(CmdSpace) {
		e.hardDrop(ev)
	}

	if e.mode != ModePlaying {
		return
	}

	if pressed.Has(CmdPause) {
		e.pause()
		return
	}

	if e.hold.active() {
		e.advanceHold(frame.Delta)
		return
	}

	e.applyGravity(frame.Delta, ev)
}

// presentStage hands the finished state to the renderer and the HUD.
type presentStage struct {
	engine    *Engine
	lastMode  Mode
	lastStats Stats
	lastMuted bool
	primed    bool
}

func (s *presentStage) Execute(frame *UpdateFrame) {
	e := s.engine

	if e.hud != nil {
		if e.mode != s.lastMode {
			overlay := e.Overlay()
			hudCall(func() { e.hud.ModeChanged(e.mode, overlay) })
		}
		if !s.primed || e.muted != s.lastMuted {
			hudCall(func() { e.hud.MuteChanged(e.muted) })
		}
		if !s.primed || e.stats != s.lastStats {
			stats := e.stats
			hudCall(func() { e.hud.StatsChanged(stats) })
		}
	}
	s.lastMode = e.mode
	s.lastStats = e.stats
	s.lastMuted = e.muted
	s.primed = true

	if e.renderer != nil {
		render(e.renderer, e.View())
	}
}
