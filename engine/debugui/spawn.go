package debugui

import (
	"github.com/plus3/blockfall/engine"
)

// Attach builds the full inspector for e and registers it as an engine
// stage. The returned stage exposes the ImGui input capture state.
func Attach(e *engine.Engine) *ImguiStage {
	stage := &ImguiStage{}

	perf := NewPerformanceStats(120)
	state := NewStateInspector()
	board := NewBoardViewer(14)
	control := NewControlPanel()

	stage.Add(
		ImguiItem{Render: func() { perf.Render(e.SchedulerStats()) }},
		ImguiItem{Render: func() { state.Render(e) }},
		ImguiItem{Render: func() { board.Render(e) }},
		ImguiItem{Render: func() { control.Render(e) }},
	)

	e.AddStage(&frameRecorder{perf: perf})
	e.AddStage(stage)
	return stage
}

// frameRecorder samples tick deltas into the performance history.
type frameRecorder struct {
	perf *PerformanceStats
}

func (r *frameRecorder) Execute(frame *engine.UpdateFrame) {
	r.perf.Record(frame.Delta)
}
