package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
)

// PerformanceStats keeps a ring of recent tick deltas in milliseconds and
// shows them with the scheduler's per-stage timings.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	recorded      int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record stores one tick delta.
func (ps *PerformanceStats) Record(dt time.Duration) {
	ps.frameHistory[ps.frameIndex] = float32(dt.Seconds() * 1000.0)
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
	ps.recorded = min(ps.recorded+1, ps.historyFrames)
}

// Average is the mean of the recorded deltas in milliseconds, or zero when
// nothing has been recorded.
func (ps *PerformanceStats) Average() float32 {
	if ps.recorded == 0 {
		return 0
	}
	var sum float32
	for _, ft := range ps.frameHistory {
		sum += ft
	}
	return sum / float32(ps.recorded)
}

func (ps *PerformanceStats) Render(stats *engine.SchedulerStats) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 300), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Tick: %.2f ms (%.0f TPS)", avg, 1000.0/avg))
	} else {
		imgui.Text("Avg Tick: -")
	}
	imgui.Text(fmt.Sprintf("Stages: %d  Executions: %d", stats.StageCount, stats.TotalExecutions))

	imgui.Separator()
	imgui.Text("Tick Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##ticktime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Stage Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSizingFixedFit
		if imgui.BeginTableV("StageTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Stage")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg (us)")
			imgui.TableSetupColumn("Min (us)")
			imgui.TableSetupColumn("Max (us)")
			imgui.TableHeadersRow()

			for _, st := range stats.Stages {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(st.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", st.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.1f", micros(st.AvgDuration)))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.1f", micros(st.MinDuration)))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.1f", micros(st.MaxDuration)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}
