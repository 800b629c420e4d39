package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
)

// ControlPanel drives the engine's mode transitions from buttons.
type ControlPanel struct{}

func NewControlPanel() *ControlPanel {
	return &ControlPanel{}
}

func (cp *ControlPanel) Render(e *engine.Engine) {
	imgui.SetNextWindowPosV(imgui.NewVec2(380, 440), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(220, 120), imgui.CondOnce)

	if !imgui.BeginV("Game Control", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	switch e.Mode() {
	case engine.ModeMenu, engine.ModeGameOver:
		if imgui.Button("Start") {
			e.Start()
		}
	case engine.ModePlaying:
		if imgui.Button("Pause") {
			e.Pause()
		}
	case engine.ModePaused:
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.2, 0.7, 0.2, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonHovered, imgui.NewVec4(0.3, 0.8, 0.3, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonActive, imgui.NewVec4(0.1, 0.6, 0.1, 1.0))
		if imgui.Button("Resume") {
			e.Resume()
		}
		imgui.PopStyleColor()
		imgui.PopStyleColor()
		imgui.PopStyleColor()
	}

	imgui.SameLine()
	label := "Mute"
	if e.Muted() {
		label = "Unmute"
	}
	if imgui.Button(label) {
		e.ToggleMute()
	}

	imgui.End()
}
