// Package debugui provides a Dear ImGui inspector for a running blockfall
// engine. Windows are rendered from an engine stage, so they draw after
// every tick with the state that tick produced.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
)

// ImguiItem holds a Dear ImGui render function drawn once per tick.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Frontends use it to keep game keys out of focused text fields.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiStage is an engine stage that updates the input capture state and
// defers every item's render function until the tick's events are flushed.
type ImguiStage struct {
	Items      []ImguiItem
	InputState ImguiInputState
}

func (s *ImguiStage) Add(items ...ImguiItem) {
	s.Items = append(s.Items, items...)
}

// Execute updates input state and queues all render functions.
func (s *ImguiStage) Execute(frame *engine.UpdateFrame) {
	io := imgui.CurrentIO()
	s.InputState.WantCaptureMouse = io.WantCaptureMouse()
	s.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range s.Items {
		frame.Events.Defer(item.Render)
	}
}
