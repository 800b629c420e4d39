package debugui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
)

// FieldLine is one rendered row of the state inspector. Depth is the
// nesting level; rows with Children open a tree node.
type FieldLine struct {
	Depth    int
	Name     string
	Value    string
	Children bool
}

// Describe flattens a value into inspector rows. Structs and pointers to
// structs are expanded one field per row; everything else is formatted
// with its String method or %v.
func Describe(name string, v any) []FieldLine {
	var lines []FieldLine
	describe(&lines, 0, name, reflect.ValueOf(v))
	return lines
}

var stringerType = reflect.TypeFor[fmt.Stringer]()

func describe(lines *[]FieldLine, depth int, name string, val reflect.Value) {
	if !val.IsValid() {
		*lines = append(*lines, FieldLine{Depth: depth, Name: name, Value: "<invalid>"})
		return
	}
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			*lines = append(*lines, FieldLine{Depth: depth, Name: name, Value: "nil"})
			return
		}
		val = val.Elem()
	}

	if val.Type().Implements(stringerType) {
		*lines = append(*lines, FieldLine{Depth: depth, Name: name, Value: fmt.Sprint(val.Interface())})
		return
	}

	switch val.Kind() {
	case reflect.Struct:
		*lines = append(*lines, FieldLine{Depth: depth, Name: name, Children: true})
		for _, f := range fieldCache.Fields(val.Type()) {
			describe(lines, depth+1, f.Name, val.Field(f.Index))
		}
	case reflect.Slice, reflect.Array:
		*lines = append(*lines, FieldLine{Depth: depth, Name: name, Value: fmt.Sprintf("[%d items]", val.Len())})
	default:
		*lines = append(*lines, FieldLine{Depth: depth, Name: name, Value: fmt.Sprint(val.Interface())})
	}
}

// engineState is the snapshot shown by the state inspector.
type engineState struct {
	Mode           engine.Mode
	Muted          bool
	Stats          engine.Stats
	Holding        bool
	GravityElapsed time.Duration
	Current        *engine.PieceView
	Next           *engine.PieceView
	Overlay        engine.Overlay
}

// StateInspector shows the engine's mode, stats and pieces as a tree.
type StateInspector struct{}

func NewStateInspector() *StateInspector {
	return &StateInspector{}
}

func snapshot(e *engine.Engine) engineState {
	view := e.View()
	return engineState{
		Mode:           e.Mode(),
		Muted:          e.Muted(),
		Stats:          e.Stats(),
		Holding:        e.Holding(),
		GravityElapsed: e.GravityElapsed(),
		Current:        view.Active,
		Next:           view.Next,
		Overlay:        view.Overlay,
	}
}

func (si *StateInspector) Render(e *engine.Engine) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 320), imgui.CondOnce)

	if !imgui.BeginV("Engine State", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	lines := Describe("Engine", snapshot(e))
	// The root row is the window itself.
	renderLines(lines[1:], 1)

	imgui.End()
}

// renderLines draws rows at depth and returns how many it consumed.
func renderLines(lines []FieldLine, depth int) int {
	i := 0
	for i < len(lines) {
		line := lines[i]
		if line.Depth < depth {
			return i
		}
		i++

		if !line.Children {
			imgui.Text(fmt.Sprintf("%s: %s", line.Name, line.Value))
			continue
		}

		if imgui.TreeNodeStr(line.Name) {
			i += renderLines(lines[i:], depth+1)
			imgui.TreePop()
		} else {
			i += skipChildren(lines[i:], depth+1)
		}
	}
	return i
}

func skipChildren(lines []FieldLine, depth int) int {
	n := 0
	for n < len(lines) && lines[n].Depth >= depth {
		n++
	}
	return n
}
