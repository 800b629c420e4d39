package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
)

// CellKind classifies a board square for drawing.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellSettled
	CellActive
	CellGhost
)

// BoardCell is one square of the composed debug board.
type BoardCell struct {
	Kind  CellKind
	Color engine.Color
}

// ComposeBoard overlays the ghost and active piece of view onto its grid.
func ComposeBoard(view *engine.View) [engine.Height][engine.Width]BoardCell {
	var out [engine.Height][engine.Width]BoardCell
	for y, row := range view.Grid {
		for x, c := range row {
			if c.Filled {
				out[y][x] = BoardCell{Kind: CellSettled, Color: c.Color}
			}
		}
	}

	p := view.Active
	if p == nil {
		return out
	}
	stamp := func(baseY int, kind CellKind) {
		for _, off := range p.Cells {
			x, y := p.X+off.X, baseY+off.Y
			if x < 0 || x >= engine.Width || y < 0 || y >= engine.Height {
				continue
			}
			if kind == CellGhost && out[y][x].Kind != CellEmpty {
				continue
			}
			out[y][x] = BoardCell{Kind: kind, Color: p.Color}
		}
	}
	stamp(view.GhostY, CellGhost)
	stamp(p.Y, CellActive)
	return out
}

// BoardViewer draws the board with the live piece, the bag contents and
// the clear hold state.
type BoardViewer struct {
	cellSize float32
}

func NewBoardViewer(cellSize float32) *BoardViewer {
	return &BoardViewer{cellSize: cellSize}
}

func (bv *BoardViewer) Render(e *engine.Engine) {
	imgui.SetNextWindowPosV(imgui.NewVec2(380, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(220, 420), imgui.CondOnce)

	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	view := e.View()
	cells := ComposeBoard(view)

	imgui.Text(fmt.Sprintf("Filled: %d", e.Board().Filled()))
	imgui.Text("Bag: " + bagString(e.BagRemaining()))
	if view.Clearing != nil {
		rows := make([]string, len(view.Clearing))
		for i, r := range view.Clearing {
			rows[i] = fmt.Sprint(r.Index)
		}
		imgui.Text(fmt.Sprintf("Clearing rows %s (%v)", strings.Join(rows, ","), view.ClearElapsed))
	}
	imgui.Separator()

	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	border := imgui.ColorU32Vec4(imgui.NewVec4(0.25, 0.25, 0.25, 1))
	size := bv.cellSize

	for y := range engine.Height {
		for x := range engine.Width {
			min := imgui.NewVec2(origin.X+float32(x)*size, origin.Y+float32(y)*size)
			max := imgui.NewVec2(min.X+size-1, min.Y+size-1)

			cell := cells[y][x]
			switch cell.Kind {
			case CellEmpty:
				drawList.AddRectFilled(min, max, border)
			case CellGhost:
				drawList.AddRectFilled(min, max, cellColor(cell.Color, 0.3))
			default:
				drawList.AddRectFilled(min, max, cellColor(cell.Color, 1))
			}
		}
	}

	imgui.Dummy(imgui.NewVec2(size*engine.Width, size*engine.Height))
	imgui.End()
}

func cellColor(c engine.Color, alpha float32) uint32 {
	return imgui.ColorU32Vec4(imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, alpha))
}

func bagString(kinds []engine.Kind) string {
	if len(kinds) == 0 {
		return "(empty)"
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, " ")
}
