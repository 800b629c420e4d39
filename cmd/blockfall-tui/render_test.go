package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/engine"
)

func TestPreviewOffset(t *testing.T) {
	assert.Equal(t, 0, previewOffset(4))
	assert.Equal(t, 0, previewOffset(3))
	assert.Equal(t, 1, previewOffset(2))
}

func TestCellColor(t *testing.T) {
	assert.Equal(t, "#00f0f0", string(cellColor(engine.Color{R: 0, G: 240, B: 240})))
}

func TestBoardCellsGhost(t *testing.T) {
	o := &engine.PieceView{
		Kind:  engine.O,
		X:     4,
		Y:     0,
		Size:  2,
		Cells: []engine.Offset{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	}
	view := &engine.View{Mode: engine.ModePlaying, Active: o, GhostY: 18}

	cells := boardCells(view)
	assert.Contains(t, cells[18][4], ghostText)
	assert.Contains(t, cells[19][5], ghostText)
	assert.NotContains(t, cells[0][4], ghostText)

	view.GhostY = 0
	cells = boardCells(view)
	assert.NotContains(t, cells[18][4], ghostText)
}

func TestRenderBoardFrame(t *testing.T) {
	out := renderBoard(&engine.View{})
	lines := strings.Split(out, "\n")

	require.Len(t, lines, engine.Height+2)
	assert.Contains(t, lines[0], "+"+strings.Repeat("-", engine.Width*len(cellText))+"+")
	assert.Contains(t, lines[1], "|")
}

func TestScreenTracksHUD(t *testing.T) {
	s := newScreen()
	s.Render(&engine.View{})
	s.StatsChanged(engine.Stats{Score: 12345, Level: 2, Lines: 14})
	s.MuteChanged(true)
	s.ModeChanged(engine.ModeGameOver, engine.Overlay{Visible: true, Title: "GAME OVER", Message: "Final Score: 12,345"})

	out := s.render()

	assert.Contains(t, out, "12,345")
	assert.Contains(t, out, "MUTED")
	assert.Contains(t, out, "GAME OVER")
}

func TestScreenBeforeFirstFrame(t *testing.T) {
	assert.Empty(t, newScreen().render())
}
