package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/plus3/blockfall/engine"
)

const (
	cellSize     = 16
	boardWidth   = engine.Width * cellSize
	boardHeight  = engine.Height * cellSize
	panelWidth   = 104
	screenWidth  = boardWidth + panelWidth
	screenHeight = boardHeight
	previewCells = 4
	lineHeight   = 16
)

var (
	backgroundColor = color.RGBA{0x10, 0x10, 0x18, 0xff}
	gridColor       = color.RGBA{0x22, 0x22, 0x30, 0xff}
	panelColor      = color.RGBA{0x18, 0x18, 0x24, 0xff}
	labelColor      = color.RGBA{0x96, 0x96, 0xff, 0xff}
	shadeColor      = color.NRGBA{0, 0, 0, 0xb0}
)

// screen draws the playfield and side panel from the engine's views. It is
// both the engine's Renderer and its HUD.
type screen struct {
	face    text.Face
	printer *message.Printer

	view    *engine.View
	stats   engine.Stats
	overlay engine.Overlay
	muted   bool
}

func newScreen() *screen {
	return &screen{
		face:    text.NewGoXFace(basicfont.Face7x13),
		printer: message.NewPrinter(language.English),
		stats:   engine.Stats{Level: 1},
	}
}

func (s *screen) Render(view *engine.View) {
	s.view = view
}

func (s *screen) ModeChanged(mode engine.Mode, overlay engine.Overlay) {
	s.overlay = overlay
}

func (s *screen) MuteChanged(muted bool) {
	s.muted = muted
}

func (s *screen) StatsChanged(stats engine.Stats) {
	s.stats = stats
}

func (s *screen) draw(dst *ebiten.Image) {
	dst.Fill(backgroundColor)
	s.drawGrid(dst)

	view := s.view
	if view == nil {
		return
	}

	for y, row := range view.Grid {
		for x, c := range row {
			if c.Filled {
				drawBlock(dst, float32(x*cellSize), float32(y*cellSize), c.Color, 1)
			}
		}
	}

	alpha := float32(view.ClearAlpha())
	for _, cleared := range view.Clearing {
		for x, c := range cleared.Cells {
			if c.Filled {
				drawBlock(dst, float32(x*cellSize), float32(cleared.Index*cellSize), c.Color, alpha)
			}
		}
	}

	if p := view.Active; p != nil {
		if view.ShowGhost() {
			drawPiece(dst, p, float32(p.X*cellSize), float32(view.GhostY*cellSize), 0.2)
		}
		drawPiece(dst, p, float32(p.X*cellSize), float32(p.Y*cellSize), 1)
	}

	s.drawPanel(dst)

	if s.overlay.Visible {
		s.drawOverlay(dst)
	}
}

func (s *screen) drawGrid(dst *ebiten.Image) {
	for x := 0; x <= engine.Width; x++ {
		vector.StrokeLine(dst, float32(x*cellSize), 0, float32(x*cellSize), boardHeight, 1, gridColor, false)
	}
	for y := 0; y <= engine.Height; y++ {
		vector.StrokeLine(dst, 0, float32(y*cellSize), boardWidth, float32(y*cellSize), 1, gridColor, false)
	}
}

func (s *screen) drawPanel(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, boardWidth, 0, panelWidth, screenHeight, panelColor, false)

	x := float64(boardWidth + 8)
	y := 8.0
	for _, row := range [][2]string{
		{"SCORE", s.printer.Sprintf("%d", s.stats.Score)},
		{"LEVEL", s.printer.Sprintf("%d", s.stats.Level)},
		{"LINES", s.printer.Sprintf("%d", s.stats.Lines)},
	} {
		s.drawText(dst, row[0], x, y, labelColor, text.AlignStart)
		s.drawText(dst, row[1], x, y+lineHeight, color.White, text.AlignStart)
		y += 2.5 * lineHeight
	}

	s.drawText(dst, "NEXT", x, y, labelColor, text.AlignStart)
	y += lineHeight + 4
	if s.view != nil && s.view.Next != nil {
		next := s.view.Next
		offset := previewOffset(next.Size) * cellSize
		drawPiece(dst, next, float32(x)+offset, float32(y)+offset, 1)
	}
	y += previewCells*cellSize + 8

	if s.muted {
		s.drawText(dst, "MUTED", x, y, color.RGBA{0xff, 0x60, 0x60, 0xff}, text.AlignStart)
	}
}

func (s *screen) drawOverlay(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, 0, 0, boardWidth, boardHeight, shadeColor, false)

	cx := float64(boardWidth) / 2
	cy := float64(boardHeight)/2 - 2*lineHeight
	s.drawText(dst, s.overlay.Title, cx, cy, color.White, text.AlignCenter)
	s.drawText(dst, s.overlay.Message, cx, cy+2*lineHeight, labelColor, text.AlignCenter)
}

func (s *screen) drawText(dst *ebiten.Image, str string, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = lineHeight
	op.PrimaryAlign = align
	text.Draw(dst, str, s.face, op)
}

func drawPiece(dst *ebiten.Image, p *engine.PieceView, x, y float32, alpha float32) {
	for _, off := range p.Cells {
		bx := x + float32(off.X*cellSize)
		by := y + float32(off.Y*cellSize)
		if by < 0 {
			continue
		}
		drawBlock(dst, bx, by, p.Color, alpha)
	}
}

func drawBlock(dst *ebiten.Image, x, y float32, c engine.Color, alpha float32) {
	a := uint8(alpha * 0xff)
	fill := color.NRGBA{c.R, c.G, c.B, a}
	edge := color.NRGBA{c.R / 3, c.G / 3, c.B / 3, a}
	vector.DrawFilledRect(dst, x, y, cellSize, cellSize, edge, false)
	vector.DrawFilledRect(dst, x+2, y+2, cellSize-4, cellSize-4, fill, false)
}

// previewOffset centers a piece's bounding box in the preview square, in
// cells.
func previewOffset(size int) float32 {
	return float32(previewCells-size) / 2
}
