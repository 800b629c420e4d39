package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/plus3/blockfall/engine"
)

const (
	cellText     = "  "
	ghostText    = "::"
	previewCells = 4
)

var (
	borderColor = lipgloss.Color("#3c3c5a")
	labelColor  = lipgloss.Color("#9696ff")
	textColor   = lipgloss.Color("#d0d0d0")
	accentColor = lipgloss.Color("#ffd700")
)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(accentColor).Bold(true)
}

func labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(labelColor)
}

func helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(textColor)
}

func cellColor(c engine.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// screen turns engine views into terminal text. It is both the engine's
// Renderer and its HUD.
type screen struct {
	printer *message.Printer
	width   int
	height  int

	view    *engine.View
	stats   engine.Stats
	overlay engine.Overlay
	muted   bool
}

func newScreen() *screen {
	return &screen{
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

func (s *screen) render() string {
	if s.view == nil {
		return ""
	}
	board := renderBoard(s.view)
	info := s.renderInfo()
	content := lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", info)
	if s.overlay.Visible {
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", renderOverlay(s.overlay))
	}
	return center(s.width, s.height, content)
}

func (s *screen) renderInfo() string {
	lines := []string{
		labelStyle().Render("SCORE"),
		helpStyle().Render(s.printer.Sprintf("%d", s.stats.Score)),
		"",
		labelStyle().Render("LEVEL"),
		helpStyle().Render(s.printer.Sprintf("%d", s.stats.Level)),
		"",
		labelStyle().Render("LINES"),
		helpStyle().Render(s.printer.Sprintf("%d", s.stats.Lines)),
		"",
		labelStyle().Render("NEXT"),
		renderPreview(s.view.Next),
	}
	if s.muted {
		lines = append(lines, "", titleStyle().Render("MUTED"))
	}
	lines = append(lines, "", helpStyle().Faint(true).Render("q to quit"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// boardCells resolves what each board square shows this frame. Settled
// cells come first, then the ghost, then the active piece, and finally
// the flashing rows of a clear hold on top.
func boardCells(view *engine.View) [engine.Height][engine.Width]string {
	var out [engine.Height][engine.Width]string
	empty := lipgloss.NewStyle()

	for y, row := range view.Grid {
		for x, c := range row {
			if c.Filled {
				out[y][x] = lipgloss.NewStyle().Background(cellColor(c.Color)).Render(cellText)
			} else {
				out[y][x] = empty.Render(cellText)
			}
		}
	}

	if p := view.Active; p != nil {
		if view.ShowGhost() {
			ghost := lipgloss.NewStyle().Foreground(cellColor(p.Color)).Faint(true)
			stamp(&out, p, view.GhostY, func(x, y int) {
				if !view.Grid[y][x].Filled {
					out[y][x] = ghost.Render(ghostText)
				}
			})
		}
		active := lipgloss.NewStyle().Background(cellColor(p.Color))
		stamp(&out, p, p.Y, func(x, y int) {
			out[y][x] = active.Render(cellText)
		})
	}

	if len(view.Clearing) > 0 && view.ClearAlpha() >= 0.5 {
		for _, cleared := range view.Clearing {
			for x, c := range cleared.Cells {
				out[cleared.Index][x] = lipgloss.NewStyle().Background(cellColor(c.Color)).Render(cellText)
			}
		}
	}
	return out
}

func stamp(out *[engine.Height][engine.Width]string, p *engine.PieceView, y int, fn func(x, y int)) {
	for _, off := range p.Cells {
		bx, by := p.X+off.X, y+off.Y
		if bx < 0 || bx >= engine.Width || by < 0 || by >= engine.Height {
			continue
		}
		fn(bx, by)
	}
}

func renderBoard(view *engine.View) string {
	border := lipgloss.NewStyle().Foreground(borderColor)
	cells := boardCells(view)
	edge := border.Render("+" + strings.Repeat("-", engine.Width*len(cellText)) + "+")

	var b strings.Builder
	b.WriteString(edge)
	b.WriteString("\n")
	for y := range engine.Height {
		b.WriteString(border.Render("|"))
		for x := range engine.Width {
			b.WriteString(cells[y][x])
		}
		b.WriteString(border.Render("|"))
		b.WriteString("\n")
	}
	b.WriteString(edge)
	return b.String()
}

// renderPreview draws the next piece centered in a 4x4 box.
func renderPreview(p *engine.PieceView) string {
	var grid [previewCells][previewCells]bool
	if p != nil {
		off := previewOffset(p.Size)
		for _, c := range p.Cells {
			x, y := c.X+off, c.Y+off
			if x >= 0 && x < previewCells && y >= 0 && y < previewCells {
				grid[y][x] = true
			}
		}
	}

	rows := make([]string, 0, previewCells)
	for _, row := range grid {
		var b strings.Builder
		for _, filled := range row {
			if filled {
				b.WriteString(lipgloss.NewStyle().Background(cellColor(p.Color)).Render(cellText))
			} else {
				b.WriteString(cellText)
			}
		}
		rows = append(rows, b.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// previewOffset centers a piece box of the given size in the preview grid.
// Odd remainders round down.
func previewOffset(size int) int {
	return (previewCells - size) / 2
}

func renderOverlay(o engine.Overlay) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 2).
		Align(lipgloss.Center)
	return box.Render(lipgloss.JoinVertical(lipgloss.Center,
		titleStyle().Render(o.Title),
		helpStyle().Render(o.Message),
	))
}

func center(width, height int, content string) string {
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
