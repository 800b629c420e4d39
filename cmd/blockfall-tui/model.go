package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plus3/blockfall/engine"
)

const frameInterval = 16 * time.Millisecond

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea model wrapping one engine.
type Model struct {
	engine   *engine.Engine
	input    *termInput
	screen   *screen
	lastTick time.Time
}

func NewModel(e *engine.Engine, in *termInput, scr *screen) Model {
	return Model{engine: e, input: in, screen: scr}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.width = msg.Width
		m.screen.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		m.input.press(msg.String())
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		var dt time.Duration
		if !m.lastTick.IsZero() {
			dt = now.Sub(m.lastTick)
		}
		m.lastTick = now
		m.engine.Tick(dt)
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) View() string {
	return m.screen.render()
}
