package engine

// Mode is the top-level state of the engine.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Overlay is the message box shown over the board outside of play.
type Overlay struct {
	Visible bool
	Title   string
	Message string
}
