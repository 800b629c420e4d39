package engine

// Command is a named player action delivered by an Input.
type Command int

const (
	CmdLeft Command = iota
	CmdRight
	CmdDown
	CmdRotate
	CmdSpace
	CmdPause
	CmdMute

	commandCount
)

// Commands lists every command in polling order.
var Commands = [...]Command{CmdLeft, CmdRight, CmdDown, CmdRotate, CmdSpace, CmdPause, CmdMute}

var commandNames = [...]string{
	CmdLeft:   "left",
	CmdRight:  "right",
	CmdDown:   "down",
	CmdRotate: "rotate",
	CmdSpace:  "space",
	CmdPause:  "pause",
	CmdMute:   "mute",
}

func (c Command) String() string {
	if c < 0 || c >= commandCount {
		return "unknown"
	}
	return commandNames[c]
}

// ParseCommand maps a command name to its Command. Unknown names report false.
func ParseCommand(name string) (Command, bool) {
	for c, n := range commandNames {
		if n == name {
			return Command(c), true
		}
	}
	return 0, false
}

// CommandSet is a set of commands pressed during one tick.
type CommandSet uint8

func (s CommandSet) Has(c Command) bool {
	return s&(1<<c) != 0
}

func (s *CommandSet) Add(c Command) {
	*s |= 1 << c
}

func (s *CommandSet) Remove(c Command) {
	*s &^= 1 << c
}

func (s CommandSet) Empty() bool {
	return s == 0
}
