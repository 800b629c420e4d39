package engine

import "time"

const (
	softDropPoints = 1
	hardDropPoints = 2

	linesPerLevel = 10

	baseGravity    = 1000 * time.Millisecond
	gravityStep    = 50 * time.Millisecond
	minGravity     = 50 * time.Millisecond
	clearHoldDelay = 500 * time.Millisecond
)

var lineClearPoints = [...]int{0, 100, 300, 500, 800}

// LineClearScore is the score for clearing n rows at once on the given level.
func LineClearScore(n, level int) int {
	if n <= 0 || n >= len(lineClearPoints) {
		return 0
	}
	return lineClearPoints[n] * level
}

// LevelForLines is the level reached after clearing the given number of lines.
func LevelForLines(lines int) int {
	return lines/linesPerLevel + 1
}

// GravityInterval is the time between automatic one-row descents on a level.
func GravityInterval(level int) time.Duration {
	return max(minGravity, baseGravity-time.Duration(level-1)*gravityStep)
}

// Stats are the numbers shown on the HUD.
type Stats struct {
	Score int
	Level int
	Lines int
}
