package engine

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gray = Color{128, 128, 128}

func fillRow(b *Board, y int, except ...int) {
	for x := range Width {
		if slices.Contains(except, x) {
			continue
		}
		b.Set(x, y, Cell{Filled: true, Color: gray})
	}
}

func pieceAt(kind Kind, rotation, x, y int) *Piece {
	p := NewPiece(kind)
	p.rotation = rotation
	p.X, p.Y = x, y
	return p
}

func TestIsValidPosition(t *testing.T) {
	board := NewBoard()
	board.Set(5, 5, Cell{Filled: true, Color: gray})
	o := NewPiece(O)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top left corner", 0, 0, true},
		{"past left wall", -1, 0, false},
		{"past right wall", 9, 0, false},
		{"flush right wall", 8, 0, true},
		{"resting on floor", 8, 18, true},
		{"through floor", 8, 19, false},
		{"partly above board", 4, -1, true},
		{"fully above board", 4, -5, true},
		{"above board but past wall", -1, -5, false},
		{"overlapping settled cell", 4, 4, false},
		{"covering settled cell", 5, 5, false},
		{"next to settled cell", 6, 5, true},
		{"below settled cell", 5, 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, board.IsValidPosition(o, tt.x, tt.y))
		})
	}
}

func TestIsValidPositionUsesRotatedShape(t *testing.T) {
	board := NewBoard()

	// Horizontal I occupies row 1 of its box, vertical I occupies column 2.
	flat := pieceAt(I, 0, 0, 0)
	upright := pieceAt(I, 1, 0, 0)

	assert.True(t, board.IsValidPosition(flat, 6, 18))
	assert.False(t, board.IsValidPosition(flat, 7, 18))
	assert.True(t, board.IsValidPosition(upright, -2, 16))
	assert.False(t, board.IsValidPosition(upright, -2, 17))
	assert.False(t, board.IsValidPosition(upright, -3, 0))
}

func TestPlacePiece(t *testing.T) {
	t.Run("writes color into every cell", func(t *testing.T) {
		board := NewBoard()
		tee := NewPiece(T)

		board.PlacePiece(tee, 3, 17)

		assert.Equal(t, 4, board.Filled())
		for _, off := range tee.Cells() {
			cell := board.Cell(3+off.X, 17+off.Y)
			assert.True(t, cell.Filled)
			assert.Equal(t, Color{128, 0, 128}, cell.Color)
		}
	})

	t.Run("drops cells above the board", func(t *testing.T) {
		board := NewBoard()

		board.PlacePiece(NewPiece(O), 4, -1)

		assert.Equal(t, 2, board.Filled())
		assert.True(t, board.Cell(4, 0).Filled)
		assert.True(t, board.Cell(5, 0).Filled)
	})
}

func TestClearLines(t *testing.T) {
	tests := []struct {
		name string
		full []int
	}{
		{"none", nil},
		{"bottom row", []int{19}},
		{"single middle row", []int{7}},
		{"two adjacent rows", []int{19, 18}},
		{"two separated rows", []int{17, 12}},
		{"three rows", []int{19, 15, 14}},
		{"four adjacent rows", []int{19, 18, 17, 16}},
		{"four scattered rows", []int{18, 13, 9, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewBoard()
			var survivors []Row
			for y := range Height {
				if slices.Contains(tt.full, y) {
					fillRow(board, y)
					continue
				}
				// Mark each surviving row uniquely so order can be checked.
				board.Set(y%Width, y, Cell{Filled: true, Color: Color{R: uint8(y)}})
				survivors = append(survivors, board.Row(y))
			}

			count, indices := board.ClearLines()

			k := len(tt.full)
			require.Equal(t, k, count)
			assert.Equal(t, k, len(indices))
			if k > 0 {
				assert.Equal(t, tt.full, indices)
			}

			for y := range k {
				assert.True(t, board.Row(y).Empty(), "row %d should be empty", y)
			}
			for i, want := range survivors {
				assert.Equal(t, want, board.Row(k+i), "survivor %d out of order", i)
			}
		})
	}
}

func TestClearLinesLeavesPartialRows(t *testing.T) {
	board := NewBoard()
	fillRow(board, 19, 0)
	fillRow(board, 18)
	before := board.Row(19)

	count, indices := board.ClearLines()

	assert.Equal(t, 1, count)
	assert.Equal(t, []int{18}, indices)
	assert.Equal(t, before, board.Row(19))
	assert.True(t, board.Row(18).Empty())
}

func TestGhostY(t *testing.T) {
	board := NewBoard()
	o := NewPiece(O)

	assert.Equal(t, 18, board.GhostY(o, 4, 0))
	assert.Equal(t, 18, board.GhostY(o, 4, 18))

	board.Set(5, 12, Cell{Filled: true, Color: gray})
	assert.Equal(t, 10, board.GhostY(o, 4, 0))
	assert.Equal(t, 18, board.GhostY(o, 6, 0))

	// Starting above the board still projects onto the stack.
	assert.Equal(t, 10, board.GhostY(o, 4, -3))
}

func TestIsGameOver(t *testing.T) {
	board := NewBoard()
	assert.False(t, board.IsGameOver())

	board.Set(0, 1, Cell{Filled: true})
	assert.False(t, board.IsGameOver())

	board.Set(9, 0, Cell{Filled: true})
	assert.True(t, board.IsGameOver())
}

func TestBoardAccessorsIgnoreOutOfRange(t *testing.T) {
	board := NewBoard()
	board.Set(-1, 0, Cell{Filled: true})
	board.Set(0, Height, Cell{Filled: true})

	assert.Equal(t, 0, board.Filled())
	assert.False(t, board.Cell(Width, 0).Filled)
}

func TestBoardString(t *testing.T) {
	board := NewBoard()
	fillRow(board, 19, 9)

	lines := strings.Split(strings.TrimSuffix(board.String(), "\n"), "\n")

	require.Len(t, lines, Height)
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "#########.", lines[19])
}

func ExampleBoard_ClearLines() {
	board := NewBoard()
	for x := range Width {
		board.Set(x, 19, Cell{Filled: true})
		board.Set(x, 17, Cell{Filled: true})
	}
	board.Set(0, 18, Cell{Filled: true})

	count, rows := board.ClearLines()
	fmt.Println(count, rows)
	fmt.Println(board.Cell(0, 19).Filled, board.Row(18).Empty())
	// Output:
	// 2 [19 17]
	// true true
}
