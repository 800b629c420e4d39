package engine

import "strings"

const (
	Width  = 10
	Height = 20
)

// Color is an RGB triple.
type Color struct {
	R, G, B uint8
}

// Cell is a single grid square. The zero value is empty.
type Cell struct {
	Filled bool
	Color  Color
}

// Row is one horizontal line of the grid.
type Row [Width]Cell

// Full reports whether every cell in the row is filled.
func (r Row) Full() bool {
	for _, c := range r {
		if !c.Filled {
			return false
		}
	}
	return true
}

// Empty reports whether no cell in the row is filled.
func (r Row) Empty() bool {
	for _, c := range r {
		if c.Filled {
			return false
		}
	}
	return true
}

// Board is the playfield. Row 0 is the top.
type Board struct {
	grid [Height]Row
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// IsValidPosition reports whether every filled cell of the piece's current
// shape fits on the board when its bounding box is anchored at (x, y).
// Cells above the top edge are allowed and never looked up.
func (b *Board) IsValidPosition(p *Piece, x, y int) bool {
	for _, off := range p.Cells() {
		bx := x + off.X
		by := y + off.Y

		if bx < 0 || bx >= Width || by >= Height {
			return false
		}

		if by >= 0 && b.grid[by][bx].Filled {
			return false
		}
	}

	return true
}

// PlacePiece writes the piece's color into the grid. Cells above the top
// edge are dropped.
func (b *Board) PlacePiece(p *Piece, x, y int) {
	color := p.Color()
	for _, off := range p.Cells() {
		bx := x + off.X
		by := y + off.Y
		if by < 0 {
			continue
		}
		b.grid[by][bx] = Cell{Filled: true, Color: color}
	}
}

// FullRows returns the indices of all full rows, scanning from the bottom up.
func (b *Board) FullRows() []int {
	var rows []int
	for y := Height - 1; y >= 0; y-- {
		if b.grid[y].Full() {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearLines removes every full row and inserts an empty row at the top for
// each one removed. Surviving rows keep their relative order. The returned
// indices are in descending order as they were before removal.
func (b *Board) ClearLines() (int, []int) {
	cleared := b.FullRows()
	if len(cleared) == 0 {
		return 0, cleared
	}

	// Compact from the bottom so every index in cleared stays meaningful
	// against the original layout.
	write := Height - 1
	for read := Height - 1; read >= 0; read-- {
		if b.grid[read].Full() {
			continue
		}
		b.grid[write] = b.grid[read]
		write--
	}
	for ; write >= 0; write-- {
		b.grid[write] = Row{}
	}

	return len(cleared), cleared
}

// GhostY returns the row the piece would land on if dropped straight down
// from startY.
func (b *Board) GhostY(p *Piece, x, startY int) int {
	y := startY
	for b.IsValidPosition(p, x, y+1) {
		y++
	}
	return y
}

// IsGameOver reports whether anything has settled in the top row.
func (b *Board) IsGameOver() bool {
	return !b.grid[0].Empty()
}

// Cell returns the cell at (x, y). Out of range coordinates read as empty.
func (b *Board) Cell(x, y int) Cell {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return Cell{}
	}
	return b.grid[y][x]
}

// Set overwrites the cell at (x, y). Out of range coordinates are ignored.
func (b *Board) Set(x, y int, c Cell) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	b.grid[y][x] = c
}

// Row returns a copy of row y.
func (b *Board) Row(y int) Row {
	return b.grid[y]
}

// Grid returns a copy of the whole grid.
func (b *Board) Grid() [Height]Row {
	return b.grid
}

// Filled counts the occupied cells on the board.
func (b *Board) Filled() int {
	n := 0
	for y := range b.grid {
		for _, c := range b.grid[y] {
			if c.Filled {
				n++
			}
		}
	}
	return n
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for y := range b.grid {
		for _, c := range b.grid[y] {
			if c.Filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
