package engine

import "fmt"

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L
)

// Kinds lists every piece kind in canonical order.
var Kinds = [...]Kind{I, O, T, S, Z, J, L}

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) valid() bool {
	return k >= I && k <= L
}

// Shape is a square matrix of filled flags, indexed [row][column].
type Shape [][]bool

// Offset is a cell position relative to a piece's bounding box.
type Offset struct {
	X, Y int
}

type kindSpec struct {
	base  Shape
	color Color
}

func parseShape(rows ...string) Shape {
	shape := make(Shape, len(rows))
	for i, row := range rows {
		shape[i] = make([]bool, len(row))
		for j, c := range row {
			shape[i][j] = c == '1'
		}
	}
	return shape
}

var kindSpecs = [...]kindSpec{
	I: {base: parseShape("0000", "1111", "0000", "0000"), color: Color{0, 255, 255}},
	O: {base: parseShape("11", "11"), color: Color{255, 255, 0}},
	T: {base: parseShape("010", "111", "000"), color: Color{128, 0, 128}},
	S: {base: parseShape("011", "110", "000"), color: Color{0, 255, 0}},
	Z: {base: parseShape("110", "011", "000"), color: Color{255, 0, 0}},
	J: {base: parseShape("100", "111", "000"), color: Color{0, 0, 255}},
	L: {base: parseShape("001", "111", "000"), color: Color{255, 165, 0}},
}

// rotations[kind][state] is the base shape turned clockwise state times.
var (
	rotations     [len(Kinds)][4]Shape
	rotationCells [len(Kinds)][4][]Offset
)

func init() {
	for _, k := range Kinds {
		shape := kindSpecs[k].base
		for state := range 4 {
			rotations[k][state] = shape
			rotationCells[k][state] = cellsOf(shape)
			shape = rotateShape(shape)
		}
	}
}

// rotateShape turns a square matrix 90 degrees clockwise.
func rotateShape(shape Shape) Shape {
	size := len(shape)
	rotated := make(Shape, size)
	for i := range rotated {
		rotated[i] = make([]bool, size)
	}

	for i := range size {
		for j := range size {
			rotated[j][size-1-i] = shape[i][j]
		}
	}

	return rotated
}

// rotatedShape computes the shape for a rotation state from the base matrix.
func rotatedShape(k Kind, rotation int) Shape {
	shape := kindSpecs[k].base
	for range rotation % 4 {
		shape = rotateShape(shape)
	}
	return shape
}

func cellsOf(shape Shape) []Offset {
	var cells []Offset
	for y, row := range shape {
		for x, filled := range row {
			if filled {
				cells = append(cells, Offset{X: x, Y: y})
			}
		}
	}
	return cells
}

// Piece is a tetromino with a rotation state and an anchor at the top-left
// of its bounding box.
type Piece struct {
	X, Y int

	kind     Kind
	rotation int
}

// NewPiece creates a piece of the given kind in rotation state 0.
func NewPiece(kind Kind) *Piece {
	if !kind.valid() {
		panic("engine: unknown piece kind " + kind.String())
	}
	return &Piece{kind: kind}
}

func (p *Piece) Kind() Kind {
	return p.kind
}

// Rotation returns the current rotation state, 0 through 3.
func (p *Piece) Rotation() int {
	return p.rotation
}

func (p *Piece) Color() Color {
	return kindSpecs[p.kind].color
}

// Size is the side length of the piece's bounding box.
func (p *Piece) Size() int {
	return len(kindSpecs[p.kind].base)
}

// Shape returns the matrix for the current rotation state. Callers must not
// modify it.
func (p *Piece) Shape() Shape {
	return rotations[p.kind][p.rotation]
}

// Cells returns the filled cell offsets for the current rotation state.
// Callers must not modify it.
func (p *Piece) Cells() []Offset {
	return rotationCells[p.kind][p.rotation]
}

func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// Rotate turns the piece by dir quarter turns (+1 clockwise, -1 counter
// clockwise) using the wall-kick table for its kind. On success the piece
// keeps the new state and the accepted anchor is returned. Otherwise the
// rotation is reverted and (x, y) is returned unchanged.
func (p *Piece) Rotate(dir int, b *Board, x, y int) (int, int, bool) {
	if dir != 1 && dir != -1 {
		panic(fmt.Sprintf("engine: rotation direction must be +1 or -1, got %d", dir))
	}

	old := p.rotation
	p.rotation = (old + dir + 4) % 4

	for _, kick := range kicksFor(p.kind)[old] {
		nx, ny := x+kick.X, y+kick.Y
		if b.IsValidPosition(p, nx, ny) {
			return nx, ny, true
		}
	}

	p.rotation = old
	return x, y, false
}
