package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrecomputedShapesMatchOnDemandRotation(t *testing.T) {
	for _, kind := range Kinds {
		for rotation := range 8 {
			p := pieceAt(kind, rotation%4, 0, 0)
			assert.Equal(t, rotatedShape(kind, rotation), p.Shape(), "%s rotation %d", kind, rotation)
		}
	}
}

func TestShapeSizes(t *testing.T) {
	want := map[Kind]int{I: 4, O: 2, T: 3, S: 3, Z: 3, J: 3, L: 3}
	for kind, size := range want {
		p := NewPiece(kind)
		assert.Equal(t, size, p.Size(), kind.String())
		for rotation := range 4 {
			p.rotation = rotation
			assert.Len(t, p.Cells(), 4, "%s rotation %d", kind, rotation)
			require.Len(t, p.Shape(), size)
		}
	}
}

func TestRotateShapeClockwise(t *testing.T) {
	tee := parseShape("010", "111", "000")

	assert.Equal(t, parseShape("010", "011", "010"), rotateShape(tee))
	assert.Equal(t, parseShape("000", "111", "010"), rotateShape(rotateShape(tee)))
}

func TestFourClockwiseRotationsRoundTrip(t *testing.T) {
	board := NewBoard()

	for _, kind := range Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			p := pieceAt(kind, 0, 4, 8)
			x, y := p.X, p.Y

			for range 4 {
				var ok bool
				x, y, ok = p.Rotate(1, board, x, y)
				require.True(t, ok)
			}

			assert.Equal(t, 0, p.Rotation())
			assert.Equal(t, 4, x)
			assert.Equal(t, 8, y)
		})
	}
}

func TestFourCounterClockwiseRotationsRoundTrip(t *testing.T) {
	board := NewBoard()

	for _, kind := range Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			p := pieceAt(kind, 0, 4, 8)
			x, y := p.X, p.Y
			states := []int{}

			for range 4 {
				var ok bool
				x, y, ok = p.Rotate(-1, board, x, y)
				require.True(t, ok)
				states = append(states, p.Rotation())
			}

			assert.Equal(t, []int{3, 2, 1, 0}, states)
			assert.Equal(t, 4, x)
			assert.Equal(t, 8, y)
		})
	}
}

func TestClockwiseThenCounterClockwise(t *testing.T) {
	board := NewBoard()

	// Both turns take the first entry of the row for their starting state.
	// The I table is not symmetric between states 0 and 1, so the I piece
	// drifts three columns left.
	tests := []struct {
		kind  Kind
		wantX int
	}{
		{I, 1},
		{O, 4},
		{T, 4},
		{S, 4},
		{Z, 4},
		{J, 4},
		{L, 4},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := pieceAt(tt.kind, 0, 4, 8)

			x, y, ok := p.Rotate(1, board, p.X, p.Y)
			require.True(t, ok)
			assert.Equal(t, 1, p.Rotation())

			x, y, ok = p.Rotate(-1, board, x, y)
			require.True(t, ok)

			assert.Equal(t, 0, p.Rotation())
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, 8, y)
		})
	}
}

func TestCounterClockwiseUsesPreRotationState(t *testing.T) {
	board := NewBoard()

	tests := []struct {
		name         string
		kind         Kind
		from         int
		wantRotation int
		wantX        int
		wantY        int
	}{
		{"T from 0", T, 0, 3, 3, 8},
		{"T from 2", T, 2, 1, 5, 8},
		{"J from 3", J, 3, 2, 3, 8},
		{"I from 0", I, 0, 3, 2, 8},
		{"I from 2", I, 2, 1, 6, 8},
		{"O from 1", O, 1, 0, 4, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pieceAt(tt.kind, tt.from, 4, 8)

			x, y, ok := p.Rotate(-1, board, p.X, p.Y)

			require.True(t, ok)
			assert.Equal(t, tt.wantRotation, p.Rotation())
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestRotateFallsThroughKickCandidates(t *testing.T) {
	board := NewBoard()
	// Blocks the first candidate (-1, 0) for T leaving state 0 at (4, 8).
	board.Set(4, 8, Cell{Filled: true, Color: gray})
	p := pieceAt(T, 0, 4, 8)
	require.True(t, board.IsValidPosition(p, 4, 8))

	x, y, ok := p.Rotate(1, board, p.X, p.Y)

	require.True(t, ok)
	assert.Equal(t, 1, p.Rotation())
	assert.Equal(t, 3, x)
	assert.Equal(t, 9, y)
}

func TestRotateCounterClockwiseFallsThroughKickCandidates(t *testing.T) {
	board := NewBoard()
	p := pieceAt(T, 1, 4, 8)
	// State 1 kicks are (1,0) (1,-1) (0,2) (1,2). The first two both need
	// (6, 8) for the upright T.
	board.Set(6, 8, Cell{Filled: true, Color: gray})
	require.True(t, board.IsValidPosition(p, 4, 8))

	x, y, ok := p.Rotate(-1, board, p.X, p.Y)

	require.True(t, ok)
	assert.Equal(t, 0, p.Rotation())
	assert.Equal(t, 4, x)
	assert.Equal(t, 10, y)
}

func TestRotateRevertsWhenEveryKickFails(t *testing.T) {
	board := NewBoard()
	p := pieceAt(T, 0, 4, 8)

	// Fill everything except the cells the piece already covers.
	for y := range Height {
		fillRow(board, y)
	}
	for _, off := range p.Cells() {
		board.Set(p.X+off.X, p.Y+off.Y, Cell{})
	}

	for _, dir := range []int{1, -1} {
		x, y, ok := p.Rotate(dir, board, p.X, p.Y)

		assert.False(t, ok)
		assert.Equal(t, 0, p.Rotation())
		assert.Equal(t, 4, x)
		assert.Equal(t, 8, y)
	}
}

func TestRotateOKeepsAnchor(t *testing.T) {
	board := NewBoard()
	p := pieceAt(O, 0, 8, 18)
	shape := p.Shape()

	x, y, ok := p.Rotate(1, board, p.X, p.Y)

	require.True(t, ok)
	assert.Equal(t, 1, p.Rotation())
	assert.Equal(t, 8, x)
	assert.Equal(t, 18, y)
	assert.Equal(t, shape, p.Shape())
}

func TestRotateRejectsBadDirection(t *testing.T) {
	p := NewPiece(T)
	assert.Panics(t, func() { p.Rotate(2, NewBoard(), 0, 0) })
}

func TestNewPieceRejectsUnknownKind(t *testing.T) {
	assert.Panics(t, func() { NewPiece(Kind(7)) })
}

func TestPieceClone(t *testing.T) {
	p := pieceAt(L, 2, 3, 5)
	c := p.Clone()
	c.X = 0
	c.rotation = 0

	assert.Equal(t, 3, p.X)
	assert.Equal(t, 2, p.Rotation())
	assert.Equal(t, L, c.Kind())
}
