package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestViewClearAlpha(t *testing.T) {
	v := &View{}
	assert.InDelta(t, 0.5, v.ClearAlpha(), 1e-9)

	// sin peaks at pi/2; 50ms * pi/2 is about 78.54ms.
	v.ClearElapsed = 78540 * time.Microsecond
	assert.InDelta(t, 1.0, v.ClearAlpha(), 1e-4)

	v.ClearElapsed = 235619 * time.Microsecond
	assert.InDelta(t, 0.0, v.ClearAlpha(), 1e-4)

	for ms := range 500 {
		v.ClearElapsed = time.Duration(ms) * time.Millisecond
		a := v.ClearAlpha()
		assert.GreaterOrEqual(t, a, 0.0)
		assert.LessOrEqual(t, a, 1.0)
	}
}

func TestViewShowGhost(t *testing.T) {
	v := &View{}
	assert.False(t, v.ShowGhost())

	v.Active = &PieceView{Y: 5}
	v.GhostY = 5
	assert.False(t, v.ShowGhost())

	v.GhostY = 18
	assert.True(t, v.ShowGhost())
}

func TestNewPieceViewNil(t *testing.T) {
	assert.Nil(t, newPieceView(nil))

	pv := newPieceView(pieceAt(L, 2, 3, 7))
	assert.Equal(t, L, pv.Kind)
	assert.Equal(t, 3, pv.X)
	assert.Equal(t, 7, pv.Y)
	assert.Equal(t, 2, pv.Rotation)
	assert.Len(t, pv.Cells, 4)
}
