package hyperrect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzanella-labs/silva/internal/hyperrect"
	"github.com/mzanella-labs/silva/internal/interval"
)

func box(pairs ...float64) hyperrect.Box {
	b := make(hyperrect.Box, len(pairs)/2)
	for i := range b {
		b[i] = interval.Interval{L: pairs[2*i], U: pairs[2*i+1]}
	}
	return b
}

func TestNewRejectsNonPositiveDimension(t *testing.T) {
	_, err := hyperrect.New(0)
	assert.ErrorIs(t, err, hyperrect.ErrEmptyDimension)
}

func TestMeetIdempotent(t *testing.T) {
	// Box reduction idempotence: meeting a box
	// with itself is the identity.
	b := box(0, 1, -2, 2)
	m, err := hyperrect.Meet(b, b)
	require.NoError(t, err)
	assert.Equal(t, b, m)
}

func TestMeetDisjointIsBottom(t *testing.T) {
	a := box(0, 1)
	b := box(2, 3)
	m, err := hyperrect.Meet(a, b)
	require.NoError(t, err)
	assert.True(t, m.IsBottom())
}

func TestMeetDimensionMismatch(t *testing.T) {
	_, err := hyperrect.Meet(box(0, 1), box(0, 1, 0, 1))
	assert.ErrorIs(t, err, hyperrect.ErrDimensionMismatch)
}

func TestVolumeAndMidpoint(t *testing.T) {
	b := box(0, 4, -1, 1)
	assert.InDelta(t, 4.0, b.Volume(), 1e-9) // radius 2 * radius 1
	mid := b.Midpoint()
	assert.Equal(t, []float64{2, 0}, mid)
}

func TestCloneIsIndependent(t *testing.T) {
	b := box(0, 1)
	c := b.Clone()
	c[0] = interval.Interval{L: 5, U: 6}
	assert.NotEqual(t, b[0], c[0])
}

func TestDump(t *testing.T) {
	b := box(0, 1, -2, 2)
	assert.Equal(t, "[0;1] [-2;2]", b.Dump())
}

func TestClipTo(t *testing.T) {
	b := box(-5, 5)
	c := b.ClipTo(-1, 1)
	assert.Equal(t, -1.0, c[0].L)
	assert.Equal(t, 1.0, c[0].U)
}
