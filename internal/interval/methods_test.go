package interval_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzanella-labs/silva/internal/interval"
)

func TestIsBottom(t *testing.T) {
	assert.True(t, interval.Bottom().IsBottom())
	assert.False(t, interval.Interval{L: 1, U: 2}.IsBottom())
	assert.False(t, interval.Point(3).IsBottom())
}

func TestMeetJoin(t *testing.T) {
	x := interval.Interval{L: 0, U: 4}
	y := interval.Interval{L: 2, U: 6}

	m := interval.Meet(x, y)
	require.False(t, m.IsBottom())
	assert.Equal(t, 2.0, m.L)
	assert.Equal(t, 4.0, m.U)

	j := interval.Join(x, y)
	assert.Equal(t, 0.0, j.L)
	assert.Equal(t, 6.0, j.U)

	// Disjoint intervals meet to bottom.
	disjoint := interval.Meet(interval.Interval{L: 0, U: 1}, interval.Interval{L: 2, U: 3})
	assert.True(t, disjoint.IsBottom())
}

func TestLt(t *testing.T) {
	assert.True(t, interval.Lt(interval.Interval{L: 0, U: 1}, interval.Interval{L: 2, U: 3}))
	assert.False(t, interval.Lt(interval.Interval{L: 0, U: 2}, interval.Interval{L: 2, U: 3}))
}

func TestMulZeroAbsorbing(t *testing.T) {
	zero := interval.Interval{}
	r := interval.Mul(zero, interval.Interval{L: -5, U: 10})
	assert.Equal(t, 0.0, r.L)
	assert.Equal(t, 0.0, r.U)
}

func TestPow(t *testing.T) {
	r := interval.Pow(interval.Interval{L: -2, U: 3}, 2)
	assert.InDelta(t, -6.0, r.L, 1e-9)
	assert.InDelta(t, 9.0, r.U, 1e-9)

	one := interval.Pow(interval.Interval{L: -2, U: 3}, 0)
	assert.Equal(t, interval.Point(1), one)
}

// TestSoundnessFuzz checks property 3 from the design: for random concrete
// points drawn from two intervals, every elementary operation's concrete
// result lies within the abstract result.
func TestSoundnessFuzz(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	const trials = 200_000

	for i := 0; i < trials; i++ {
		x := randInterval(r)
		y := randInterval(r)
		a := x.L + r.Float64()*(x.U-x.L)
		b := y.L + r.Float64()*(y.U-y.L)

		sum := interval.Add(x, y)
		assert.LessOrEqual(t, sum.L, a+b, "add lower bound")
		assert.GreaterOrEqual(t, sum.U, a+b, "add upper bound")

		diff := interval.Sub(x, y)
		assert.LessOrEqual(t, diff.L, a-b, "sub lower bound")
		assert.GreaterOrEqual(t, diff.U, a-b, "sub upper bound")

		prod := interval.Mul(x, y)
		assert.LessOrEqual(t, prod.L, a*b, "mul lower bound")
		assert.GreaterOrEqual(t, prod.U, a*b, "mul upper bound")

		scale := interval.Scale(b, x)
		assert.LessOrEqual(t, scale.L, b*a, "scale lower bound")
		assert.GreaterOrEqual(t, scale.U, b*a, "scale upper bound")
	}
}

func randInterval(r *rand.Rand) interval.Interval {
	a := r.Float64()*20 - 10
	b := r.Float64()*20 - 10
	if a > b {
		a, b = b, a
	}
	return interval.Interval{L: a, U: b}
}

func TestExpMonotone(t *testing.T) {
	x := interval.Interval{L: -1, U: 1}
	e := interval.Exp(x)
	assert.LessOrEqual(t, e.L, math.Exp(-1))
	assert.GreaterOrEqual(t, e.U, math.Exp(1))
}

func TestFMASignBranch(t *testing.T) {
	x := interval.Interval{L: 1, U: 2}
	y := interval.Interval{L: 0, U: 1}

	pos := interval.FMA(2, x, y)
	assert.InDelta(t, 2.0, pos.L, 1e-9)
	assert.InDelta(t, 5.0, pos.U, 1e-9)

	neg := interval.FMA(-2, x, y)
	assert.InDelta(t, -4.0, neg.L, 1e-9)
	assert.InDelta(t, -1.0, neg.U, 1e-9)
}
