package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzanella-labs/silva/internal/search"
)

// A tiny binary-counter search space: expand increments by one up to a
// bound, priority favors smaller numbers, goal is reaching a target.
func TestRunFindsGoal(t *testing.T) {
	d := search.Driver[int]{
		Priority: func(n int) float64 { return float64(n) },
		Goal:     func(n int) bool { return n == 5 },
		Expand: func(n int) []int {
			if n >= 5 {
				return nil
			}
			return []int{n + 1}
		},
	}

	result, ok, err := d.Run(context.Background(), []int{0})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, result)
}

func TestRunExhaustsFrontierWithoutGoal(t *testing.T) {
	d := search.Driver[int]{
		Priority: func(n int) float64 { return float64(n) },
		Goal:     func(n int) bool { return n == 100 },
		Expand: func(n int) []int {
			if n >= 3 {
				return nil
			}
			return []int{n + 1}
		},
	}

	_, ok, err := d.Run(context.Background(), []int{0})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFrontierPopsLowestPriorityFirst(t *testing.T) {
	fr := search.NewFrontier[string]()
	fr.Push("c", 3)
	fr.Push("a", 1)
	fr.Push("b", 2)

	var order []string
	for fr.Len() > 0 {
		node, ok := fr.Pop()
		require.True(t, ok)
		order = append(order, node)
	}
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestFrontierBreaksTiesFIFO(t *testing.T) {
	fr := search.NewFrontier[string]()
	fr.Push("first", 1)
	fr.Push("second", 1)
	fr.Push("third", 1)

	var order []string
	for fr.Len() > 0 {
		node, _ := fr.Pop()
		order = append(order, node)
	}
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestFrontierPopEmptyReportsNotOK(t *testing.T) {
	fr := search.NewFrontier[int]()
	_, ok := fr.Pop()
	assert.False(t, ok)
}

func TestRunRespectsDeadline(t *testing.T) {
	d := search.Driver[int]{
		Priority: func(n int) float64 { return float64(n) },
		Goal:     func(n int) bool { return false },
		Expand:   func(n int) []int { return []int{n + 1} },
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	time.Sleep(2 * time.Millisecond)

	_, ok, err := d.Run(ctx, []int{0})
	assert.False(t, ok)
	assert.ErrorIs(t, err, search.ErrDeadlineExceeded)
}
