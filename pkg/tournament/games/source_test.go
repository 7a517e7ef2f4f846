package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRandomCoversAlphabet draws enough moves that every move must show up
// with a roughly uniform share.
func TestRandomCoversAlphabet(t *testing.T) {
	source := NewRandom(42)

	const draws = 30000
	var counts [MoveN]int
	for i := 0; i < draws; i++ {
		move := source.Next()
		if !assert.True(t, move.Valid()) {
			return
		}
		counts[move]++
	}

	for move, count := range counts {
		assert.InDelta(t, draws/MoveN, count, draws/20, "move %s", Move(move))
	}
}

func TestRandomSeedsAreIndependent(t *testing.T) {
	a, b := NewRandom(1), NewRandom(1)
	c := NewRandom(2)

	same, differs := true, false
	for i := 0; i < 64; i++ {
		ma, mb, mc := a.Next(), b.Next(), c.Next()
		same = same && ma == mb
		differs = differs || ma != mc
	}

	assert.True(t, same, "equal seeds must replay the same moves")
	assert.True(t, differs, "different seeds should diverge")
}

func TestSequenceCycles(t *testing.T) {
	source := Sequence(Rock, Paper)

	assert.Equal(t, Rock, source.Next())
	assert.Equal(t, Paper, source.Next())
	assert.Equal(t, Rock, source.Next())
	assert.Equal(t, 3, source.Drawn())
}

func TestSequencePanicsWhenEmpty(t *testing.T) {
	assert.Panics(t, func() { Sequence() })
}

func TestSourceFunc(t *testing.T) {
	var source Source = SourceFunc(func() Move { return Scissors })
	assert.Equal(t, Scissors, source.Next())
}
