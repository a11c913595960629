package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Same seed yields the same values", func(t *testing.T) {
		// Given: two sources with the same seed
		first := New(42)
		second := New(42)

		// Then: they produce the same sequence
		for range 100 {
			require.InDelta(t, first.Float64(), second.Float64(), 0)
		}
	})

	t.Run("Values stay in [0, 1)", func(t *testing.T) {
		source := New(7)

		for range 1000 {
			value := source.Float64()
			require.GreaterOrEqual(t, value, 0.0)
			require.Less(t, value, 1.0)
		}
	})
}

func TestNewFactory(t *testing.T) {
	t.Run("Fixed seed gives reproducible sources", func(t *testing.T) {
		// Given: a factory with a fixed seed
		factory := NewFactory(99)

		first, err := factory()
		require.NoError(t, err)
		second, err := factory()
		require.NoError(t, err)

		// Then: each session source starts from the same point
		assert.InDelta(t, first.Float64(), second.Float64(), 0)
	})

	t.Run("Zero seed draws a crypto seed", func(t *testing.T) {
		factory := NewFactory(0)

		source, err := factory()

		require.NoError(t, err)
		assert.NotNil(t, source)
	})
}

func TestPercent(t *testing.T) {
	// Given: a scripted source covering the edges of [0, 1)
	source := NewSequence(0, 0.0999, 0.1, 0.899, 0.9, 0.99999)

	// When: drawing percentages
	got := make([]int, 0, 6)
	for range 6 {
		got = append(got, Percent(source))
	}

	// Then: every value is floored into [0, 100)
	assert.Equal(t, []int{0, 9, 10, 89, 90, 99}, got)
}

func TestSequence(t *testing.T) {
	t.Run("Wraps around", func(t *testing.T) {
		source := NewSequence(0.1, 0.2)

		assert.InDelta(t, 0.1, source.Float64(), 0)
		assert.InDelta(t, 0.2, source.Float64(), 0)
		assert.InDelta(t, 0.1, source.Float64(), 0)
		assert.Equal(t, 3, source.Draws())
	})

	t.Run("Empty sequence yields zero", func(t *testing.T) {
		source := NewSequence()

		assert.InDelta(t, 0, source.Float64(), 0)
	})
}
