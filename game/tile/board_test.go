package tile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlide(t *testing.T) {
	t.Run("merging a pair to the left", func(t *testing.T) {
		b := New(
			1, 1, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		)

		reward := b.Slide(Left)

		require.Equal(t, 4, reward, "Merging two 2s should reward 4")
		require.Equal(t, 2, b.At(0), "Merged tile should be an exponent higher")
		require.Equal(t, 0, b.At(1), "Source cell should be emptied")
	})

	t.Run("merging each pair only once", func(t *testing.T) {
		b := New(
			1, 1, 1, 1,
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		)

		reward := b.Slide(Right)

		require.Equal(t, 8, reward)
		require.Equal(t, []int{0, 0, 2, 2}, []int{b.At(0), b.At(1), b.At(2), b.At(3)})
	})

	t.Run("sliding a column up", func(t *testing.T) {
		b := New(
			0, 0, 0, 0,
			3, 0, 0, 0,
			0, 0, 0, 0,
			3, 0, 0, 0,
		)

		reward := b.Slide(Up)

		require.Equal(t, 16, reward)
		require.Equal(t, 4, b.At(0))
		require.Equal(t, 0, b.At(12))
	})

	t.Run("sliding a column down", func(t *testing.T) {
		b := New(
			2, 0, 0, 0,
			1, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		)

		reward := b.Slide(Down)

		require.Equal(t, 0, reward, "Moving without merging should reward nothing")
		require.Equal(t, 2, b.At(8))
		require.Equal(t, 1, b.At(12))
	})

	t.Run("rejecting a slide that changes nothing", func(t *testing.T) {
		b := New(
			1, 2, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		)
		before := b

		require.Equal(t, Illegal, b.Slide(Left))
		require.Equal(t, before, b, "Illegal slide should leave the board untouched")
	})

	t.Run("refusing to merge past the largest exponent", func(t *testing.T) {
		b := New(MaxExponent, MaxExponent)

		require.Equal(t, Illegal, b.Slide(Left))
		require.Equal(t, MaxExponent, b.MaxTile())
	})

	t.Run("rejecting unknown directions", func(t *testing.T) {
		b := New(1)
		require.Equal(t, Illegal, b.Slide(4))
		require.Equal(t, Illegal, b.Slide(-1))
	})
}

func TestNew(t *testing.T) {
	b := New(MaxExponent, 0, 3)
	require.Equal(t, MaxExponent, b.At(0))
	require.Equal(t, 3, b.At(2))

	require.Panics(t, func() { New(MaxExponent + 1) }, "Exponents above the maximum should be rejected")
	require.Panics(t, func() { New(0, -1) }, "Negative exponents should be rejected")
}

func TestPlace(t *testing.T) {
	b := New()

	require.Equal(t, 0, b.Place(5, 1))
	require.Equal(t, 1, b.At(5))
	require.Equal(t, Illegal, b.Place(5, 2), "Occupied cell should be rejected")
	require.Equal(t, Illegal, b.Place(Size, 1), "Out of range cell should be rejected")
	require.Equal(t, Illegal, b.Place(0, 0), "Empty tile should be rejected")
	require.Len(t, b.Empty(), Size-1)
}

func TestBoardIsValueType(t *testing.T) {
	b := New(1, 1)
	copied := b

	copied.Slide(Left)

	require.Equal(t, 1, b.At(0), "Sliding a copy should not touch the original")
	require.Equal(t, 2, copied.At(0))
}
