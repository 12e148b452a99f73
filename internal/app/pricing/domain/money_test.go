package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid amount", func(t *testing.T) {
		m, err := NewMoney(249900, 100)
		require.NoError(t, err)
		assert.Equal(t, "2499.00", m.String())
	})

	t.Run("zero denominator rejected", func(t *testing.T) {
		_, err := NewMoney(100, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "positive")
	})

	t.Run("negative denominator rejected", func(t *testing.T) {
		_, err := NewMoney(100, -1)
		require.Error(t, err)
	})

	t.Run("negative numerator allowed", func(t *testing.T) {
		m, err := NewMoney(-500, 100)
		require.NoError(t, err)
		assert.True(t, m.IsNegative())
	})
}

func TestParseMoney(t *testing.T) {
	t.Run("decimal string", func(t *testing.T) {
		m, err := ParseMoney("1000.00")
		require.NoError(t, err)
		assert.Equal(t, "1000.00", m.String())
	})

	t.Run("integer string", func(t *testing.T) {
		m, err := ParseMoney("150")
		require.NoError(t, err)
		assert.Equal(t, "150.00", m.String())
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := ParseMoney("not-a-number")
		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	a := mustMoney(t, 10000, 100) // 100.00
	b := mustMoney(t, 3050, 100)  // 30.50

	assert.Equal(t, "130.50", a.Add(b).String())
	assert.Equal(t, "69.50", a.Subtract(b).String())
	assert.Equal(t, "91.50", b.MultiplyByInt(3).String())
}

func TestMoney_Quantize(t *testing.T) {
	t.Run("already two digits unchanged", func(t *testing.T) {
		m := mustMoney(t, 8000, 100)
		assert.Equal(t, "80.00", m.Quantize().String())
	})

	t.Run("half rounds up", func(t *testing.T) {
		m := mustMoney(t, 10005, 1000) // 10.005
		assert.Equal(t, "10.01", m.Quantize().String())
	})

	t.Run("below half rounds down", func(t *testing.T) {
		m := mustMoney(t, 10004, 1000) // 10.004
		assert.Equal(t, "10.00", m.Quantize().String())
	})

	t.Run("repeating fraction truncates to nearest cent", func(t *testing.T) {
		m := mustMoney(t, 100, 3) // 33.333...
		assert.Equal(t, "33.33", m.Quantize().String())
	})

	t.Run("negative half rounds away from zero", func(t *testing.T) {
		m := mustMoney(t, -10005, 1000)
		assert.Equal(t, "-10.01", m.Quantize().String())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	low := mustMoney(t, 9999, 100)
	high := mustMoney(t, 10000, 100)
	same := mustMoney(t, 100, 1)

	assert.True(t, low.LessThan(high))
	assert.True(t, high.GreaterThan(low))
	assert.True(t, high.Equals(same))
	assert.True(t, high.GreaterOrEqual(same))
	assert.True(t, ZeroMoney().IsZero())
	assert.True(t, high.IsPositive())
	assert.False(t, high.IsNegative())
}

func TestMoney_Copy(t *testing.T) {
	original := mustMoney(t, 500, 100)
	copied := original.Copy()

	assert.True(t, original.Equals(copied))
	assert.NotSame(t, original, copied)
}
