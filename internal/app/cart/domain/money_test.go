package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid amount", func(t *testing.T) {
		m, err := NewMoney(12990)
		require.NoError(t, err)
		assert.Equal(t, int64(12990), m.Amount())
	})

	t.Run("zero is allowed", func(t *testing.T) {
		m, err := NewMoney(0)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.False(t, m.IsPositive())
	})

	t.Run("negative amount returns error", func(t *testing.T) {
		_, err := NewMoney(-1)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	m1, _ := NewMoney(1000)
	m2, _ := NewMoney(500)

	assert.Equal(t, int64(1500), m1.Add(m2).Amount())
	assert.Equal(t, int64(3000), m1.MultiplyBy(3).Amount())
	assert.True(t, m1.Equals(m2.Add(m2)))
}

func TestMoney_Format(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "$0"},
		{5, "$5"},
		{999, "$999"},
		{1000, "$1.000"},
		{12990, "$12.990"},
		{1234567, "$1.234.567"},
	}

	for _, tc := range cases {
		m, err := NewMoney(tc.amount)
		require.NoError(t, err)
		assert.Equal(t, tc.want, m.Format(), "amount %d", tc.amount)
	}
}
