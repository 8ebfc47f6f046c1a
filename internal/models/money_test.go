package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/models"
)

func TestMoney_ApplyBasisPoints(t *testing.T) {
	tests := []struct {
		name string
		base int64
		bps  int64
		want int64
	}{
		{name: "15 percent of $100.00", base: 10000, bps: 1500, want: 1500},
		{name: "zero base", base: 0, bps: 1500, want: 0},
		{name: "zero bps", base: 10000, bps: 0, want: 0},
		{name: "rounds half up", base: 333, bps: 3333, want: 111},
		{name: "full rate", base: 12345, bps: 10000, want: 12345},
		{name: "one cent at one bp", base: 10000, bps: 1, want: 1},
		{name: "below half rounds down", base: 100, bps: 49, want: 0},
		{name: "at half rounds up", base: 100, bps: 50, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := models.NewMoney(tt.base).ApplyBasisPoints(tt.bps)
			require.NoError(t, err)
			assert.Equal(t, models.NewMoney(tt.want), got)

			// reproducible
			again, err := models.NewMoney(tt.base).ApplyBasisPoints(tt.bps)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestMoney_SplitEvenly(t *testing.T) {
	t.Run("distributes remainder to first portions", func(t *testing.T) {
		parts, err := models.NewMoney(1000).SplitEvenly(3)
		require.NoError(t, err)
		assert.Equal(t, []models.Money{334, 333, 333}, parts)
	})

	t.Run("parts always sum to total", func(t *testing.T) {
		for _, total := range []int64{0, 1, 2, 99, 100, 101, 12345, -1000} {
			for n := 1; n <= 7; n++ {
				parts, err := models.NewMoney(total).SplitEvenly(n)
				require.NoError(t, err)
				require.Len(t, parts, n)

				sum, err := models.SumMoney(parts...)
				require.NoError(t, err)
				assert.Equal(t, models.NewMoney(total), sum, "total=%d parts=%d", total, n)
			}
		}
	})

	t.Run("zero parts rejected", func(t *testing.T) {
		_, err := models.NewMoney(100).SplitEvenly(0)
		assert.ErrorIs(t, err, common.ErrDivisionByZero)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add and subtract", func(t *testing.T) {
		sum, err := models.NewMoney(250).Add(models.NewMoney(-100))
		require.NoError(t, err)
		assert.Equal(t, models.NewMoney(150), sum)

		diff, err := models.NewMoney(250).Sub(models.NewMoney(300))
		require.NoError(t, err)
		assert.Equal(t, models.NewMoney(-50), diff)
	})

	t.Run("add overflow rejected", func(t *testing.T) {
		huge := models.NewMoney(1<<62 + 1<<61)
		_, err := huge.Add(huge)
		assert.ErrorIs(t, err, common.ErrAmountOutOfRange)
	})

	t.Run("multiply overflow rejected", func(t *testing.T) {
		_, err := models.NewMoney(1 << 40).MulInt(1 << 40)
		assert.ErrorIs(t, err, common.ErrAmountOutOfRange)
	})

	t.Run("divide by zero rejected", func(t *testing.T) {
		_, err := models.NewMoney(100).DivInt(0)
		assert.ErrorIs(t, err, common.ErrDivisionByZero)
	})

	t.Run("divide truncates toward zero", func(t *testing.T) {
		q, err := models.NewMoney(10).DivInt(3)
		require.NoError(t, err)
		assert.Equal(t, models.NewMoney(3), q)
	})
}

func TestMoney_Helpers(t *testing.T) {
	assert.True(t, models.NewMoney(-1).IsNegative())
	assert.True(t, models.NewMoney(0).IsZero())
	assert.True(t, models.NewMoney(1).IsPositive())

	assert.Equal(t, models.NewMoney(100), models.NewMoney(-100).Abs())
	assert.Equal(t, models.NewMoney(100), models.NewMoney(100).Abs())
	assert.Equal(t, models.NewMoney(-100), models.NewMoney(100).Neg())

	assert.Equal(t, models.NewMoney(3), models.MinMoney(3, 7))
	assert.Equal(t, models.NewMoney(7), models.MaxMoney(3, 7))

	sum, err := models.SumMoney(1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, models.NewMoney(10), sum)
}

func TestMoney_CheckSafeRange(t *testing.T) {
	assert.NoError(t, models.NewMoney(10000).CheckSafeRange())
	assert.NoError(t, models.MaxSafeCents.CheckSafeRange())
	assert.ErrorIs(t, (models.MaxSafeCents + 1).CheckSafeRange(), common.ErrAmountOutOfRange)
	assert.ErrorIs(t, (-models.MaxSafeCents - 1).CheckSafeRange(), common.ErrAmountOutOfRange)
}

func TestMoney_Decimal(t *testing.T) {
	assert.Equal(t, "100.00", models.NewMoney(10000).String())
	assert.Equal(t, "3.45", models.NewMoney(345).String())
	assert.Equal(t, "-0.05", models.NewMoney(-5).String())
	assert.Equal(t, "123.45", models.NewMoney(12345).Decimal().StringFixed(2))
}
