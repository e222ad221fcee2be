package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money with valid amount and currency", func(t *testing.T) {
		money, err := kernel.NewMoney(1_500_000, "IDR")

		require.NoError(t, err)
		assert.Equal(t, int64(1_500_000), money.Amount())
		assert.Equal(t, "IDR", money.Currency())
		require.NoError(t, money.Validate())
	})

	t.Run("should allow zero amount", func(t *testing.T) {
		money, err := kernel.NewMoney(0, "IDR")

		require.NoError(t, err)
		assert.Equal(t, int64(0), money.Amount())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(-1, "IDR")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount")
		assert.Contains(t, err.Error(), "-1 is negative")
	})

	t.Run("should reject empty currency", func(t *testing.T) {
		_, err := kernel.NewMoney(100, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "currency")
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("should reject zero-value money", func(t *testing.T) {
		var money kernel.Money

		err := money.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})

	t.Run("should accept constructed money", func(t *testing.T) {
		money, err := kernel.NewMoney(500, "IDR")
		require.NoError(t, err)

		require.NoError(t, money.Validate())
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should be equal for same amount and currency", func(t *testing.T) {
		a, _ := kernel.NewMoney(100, "IDR")
		b, _ := kernel.NewMoney(100, "IDR")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should differ by amount", func(t *testing.T) {
		a, _ := kernel.NewMoney(100, "IDR")
		b, _ := kernel.NewMoney(200, "IDR")

		assert.False(t, a.IsEqual(b))
	})

	t.Run("should differ by currency", func(t *testing.T) {
		a, _ := kernel.NewMoney(100, "IDR")
		b, _ := kernel.NewMoney(100, "USD")

		assert.False(t, a.IsEqual(b))
	})
}

func TestMoney_String(t *testing.T) {
	money, err := kernel.NewMoney(1_500_000, "IDR")
	require.NoError(t, err)

	assert.Equal(t, "1500000 IDR", money.String())
}
