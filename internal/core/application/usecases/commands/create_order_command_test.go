package commands_test

import (
	"testing"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItem(t *testing.T) {
	t.Run("creates valid item", func(t *testing.T) {
		item, err := commands.NewOrderItem("Latte", 2)

		require.NoError(t, err)
		assert.Equal(t, "Latte", item.Name())
		assert.Equal(t, 2, item.Quantity())
		require.NoError(t, item.Validate())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := commands.NewOrderItem("", 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := commands.NewOrderItem("Latte", 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = commands.NewOrderItem("Latte", -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewCreateOrderCommand(t *testing.T) {
	latte, err := commands.NewOrderItem("Latte", 2)
	require.NoError(t, err)

	t.Run("creates valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand([]commands.OrderItem{latte}, "oat milk", "Dana")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Len(t, cmd.Items(), 1)
		assert.Equal(t, "oat milk", cmd.Addons())
		assert.Equal(t, "Dana", cmd.CustomerName())
	})

	t.Run("allows empty addons and customer name", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand([]commands.OrderItem{latte}, "", "")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(nil, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero-value items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand([]commands.OrderItem{{}}, "", "")
		require.ErrorIs(t, err, commands.ErrOrderItemIsNotConstructed)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
