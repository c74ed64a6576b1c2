package services_test

import (
	"testing"

	"foodbot/entity"
	"foodbot/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutConversationFullFlow(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, 3001)
	_, pizza, cola := f.createCatalog(t)

	_, err := f.cart.AddItem(user.ID, pizza.ID, 1)
	require.NoError(t, err)
	_, err = f.cart.AddItem(user.ID, cola.ID, 2)
	require.NoError(t, err)

	prompt, err := f.checkout.Begin(user)
	require.NoError(t, err)
	assert.Equal(t, services.StepAskAddress, prompt.Step)
	assert.True(t, f.checkout.Active(user.ID))

	prompt, err = f.checkout.Input(user, "123 Main St")
	require.NoError(t, err)
	assert.Equal(t, services.StepAskPhone, prompt.Step)

	prompt, err = f.checkout.Input(user, "555-0100")
	require.NoError(t, err)
	require.Equal(t, services.StepConfirm, prompt.Step)
	require.NotNil(t, prompt.Summary)
	assert.Equal(t, int64(1297), prompt.Summary.Total)
	assert.Equal(t, "123 Main St", prompt.Summary.Address)
	assert.Equal(t, "555-0100", prompt.Summary.Phone)
	assert.Len(t, prompt.Summary.Lines, 2)

	prompt, err = f.checkout.Input(user, "yes")
	require.NoError(t, err)
	require.Equal(t, services.StepCommitted, prompt.Step)
	require.NotNil(t, prompt.Order)
	assert.Equal(t, entity.StatusPending, prompt.Order.Status)
	assert.Equal(t, int64(1297), prompt.Order.Total)
	assert.False(t, f.checkout.Active(user.ID))

	lines, err := f.cart.Items(user.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCheckoutConversationSkipsSavedContact(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, 3002)
	_, pizza, _ := f.createCatalog(t)
	require.NoError(t, f.users.UpdateContact(user.ID, "555-0100", "123 Main St"))
	user, err := f.users.ByTelegramID(3002)
	require.NoError(t, err)

	_, err = f.cart.AddItem(user.ID, pizza.ID, 1)
	require.NoError(t, err)

	// both fields on file land the user straight on the confirmation
	prompt, err := f.checkout.Begin(user)
	require.NoError(t, err)
	require.Equal(t, services.StepConfirm, prompt.Step)
	assert.Equal(t, "123 Main St", prompt.Summary.Address)
	assert.Equal(t, "555-0100", prompt.Summary.Phone)
}

func TestCheckoutConversationSkipsSavedAddressOnly(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, 3003)
	_, pizza, _ := f.createCatalog(t)
	require.NoError(t, f.users.UpdateContact(user.ID, "", "123 Main St"))
	user, err := f.users.ByTelegramID(3003)
	require.NoError(t, err)

	_, err = f.cart.AddItem(user.ID, pizza.ID, 1)
	require.NoError(t, err)

	prompt, err := f.checkout.Begin(user)
	require.NoError(t, err)
	assert.Equal(t, services.StepAskPhone, prompt.Step)
}

func TestCheckoutConversationDeclinePreservesCart(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, 3004)
	_, pizza, _ := f.createCatalog(t)

	_, err := f.cart.AddItem(user.ID, pizza.ID, 1)
	require.NoError(t, err)

	_, err = f.checkout.Begin(user)
	require.NoError(t, err)
	_, err = f.checkout.Input(user, "123 Main St")
	require.NoError(t, err)
	_, err = f.checkout.Input(user, "555-0100")
	require.NoError(t, err)

	prompt, err := f.checkout.Input(user, "no")
	require.NoError(t, err)
	assert.Equal(t, services.StepCancelled, prompt.Step)
	assert.False(t, f.checkout.Active(user.ID))

	lines, err := f.cart.Items(user.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	orders, err := f.orders.OrdersForUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutConversationEmptyCart(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, 3005)
	f.createCatalog(t)

	_, err := f.checkout.Begin(user)
	assert.ErrorIs(t, err, services.ErrCartEmpty)
	assert.False(t, f.checkout.Active(user.ID))
}

func TestCheckoutConversationInputWithoutBegin(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, 3006)

	_, err := f.checkout.Input(user, "hello")
	assert.ErrorIs(t, err, services.ErrNoActiveConversation)
}

func TestCheckoutConversationAbort(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, 3007)
	_, pizza, _ := f.createCatalog(t)

	_, err := f.cart.AddItem(user.ID, pizza.ID, 1)
	require.NoError(t, err)

	_, err = f.checkout.Begin(user)
	require.NoError(t, err)
	f.checkout.Abort(user.ID)
	assert.False(t, f.checkout.Active(user.ID))

	lines, err := f.cart.Items(user.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestCheckoutConversationConfirmTokensCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, 3008)
	_, pizza, _ := f.createCatalog(t)

	_, err := f.cart.AddItem(user.ID, pizza.ID, 1)
	require.NoError(t, err)

	_, err = f.checkout.Begin(user)
	require.NoError(t, err)
	_, err = f.checkout.Input(user, "123 Main St")
	require.NoError(t, err)
	_, err = f.checkout.Input(user, "555-0100")
	require.NoError(t, err)

	prompt, err := f.checkout.Input(user, "  CONFIRM ")
	require.NoError(t, err)
	assert.Equal(t, services.StepCommitted, prompt.Step)
}
