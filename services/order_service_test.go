package services_test

import (
	"testing"

	"foodbot/entity"
	"foodbot/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) placeOrder(t *testing.T, user *entity.User) *entity.Order {
	t.Helper()
	order, err := f.orders.Checkout(user.ID, "123 Main St", "555-0100", "")
	require.NoError(t, err)
	return order
}

func TestCheckoutSnapshotsTotalAndPrices(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, 2001)
	restID, pizza, cola := f.createCatalog(t)

	_, err := f.cart.AddItem(user.ID, pizza.ID, 1)
	require.NoError(t, err)
	_, err = f.cart.AddItem(user.ID, cola.ID, 2)
	require.NoError(t, err)

	order := f.placeOrder(t, user)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, restID, order.RestaurantID)
	assert.Equal(t, int64(1297), order.Total)
	assert.Equal(t, "123 Main St", order.DeliveryAddress)
	assert.Equal(t, "555-0100", order.Phone)

	// the cart is gone once the order exists
	lines, err := f.cart.Items(user.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// a later price change leaves the stored order untouched
	require.NoError(t, f.db.Model(pizza).Update("price", int64(1999)).Error)

	stored, err := f.orders.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1297), stored.Total)

	items, err := f.orders.ItemsOf(order.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	byProduct := map[uint]entity.OrderItem{}
	for _, it := range items {
		byProduct[it.ProductID] = it
	}
	assert.Equal(t, int64(899), byProduct[pizza.ID].Price)
	assert.Equal(t, 1, byProduct[pizza.ID].Quantity)
	assert.Equal(t, int64(199), byProduct[cola.ID].Price)
	assert.Equal(t, 2, byProduct[cola.ID].Quantity)
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, 2002)
	f.createCatalog(t)

	_, err := f.orders.Checkout(user.ID, "123 Main St", "555-0100", "")
	assert.ErrorIs(t, err, services.ErrCartEmpty)
}

func TestCheckoutSavesContactInfo(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, 2003)
	_, pizza, _ := f.createCatalog(t)

	_, err := f.cart.AddItem(user.ID, pizza.ID, 1)
	require.NoError(t, err)
	f.placeOrder(t, user)

	fresh, err := f.users.ByTelegramID(2003)
	require.NoError(t, err)
	assert.Equal(t, "123 Main St", fresh.DeliveryAddress)
	assert.Equal(t, "555-0100", fresh.Phone)
}

func TestReorderSameProduct(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, 2014)
	_, pizza, _ := f.createCatalog(t)

	_, err := f.cart.AddItem(user.ID, pizza.ID, 1)
	require.NoError(t, err)
	first := f.placeOrder(t, user)

	// checkout cleared the cart, so ordering the same product again works
	_, err = f.cart.AddItem(user.ID, pizza.ID, 2)
	require.NoError(t, err)
	second := f.placeOrder(t, user)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, int64(899), first.Total)
	assert.Equal(t, int64(1798), second.Total)
}

func TestOrderStatusFullSequence(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, 2004)
	_, pizza, _ := f.createCatalog(t)
	_, err := f.cart.AddItem(user.ID, pizza.ID, 1)
	require.NoError(t, err)
	order := f.placeOrder(t, user)

	for _, next := range []entity.OrderStatus{
		entity.StatusConfirmed,
		entity.StatusPreparing,
		entity.StatusDelivering,
		entity.StatusDelivered,
	} {
		updated, err := f.orders.UpdateStatus(order.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}

	stored, err := f.orders.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, stored.Status)
}

func TestOrderStatusRejectsSkippedStep(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, 2005)
	_, pizza, _ := f.createCatalog(t)
	_, err := f.cart.AddItem(user.ID, pizza.ID, 1)
	require.NoError(t, err)
	order := f.placeOrder(t, user)

	_, err = f.orders.UpdateStatus(order.ID, entity.StatusConfirmed)
	require.NoError(t, err)

	// confirmed orders cannot jump straight to delivered
	_, err = f.orders.UpdateStatus(order.ID, entity.StatusDelivered)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	stored, err := f.orders.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, stored.Status)
}

func TestOrderStatusUnknownOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.UpdateStatus(777, entity.StatusConfirmed)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
}

func TestCancelPendingOrderByOwner(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, 2006)
	_, pizza, _ := f.createCatalog(t)
	_, err := f.cart.AddItem(user.ID, pizza.ID, 1)
	require.NoError(t, err)
	order := f.placeOrder(t, user)

	cancelled, err := f.orders.Cancel(order.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, cancelled.Status)

	// cancelled is terminal
	_, err = f.orders.UpdateStatus(order.ID, entity.StatusConfirmed)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestCancelGuards(t *testing.T) {
	f := newFixture(t)
	owner := f.createUser(t, 2007)
	stranger := f.createUser(t, 2008)
	_, pizza, _ := f.createCatalog(t)
	_, err := f.cart.AddItem(owner.ID, pizza.ID, 1)
	require.NoError(t, err)
	order := f.placeOrder(t, owner)

	// not the owner
	_, err = f.orders.Cancel(order.ID, stranger.ID)
	assert.ErrorIs(t, err, services.ErrNotPermitted)

	// owner, but past pending
	_, err = f.orders.UpdateStatus(order.ID, entity.StatusConfirmed)
	require.NoError(t, err)
	_, err = f.orders.Cancel(order.ID, owner.ID)
	assert.ErrorIs(t, err, services.ErrNotPermitted)

	// absent order stays distinguishable
	_, err = f.orders.Cancel(888, owner.ID)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)

	stored, err := f.orders.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, stored.Status)
}

func TestPendingOrdersOldestFirst(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, 2009)
	_, pizza, _ := f.createCatalog(t)

	var ids []uint
	for i := 0; i < 3; i++ {
		_, err := f.cart.AddItem(user.ID, pizza.ID, 1)
		require.NoError(t, err)
		ids = append(ids, f.placeOrder(t, user).ID)
	}

	// confirmed orders drop out of the queue
	_, err := f.orders.UpdateStatus(ids[1], entity.StatusConfirmed)
	require.NoError(t, err)

	pending, err := f.orders.PendingOrders()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, ids[0], pending[0].ID)
	assert.Equal(t, ids[2], pending[1].ID)
}

func TestOrdersForUserNewestFirst(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, 2010)
	other := f.createUser(t, 2011)
	_, pizza, _ := f.createCatalog(t)

	var ids []uint
	for i := 0; i < 2; i++ {
		_, err := f.cart.AddItem(user.ID, pizza.ID, 1)
		require.NoError(t, err)
		ids = append(ids, f.placeOrder(t, user).ID)
	}
	_, err := f.cart.AddItem(other.ID, pizza.ID, 1)
	require.NoError(t, err)
	f.placeOrder(t, other)

	orders, err := f.orders.OrdersForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, ids[1], orders[0].ID)
	assert.Equal(t, ids[0], orders[1].ID)
}

func TestGetForUserScopesByOwner(t *testing.T) {
	f := newFixture(t)
	owner := f.createUser(t, 2012)
	stranger := f.createUser(t, 2013)
	_, pizza, _ := f.createCatalog(t)
	_, err := f.cart.AddItem(owner.ID, pizza.ID, 1)
	require.NoError(t, err)
	order := f.placeOrder(t, owner)

	got, err := f.orders.GetForUser(owner.ID, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, order.ID, got.ID)

	got, err = f.orders.GetForUser(stranger.ID, order.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
