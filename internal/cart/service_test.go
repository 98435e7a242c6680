package cart_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/greencart/internal/cart"
	"github.com/rshade/greencart/internal/catalog"
	"github.com/rshade/greencart/internal/loyalty"
)

func newService(t *testing.T) (*cart.Service, *loyalty.Ledger) {
	t.Helper()
	store := catalog.NewStore(catalog.WithProducts(catalog.SeedProducts()))
	ledger := loyalty.NewLedger()
	return cart.NewService(store, ledger), ledger
}

func TestService_AddUnknownProduct(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Add(context.Background(), "alice", "999", 1)
	require.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestService_CartsArePerUser(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "alice", "1", 2)
	require.NoError(t, err)

	assert.Len(t, svc.View("alice").Items, 1)
	assert.Empty(t, svc.View("bob").Items)
	assert.NotNil(t, svc.View("bob").Items)
}

func TestService_SwapTwice(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	_, err := svc.Add(ctx, "alice", "2", 1)
	require.NoError(t, err)

	res, err := svc.Swap(ctx, "alice", "2")
	require.NoError(t, err)
	assert.Equal(t, 25, res.Reward)
	assert.Equal(t, "eco-2", res.Alternative.ID)
	require.Len(t, res.Cart.Items, 1)

	_, err = svc.Swap(ctx, "alice", "2")
	require.ErrorIs(t, err, cart.ErrAlreadySwapped)
}

func TestService_CheckoutCreditsPoints(t *testing.T) {
	svc, ledger := newService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "alice", "1", 2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "alice", "6", 1)
	require.NoError(t, err)
	_, err = svc.Swap(ctx, "alice", "1")
	require.NoError(t, err)
	_, err = svc.SelectDelivery("alice", cart.DeliveryEcoDelay)
	require.NoError(t, err)

	receipt, err := svc.Checkout(ctx, "alice")
	require.NoError(t, err)

	// 15 points per swapped banana bunch, plus 20 for eco-delay.
	assert.Equal(t, 50, receipt.PointsAwarded)
	assert.Equal(t, 190, receipt.Balance)
	assert.Equal(t, 190, ledger.Balance("alice"))
	require.Len(t, receipt.Entries, 2)
	assert.Equal(t, loyalty.ActionSwap, receipt.Entries[0].Action)
	assert.Equal(t, "1", receipt.Entries[0].ProductID)
	assert.Equal(t, loyalty.ActionEcoDelivery, receipt.Entries[1].Action)

	view := svc.View("alice")
	assert.Empty(t, view.Items, "checkout empties the cart")
	assert.Equal(t, cart.DeliveryStandard, view.Totals.Delivery)
}

// failingLedger rejects every award.
type failingLedger struct{ err error }

func (f failingLedger) Award(context.Context, string, int, loyalty.Action, string) (loyalty.Entry, error) {
	return loyalty.Entry{}, f.err
}

func (failingLedger) Balance(string) int { return 0 }

func TestService_CheckoutKeepsCartWhenCreditFails(t *testing.T) {
	boom := errors.New("ledger unavailable")
	store := catalog.NewStore(catalog.WithProducts(catalog.SeedProducts()))
	svc := cart.NewService(store, failingLedger{err: boom})
	ctx := context.Background()

	_, err := svc.Add(ctx, "dave", "1", 1)
	require.NoError(t, err)
	_, err = svc.SelectDelivery("dave", cart.DeliveryEcoDelay)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, "dave")
	require.ErrorIs(t, err, boom)

	view := svc.View("dave")
	require.Len(t, view.Items, 1)
	assert.Equal(t, cart.DeliveryEcoDelay, view.Totals.Delivery)
}

func TestService_CheckoutStandardNoPoints(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	_, err := svc.Add(ctx, "bob", "14", 1)
	require.NoError(t, err)

	receipt, err := svc.Checkout(ctx, "bob")
	require.NoError(t, err)
	assert.Zero(t, receipt.PointsAwarded)
	assert.Empty(t, receipt.Entries)
	assert.Equal(t, 140, receipt.Balance)
}

func TestService_CheckoutEmpty(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Checkout(context.Background(), "carol")
	require.ErrorIs(t, err, cart.ErrEmptyCart)
}

func TestService_UpdateAndRemove(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	_, err := svc.Add(ctx, "alice", "3", 1)
	require.NoError(t, err)

	view, err := svc.UpdateQuantity("alice", "3", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, view.Totals.ItemCount)

	view, err = svc.Remove("alice", "3")
	require.NoError(t, err)
	assert.Zero(t, view.Totals.ItemCount)

	_, err = svc.Remove("alice", "3")
	require.ErrorIs(t, err, cart.ErrItemNotFound)
}

func TestService_Concurrent(t *testing.T) {
	svc, _ := newService(t)
	var wg sync.WaitGroup
	for range 25 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Add(context.Background(), "alice", "4", 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 25, svc.View("alice").Totals.ItemCount)
}
