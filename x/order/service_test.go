package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookden/bookden/core"
)

type fakeRepository struct {
	Repository
	prices  map[uint]int64
	created core.Order
	orders  map[uint]core.Order
}

func (f *fakeRepository) GetProductPrices(ctx context.Context, productIDs []uint) (map[uint]int64, error) {
	return f.prices, nil
}

func (f *fakeRepository) Create(ctx context.Context, order core.Order) (core.Order, error) {
	order.ID = 1
	f.created = order
	return order, nil
}

func (f *fakeRepository) Get(ctx context.Context, id uint) (core.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return core.Order{}, core.NewErrorNotFound()
	}
	return order, nil
}

func (f *fakeRepository) UpdateStatus(ctx context.Context, id uint, status string) (core.Order, error) {
	order := f.orders[id]
	order.Status = status
	f.orders[id] = order
	return order, nil
}

func TestPlacePricesLinesFromCatalog(t *testing.T) {
	repo := &fakeRepository{prices: map[uint]int64{10: 1500, 11: 2200}}
	service := NewService(repo)

	placed, err := service.Place(context.Background(), core.Order{
		CustomerID: 7,
		ShopID:     3,
		Status:     core.OrderStatusDelivered, // client-supplied, must be ignored
		TotalCents: 1,                         // client-supplied, must be ignored
		Lines: []core.OrderLine{
			{ProductID: 10, Quantity: 2, UnitCents: 1}, // client price ignored
			{ProductID: 11, Quantity: 1},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, core.OrderStatusPlaced, placed.Status)
	assert.Equal(t, int64(2*1500+2200), placed.TotalCents)
	assert.Equal(t, int64(1500), placed.Lines[0].UnitCents)
	assert.Len(t, placed.Reference, 20)
}

func TestPlaceRejectsEmptyOrder(t *testing.T) {
	service := NewService(&fakeRepository{})

	_, err := service.Place(context.Background(), core.Order{CustomerID: 7, ShopID: 3})
	assert.IsType(t, core.ErrorInvalidArgument{}, err)
}

func TestPlaceRejectsUnknownProduct(t *testing.T) {
	repo := &fakeRepository{prices: map[uint]int64{10: 1500}}
	service := NewService(repo)

	_, err := service.Place(context.Background(), core.Order{
		CustomerID: 7,
		ShopID:     3,
		Lines:      []core.OrderLine{{ProductID: 99, Quantity: 1}},
	})
	assert.IsType(t, core.ErrorInvalidArgument{}, err)
}

func TestUpdateStatusRejectsClosedOrder(t *testing.T) {
	repo := &fakeRepository{orders: map[uint]core.Order{
		1: {ID: 1, Status: core.OrderStatusCancelled},
		2: {ID: 2, Status: core.OrderStatusPaid},
	}}
	service := NewService(repo)

	_, err := service.UpdateStatus(context.Background(), 1, core.OrderStatusPaid)
	assert.IsType(t, core.ErrorInvalidArgument{}, err)

	_, err = service.UpdateStatus(context.Background(), 2, "lost")
	assert.IsType(t, core.ErrorInvalidArgument{}, err)

	updated, err := service.UpdateStatus(context.Background(), 2, core.OrderStatusShipped)
	assert.NoError(t, err)
	assert.Equal(t, core.OrderStatusShipped, updated.Status)
}
