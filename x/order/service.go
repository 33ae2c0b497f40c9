package order

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"

	"github.com/bookden/bookden/core"
)

var tracer = otel.Tracer("order")

var validStatus = map[string]bool{
	core.OrderStatusPlaced:    true,
	core.OrderStatusPaid:      true,
	core.OrderStatusShipped:   true,
	core.OrderStatusDelivered: true,
	core.OrderStatusCancelled: true,
}

type Service interface {
	Get(ctx context.Context, id uint) (core.Order, error)
	List(ctx context.Context, limit, offset int) ([]core.Order, error)
	ListByShop(ctx context.Context, shopID uint, limit, offset int) ([]core.Order, error)
	Place(ctx context.Context, order core.Order) (core.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) (core.Order, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repository Repository
}

// NewService creates a new order service
func NewService(repository Repository) Service {
	return &service{repository}
}

func (s *service) Get(ctx context.Context, id uint) (core.Order, error) {
	ctx, span := tracer.Start(ctx, "Order.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]core.Order, error) {
	ctx, span := tracer.Start(ctx, "Order.Service.List")
	defer span.End()

	return s.repository.GetList(ctx, limit, offset)
}

func (s *service) ListByShop(ctx context.Context, shopID uint, limit, offset int) ([]core.Order, error) {
	ctx, span := tracer.Start(ctx, "Order.Service.ListByShop")
	defer span.End()

	return s.repository.GetListByShop(ctx, shopID, limit, offset)
}

// Place prices the lines against the catalog, stamps a fresh
// reference and persists the order as placed. Client-supplied prices
// and totals are ignored.
func (s *service) Place(ctx context.Context, order core.Order) (core.Order, error) {
	ctx, span := tracer.Start(ctx, "Order.Service.Place")
	defer span.End()

	if order.CustomerID == 0 || order.ShopID == 0 {
		return core.Order{}, core.NewErrorInvalidArgument("customer and shop are required")
	}
	if len(order.Lines) == 0 {
		return core.Order{}, core.NewErrorInvalidArgument("order has no lines")
	}

	productIDs := make([]uint, 0, len(order.Lines))
	for _, line := range order.Lines {
		if line.ProductID == 0 || line.Quantity <= 0 {
			return core.Order{}, core.NewErrorInvalidArgument("every line needs a product and a positive quantity")
		}
		productIDs = append(productIDs, line.ProductID)
	}

	prices, err := s.repository.GetProductPrices(ctx, productIDs)
	if err != nil {
		span.RecordError(err)
		return core.Order{}, errors.Wrap(err, "failed to price order lines")
	}

	var total int64
	for i, line := range order.Lines {
		price, ok := prices[line.ProductID]
		if !ok {
			return core.Order{}, core.NewErrorInvalidArgument("unknown product in order line")
		}
		order.Lines[i].UnitCents = price
		total += price * int64(line.Quantity)
	}

	order.ID = 0
	order.Reference = xid.New().String()
	order.Status = core.OrderStatusPlaced
	order.TotalCents = total

	created, err := s.repository.Create(ctx, order)
	if err != nil {
		span.RecordError(err)
		return core.Order{}, errors.Wrap(err, "failed to create order")
	}

	return created, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uint, status string) (core.Order, error) {
	ctx, span := tracer.Start(ctx, "Order.Service.UpdateStatus")
	defer span.End()

	if !validStatus[status] {
		return core.Order{}, core.NewErrorInvalidArgument("unknown order status")
	}

	current, err := s.repository.Get(ctx, id)
	if err != nil {
		return core.Order{}, err
	}
	if current.Status == core.OrderStatusDelivered || current.Status == core.OrderStatusCancelled {
		return core.Order{}, core.NewErrorInvalidArgument("order is already closed")
	}

	return s.repository.UpdateStatus(ctx, id, status)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Order.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
