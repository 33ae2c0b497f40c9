package stock

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/bookden/bookden/core"
)

var tracer = otel.Tracer("stock")

type Service interface {
	List(ctx context.Context, limit, offset int) ([]core.ProductCount, error)
	ListAt(ctx context.Context, location core.EntityKind, locationID uint, limit, offset int) ([]core.ProductCount, error)
	Add(ctx context.Context, count core.ProductCount) (core.ProductCount, error)
	SetCount(ctx context.Context, location core.EntityKind, locationID, productID uint, count int) (core.ProductCount, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repository Repository
}

// NewService creates a new stock service
func NewService(repository Repository) Service {
	return &service{repository}
}

func (s *service) List(ctx context.Context, limit, offset int) ([]core.ProductCount, error) {
	ctx, span := tracer.Start(ctx, "Stock.Service.List")
	defer span.End()

	return s.repository.GetList(ctx, limit, offset)
}

func (s *service) ListAt(ctx context.Context, location core.EntityKind, locationID uint, limit, offset int) ([]core.ProductCount, error) {
	ctx, span := tracer.Start(ctx, "Stock.Service.ListAt")
	defer span.End()

	if location != core.KindShop && location != core.KindWarehouse {
		return nil, core.NewErrorInvalidArgument("stock is kept per shop or per warehouse")
	}

	return s.repository.GetListAt(ctx, location, locationID, limit, offset)
}

func (s *service) Add(ctx context.Context, count core.ProductCount) (core.ProductCount, error) {
	ctx, span := tracer.Start(ctx, "Stock.Service.Add")
	defer span.End()

	if count.ProductID == 0 {
		return core.ProductCount{}, core.NewErrorInvalidArgument("product is required")
	}
	if (count.ShopID == nil) == (count.WarehouseID == nil) {
		return core.ProductCount{}, core.NewErrorInvalidArgument("exactly one of shop or warehouse must be set")
	}
	if count.Count < 0 {
		return core.ProductCount{}, core.NewErrorInvalidArgument("count must not be negative")
	}

	created, err := s.repository.Create(ctx, count)
	if err != nil {
		span.RecordError(err)
		if _, ok := err.(core.ErrorAlreadyExists); ok {
			return core.ProductCount{}, err
		}
		return core.ProductCount{}, errors.Wrap(err, "failed to create stock row")
	}

	return created, nil
}

func (s *service) SetCount(ctx context.Context, location core.EntityKind, locationID, productID uint, count int) (core.ProductCount, error) {
	ctx, span := tracer.Start(ctx, "Stock.Service.SetCount")
	defer span.End()

	if location != core.KindShop && location != core.KindWarehouse {
		return core.ProductCount{}, core.NewErrorInvalidArgument("stock is kept per shop or per warehouse")
	}
	if productID == 0 {
		return core.ProductCount{}, core.NewErrorInvalidArgument("product is required")
	}
	if count < 0 {
		return core.ProductCount{}, core.NewErrorInvalidArgument("count must not be negative")
	}

	return s.repository.SetCount(ctx, location, locationID, productID, count)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Stock.Service.Delete")
	defer span.End()

	return s.repository.Delete(ctx, id)
}
