package shop

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/bookden/bookden/core"
)

var tracer = otel.Tracer("shop")

type Service interface {
	Get(ctx context.Context, id uint) (core.Shop, error)
	List(ctx context.Context, limit, offset int) ([]core.Shop, error)
	Create(ctx context.Context, shop core.Shop) (core.Shop, error)
	Update(ctx context.Context, id uint, shop core.Shop) (core.Shop, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repository Repository
}

// NewService creates a new shop service
func NewService(repository Repository) Service {
	return &service{repository}
}

func (s *service) Get(ctx context.Context, id uint) (core.Shop, error) {
	ctx, span := tracer.Start(ctx, "Shop.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]core.Shop, error) {
	ctx, span := tracer.Start(ctx, "Shop.Service.List")
	defer span.End()

	return s.repository.GetList(ctx, limit, offset)
}

func (s *service) Create(ctx context.Context, shop core.Shop) (core.Shop, error) {
	ctx, span := tracer.Start(ctx, "Shop.Service.Create")
	defer span.End()

	if shop.Name == "" {
		return core.Shop{}, core.NewErrorInvalidArgument("name is required")
	}

	created, err := s.repository.Create(ctx, shop)
	if err != nil {
		span.RecordError(err)
		return core.Shop{}, errors.Wrap(err, "failed to create shop")
	}

	return created, nil
}

func (s *service) Update(ctx context.Context, id uint, shop core.Shop) (core.Shop, error) {
	ctx, span := tracer.Start(ctx, "Shop.Service.Update")
	defer span.End()

	shop.ID = id
	return s.repository.Update(ctx, shop)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Shop.Service.Delete")
	defer span.End()

	return s.repository.Delete(ctx, id)
}
