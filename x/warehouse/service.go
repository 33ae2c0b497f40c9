package warehouse

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/bookden/bookden/core"
)

var tracer = otel.Tracer("warehouse")

type Service interface {
	Get(ctx context.Context, id uint) (core.Warehouse, error)
	List(ctx context.Context, limit, offset int) ([]core.Warehouse, error)
	Create(ctx context.Context, warehouse core.Warehouse) (core.Warehouse, error)
	Update(ctx context.Context, id uint, warehouse core.Warehouse) (core.Warehouse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repository Repository
}

// NewService creates a new warehouse service
func NewService(repository Repository) Service {
	return &service{repository}
}

func (s *service) Get(ctx context.Context, id uint) (core.Warehouse, error) {
	ctx, span := tracer.Start(ctx, "Warehouse.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]core.Warehouse, error) {
	ctx, span := tracer.Start(ctx, "Warehouse.Service.List")
	defer span.End()

	return s.repository.GetList(ctx, limit, offset)
}

func (s *service) Create(ctx context.Context, warehouse core.Warehouse) (core.Warehouse, error) {
	ctx, span := tracer.Start(ctx, "Warehouse.Service.Create")
	defer span.End()

	if warehouse.Name == "" {
		return core.Warehouse{}, core.NewErrorInvalidArgument("name is required")
	}

	created, err := s.repository.Create(ctx, warehouse)
	if err != nil {
		span.RecordError(err)
		return core.Warehouse{}, errors.Wrap(err, "failed to create warehouse")
	}

	return created, nil
}

func (s *service) Update(ctx context.Context, id uint, warehouse core.Warehouse) (core.Warehouse, error) {
	ctx, span := tracer.Start(ctx, "Warehouse.Service.Update")
	defer span.End()

	warehouse.ID = id
	return s.repository.Update(ctx, warehouse)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Warehouse.Service.Delete")
	defer span.End()

	return s.repository.Delete(ctx, id)
}
