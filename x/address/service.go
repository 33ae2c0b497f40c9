package address

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/bookden/bookden/core"
)

var tracer = otel.Tracer("address")

type Service interface {
	Get(ctx context.Context, id uint) (core.Address, error)
	GetOrAdd(ctx context.Context, address core.Address) (core.Address, error)
}

type service struct {
	repository Repository
}

// NewService creates a new address service
func NewService(repository Repository) Service {
	return &service{repository}
}

func (s *service) Get(ctx context.Context, id uint) (core.Address, error) {
	ctx, span := tracer.Start(ctx, "Address.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

// GetOrAdd deduplicates addresses. Two submissions with the same
// country, city, street and building resolve to one row.
func (s *service) GetOrAdd(ctx context.Context, address core.Address) (core.Address, error) {
	ctx, span := tracer.Start(ctx, "Address.Service.GetOrAdd")
	defer span.End()

	address.Country = strings.TrimSpace(address.Country)
	address.City = strings.TrimSpace(address.City)
	address.Street = strings.TrimSpace(address.Street)
	address.Building = strings.TrimSpace(address.Building)

	if address.Country == "" || address.City == "" {
		return core.Address{}, core.NewErrorInvalidArgument("country and city are required")
	}

	created, err := s.repository.GetOrCreate(ctx, address)
	if err != nil {
		span.RecordError(err)
		return core.Address{}, errors.Wrap(err, "failed to resolve address")
	}

	return created, nil
}
