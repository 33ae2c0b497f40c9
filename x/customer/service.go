package customer

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/bookden/bookden/core"
)

var tracer = otel.Tracer("customer")

type Service interface {
	Get(ctx context.Context, id uint) (core.Customer, error)
	GetByEmail(ctx context.Context, email string) (core.Customer, error)
	Create(ctx context.Context, customer core.Customer) (core.Customer, error)
	Update(ctx context.Context, id uint, customer core.Customer) (core.Customer, error)
}

type service struct {
	repository Repository
}

// NewService creates a new customer service
func NewService(repository Repository) Service {
	return &service{repository}
}

func (s *service) Get(ctx context.Context, id uint) (core.Customer, error) {
	ctx, span := tracer.Start(ctx, "Customer.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

func (s *service) GetByEmail(ctx context.Context, email string) (core.Customer, error) {
	ctx, span := tracer.Start(ctx, "Customer.Service.GetByEmail")
	defer span.End()

	return s.repository.GetByEmail(ctx, email)
}

func (s *service) Create(ctx context.Context, customer core.Customer) (core.Customer, error) {
	ctx, span := tracer.Start(ctx, "Customer.Service.Create")
	defer span.End()

	customer.Email = strings.ToLower(strings.TrimSpace(customer.Email))
	if customer.Email == "" || !strings.Contains(customer.Email, "@") {
		return core.Customer{}, core.NewErrorInvalidArgument("a valid email is required")
	}

	created, err := s.repository.Create(ctx, customer)
	if err != nil {
		span.RecordError(err)
		if _, ok := err.(core.ErrorAlreadyExists); ok {
			return core.Customer{}, err
		}
		return core.Customer{}, errors.Wrap(err, "failed to create customer")
	}

	return created, nil
}

func (s *service) Update(ctx context.Context, id uint, customer core.Customer) (core.Customer, error) {
	ctx, span := tracer.Start(ctx, "Customer.Service.Update")
	defer span.End()

	customer.ID = id
	return s.repository.Update(ctx, customer)
}
