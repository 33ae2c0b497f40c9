package employee

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/bookden/bookden/core"
)

var tracer = otel.Tracer("employee")

type Service interface {
	Get(ctx context.Context, id uint) (core.Employee, error)
	GetByLogin(ctx context.Context, login string) (core.Employee, error)
	Create(ctx context.Context, employee core.Employee) (core.Employee, error)
	Update(ctx context.Context, id uint, employee core.Employee) (core.Employee, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repository Repository
}

// NewService creates a new employee service
func NewService(repository Repository) Service {
	return &service{repository}
}

func (s *service) Get(ctx context.Context, id uint) (core.Employee, error) {
	ctx, span := tracer.Start(ctx, "Employee.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

func (s *service) GetByLogin(ctx context.Context, login string) (core.Employee, error) {
	ctx, span := tracer.Start(ctx, "Employee.Service.GetByLogin")
	defer span.End()

	return s.repository.GetByLogin(ctx, login)
}

func (s *service) Create(ctx context.Context, employee core.Employee) (core.Employee, error) {
	ctx, span := tracer.Start(ctx, "Employee.Service.Create")
	defer span.End()

	if employee.Login == "" {
		return core.Employee{}, core.NewErrorInvalidArgument("login is required")
	}
	if employee.JobTitle == "" {
		return core.Employee{}, core.NewErrorInvalidArgument("job title is required")
	}
	if employee.ShopID != nil && employee.WarehouseID != nil {
		return core.Employee{}, core.NewErrorInvalidArgument("employee cannot be assigned to both a shop and a warehouse")
	}

	created, err := s.repository.Create(ctx, employee)
	if err != nil {
		span.RecordError(err)
		if _, ok := err.(core.ErrorAlreadyExists); ok {
			return core.Employee{}, err
		}
		return core.Employee{}, errors.Wrap(err, "failed to create employee")
	}

	return created, nil
}

func (s *service) Update(ctx context.Context, id uint, employee core.Employee) (core.Employee, error) {
	ctx, span := tracer.Start(ctx, "Employee.Service.Update")
	defer span.End()

	if employee.ShopID != nil && employee.WarehouseID != nil {
		return core.Employee{}, core.NewErrorInvalidArgument("employee cannot be assigned to both a shop and a warehouse")
	}

	employee.ID = id
	return s.repository.Update(ctx, employee)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Employee.Service.Delete")
	defer span.End()

	return s.repository.Delete(ctx, id)
}
