package policy

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bookden/bookden/core"
)

var tracer = otel.Tracer("policy")

type service struct {
	repository Repository
	token      core.TokenService
}

// NewService creates a new policy service
func NewService(repository Repository, token core.TokenService) core.PolicyService {
	return &service{repository, token}
}

// CheckRule decides whether the bearer of tokenString may perform the
// described operation. The acting principal is re-fetched from the
// store on every call so a deleted account is locked out immediately,
// token or not.
func (s *service) CheckRule(ctx context.Context, tokenString string, descriptor core.OperationDescriptor) error {
	ctx, span := tracer.Start(ctx, "Policy.Service.CheckRule")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return err
	}

	principal, err := s.token.Decode(ctx, tokenString)
	if err != nil {
		span.RecordError(err)
		return err
	}

	span.SetAttributes(
		attribute.String("principal", principal.String()),
		attribute.String("operation", descriptor.String()),
	)

	switch principal.Kind {
	case core.PrincipalEmployee:
		employee, err := s.repository.GetEmployee(ctx, principal.ID)
		if err != nil {
			if errors.Is(err, core.ErrorNotFound{}) {
				return core.NewErrorAuthentication("employee no longer exists")
			}
			span.RecordError(err)
			return err
		}
		return s.checkEmployee(ctx, employee, descriptor, span)

	case core.PrincipalCustomer:
		customer, err := s.repository.GetCustomer(ctx, principal.ID)
		if err != nil {
			if errors.Is(err, core.ErrorNotFound{}) {
				return core.NewErrorAuthentication("customer no longer exists")
			}
			span.RecordError(err)
			return err
		}
		return s.checkCustomer(ctx, customer, descriptor, span)

	default:
		return core.NewErrorAuthentication("unknown principal kind")
	}
}

func (s *service) checkEmployee(ctx context.Context, employee core.Employee, descriptor core.OperationDescriptor, span trace.Span) error {
	role := employee.Role()

	for _, rule := range employeeRules {
		if !rule.applies(descriptor) {
			continue
		}
		if len(rule.roles) > 0 && !roleIn(role, rule.roles) {
			continue
		}
		if rule.resolve == nil {
			span.AddEvent("allowed by: " + rule.name)
			return nil
		}
		ok, err := rule.resolve(ctx, s, employee, descriptor)
		if err != nil {
			span.RecordError(err)
			return err
		}
		if ok {
			span.AddEvent("allowed by: " + rule.name)
			return nil
		}
	}

	return core.NewErrorPermissionDenied()
}

func (s *service) checkCustomer(ctx context.Context, customer core.Customer, descriptor core.OperationDescriptor, span trace.Span) error {
	for _, rule := range customerRules {
		if !rule.applies(descriptor) {
			continue
		}
		ok, err := rule.resolve(ctx, s, customer, descriptor)
		if err != nil {
			span.RecordError(err)
			return err
		}
		if ok {
			span.AddEvent("allowed by: " + rule.name)
			return nil
		}
	}

	return core.NewErrorPermissionDenied()
}
