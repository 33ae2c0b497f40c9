package auth

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/bookden/bookden/core"
	"github.com/bookden/bookden/util"
	"github.com/bookden/bookden/x/customer"
	"github.com/bookden/bookden/x/employee"
)

var tracer = otel.Tracer("auth")

// Service is the interface for auth service
type Service interface {
	LoginEmployee(ctx context.Context, login string) (string, error)
	LoginCustomer(ctx context.Context, email string) (string, error)
	RegisterCustomer(ctx context.Context, profile core.Customer) (core.Customer, string, error)
	Logout(ctx context.Context, token string) error
	IdentifyRequester(next echo.HandlerFunc) echo.HandlerFunc
}

type service struct {
	repository Repository
	token      core.TokenService
	employee   employee.Service
	customer   customer.Service
	config     util.Config
}

// NewService creates a new auth service
func NewService(repository Repository, token core.TokenService, employee employee.Service, customer customer.Service, config util.Config) Service {
	return &service{repository, token, employee, customer, config}
}

// LoginEmployee issues a token for an existing staff member
func (s *service) LoginEmployee(ctx context.Context, login string) (string, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.LoginEmployee")
	defer span.End()

	found, err := s.employee.GetByLogin(ctx, login)
	if err != nil {
		if _, ok := err.(core.ErrorNotFound); ok {
			return "", core.NewErrorAuthentication("unknown login")
		}
		span.RecordError(err)
		return "", err
	}

	return s.token.IssueEmployee(ctx, found)
}

// LoginCustomer issues a token for an existing customer
func (s *service) LoginCustomer(ctx context.Context, email string) (string, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.LoginCustomer")
	defer span.End()

	found, err := s.customer.GetByEmail(ctx, email)
	if err != nil {
		if _, ok := err.(core.ErrorNotFound); ok {
			return "", core.NewErrorAuthentication("unknown email")
		}
		span.RecordError(err)
		return "", err
	}

	return s.token.IssueCustomer(ctx, found)
}

// RegisterCustomer creates the profile and logs it in at once
func (s *service) RegisterCustomer(ctx context.Context, profile core.Customer) (core.Customer, string, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.RegisterCustomer")
	defer span.End()

	created, err := s.customer.Create(ctx, profile)
	if err != nil {
		span.RecordError(err)
		return core.Customer{}, "", err
	}

	token, err := s.token.IssueCustomer(ctx, created)
	if err != nil {
		span.RecordError(err)
		return core.Customer{}, "", errors.Wrap(err, "failed to issue token")
	}

	return created, token, nil
}

// Logout denies the token for the rest of its lifetime
func (s *service) Logout(ctx context.Context, token string) error {
	ctx, span := tracer.Start(ctx, "Auth.Service.Logout")
	defer span.End()

	if token == "" {
		return core.NewErrorAuthentication("no token to log out")
	}

	if _, err := s.token.Decode(ctx, token); err != nil {
		return err
	}

	ttl := time.Duration(s.config.Token.LifetimeMinutes) * time.Minute
	return s.repository.DenyToken(ctx, token, ttl)
}
