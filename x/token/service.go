package token

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/otel"

	"github.com/bookden/bookden/core"
	"github.com/bookden/bookden/util"
)

var tracer = otel.Tracer("token")

type service struct {
	config util.Config
}

// NewService creates a new token service
func NewService(config util.Config) core.TokenService {
	return &service{config}
}

func (s *service) issue(id uint, actor, login, email string) (string, error) {
	now := time.Now()
	lifetime := time.Duration(s.config.Token.LifetimeMinutes) * time.Minute

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Token.Issuer,
			Audience:  jwt.ClaimStrings{s.config.Token.Audience},
			Subject:   strconv.FormatUint(uint64(id), 10),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
		Actor: actor,
		Login: login,
		Email: email,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Token.Secret))
}

// IssueEmployee creates a signed token for an employee
func (s *service) IssueEmployee(ctx context.Context, employee core.Employee) (string, error) {
	_, span := tracer.Start(ctx, "Token.Service.IssueEmployee")
	defer span.End()

	signed, err := s.issue(employee.ID, ActorEmployee, employee.Login, "")
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	return signed, nil
}

// IssueCustomer creates a signed token for a customer
func (s *service) IssueCustomer(ctx context.Context, customer core.Customer) (string, error) {
	_, span := tracer.Start(ctx, "Token.Service.IssueCustomer")
	defer span.End()

	signed, err := s.issue(customer.ID, ActorCustomer, "", customer.Email)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	return signed, nil
}

// Decode validates a token and returns the principal it names.
// Any failure is an authentication error: the same token will never
// decode successfully later.
func (s *service) Decode(ctx context.Context, tokenString string) (core.Principal, error) {
	_, span := tracer.Start(ctx, "Token.Service.Decode")
	defer span.End()

	var claims Claims
	_, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(t *jwt.Token) (any, error) {
			return []byte(s.config.Token.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.config.Token.Issuer),
		jwt.WithAudience(s.config.Token.Audience),
	)
	if err != nil {
		span.RecordError(err)
		return core.Principal{}, core.NewErrorAuthentication(err.Error())
	}

	id64, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		span.RecordError(err)
		return core.Principal{}, core.NewErrorAuthentication("malformed subject claim")
	}

	switch claims.Actor {
	case ActorEmployee:
		if claims.Login == "" {
			return core.Principal{}, core.NewErrorAuthentication("missing login claim")
		}
		return core.EmployeePrincipal(uint(id64), claims.Login), nil
	case ActorCustomer:
		if claims.Email == "" {
			return core.Principal{}, core.NewErrorAuthentication("missing email claim")
		}
		return core.CustomerPrincipal(uint(id64), claims.Email), nil
	default:
		return core.Principal{}, core.NewErrorAuthentication("unknown actor claim")
	}
}
