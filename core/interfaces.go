//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
)

// TokenService encodes and decodes principal identity tokens
type TokenService interface {
	IssueEmployee(ctx context.Context, employee Employee) (string, error)
	IssueCustomer(ctx context.Context, customer Customer) (string, error)
	Decode(ctx context.Context, token string) (Principal, error)
}

// PolicyService decides whether the bearer of a token may perform the
// described operation. Returns nil on allow; otherwise one of the
// typed errors in this package.
type PolicyService interface {
	CheckRule(ctx context.Context, token string, descriptor OperationDescriptor) error
}
