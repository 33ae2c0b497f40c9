package token

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookden/bookden/core"
	"github.com/bookden/bookden/util"
)

var testConfig = util.Config{
	Token: util.Token{
		Issuer:          "bookden-test",
		Audience:        "bookden-api",
		Secret:          "0cf47ba0c8a83aae44a26b9fa104be45",
		LifetimeMinutes: 30,
	},
}

func TestEmployeeRoundTrip(t *testing.T) {
	var ctx = context.Background()

	s := NewService(testConfig)

	signed, err := s.IssueEmployee(ctx, core.Employee{ID: 42, Login: "h.tanaka"})
	assert.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(signed, ".")))

	principal, err := s.Decode(ctx, signed)
	assert.NoError(t, err)
	assert.Equal(t, core.EmployeePrincipal(42, "h.tanaka"), principal)
}

func TestCustomerRoundTrip(t *testing.T) {
	var ctx = context.Background()

	s := NewService(testConfig)

	signed, err := s.IssueCustomer(ctx, core.Customer{ID: 7, Email: "alice@example.com"})
	assert.NoError(t, err)

	principal, err := s.Decode(ctx, signed)
	assert.NoError(t, err)
	assert.Equal(t, core.CustomerPrincipal(7, "alice@example.com"), principal)
}

func TestDecodeGarbage(t *testing.T) {
	var ctx = context.Background()

	s := NewService(testConfig)

	_, err := s.Decode(ctx, "not-a-token")
	assert.Error(t, err)
	assert.IsType(t, core.ErrorAuthentication{}, err)
}

func TestDecodeTampered(t *testing.T) {
	var ctx = context.Background()

	s := NewService(testConfig)

	signed, err := s.IssueEmployee(ctx, core.Employee{ID: 42, Login: "h.tanaka"})
	assert.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = s.Decode(ctx, tampered)
	assert.Error(t, err)
	assert.IsType(t, core.ErrorAuthentication{}, err)
}

func TestDecodeWrongAudience(t *testing.T) {
	var ctx = context.Background()

	other := testConfig
	other.Token.Audience = "someone-else"

	signed, err := NewService(other).IssueCustomer(ctx, core.Customer{ID: 7, Email: "alice@example.com"})
	assert.NoError(t, err)

	_, err = NewService(testConfig).Decode(ctx, signed)
	assert.Error(t, err)
	assert.IsType(t, core.ErrorAuthentication{}, err)
}
