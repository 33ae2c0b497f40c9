package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bookden/bookden/core"
	"github.com/bookden/bookden/util"
	"github.com/bookden/bookden/x/customer"
	"github.com/bookden/bookden/x/employee"
	"github.com/bookden/bookden/x/token"
)

var testConfig = util.Config{
	Token: util.Token{
		Issuer:          "bookden-test",
		Audience:        "bookden-api",
		Secret:          "test-secret-do-not-use",
		LifetimeMinutes: 60,
	},
}

type fakeDenylist struct {
	denied map[string]time.Duration
}

func (f *fakeDenylist) DenyToken(ctx context.Context, token string, ttl time.Duration) error {
	if f.denied == nil {
		f.denied = map[string]time.Duration{}
	}
	f.denied[token] = ttl
	return nil
}

func (f *fakeDenylist) IsTokenDenied(ctx context.Context, token string) (bool, error) {
	_, ok := f.denied[token]
	return ok, nil
}

type fakeEmployees struct {
	employee.Service
	byLogin map[string]core.Employee
}

func (f *fakeEmployees) GetByLogin(ctx context.Context, login string) (core.Employee, error) {
	found, ok := f.byLogin[login]
	if !ok {
		return core.Employee{}, core.NewErrorNotFound()
	}
	return found, nil
}

type fakeCustomers struct {
	customer.Service
	byEmail map[string]core.Customer
}

func (f *fakeCustomers) GetByEmail(ctx context.Context, email string) (core.Customer, error) {
	found, ok := f.byEmail[email]
	if !ok {
		return core.Customer{}, core.NewErrorNotFound()
	}
	return found, nil
}

func (f *fakeCustomers) Create(ctx context.Context, profile core.Customer) (core.Customer, error) {
	profile.ID = 42
	return profile, nil
}

func newTestService(denylist *fakeDenylist) (Service, core.TokenService) {
	tokenService := token.NewService(testConfig)
	employees := &fakeEmployees{byLogin: map[string]core.Employee{
		"clerk": {ID: 5, Login: "clerk", JobTitle: "Employee"},
	}}
	customers := &fakeCustomers{byEmail: map[string]core.Customer{
		"buyer@example.com": {ID: 9, Email: "buyer@example.com"},
	}}
	return NewService(denylist, tokenService, employees, customers, testConfig), tokenService
}

func TestLoginEmployeeIssuesDecodableToken(t *testing.T) {
	ctx := context.Background()
	service, tokenService := newTestService(&fakeDenylist{})

	issued, err := service.LoginEmployee(ctx, "clerk")
	assert.NoError(t, err)

	principal, err := tokenService.Decode(ctx, issued)
	assert.NoError(t, err)
	assert.Equal(t, core.PrincipalEmployee, principal.Kind)
	assert.Equal(t, uint(5), principal.ID)
	assert.Equal(t, "clerk", principal.Login)
}

func TestLoginUnknownPrincipalFails(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(&fakeDenylist{})

	_, err := service.LoginEmployee(ctx, "nobody")
	assert.IsType(t, core.ErrorAuthentication{}, err)

	_, err = service.LoginCustomer(ctx, "nobody@example.com")
	assert.IsType(t, core.ErrorAuthentication{}, err)
}

func TestRegisterCustomerLogsIn(t *testing.T) {
	ctx := context.Background()
	service, tokenService := newTestService(&fakeDenylist{})

	created, issued, err := service.RegisterCustomer(ctx, core.Customer{Email: "new@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, uint(42), created.ID)

	principal, err := tokenService.Decode(ctx, issued)
	assert.NoError(t, err)
	assert.Equal(t, core.PrincipalCustomer, principal.Kind)
	assert.Equal(t, uint(42), principal.ID)
}

func TestLogoutDeniesTokenForItsLifetime(t *testing.T) {
	ctx := context.Background()
	denylist := &fakeDenylist{}
	service, _ := newTestService(denylist)

	issued, err := service.LoginCustomer(ctx, "buyer@example.com")
	assert.NoError(t, err)

	assert.NoError(t, service.Logout(ctx, issued))

	denied, err := denylist.IsTokenDenied(ctx, issued)
	assert.NoError(t, err)
	assert.True(t, denied)
	assert.Equal(t, 60*time.Minute, denylist.denied[issued])
}

func TestLogoutRejectsGarbageToken(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(&fakeDenylist{})

	err := service.Logout(ctx, "not-a-token")
	assert.IsType(t, core.ErrorAuthentication{}, err)

	err = service.Logout(ctx, "")
	assert.IsType(t, core.ErrorAuthentication{}, err)
}
