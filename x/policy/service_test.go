package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/bookden/bookden/core"
	"github.com/bookden/bookden/util"
	"github.com/bookden/bookden/x/token"
)

var testConfig = util.Config{
	Token: util.Token{
		Issuer:          "bookden-test",
		Audience:        "bookden-api",
		Secret:          "b31c5bb4544e7a7b1b83fa6531253b32",
		LifetimeMinutes: 30,
	},
}

func newTestService(t *testing.T) (*service, *MockRepository) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	return &service{repository: repo, token: token.NewService(testConfig)}, repo
}

func employeeToken(t *testing.T, id uint, login string) string {
	t.Helper()
	signed, err := token.NewService(testConfig).IssueEmployee(context.Background(), core.Employee{ID: id, Login: login})
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func customerToken(t *testing.T, id uint, email string) string {
	t.Helper()
	signed, err := token.NewService(testConfig).IssueCustomer(context.Background(), core.Customer{ID: id, Email: email})
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func expectEmployee(repo *MockRepository, id uint, title string) {
	repo.EXPECT().GetEmployee(gomock.Any(), id).Return(core.Employee{ID: id, Login: "staff", JobTitle: title}, nil)
}

func uintPtr(v uint) *uint { return &v }

// Director updates a warehouse: allowed by role alone, the membership
// lookups must never fire.
func TestDirectorUpdatesWarehouseWithoutLookup(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestService(t)
	expectEmployee(repo, 1, "Director")

	desc := core.NewOperationDescriptor(core.OpUpdate, core.KindWarehouse).WithTargetID(core.KindWarehouse, 7)
	err := s.CheckRule(ctx, employeeToken(t, 1, "d.sato"), desc)
	assert.NoError(t, err)
}

func TestAnyEmployeeReadsWarehouses(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestService(t)
	expectEmployee(repo, 2, "Clerk") // unknown title still matches the unconditional row

	desc := core.NewOperationDescriptor(core.OpGet, core.KindWarehouse)
	err := s.CheckRule(ctx, employeeToken(t, 2, "k.mori"), desc)
	assert.NoError(t, err)
}

func TestCatalogCuration(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		title   string
		allowed bool
	}{
		{"Director", true},
		{"Manager", true},
		{"Employee", false},
		{"Intern", false},
	} {
		s, repo := newTestService(t)
		expectEmployee(repo, 3, tc.title)

		desc := core.NewOperationDescriptor(core.OpAdd, core.KindBook).WithTargetPayload(core.KindBook, core.Book{ISBN: "9784101010014"})
		err := s.CheckRule(ctx, employeeToken(t, 3, "a.ito"), desc)
		if tc.allowed {
			assert.NoError(t, err, tc.title)
		} else {
			assert.IsType(t, core.ErrorPermissionDenied{}, err, tc.title)
		}
	}
}

func TestDirectorAdministration(t *testing.T) {
	ctx := context.Background()

	descs := []core.OperationDescriptor{
		core.NewOperationDescriptor(core.OpGetOrAdd, core.KindAddress).WithTargetPayload(core.KindAddress, core.Address{City: "Kyoto"}),
		core.NewOperationDescriptor(core.OpAdd, core.KindShop).WithTargetPayload(core.KindShop, core.Shop{Name: "North"}),
		core.NewOperationDescriptor(core.OpDelete, core.KindWarehouse).WithTargetID(core.KindWarehouse, 2),
		core.NewOperationDescriptor(core.OpUpdate, core.KindEmployee).WithTargetID(core.KindEmployee, 8),
		core.NewOperationDescriptor(core.OpGet, core.KindOrder),
		core.NewOperationDescriptor(core.OpGet, core.KindCustomer).WithTargetID(core.KindCustomer, 31),
	}

	for _, desc := range descs {
		s, repo := newTestService(t)
		expectEmployee(repo, 1, "Director")
		assert.NoError(t, s.CheckRule(ctx, employeeToken(t, 1, "d.sato"), desc), desc.String())

		s, repo = newTestService(t)
		expectEmployee(repo, 4, "Manager")
		err := s.CheckRule(ctx, employeeToken(t, 4, "m.abe"), desc)
		assert.IsType(t, core.ErrorPermissionDenied{}, err, desc.String())
	}
}

func TestDirectorManagesStockWithoutLookup(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestService(t)
	expectEmployee(repo, 1, "Director")

	desc := core.NewOperationDescriptor(core.OpGet, core.KindProductCount).WithTargetID(core.KindShop, 3)
	assert.NoError(t, s.CheckRule(ctx, employeeToken(t, 1, "d.sato"), desc))
}

func TestStaffHandleStockWhereTheyWork(t *testing.T) {
	ctx := context.Background()

	// works at shop 3, stock scoped to shop 3
	s, repo := newTestService(t)
	expectEmployee(repo, 5, "Employee")
	repo.EXPECT().GetShopOfEmployee(gomock.Any(), uint(5)).Return(uintPtr(3), nil).Times(1)
	desc := core.NewOperationDescriptor(core.OpUpdate, core.KindProductCount).WithTargetID(core.KindShop, 3)
	assert.NoError(t, s.CheckRule(ctx, employeeToken(t, 5, "e.oda"), desc))

	// works at shop 3, stock scoped to shop 4
	s, repo = newTestService(t)
	expectEmployee(repo, 5, "Employee")
	repo.EXPECT().GetShopOfEmployee(gomock.Any(), uint(5)).Return(uintPtr(3), nil).Times(1)
	desc = core.NewOperationDescriptor(core.OpUpdate, core.KindProductCount).WithTargetID(core.KindShop, 4)
	err := s.CheckRule(ctx, employeeToken(t, 5, "e.oda"), desc)
	assert.IsType(t, core.ErrorPermissionDenied{}, err)

	// warehouse scope goes through the warehouse lookup
	s, repo = newTestService(t)
	expectEmployee(repo, 6, "Manager")
	repo.EXPECT().GetWarehouseOfEmployee(gomock.Any(), uint(6)).Return(uintPtr(9), nil).Times(1)
	desc = core.NewOperationDescriptor(core.OpGet, core.KindProductCount).WithTargetID(core.KindWarehouse, 9)
	assert.NoError(t, s.CheckRule(ctx, employeeToken(t, 6, "w.kato"), desc))

	// assigned nowhere
	s, repo = newTestService(t)
	expectEmployee(repo, 7, "Employee")
	repo.EXPECT().GetShopOfEmployee(gomock.Any(), uint(7)).Return(nil, nil).Times(1)
	desc = core.NewOperationDescriptor(core.OpGet, core.KindProductCount).WithTargetID(core.KindShop, 3)
	err = s.CheckRule(ctx, employeeToken(t, 7, "n.endo"), desc)
	assert.IsType(t, core.ErrorPermissionDenied{}, err)
}

// The failing cheap guard must keep the data lookup from firing:
// Delete is not in the staff stock row, so no membership query runs.
func TestStockShortCircuit(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestService(t)
	expectEmployee(repo, 5, "Employee")

	desc := core.NewOperationDescriptor(core.OpDelete, core.KindProductCount).WithTargetID(core.KindShop, 3)
	err := s.CheckRule(ctx, employeeToken(t, 5, "e.oda"), desc)
	assert.IsType(t, core.ErrorPermissionDenied{}, err)
}

func TestShopStaffReadShopOrders(t *testing.T) {
	ctx := context.Background()

	s, repo := newTestService(t)
	expectEmployee(repo, 5, "Employee")
	repo.EXPECT().GetShopOfEmployee(gomock.Any(), uint(5)).Return(uintPtr(3), nil).Times(1)
	desc := core.NewOperationDescriptor(core.OpGet, core.KindOrder).WithTargetID(core.KindShop, 3)
	assert.NoError(t, s.CheckRule(ctx, employeeToken(t, 5, "e.oda"), desc))

	s, repo = newTestService(t)
	expectEmployee(repo, 5, "Employee")
	repo.EXPECT().GetShopOfEmployee(gomock.Any(), uint(5)).Return(uintPtr(3), nil).Times(1)
	desc = core.NewOperationDescriptor(core.OpGet, core.KindOrder).WithTargetID(core.KindShop, 4)
	err := s.CheckRule(ctx, employeeToken(t, 5, "e.oda"), desc)
	assert.IsType(t, core.ErrorPermissionDenied{}, err)
}

func TestStaffUpdateOrdersOfTheirShop(t *testing.T) {
	ctx := context.Background()

	// manager of the owning shop
	s, repo := newTestService(t)
	expectEmployee(repo, 6, "Manager")
	repo.EXPECT().GetOrderOwnership(gomock.Any(), uint(55)).Return(OrderOwnership{CustomerID: 10, ShopID: 9}, nil).Times(1)
	repo.EXPECT().GetShopOfEmployee(gomock.Any(), uint(6)).Return(uintPtr(9), nil).Times(1)
	desc := core.NewOperationDescriptor(core.OpUpdate, core.KindOrder).WithTargetID(core.KindOrder, 55)
	assert.NoError(t, s.CheckRule(ctx, employeeToken(t, 6, "m.abe"), desc))

	// staff of a different shop
	s, repo = newTestService(t)
	expectEmployee(repo, 6, "Manager")
	repo.EXPECT().GetOrderOwnership(gomock.Any(), uint(55)).Return(OrderOwnership{CustomerID: 10, ShopID: 9}, nil).Times(1)
	repo.EXPECT().GetShopOfEmployee(gomock.Any(), uint(6)).Return(uintPtr(8), nil).Times(1)
	err := s.CheckRule(ctx, employeeToken(t, 6, "m.abe"), desc)
	assert.IsType(t, core.ErrorPermissionDenied{}, err)

	// director is not in this row and must not trigger any lookup
	s, repo = newTestService(t)
	expectEmployee(repo, 1, "Director")
	err = s.CheckRule(ctx, employeeToken(t, 1, "d.sato"), desc)
	assert.IsType(t, core.ErrorPermissionDenied{}, err)

	// missing order surfaces as not found, not as denial
	s, repo = newTestService(t)
	expectEmployee(repo, 6, "Manager")
	repo.EXPECT().GetOrderOwnership(gomock.Any(), uint(55)).Return(OrderOwnership{}, core.NewErrorNotFound()).Times(1)
	err = s.CheckRule(ctx, employeeToken(t, 6, "m.abe"), desc)
	assert.IsType(t, core.ErrorNotFound{}, err)
}

func TestCustomerPlacesOwnOrder(t *testing.T) {
	ctx := context.Background()

	s, repo := newTestService(t)
	repo.EXPECT().GetCustomer(gomock.Any(), uint(10)).Return(core.Customer{ID: 10, Email: "a@example.com"}, nil).Times(2)

	own := core.NewOperationDescriptor(core.OpAdd, core.KindOrder).WithTargetPayload(core.KindOrder, core.Order{CustomerID: 10, ShopID: 3})
	assert.NoError(t, s.CheckRule(ctx, customerToken(t, 10, "a@example.com"), own))

	foreign := core.NewOperationDescriptor(core.OpAdd, core.KindOrder).WithTargetPayload(core.KindOrder, core.Order{CustomerID: 11, ShopID: 3})
	err := s.CheckRule(ctx, customerToken(t, 10, "a@example.com"), foreign)
	assert.IsType(t, core.ErrorPermissionDenied{}, err)
}

func TestCustomerReadsOwnOrder(t *testing.T) {
	ctx := context.Background()
	desc := core.NewOperationDescriptor(core.OpGet, core.KindOrder).WithTargetID(core.KindOrder, 55)

	s, repo := newTestService(t)
	repo.EXPECT().GetCustomer(gomock.Any(), uint(10)).Return(core.Customer{ID: 10}, nil)
	repo.EXPECT().GetOrderOwnership(gomock.Any(), uint(55)).Return(OrderOwnership{CustomerID: 10, ShopID: 3}, nil).Times(1)
	assert.NoError(t, s.CheckRule(ctx, customerToken(t, 10, "a@example.com"), desc))

	s, repo = newTestService(t)
	repo.EXPECT().GetCustomer(gomock.Any(), uint(10)).Return(core.Customer{ID: 10}, nil)
	repo.EXPECT().GetOrderOwnership(gomock.Any(), uint(55)).Return(OrderOwnership{CustomerID: 11, ShopID: 3}, nil).Times(1)
	err := s.CheckRule(ctx, customerToken(t, 10, "a@example.com"), desc)
	assert.IsType(t, core.ErrorPermissionDenied{}, err)
}

func TestCustomerProfileAccess(t *testing.T) {
	ctx := context.Background()

	s, repo := newTestService(t)
	repo.EXPECT().GetCustomer(gomock.Any(), uint(10)).Return(core.Customer{ID: 10}, nil).Times(4)

	ownGet := core.NewOperationDescriptor(core.OpGet, core.KindCustomer).WithTargetID(core.KindCustomer, 10)
	assert.NoError(t, s.CheckRule(ctx, customerToken(t, 10, "a@example.com"), ownGet))

	otherGet := core.NewOperationDescriptor(core.OpGet, core.KindCustomer).WithTargetID(core.KindCustomer, 11)
	assert.IsType(t, core.ErrorPermissionDenied{}, s.CheckRule(ctx, customerToken(t, 10, "a@example.com"), otherGet))

	ownUpdate := core.NewOperationDescriptor(core.OpUpdate, core.KindCustomer).WithTargetID(core.KindCustomer, 10)
	assert.NoError(t, s.CheckRule(ctx, customerToken(t, 10, "a@example.com"), ownUpdate))

	otherUpdate := core.NewOperationDescriptor(core.OpUpdate, core.KindCustomer).WithTargetID(core.KindCustomer, 11)
	assert.IsType(t, core.ErrorPermissionDenied{}, s.CheckRule(ctx, customerToken(t, 10, "a@example.com"), otherUpdate))
}

func TestCustomerUnmatchedOperationDenied(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestService(t)
	repo.EXPECT().GetCustomer(gomock.Any(), uint(10)).Return(core.Customer{ID: 10}, nil)

	desc := core.NewOperationDescriptor(core.OpGet, core.KindWarehouse)
	err := s.CheckRule(ctx, customerToken(t, 10, "a@example.com"), desc)
	assert.IsType(t, core.ErrorPermissionDenied{}, err)
}

func TestGarbageTokenIsAuthenticationFailure(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	desc := core.NewOperationDescriptor(core.OpGet, core.KindWarehouse)
	err := s.CheckRule(ctx, "garbage.token.value", desc)
	assert.IsType(t, core.ErrorAuthentication{}, err)
}

// A valid token whose employee row has been deleted is an
// authentication failure, never a denial and never an allow.
func TestDeletedPrincipalIsAuthenticationFailure(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestService(t)
	repo.EXPECT().GetEmployee(gomock.Any(), uint(1)).Return(core.Employee{}, core.NewErrorNotFound())

	desc := core.NewOperationDescriptor(core.OpGet, core.KindWarehouse)
	err := s.CheckRule(ctx, employeeToken(t, 1, "d.sato"), desc)
	assert.IsType(t, core.ErrorAuthentication{}, err)
}

// Same decision twice against unchanged data
func TestDecisionIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestService(t)
	repo.EXPECT().GetEmployee(gomock.Any(), uint(1)).Return(core.Employee{ID: 1, JobTitle: "Director"}, nil).Times(2)

	desc := core.NewOperationDescriptor(core.OpUpdate, core.KindWarehouse).WithTargetID(core.KindWarehouse, 7)
	signed := employeeToken(t, 1, "d.sato")
	assert.NoError(t, s.CheckRule(ctx, signed, desc))
	assert.NoError(t, s.CheckRule(ctx, signed, desc))
}

func TestCancelledContextFailsFast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, _ := newTestService(t)
	desc := core.NewOperationDescriptor(core.OpGet, core.KindWarehouse)
	err := s.CheckRule(ctx, employeeToken(t, 1, "d.sato"), desc)
	assert.ErrorIs(t, err, context.Canceled)
}
