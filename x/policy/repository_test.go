package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookden/bookden/core"
	"github.com/bookden/bookden/internal/testutil"
)

func TestRepository(t *testing.T) {

	var ctx = context.Background()

	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	repo := NewRepository(db)

	address := core.Address{Country: "NL", City: "Utrecht", Street: "Oudegracht", Building: "15"}
	assert.NoError(t, db.Create(&address).Error)

	shop := core.Shop{Name: "Bookden Utrecht", AddressID: address.ID}
	assert.NoError(t, db.Create(&shop).Error)

	depot := core.Warehouse{Name: "Depot West", AddressID: address.ID}
	assert.NoError(t, db.Create(&depot).Error)

	clerk := core.Employee{Login: "clerk", JobTitle: "Employee", ShopID: &shop.ID}
	assert.NoError(t, db.Create(&clerk).Error)

	picker := core.Employee{Login: "picker", JobTitle: "Employee", WarehouseID: &depot.ID}
	assert.NoError(t, db.Create(&picker).Error)

	director := core.Employee{Login: "boss", JobTitle: "Director"}
	assert.NoError(t, db.Create(&director).Error)

	buyer := core.Customer{Email: "buyer@example.com"}
	assert.NoError(t, db.Create(&buyer).Error)

	placed := core.Order{CustomerID: buyer.ID, ShopID: shop.ID, Status: core.OrderStatusPlaced, Reference: "ref00000000000000001"}
	assert.NoError(t, db.Create(&placed).Error)

	found, err := repo.GetEmployee(ctx, clerk.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, "clerk", found.Login)
		assert.Equal(t, core.RoleEmployee, found.Role())
	}

	_, err = repo.GetEmployee(ctx, 99999)
	assert.IsType(t, core.ErrorNotFound{}, err)

	foundCustomer, err := repo.GetCustomer(ctx, buyer.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, "buyer@example.com", foundCustomer.Email)
	}

	shopID, err := repo.GetShopOfEmployee(ctx, clerk.ID)
	if assert.NoError(t, err) && assert.NotNil(t, shopID) {
		assert.Equal(t, shop.ID, *shopID)
	}

	shopID, err = repo.GetShopOfEmployee(ctx, director.ID)
	if assert.NoError(t, err) {
		assert.Nil(t, shopID)
	}

	warehouseID, err := repo.GetWarehouseOfEmployee(ctx, picker.ID)
	if assert.NoError(t, err) && assert.NotNil(t, warehouseID) {
		assert.Equal(t, depot.ID, *warehouseID)
	}

	ownership, err := repo.GetOrderOwnership(ctx, placed.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, buyer.ID, ownership.CustomerID)
		assert.Equal(t, shop.ID, ownership.ShopID)
	}

	_, err = repo.GetOrderOwnership(ctx, 99999)
	assert.IsType(t, core.ErrorNotFound{}, err)
}
