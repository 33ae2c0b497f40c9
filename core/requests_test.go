package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestDescriptorsFollowPayloadType(t *testing.T) {
	get := NewGetByIDRequest[Shop](4)
	assert.Equal(t, OpGet, get.Descriptor().Operation())
	assert.Equal(t, KindShop, get.Descriptor().Entity())
	id, ok := get.Descriptor().TargetIDOf(KindShop)
	assert.True(t, ok)
	assert.Equal(t, uint(4), id)

	add := NewAddRequest(Order{CustomerID: 9})
	assert.Equal(t, OpAdd, add.Descriptor().Operation())
	assert.Equal(t, KindOrder, add.Descriptor().Entity())
	target := add.Descriptor().Target()
	assert.Equal(t, TargetPayload, target.Kind)
	payload, ok := target.Payload.(Order)
	assert.True(t, ok)
	assert.Equal(t, uint(9), payload.CustomerID)
}

func TestScopedRequestTargetsScopeEntity(t *testing.T) {
	scoped := NewScopedListRequest[ProductCount](KindWarehouse, 8, 50, 0)
	assert.Equal(t, KindProductCount, scoped.Descriptor().Entity())

	id, ok := scoped.Descriptor().TargetIDOf(KindWarehouse)
	assert.True(t, ok)
	assert.Equal(t, uint(8), id)

	_, ok = scoped.Descriptor().TargetIDOf(KindProductCount)
	assert.False(t, ok)
}

func TestRequestValidation(t *testing.T) {
	assert.Error(t, NewGetByIDRequest[Customer](0).Validate())
	assert.NoError(t, NewGetByIDRequest[Customer](1).Validate())

	assert.Error(t, NewListRequest[Book](-1, 0).Validate())
	assert.NoError(t, NewListRequest[Book](10, 0).Validate())

	assert.Error(t, NewScopedUpdateRequest(KindShop, 0, ProductCount{}).Validate())
}

func TestParseRoleIsExact(t *testing.T) {
	assert.Equal(t, RoleDirector, ParseRole("Director"))
	assert.Equal(t, RoleManager, ParseRole("Manager"))
	assert.Equal(t, RoleEmployee, ParseRole("Employee"))
	assert.Equal(t, RoleUnknown, ParseRole("director"))
	assert.Equal(t, RoleUnknown, ParseRole("Senior Manager"))
	assert.Equal(t, RoleUnknown, ParseRole(""))
}
