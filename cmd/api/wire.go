//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/bookden/bookden/core"
	"github.com/bookden/bookden/util"
	"github.com/bookden/bookden/x/address"
	"github.com/bookden/bookden/x/auth"
	"github.com/bookden/bookden/x/catalog"
	"github.com/bookden/bookden/x/customer"
	"github.com/bookden/bookden/x/employee"
	"github.com/bookden/bookden/x/order"
	"github.com/bookden/bookden/x/policy"
	"github.com/bookden/bookden/x/shop"
	"github.com/bookden/bookden/x/stock"
	"github.com/bookden/bookden/x/token"
	"github.com/bookden/bookden/x/warehouse"
)

var addressServiceProvider = wire.NewSet(address.NewService, address.NewRepository)
var shopServiceProvider = wire.NewSet(shop.NewService, shop.NewRepository)
var warehouseServiceProvider = wire.NewSet(warehouse.NewService, warehouse.NewRepository)
var employeeServiceProvider = wire.NewSet(employee.NewService, employee.NewRepository)
var customerServiceProvider = wire.NewSet(customer.NewService, customer.NewRepository)
var orderServiceProvider = wire.NewSet(order.NewService, order.NewRepository)
var stockServiceProvider = wire.NewSet(stock.NewService, stock.NewRepository)
var catalogServiceProvider = wire.NewSet(catalog.NewService, catalog.NewRepository)

func SetupTokenService(config util.Config) core.TokenService {
	wire.Build(token.NewService)
	return nil
}

func SetupPolicyService(db *gorm.DB, tokenService core.TokenService) core.PolicyService {
	wire.Build(policy.NewService, policy.NewRepository)
	return nil
}

func SetupAuthService(db *gorm.DB, rdb *redis.Client, config util.Config) auth.Service {
	wire.Build(auth.NewService, auth.NewRepository, token.NewService, employeeServiceProvider, customerServiceProvider)
	return nil
}

func SetupAddressService(db *gorm.DB) address.Service {
	wire.Build(addressServiceProvider)
	return nil
}

func SetupShopService(db *gorm.DB) shop.Service {
	wire.Build(shopServiceProvider)
	return nil
}

func SetupWarehouseService(db *gorm.DB) warehouse.Service {
	wire.Build(warehouseServiceProvider)
	return nil
}

func SetupEmployeeService(db *gorm.DB) employee.Service {
	wire.Build(employeeServiceProvider)
	return nil
}

func SetupCustomerService(db *gorm.DB) customer.Service {
	wire.Build(customerServiceProvider)
	return nil
}

func SetupOrderService(db *gorm.DB) order.Service {
	wire.Build(orderServiceProvider)
	return nil
}

func SetupStockService(db *gorm.DB) stock.Service {
	wire.Build(stockServiceProvider)
	return nil
}

func SetupCatalogService(db *gorm.DB, mc *memcache.Client) catalog.Service {
	wire.Build(catalogServiceProvider)
	return nil
}
