//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package policy

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookden/bookden/core"
)

// OrderOwnership is the result of the order point lookup: which
// customer placed the order and which shop fulfils it.
type OrderOwnership struct {
	CustomerID uint
	ShopID     uint
}

// Repository is the data lookup surface the rule checker needs.
// Point queries only; results are never cached so every decision sees
// current data.
type Repository interface {
	GetEmployee(ctx context.Context, id uint) (core.Employee, error)
	GetCustomer(ctx context.Context, id uint) (core.Customer, error)
	GetShopOfEmployee(ctx context.Context, employeeID uint) (*uint, error)
	GetWarehouseOfEmployee(ctx context.Context, employeeID uint) (*uint, error)
	GetOrderOwnership(ctx context.Context, orderID uint) (OrderOwnership, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) GetEmployee(ctx context.Context, id uint) (core.Employee, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.GetEmployee")
	defer span.End()

	var employee core.Employee
	err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Employee{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Employee{}, err
	}

	return employee, nil
}

func (r *repository) GetCustomer(ctx context.Context, id uint) (core.Customer, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.GetCustomer")
	defer span.End()

	var customer core.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Customer{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Customer{}, err
	}

	return customer, nil
}

// GetShopOfEmployee returns nil when the employee works at no shop
func (r *repository) GetShopOfEmployee(ctx context.Context, employeeID uint) (*uint, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.GetShopOfEmployee")
	defer span.End()

	var employee core.Employee
	err := r.db.WithContext(ctx).Select("shop_id").First(&employee, "id = ?", employeeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return nil, err
	}

	return employee.ShopID, nil
}

// GetWarehouseOfEmployee returns nil when the employee works at no warehouse
func (r *repository) GetWarehouseOfEmployee(ctx context.Context, employeeID uint) (*uint, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.GetWarehouseOfEmployee")
	defer span.End()

	var employee core.Employee
	err := r.db.WithContext(ctx).Select("warehouse_id").First(&employee, "id = ?", employeeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return nil, err
	}

	return employee.WarehouseID, nil
}

func (r *repository) GetOrderOwnership(ctx context.Context, orderID uint) (OrderOwnership, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.GetOrderOwnership")
	defer span.End()

	var order core.Order
	err := r.db.WithContext(ctx).Select("customer_id", "shop_id").First(&order, "id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderOwnership{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return OrderOwnership{}, err
	}

	return OrderOwnership{CustomerID: order.CustomerID, ShopID: order.ShopID}, nil
}
