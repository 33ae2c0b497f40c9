package customer

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookden/bookden/core"
)

type Repository interface {
	Get(ctx context.Context, id uint) (core.Customer, error)
	GetByEmail(ctx context.Context, email string) (core.Customer, error)
	Create(ctx context.Context, customer core.Customer) (core.Customer, error)
	Update(ctx context.Context, customer core.Customer) (core.Customer, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Get(ctx context.Context, id uint) (core.Customer, error) {
	ctx, span := tracer.Start(ctx, "Customer.Repository.Get")
	defer span.End()

	var customer core.Customer
	err := r.db.WithContext(ctx).Preload("Address").First(&customer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Customer{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Customer{}, err
	}

	return customer, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (core.Customer, error) {
	ctx, span := tracer.Start(ctx, "Customer.Repository.GetByEmail")
	defer span.End()

	var customer core.Customer
	err := r.db.WithContext(ctx).First(&customer, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Customer{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Customer{}, err
	}

	return customer, nil
}

func (r *repository) Create(ctx context.Context, customer core.Customer) (core.Customer, error) {
	ctx, span := tracer.Start(ctx, "Customer.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Customer{}, core.NewErrorAlreadyExists()
		}
		span.RecordError(err)
		return core.Customer{}, err
	}

	return customer, nil
}

func (r *repository) Update(ctx context.Context, customer core.Customer) (core.Customer, error) {
	ctx, span := tracer.Start(ctx, "Customer.Repository.Update")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.Customer{}).Where("id = ?", customer.ID).Updates(
		map[string]any{
			"first_name": customer.FirstName,
			"last_name":  customer.LastName,
			"address_id": customer.AddressID,
		},
	)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Customer{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.Customer{}, core.NewErrorNotFound()
	}

	return r.Get(ctx, customer.ID)
}
