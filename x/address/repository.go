package address

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookden/bookden/core"
)

type Repository interface {
	Get(ctx context.Context, id uint) (core.Address, error)
	GetOrCreate(ctx context.Context, address core.Address) (core.Address, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Get(ctx context.Context, id uint) (core.Address, error) {
	ctx, span := tracer.Start(ctx, "Address.Repository.Get")
	defer span.End()

	var address core.Address
	err := r.db.WithContext(ctx).First(&address, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Address{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Address{}, err
	}

	return address, nil
}

// GetOrCreate returns the row matching all four fields, creating it
// when absent.
func (r *repository) GetOrCreate(ctx context.Context, address core.Address) (core.Address, error) {
	ctx, span := tracer.Start(ctx, "Address.Repository.GetOrCreate")
	defer span.End()

	err := r.db.WithContext(ctx).Where(core.Address{
		Country:  address.Country,
		City:     address.City,
		Street:   address.Street,
		Building: address.Building,
	}).FirstOrCreate(&address).Error
	if err != nil {
		span.RecordError(err)
		return core.Address{}, err
	}

	return address, nil
}
