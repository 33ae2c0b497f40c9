package warehouse

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookden/bookden/core"
)

type Repository interface {
	Get(ctx context.Context, id uint) (core.Warehouse, error)
	GetList(ctx context.Context, limit, offset int) ([]core.Warehouse, error)
	Create(ctx context.Context, warehouse core.Warehouse) (core.Warehouse, error)
	Update(ctx context.Context, warehouse core.Warehouse) (core.Warehouse, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Get(ctx context.Context, id uint) (core.Warehouse, error) {
	ctx, span := tracer.Start(ctx, "Warehouse.Repository.Get")
	defer span.End()

	var warehouse core.Warehouse
	err := r.db.WithContext(ctx).Preload("Address").First(&warehouse, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Warehouse{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Warehouse{}, err
	}

	return warehouse, nil
}

func (r *repository) GetList(ctx context.Context, limit, offset int) ([]core.Warehouse, error) {
	ctx, span := tracer.Start(ctx, "Warehouse.Repository.GetList")
	defer span.End()

	var warehouses []core.Warehouse
	err := r.db.WithContext(ctx).Preload("Address").Limit(limit).Offset(offset).Order("id").Find(&warehouses).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return warehouses, nil
}

func (r *repository) Create(ctx context.Context, warehouse core.Warehouse) (core.Warehouse, error) {
	ctx, span := tracer.Start(ctx, "Warehouse.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&warehouse).Error
	if err != nil {
		span.RecordError(err)
		return core.Warehouse{}, err
	}

	return warehouse, nil
}

func (r *repository) Update(ctx context.Context, warehouse core.Warehouse) (core.Warehouse, error) {
	ctx, span := tracer.Start(ctx, "Warehouse.Repository.Update")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.Warehouse{}).Where("id = ?", warehouse.ID).Updates(
		map[string]any{"name": warehouse.Name, "address_id": warehouse.AddressID},
	)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Warehouse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.Warehouse{}, core.NewErrorNotFound()
	}

	return r.Get(ctx, warehouse.ID)
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Warehouse.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Delete(&core.Warehouse{}, id)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	return nil
}
