package shop

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookden/bookden/core"
)

type Repository interface {
	Get(ctx context.Context, id uint) (core.Shop, error)
	GetList(ctx context.Context, limit, offset int) ([]core.Shop, error)
	Create(ctx context.Context, shop core.Shop) (core.Shop, error)
	Update(ctx context.Context, shop core.Shop) (core.Shop, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Get(ctx context.Context, id uint) (core.Shop, error) {
	ctx, span := tracer.Start(ctx, "Shop.Repository.Get")
	defer span.End()

	var shop core.Shop
	err := r.db.WithContext(ctx).Preload("Address").First(&shop, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Shop{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Shop{}, err
	}

	return shop, nil
}

func (r *repository) GetList(ctx context.Context, limit, offset int) ([]core.Shop, error) {
	ctx, span := tracer.Start(ctx, "Shop.Repository.GetList")
	defer span.End()

	var shops []core.Shop
	err := r.db.WithContext(ctx).Preload("Address").Limit(limit).Offset(offset).Order("id").Find(&shops).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return shops, nil
}

func (r *repository) Create(ctx context.Context, shop core.Shop) (core.Shop, error) {
	ctx, span := tracer.Start(ctx, "Shop.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&shop).Error
	if err != nil {
		span.RecordError(err)
		return core.Shop{}, err
	}

	return shop, nil
}

func (r *repository) Update(ctx context.Context, shop core.Shop) (core.Shop, error) {
	ctx, span := tracer.Start(ctx, "Shop.Repository.Update")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.Shop{}).Where("id = ?", shop.ID).Updates(
		map[string]any{"name": shop.Name, "address_id": shop.AddressID},
	)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Shop{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.Shop{}, core.NewErrorNotFound()
	}

	return r.Get(ctx, shop.ID)
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Shop.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Delete(&core.Shop{}, id)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	return nil
}
