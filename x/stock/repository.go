package stock

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookden/bookden/core"
)

type Repository interface {
	GetList(ctx context.Context, limit, offset int) ([]core.ProductCount, error)
	GetListAt(ctx context.Context, location core.EntityKind, locationID uint, limit, offset int) ([]core.ProductCount, error)
	Create(ctx context.Context, count core.ProductCount) (core.ProductCount, error)
	SetCount(ctx context.Context, location core.EntityKind, locationID, productID uint, count int) (core.ProductCount, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func locationColumn(location core.EntityKind) string {
	if location == core.KindWarehouse {
		return "warehouse_id"
	}
	return "shop_id"
}

func (r *repository) GetList(ctx context.Context, limit, offset int) ([]core.ProductCount, error) {
	ctx, span := tracer.Start(ctx, "Stock.Repository.GetList")
	defer span.End()

	var counts []core.ProductCount
	err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Order("id").Find(&counts).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return counts, nil
}

func (r *repository) GetListAt(ctx context.Context, location core.EntityKind, locationID uint, limit, offset int) ([]core.ProductCount, error) {
	ctx, span := tracer.Start(ctx, "Stock.Repository.GetListAt")
	defer span.End()

	var counts []core.ProductCount
	err := r.db.WithContext(ctx).
		Where(locationColumn(location)+" = ?", locationID).
		Limit(limit).Offset(offset).Order("product_id").
		Find(&counts).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return counts, nil
}

func (r *repository) Create(ctx context.Context, count core.ProductCount) (core.ProductCount, error) {
	ctx, span := tracer.Start(ctx, "Stock.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&count).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.ProductCount{}, core.NewErrorAlreadyExists()
		}
		span.RecordError(err)
		return core.ProductCount{}, err
	}

	return count, nil
}

func (r *repository) SetCount(ctx context.Context, location core.EntityKind, locationID, productID uint, count int) (core.ProductCount, error) {
	ctx, span := tracer.Start(ctx, "Stock.Repository.SetCount")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.ProductCount{}).
		Where(locationColumn(location)+" = ? AND product_id = ?", locationID, productID).
		Update("count", count)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.ProductCount{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.ProductCount{}, core.NewErrorNotFound()
	}

	var updated core.ProductCount
	err := r.db.WithContext(ctx).
		Where(locationColumn(location)+" = ? AND product_id = ?", locationID, productID).
		First(&updated).Error
	if err != nil {
		span.RecordError(err)
		return core.ProductCount{}, err
	}

	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Stock.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Delete(&core.ProductCount{}, id)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	return nil
}
