package order

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookden/bookden/core"
)

type Repository interface {
	Get(ctx context.Context, id uint) (core.Order, error)
	GetList(ctx context.Context, limit, offset int) ([]core.Order, error)
	GetListByShop(ctx context.Context, shopID uint, limit, offset int) ([]core.Order, error)
	GetProductPrices(ctx context.Context, productIDs []uint) (map[uint]int64, error)
	Create(ctx context.Context, order core.Order) (core.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) (core.Order, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Get(ctx context.Context, id uint) (core.Order, error) {
	ctx, span := tracer.Start(ctx, "Order.Repository.Get")
	defer span.End()

	var order core.Order
	err := r.db.WithContext(ctx).Preload("Lines").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Order{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Order{}, err
	}

	return order, nil
}

func (r *repository) GetList(ctx context.Context, limit, offset int) ([]core.Order, error) {
	ctx, span := tracer.Start(ctx, "Order.Repository.GetList")
	defer span.End()

	var orders []core.Order
	err := r.db.WithContext(ctx).Preload("Lines").Limit(limit).Offset(offset).Order("id desc").Find(&orders).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return orders, nil
}

func (r *repository) GetListByShop(ctx context.Context, shopID uint, limit, offset int) ([]core.Order, error) {
	ctx, span := tracer.Start(ctx, "Order.Repository.GetListByShop")
	defer span.End()

	var orders []core.Order
	err := r.db.WithContext(ctx).Preload("Lines").
		Where("shop_id = ?", shopID).
		Limit(limit).Offset(offset).Order("id desc").
		Find(&orders).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return orders, nil
}

func (r *repository) GetProductPrices(ctx context.Context, productIDs []uint) (map[uint]int64, error) {
	ctx, span := tracer.Start(ctx, "Order.Repository.GetProductPrices")
	defer span.End()

	var products []core.Product
	err := r.db.WithContext(ctx).Select("id", "price_cents").Find(&products, productIDs).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	prices := make(map[uint]int64, len(products))
	for _, p := range products {
		prices[p.ID] = p.PriceCents
	}

	return prices, nil
}

// Create persists the order together with its lines
func (r *repository) Create(ctx context.Context, order core.Order) (core.Order, error) {
	ctx, span := tracer.Start(ctx, "Order.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&order).Error
	if err != nil {
		span.RecordError(err)
		return core.Order{}, err
	}

	return order, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status string) (core.Order, error) {
	ctx, span := tracer.Start(ctx, "Order.Repository.UpdateStatus")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Order{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.Order{}, core.NewErrorNotFound()
	}

	return r.Get(ctx, id)
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Order.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.Order{}).Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	return count, nil
}
