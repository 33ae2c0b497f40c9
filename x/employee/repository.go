package employee

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookden/bookden/core"
)

type Repository interface {
	Get(ctx context.Context, id uint) (core.Employee, error)
	GetByLogin(ctx context.Context, login string) (core.Employee, error)
	Create(ctx context.Context, employee core.Employee) (core.Employee, error)
	Update(ctx context.Context, employee core.Employee) (core.Employee, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Get(ctx context.Context, id uint) (core.Employee, error) {
	ctx, span := tracer.Start(ctx, "Employee.Repository.Get")
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

func (r *repository) GetByLogin(ctx context.Context, login string) (core.Employee, error) {
	ctx, span := tracer.Start(ctx, "Employee.Repository.GetByLogin")
	defer span.End()

	var employee core.Employee
	err := r.db.WithContext(ctx).First(&employee, "login = ?", login).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Employee{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Employee{}, err
	}

	return employee, nil
}

func (r *repository) Create(ctx context.Context, employee core.Employee) (core.Employee, error) {
	ctx, span := tracer.Start(ctx, "Employee.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Employee{}, core.NewErrorAlreadyExists()
		}
		span.RecordError(err)
		return core.Employee{}, err
	}

	return employee, nil
}

func (r *repository) Update(ctx context.Context, employee core.Employee) (core.Employee, error) {
	ctx, span := tracer.Start(ctx, "Employee.Repository.Update")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.Employee{}).Where("id = ?", employee.ID).Updates(
		map[string]any{
			"first_name":   employee.FirstName,
			"last_name":    employee.LastName,
			"job_title":    employee.JobTitle,
			"shop_id":      employee.ShopID,
			"warehouse_id": employee.WarehouseID,
		},
	)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Employee{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.Employee{}, core.NewErrorNotFound()
	}

	return r.Get(ctx, employee.ID)
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Employee.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Delete(&core.Employee{}, id)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	return nil
}
