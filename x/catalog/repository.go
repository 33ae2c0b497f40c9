package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"

	"github.com/bookden/bookden/core"
)

type Repository interface {
	GetAuthor(ctx context.Context, id uint) (core.Author, error)
	GetAuthorList(ctx context.Context, limit, offset int) ([]core.Author, error)
	CreateAuthor(ctx context.Context, author core.Author) (core.Author, error)
	UpdateAuthor(ctx context.Context, author core.Author) (core.Author, error)
	DeleteAuthor(ctx context.Context, id uint) error

	GetProduct(ctx context.Context, id uint) (core.Product, error)
	GetProductList(ctx context.Context, limit, offset int) ([]core.Product, error)
	CreateProduct(ctx context.Context, product core.Product) (core.Product, error)
	UpdateProduct(ctx context.Context, product core.Product) (core.Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	GetBook(ctx context.Context, id uint) (core.Book, error)
	GetBookList(ctx context.Context, limit, offset int) ([]core.Book, error)
	SearchBooks(ctx context.Context, query string, limit, offset int) ([]core.Book, error)
	CreateBook(ctx context.Context, book core.Book) (core.Book, error)
	UpdateBook(ctx context.Context, book core.Book) (core.Book, error)
	DeleteBook(ctx context.Context, id uint) error

	CountAuthors(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountBooks(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	return &repository{db, mc}
}

func bookCacheKey(id uint) string {
	return fmt.Sprintf("book:%d", id)
}

func (r *repository) GetAuthor(ctx context.Context, id uint) (core.Author, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.GetAuthor")
	defer span.End()

	var author core.Author
	err := r.db.WithContext(ctx).First(&author, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Author{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Author{}, err
	}

	return author, nil
}

func (r *repository) GetAuthorList(ctx context.Context, limit, offset int) ([]core.Author, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.GetAuthorList")
	defer span.End()

	var authors []core.Author
	err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Order("last_name, first_name").Find(&authors).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return authors, nil
}

func (r *repository) CreateAuthor(ctx context.Context, author core.Author) (core.Author, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.CreateAuthor")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&author).Error
	if err != nil {
		span.RecordError(err)
		return core.Author{}, err
	}

	return author, nil
}

func (r *repository) UpdateAuthor(ctx context.Context, author core.Author) (core.Author, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.UpdateAuthor")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.Author{}).Where("id = ?", author.ID).Updates(
		map[string]any{"first_name": author.FirstName, "last_name": author.LastName, "country": author.Country},
	)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Author{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.Author{}, core.NewErrorNotFound()
	}

	return r.GetAuthor(ctx, author.ID)
}

func (r *repository) DeleteAuthor(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.DeleteAuthor")
	defer span.End()

	result := r.db.WithContext(ctx).Delete(&core.Author{}, id)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	return nil
}

func (r *repository) GetProduct(ctx context.Context, id uint) (core.Product, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.GetProduct")
	defer span.End()

	var product core.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Product{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Product{}, err
	}

	return product, nil
}

func (r *repository) GetProductList(ctx context.Context, limit, offset int) ([]core.Product, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.GetProductList")
	defer span.End()

	var products []core.Product
	err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Order("name").Find(&products).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return products, nil
}

func (r *repository) CreateProduct(ctx context.Context, product core.Product) (core.Product, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.CreateProduct")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&product).Error
	if err != nil {
		span.RecordError(err)
		return core.Product{}, err
	}

	return product, nil
}

func (r *repository) UpdateProduct(ctx context.Context, product core.Product) (core.Product, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.UpdateProduct")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.Product{}).Where("id = ?", product.ID).Updates(
		map[string]any{"name": product.Name, "description": product.Description, "price_cents": product.PriceCents},
	)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Product{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.Product{}, core.NewErrorNotFound()
	}

	r.invalidateBookByProduct(ctx, product.ID)

	return r.GetProduct(ctx, product.ID)
}

func (r *repository) DeleteProduct(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.DeleteProduct")
	defer span.End()

	result := r.db.WithContext(ctx).Delete(&core.Product{}, id)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	r.invalidateBookByProduct(ctx, id)

	return nil
}

func (r *repository) GetBook(ctx context.Context, id uint) (core.Book, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.GetBook")
	defer span.End()

	if item, err := r.mc.Get(bookCacheKey(id)); err == nil {
		var cached core.Book
		if json.Unmarshal(item.Value, &cached) == nil {
			return cached, nil
		}
	}

	var book core.Book
	err := r.db.WithContext(ctx).Preload("Product").Preload("Authors").First(&book, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Book{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Book{}, err
	}

	if b, err := json.Marshal(book); err == nil {
		r.mc.Set(&memcache.Item{Key: bookCacheKey(id), Value: b, Expiration: 300})
	}

	return book, nil
}

func (r *repository) GetBookList(ctx context.Context, limit, offset int) ([]core.Book, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.GetBookList")
	defer span.End()

	var books []core.Book
	err := r.db.WithContext(ctx).Preload("Product").Preload("Authors").
		Limit(limit).Offset(offset).Order("id").Find(&books).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return books, nil
}

// SearchBooks matches the product name, the ISBN or a genre
func (r *repository) SearchBooks(ctx context.Context, query string, limit, offset int) ([]core.Book, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.SearchBooks")
	defer span.End()

	var books []core.Book
	err := r.db.WithContext(ctx).Preload("Product").Preload("Authors").
		Joins("JOIN products ON products.id = books.product_id").
		Where("products.name ILIKE ? OR books.isbn = ? OR ? = ANY(books.genres)", "%"+query+"%", query, query).
		Limit(limit).Offset(offset).Order("books.id").
		Find(&books).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return books, nil
}

func (r *repository) CreateBook(ctx context.Context, book core.Book) (core.Book, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.CreateBook")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&book).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Book{}, core.NewErrorAlreadyExists()
		}
		span.RecordError(err)
		return core.Book{}, err
	}

	return r.GetBook(ctx, book.ID)
}

func (r *repository) UpdateBook(ctx context.Context, book core.Book) (core.Book, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.UpdateBook")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.Book{}).Where("id = ?", book.ID).Updates(
		map[string]any{"genres": book.Genres, "isbn": book.ISBN, "pages": book.Pages},
	)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Book{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.Book{}, core.NewErrorNotFound()
	}

	if len(book.Authors) > 0 {
		err := r.db.WithContext(ctx).Model(&core.Book{ID: book.ID}).Association("Authors").Replace(book.Authors)
		if err != nil {
			span.RecordError(err)
			return core.Book{}, err
		}
	}

	r.mc.Delete(bookCacheKey(book.ID))

	return r.GetBook(ctx, book.ID)
}

func (r *repository) DeleteBook(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.DeleteBook")
	defer span.End()

	result := r.db.WithContext(ctx).Delete(&core.Book{}, id)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	r.mc.Delete(bookCacheKey(id))

	return nil
}

func (r *repository) invalidateBookByProduct(ctx context.Context, productID uint) {
	var book core.Book
	err := r.db.WithContext(ctx).Select("id").First(&book, "product_id = ?", productID).Error
	if err == nil {
		r.mc.Delete(bookCacheKey(book.ID))
	}
}

func (r *repository) CountAuthors(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.Author{}).Count(&count).Error
	return count, err
}

func (r *repository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.Product{}).Count(&count).Error
	return count, err
}

func (r *repository) CountBooks(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.Book{}).Count(&count).Error
	return count, err
}
