package catalog

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/bookden/bookden/core"
)

var tracer = otel.Tracer("catalog")

type Service interface {
	GetAuthor(ctx context.Context, id uint) (core.Author, error)
	ListAuthors(ctx context.Context, limit, offset int) ([]core.Author, error)
	CreateAuthor(ctx context.Context, author core.Author) (core.Author, error)
	UpdateAuthor(ctx context.Context, id uint, author core.Author) (core.Author, error)
	DeleteAuthor(ctx context.Context, id uint) error

	GetProduct(ctx context.Context, id uint) (core.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]core.Product, error)
	CreateProduct(ctx context.Context, product core.Product) (core.Product, error)
	UpdateProduct(ctx context.Context, id uint, product core.Product) (core.Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	GetBook(ctx context.Context, id uint) (core.Book, error)
	ListBooks(ctx context.Context, limit, offset int) ([]core.Book, error)
	SearchBooks(ctx context.Context, query string, limit, offset int) ([]core.Book, error)
	CreateBook(ctx context.Context, book core.Book) (core.Book, error)
	UpdateBook(ctx context.Context, id uint, book core.Book) (core.Book, error)
	DeleteBook(ctx context.Context, id uint) error

	CountAuthors(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountBooks(ctx context.Context) (int64, error)
}

type service struct {
	repository Repository
}

// NewService creates a new catalog service
func NewService(repository Repository) Service {
	return &service{repository}
}

func (s *service) GetAuthor(ctx context.Context, id uint) (core.Author, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Service.GetAuthor")
	defer span.End()

	return s.repository.GetAuthor(ctx, id)
}

func (s *service) ListAuthors(ctx context.Context, limit, offset int) ([]core.Author, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Service.ListAuthors")
	defer span.End()

	return s.repository.GetAuthorList(ctx, limit, offset)
}

func (s *service) CreateAuthor(ctx context.Context, author core.Author) (core.Author, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Service.CreateAuthor")
	defer span.End()

	if author.FirstName == "" && author.LastName == "" {
		return core.Author{}, core.NewErrorInvalidArgument("author name is required")
	}

	created, err := s.repository.CreateAuthor(ctx, author)
	if err != nil {
		span.RecordError(err)
		return core.Author{}, errors.Wrap(err, "failed to create author")
	}

	return created, nil
}

func (s *service) UpdateAuthor(ctx context.Context, id uint, author core.Author) (core.Author, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Service.UpdateAuthor")
	defer span.End()

	author.ID = id
	return s.repository.UpdateAuthor(ctx, author)
}

func (s *service) DeleteAuthor(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Catalog.Service.DeleteAuthor")
	defer span.End()

	return s.repository.DeleteAuthor(ctx, id)
}

func (s *service) GetProduct(ctx context.Context, id uint) (core.Product, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Service.GetProduct")
	defer span.End()

	return s.repository.GetProduct(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, limit, offset int) ([]core.Product, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Service.ListProducts")
	defer span.End()

	return s.repository.GetProductList(ctx, limit, offset)
}

func (s *service) CreateProduct(ctx context.Context, product core.Product) (core.Product, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Service.CreateProduct")
	defer span.End()

	if product.Name == "" {
		return core.Product{}, core.NewErrorInvalidArgument("name is required")
	}
	if product.PriceCents < 0 {
		return core.Product{}, core.NewErrorInvalidArgument("price must not be negative")
	}

	created, err := s.repository.CreateProduct(ctx, product)
	if err != nil {
		span.RecordError(err)
		return core.Product{}, errors.Wrap(err, "failed to create product")
	}

	return created, nil
}

func (s *service) UpdateProduct(ctx context.Context, id uint, product core.Product) (core.Product, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Service.UpdateProduct")
	defer span.End()

	if product.PriceCents < 0 {
		return core.Product{}, core.NewErrorInvalidArgument("price must not be negative")
	}

	product.ID = id
	return s.repository.UpdateProduct(ctx, product)
}

func (s *service) DeleteProduct(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Catalog.Service.DeleteProduct")
	defer span.End()

	return s.repository.DeleteProduct(ctx, id)
}

func (s *service) GetBook(ctx context.Context, id uint) (core.Book, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Service.GetBook")
	defer span.End()

	return s.repository.GetBook(ctx, id)
}

func (s *service) ListBooks(ctx context.Context, limit, offset int) ([]core.Book, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Service.ListBooks")
	defer span.End()

	return s.repository.GetBookList(ctx, limit, offset)
}

func (s *service) SearchBooks(ctx context.Context, query string, limit, offset int) ([]core.Book, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Service.SearchBooks")
	defer span.End()

	if query == "" {
		return nil, core.NewErrorInvalidArgument("query is required")
	}

	return s.repository.SearchBooks(ctx, query, limit, offset)
}

func (s *service) CreateBook(ctx context.Context, book core.Book) (core.Book, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Service.CreateBook")
	defer span.End()

	if book.ProductID == 0 {
		return core.Book{}, core.NewErrorInvalidArgument("product is required")
	}
	if book.ISBN != "" && len(book.ISBN) != 13 {
		return core.Book{}, core.NewErrorInvalidArgument("isbn must have 13 digits")
	}

	created, err := s.repository.CreateBook(ctx, book)
	if err != nil {
		span.RecordError(err)
		if _, ok := err.(core.ErrorAlreadyExists); ok {
			return core.Book{}, err
		}
		return core.Book{}, errors.Wrap(err, "failed to create book")
	}

	return created, nil
}

func (s *service) UpdateBook(ctx context.Context, id uint, book core.Book) (core.Book, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Service.UpdateBook")
	defer span.End()

	if book.ISBN != "" && len(book.ISBN) != 13 {
		return core.Book{}, core.NewErrorInvalidArgument("isbn must have 13 digits")
	}

	book.ID = id
	return s.repository.UpdateBook(ctx, book)
}

func (s *service) DeleteBook(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Catalog.Service.DeleteBook")
	defer span.End()

	return s.repository.DeleteBook(ctx, id)
}

func (s *service) CountAuthors(ctx context.Context) (int64, error) {
	return s.repository.CountAuthors(ctx)
}

func (s *service) CountProducts(ctx context.Context) (int64, error) {
	return s.repository.CountProducts(ctx)
}

func (s *service) CountBooks(ctx context.Context) (int64, error) {
	return s.repository.CountBooks(ctx)
}
