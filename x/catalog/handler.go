package catalog

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookden/bookden/core"
	"github.com/bookden/bookden/x/dispatch"
)

// Handler is the interface for handling HTTP requests.
// Browsing the catalog is public; curation goes through the
// authorized pipeline.
type Handler interface {
	GetAuthor(c echo.Context) error
	ListAuthors(c echo.Context) error
	CreateAuthor(c echo.Context) error
	UpdateAuthor(c echo.Context) error
	DeleteAuthor(c echo.Context) error

	GetProduct(c echo.Context) error
	ListProducts(c echo.Context) error
	CreateProduct(c echo.Context) error
	UpdateProduct(c echo.Context) error
	DeleteProduct(c echo.Context) error

	GetBook(c echo.Context) error
	ListBooks(c echo.Context) error
	SearchBooks(c echo.Context) error
	CreateBook(c echo.Context) error
	UpdateBook(c echo.Context) error
	DeleteBook(c echo.Context) error
}

type handler struct {
	getAuthor    *dispatch.PublicProcessor[*core.GetByIDRequest[core.Author], core.Author]
	listAuthors  *dispatch.PublicProcessor[*core.ListRequest[core.Author], []core.Author]
	createAuthor *dispatch.Processor[*core.AddRequest[core.Author], core.Author]
	updateAuthor *dispatch.Processor[*core.UpdateRequest[core.Author], core.Author]
	deleteAuthor *dispatch.Processor[*core.DeleteRequest[core.Author], struct{}]

	getProduct    *dispatch.PublicProcessor[*core.GetByIDRequest[core.Product], core.Product]
	listProducts  *dispatch.PublicProcessor[*core.ListRequest[core.Product], []core.Product]
	createProduct *dispatch.Processor[*core.AddRequest[core.Product], core.Product]
	updateProduct *dispatch.Processor[*core.UpdateRequest[core.Product], core.Product]
	deleteProduct *dispatch.Processor[*core.DeleteRequest[core.Product], struct{}]

	getBook    *dispatch.PublicProcessor[*core.GetByIDRequest[core.Book], core.Book]
	listBooks  *dispatch.PublicProcessor[*core.ListRequest[core.Book], []core.Book]
	createBook *dispatch.Processor[*core.AddRequest[core.Book], core.Book]
	updateBook *dispatch.Processor[*core.UpdateRequest[core.Book], core.Book]
	deleteBook *dispatch.Processor[*core.DeleteRequest[core.Book], struct{}]

	service Service
}

// NewHandler binds one processor per request type
func NewHandler(service Service, policy core.PolicyService) Handler {
	return &handler{
		getAuthor: dispatch.NewPublicProcessor(dispatch.HandlerFunc[*core.GetByIDRequest[core.Author], core.Author](
			func(ctx context.Context, req *core.GetByIDRequest[core.Author]) (core.Author, error) {
				return service.GetAuthor(ctx, req.ID)
			})),
		listAuthors: dispatch.NewPublicProcessor(dispatch.HandlerFunc[*core.ListRequest[core.Author], []core.Author](
			func(ctx context.Context, req *core.ListRequest[core.Author]) ([]core.Author, error) {
				return service.ListAuthors(ctx, req.Limit, req.Offset)
			})),
		createAuthor: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.AddRequest[core.Author], core.Author](
			func(ctx context.Context, req *core.AddRequest[core.Author]) (core.Author, error) {
				return service.CreateAuthor(ctx, req.Payload)
			})),
		updateAuthor: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.UpdateRequest[core.Author], core.Author](
			func(ctx context.Context, req *core.UpdateRequest[core.Author]) (core.Author, error) {
				return service.UpdateAuthor(ctx, req.ID, req.Payload)
			})),
		deleteAuthor: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.DeleteRequest[core.Author], struct{}](
			func(ctx context.Context, req *core.DeleteRequest[core.Author]) (struct{}, error) {
				return struct{}{}, service.DeleteAuthor(ctx, req.ID)
			})),

		getProduct: dispatch.NewPublicProcessor(dispatch.HandlerFunc[*core.GetByIDRequest[core.Product], core.Product](
			func(ctx context.Context, req *core.GetByIDRequest[core.Product]) (core.Product, error) {
				return service.GetProduct(ctx, req.ID)
			})),
		listProducts: dispatch.NewPublicProcessor(dispatch.HandlerFunc[*core.ListRequest[core.Product], []core.Product](
			func(ctx context.Context, req *core.ListRequest[core.Product]) ([]core.Product, error) {
				return service.ListProducts(ctx, req.Limit, req.Offset)
			})),
		createProduct: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.AddRequest[core.Product], core.Product](
			func(ctx context.Context, req *core.AddRequest[core.Product]) (core.Product, error) {
				return service.CreateProduct(ctx, req.Payload)
			})),
		updateProduct: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.UpdateRequest[core.Product], core.Product](
			func(ctx context.Context, req *core.UpdateRequest[core.Product]) (core.Product, error) {
				return service.UpdateProduct(ctx, req.ID, req.Payload)
			})),
		deleteProduct: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.DeleteRequest[core.Product], struct{}](
			func(ctx context.Context, req *core.DeleteRequest[core.Product]) (struct{}, error) {
				return struct{}{}, service.DeleteProduct(ctx, req.ID)
			})),

		getBook: dispatch.NewPublicProcessor(dispatch.HandlerFunc[*core.GetByIDRequest[core.Book], core.Book](
			func(ctx context.Context, req *core.GetByIDRequest[core.Book]) (core.Book, error) {
				return service.GetBook(ctx, req.ID)
			})),
		listBooks: dispatch.NewPublicProcessor(dispatch.HandlerFunc[*core.ListRequest[core.Book], []core.Book](
			func(ctx context.Context, req *core.ListRequest[core.Book]) ([]core.Book, error) {
				return service.ListBooks(ctx, req.Limit, req.Offset)
			})),
		createBook: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.AddRequest[core.Book], core.Book](
			func(ctx context.Context, req *core.AddRequest[core.Book]) (core.Book, error) {
				return service.CreateBook(ctx, req.Payload)
			})),
		updateBook: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.UpdateRequest[core.Book], core.Book](
			func(ctx context.Context, req *core.UpdateRequest[core.Book]) (core.Book, error) {
				return service.UpdateBook(ctx, req.ID, req.Payload)
			})),
		deleteBook: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.DeleteRequest[core.Book], struct{}](
			func(ctx context.Context, req *core.DeleteRequest[core.Book]) (struct{}, error) {
				return struct{}{}, service.DeleteBook(ctx, req.ID)
			})),

		service: service,
	}
}

func (h *handler) GetAuthor(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.GetAuthor")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	author, err := h.getAuthor.Process(ctx, core.NewGetByIDRequest[core.Author](id))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": author})
}

func (h *handler) ListAuthors(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.ListAuthors")
	defer span.End()

	limit, offset := core.Pagination(c)
	authors, err := h.listAuthors.Process(ctx, core.NewListRequest[core.Author](limit, offset))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": authors})
}

func (h *handler) CreateAuthor(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.CreateAuthor")
	defer span.End()

	var author core.Author
	if err := c.Bind(&author); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	created, err := h.createAuthor.Process(ctx, token, core.NewAddRequest(author))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

func (h *handler) UpdateAuthor(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.UpdateAuthor")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	var author core.Author
	if err := c.Bind(&author); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	updated, err := h.updateAuthor.Process(ctx, token, core.NewUpdateRequest(id, author))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

func (h *handler) DeleteAuthor(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.DeleteAuthor")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	if _, err := h.deleteAuthor.Process(ctx, token, core.NewDeleteRequest[core.Author](id)); err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *handler) GetProduct(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.GetProduct")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	product, err := h.getProduct.Process(ctx, core.NewGetByIDRequest[core.Product](id))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": product})
}

func (h *handler) ListProducts(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.ListProducts")
	defer span.End()

	limit, offset := core.Pagination(c)
	products, err := h.listProducts.Process(ctx, core.NewListRequest[core.Product](limit, offset))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": products})
}

func (h *handler) CreateProduct(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.CreateProduct")
	defer span.End()

	var product core.Product
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	created, err := h.createProduct.Process(ctx, token, core.NewAddRequest(product))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

func (h *handler) UpdateProduct(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.UpdateProduct")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	var product core.Product
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	updated, err := h.updateProduct.Process(ctx, token, core.NewUpdateRequest(id, product))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

func (h *handler) DeleteProduct(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.DeleteProduct")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	if _, err := h.deleteProduct.Process(ctx, token, core.NewDeleteRequest[core.Product](id)); err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *handler) GetBook(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.GetBook")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	book, err := h.getBook.Process(ctx, core.NewGetByIDRequest[core.Book](id))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": book})
}

func (h *handler) ListBooks(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.ListBooks")
	defer span.End()

	limit, offset := core.Pagination(c)
	books, err := h.listBooks.Process(ctx, core.NewListRequest[core.Book](limit, offset))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": books})
}

func (h *handler) SearchBooks(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.SearchBooks")
	defer span.End()

	limit, offset := core.Pagination(c)
	books, err := h.service.SearchBooks(ctx, c.QueryParam("q"), limit, offset)
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": books})
}

func (h *handler) CreateBook(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.CreateBook")
	defer span.End()

	var book core.Book
	if err := c.Bind(&book); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	created, err := h.createBook.Process(ctx, token, core.NewAddRequest(book))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

func (h *handler) UpdateBook(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.UpdateBook")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	var book core.Book
	if err := c.Bind(&book); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	updated, err := h.updateBook.Process(ctx, token, core.NewUpdateRequest(id, book))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

func (h *handler) DeleteBook(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.DeleteBook")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	if _, err := h.deleteBook.Process(ctx, token, core.NewDeleteRequest[core.Book](id)); err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
