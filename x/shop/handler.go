package shop

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookden/bookden/core"
	"github.com/bookden/bookden/x/dispatch"
)

// Handler is the interface for handling HTTP requests.
// Reads are part of the public storefront; mutations go through the
// authorized pipeline.
type Handler interface {
	Get(c echo.Context) error
	List(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	get    *dispatch.PublicProcessor[*core.GetByIDRequest[core.Shop], core.Shop]
	list   *dispatch.PublicProcessor[*core.ListRequest[core.Shop], []core.Shop]
	create *dispatch.Processor[*core.AddRequest[core.Shop], core.Shop]
	update *dispatch.Processor[*core.UpdateRequest[core.Shop], core.Shop]
	delete *dispatch.Processor[*core.DeleteRequest[core.Shop], struct{}]
}

// NewHandler binds one processor per request type
func NewHandler(service Service, policy core.PolicyService) Handler {
	return &handler{
		get: dispatch.NewPublicProcessor(dispatch.HandlerFunc[*core.GetByIDRequest[core.Shop], core.Shop](
			func(ctx context.Context, req *core.GetByIDRequest[core.Shop]) (core.Shop, error) {
				return service.Get(ctx, req.ID)
			})),
		list: dispatch.NewPublicProcessor(dispatch.HandlerFunc[*core.ListRequest[core.Shop], []core.Shop](
			func(ctx context.Context, req *core.ListRequest[core.Shop]) ([]core.Shop, error) {
				return service.List(ctx, req.Limit, req.Offset)
			})),
		create: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.AddRequest[core.Shop], core.Shop](
			func(ctx context.Context, req *core.AddRequest[core.Shop]) (core.Shop, error) {
				return service.Create(ctx, req.Payload)
			})),
		update: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.UpdateRequest[core.Shop], core.Shop](
			func(ctx context.Context, req *core.UpdateRequest[core.Shop]) (core.Shop, error) {
				return service.Update(ctx, req.ID, req.Payload)
			})),
		delete: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.DeleteRequest[core.Shop], struct{}](
			func(ctx context.Context, req *core.DeleteRequest[core.Shop]) (struct{}, error) {
				return struct{}{}, service.Delete(ctx, req.ID)
			})),
	}
}

func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Shop.Handler.Get")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	shop, err := h.get.Process(ctx, core.NewGetByIDRequest[core.Shop](id))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": shop})
}

func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Shop.Handler.List")
	defer span.End()

	limit, offset := core.Pagination(c)
	shops, err := h.list.Process(ctx, core.NewListRequest[core.Shop](limit, offset))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": shops})
}

func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Shop.Handler.Create")
	defer span.End()

	var shop core.Shop
	if err := c.Bind(&shop); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	created, err := h.create.Process(ctx, token, core.NewAddRequest(shop))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Shop.Handler.Update")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	var shop core.Shop
	if err := c.Bind(&shop); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	updated, err := h.update.Process(ctx, token, core.NewUpdateRequest(id, shop))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Shop.Handler.Delete")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	if _, err := h.delete.Process(ctx, token, core.NewDeleteRequest[core.Shop](id)); err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
