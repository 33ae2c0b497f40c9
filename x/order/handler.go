package order

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookden/bookden/core"
	"github.com/bookden/bookden/x/dispatch"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Get(c echo.Context) error
	List(c echo.Context) error
	ListByShop(c echo.Context) error
	Place(c echo.Context) error
	UpdateStatus(c echo.Context) error
}

type handler struct {
	get        *dispatch.Processor[*core.GetByIDRequest[core.Order], core.Order]
	list       *dispatch.Processor[*core.ListRequest[core.Order], []core.Order]
	listByShop *dispatch.Processor[*core.ScopedListRequest[core.Order], []core.Order]
	place      *dispatch.Processor[*core.AddRequest[core.Order], core.Order]
	update     *dispatch.Processor[*core.UpdateRequest[core.Order], core.Order]
}

// NewHandler binds one processor per request type
func NewHandler(service Service, policy core.PolicyService) Handler {
	return &handler{
		get: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.GetByIDRequest[core.Order], core.Order](
			func(ctx context.Context, req *core.GetByIDRequest[core.Order]) (core.Order, error) {
				return service.Get(ctx, req.ID)
			})),
		list: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.ListRequest[core.Order], []core.Order](
			func(ctx context.Context, req *core.ListRequest[core.Order]) ([]core.Order, error) {
				return service.List(ctx, req.Limit, req.Offset)
			})),
		listByShop: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.ScopedListRequest[core.Order], []core.Order](
			func(ctx context.Context, req *core.ScopedListRequest[core.Order]) ([]core.Order, error) {
				return service.ListByShop(ctx, req.ScopeID, req.Limit, req.Offset)
			})),
		place: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.AddRequest[core.Order], core.Order](
			func(ctx context.Context, req *core.AddRequest[core.Order]) (core.Order, error) {
				return service.Place(ctx, req.Payload)
			})),
		update: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.UpdateRequest[core.Order], core.Order](
			func(ctx context.Context, req *core.UpdateRequest[core.Order]) (core.Order, error) {
				return service.UpdateStatus(ctx, req.ID, req.Payload.Status)
			})),
	}
}

func (h *handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Order.Handler.Get")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	order, err := h.get.Process(ctx, token, core.NewGetByIDRequest[core.Order](id))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": order})
}

func (h *handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Order.Handler.List")
	defer span.End()

	limit, offset := core.Pagination(c)
	token, _ := c.Get(core.TokenCtxKey).(string)
	orders, err := h.list.Process(ctx, token, core.NewListRequest[core.Order](limit, offset))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": orders})
}

func (h *handler) ListByShop(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Order.Handler.ListByShop")
	defer span.End()

	shopID, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	limit, offset := core.Pagination(c)
	orders, err := h.listByShop.Process(ctx, token, core.NewScopedListRequest[core.Order](core.KindShop, shopID, limit, offset))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": orders})
}

func (h *handler) Place(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Order.Handler.Place")
	defer span.End()

	var order core.Order
	if err := c.Bind(&order); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	placed, err := h.place.Process(ctx, token, core.NewAddRequest(order))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": placed})
}

func (h *handler) UpdateStatus(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Order.Handler.UpdateStatus")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	var order core.Order
	if err := c.Bind(&order); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	updated, err := h.update.Process(ctx, token, core.NewUpdateRequest(id, order))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}
