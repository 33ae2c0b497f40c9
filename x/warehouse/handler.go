package warehouse

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
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	get    *dispatch.Processor[*core.GetByIDRequest[core.Warehouse], core.Warehouse]
	list   *dispatch.Processor[*core.ListRequest[core.Warehouse], []core.Warehouse]
	create *dispatch.Processor[*core.AddRequest[core.Warehouse], core.Warehouse]
	update *dispatch.Processor[*core.UpdateRequest[core.Warehouse], core.Warehouse]
	delete *dispatch.Processor[*core.DeleteRequest[core.Warehouse], struct{}]
}

// NewHandler binds one processor per request type
func NewHandler(service Service, policy core.PolicyService) Handler {
	return &handler{
		get: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.GetByIDRequest[core.Warehouse], core.Warehouse](
			func(ctx context.Context, req *core.GetByIDRequest[core.Warehouse]) (core.Warehouse, error) {
				return service.Get(ctx, req.ID)
			})),
		list: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.ListRequest[core.Warehouse], []core.Warehouse](
			func(ctx context.Context, req *core.ListRequest[core.Warehouse]) ([]core.Warehouse, error) {
				return service.List(ctx, req.Limit, req.Offset)
			})),
		create: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.AddRequest[core.Warehouse], core.Warehouse](
			func(ctx context.Context, req *core.AddRequest[core.Warehouse]) (core.Warehouse, error) {
				return service.Create(ctx, req.Payload)
			})),
		update: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.UpdateRequest[core.Warehouse], core.Warehouse](
			func(ctx context.Context, req *core.UpdateRequest[core.Warehouse]) (core.Warehouse, error) {
				return service.Update(ctx, req.ID, req.Payload)
			})),
		delete: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.DeleteRequest[core.Warehouse], struct{}](
			func(ctx context.Context, req *core.DeleteRequest[core.Warehouse]) (struct{}, error) {
				return struct{}{}, service.Delete(ctx, req.ID)
			})),
	}
}

func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Warehouse.Handler.Get")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	warehouse, err := h.get.Process(ctx, token, core.NewGetByIDRequest[core.Warehouse](id))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": warehouse})
}

func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Warehouse.Handler.List")
	defer span.End()

	limit, offset := core.Pagination(c)
	token, _ := c.Get(core.TokenCtxKey).(string)
	warehouses, err := h.list.Process(ctx, token, core.NewListRequest[core.Warehouse](limit, offset))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": warehouses})
}

func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Warehouse.Handler.Create")
	defer span.End()

	var warehouse core.Warehouse
	if err := c.Bind(&warehouse); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	created, err := h.create.Process(ctx, token, core.NewAddRequest(warehouse))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Warehouse.Handler.Update")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	var warehouse core.Warehouse
	if err := c.Bind(&warehouse); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	updated, err := h.update.Process(ctx, token, core.NewUpdateRequest(id, warehouse))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Warehouse.Handler.Delete")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	if _, err := h.delete.Process(ctx, token, core.NewDeleteRequest[core.Warehouse](id)); err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
