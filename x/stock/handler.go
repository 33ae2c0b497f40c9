package stock

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookden/bookden/core"
	"github.com/bookden/bookden/x/dispatch"
)

// Handler is the interface for handling HTTP requests.
// Location-scoped reads and writes are open to staff of that
// location; the unscoped routes are director territory.
type Handler interface {
	List(c echo.Context) error
	ListAtShop(c echo.Context) error
	ListAtWarehouse(c echo.Context) error
	Add(c echo.Context) error
	SetCountAtShop(c echo.Context) error
	SetCountAtWarehouse(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	list     *dispatch.Processor[*core.ListRequest[core.ProductCount], []core.ProductCount]
	listAt   *dispatch.Processor[*core.ScopedListRequest[core.ProductCount], []core.ProductCount]
	add      *dispatch.Processor[*core.AddRequest[core.ProductCount], core.ProductCount]
	setCount *dispatch.Processor[*core.ScopedUpdateRequest[core.ProductCount], core.ProductCount]
	delete   *dispatch.Processor[*core.DeleteRequest[core.ProductCount], struct{}]
}

// NewHandler binds one processor per request type
func NewHandler(service Service, policy core.PolicyService) Handler {
	return &handler{
		list: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.ListRequest[core.ProductCount], []core.ProductCount](
			func(ctx context.Context, req *core.ListRequest[core.ProductCount]) ([]core.ProductCount, error) {
				return service.List(ctx, req.Limit, req.Offset)
			})),
		listAt: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.ScopedListRequest[core.ProductCount], []core.ProductCount](
			func(ctx context.Context, req *core.ScopedListRequest[core.ProductCount]) ([]core.ProductCount, error) {
				return service.ListAt(ctx, req.Descriptor().Target().Entity, req.ScopeID, req.Limit, req.Offset)
			})),
		add: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.AddRequest[core.ProductCount], core.ProductCount](
			func(ctx context.Context, req *core.AddRequest[core.ProductCount]) (core.ProductCount, error) {
				return service.Add(ctx, req.Payload)
			})),
		setCount: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.ScopedUpdateRequest[core.ProductCount], core.ProductCount](
			func(ctx context.Context, req *core.ScopedUpdateRequest[core.ProductCount]) (core.ProductCount, error) {
				return service.SetCount(ctx, req.Descriptor().Target().Entity, req.ScopeID, req.Payload.ProductID, req.Payload.Count)
			})),
		delete: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.DeleteRequest[core.ProductCount], struct{}](
			func(ctx context.Context, req *core.DeleteRequest[core.ProductCount]) (struct{}, error) {
				return struct{}{}, service.Delete(ctx, req.ID)
			})),
	}
}

func (h *handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Stock.Handler.List")
	defer span.End()

	limit, offset := core.Pagination(c)
	token, _ := c.Get(core.TokenCtxKey).(string)
	counts, err := h.list.Process(ctx, token, core.NewListRequest[core.ProductCount](limit, offset))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": counts})
}

func (h *handler) listAtLocation(c echo.Context, location core.EntityKind, spanName string) error {
	ctx, span := tracer.Start(c.Request().Context(), spanName)
	defer span.End()

	locationID, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	limit, offset := core.Pagination(c)
	token, _ := c.Get(core.TokenCtxKey).(string)
	counts, err := h.listAt.Process(ctx, token, core.NewScopedListRequest[core.ProductCount](location, locationID, limit, offset))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": counts})
}

func (h *handler) ListAtShop(c echo.Context) error {
	return h.listAtLocation(c, core.KindShop, "Stock.Handler.ListAtShop")
}

func (h *handler) ListAtWarehouse(c echo.Context) error {
	return h.listAtLocation(c, core.KindWarehouse, "Stock.Handler.ListAtWarehouse")
}

func (h *handler) Add(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Stock.Handler.Add")
	defer span.End()

	var count core.ProductCount
	if err := c.Bind(&count); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	created, err := h.add.Process(ctx, token, core.NewAddRequest(count))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

func (h *handler) setCountAtLocation(c echo.Context, location core.EntityKind, spanName string) error {
	ctx, span := tracer.Start(c.Request().Context(), spanName)
	defer span.End()

	locationID, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	var count core.ProductCount
	if err := c.Bind(&count); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	updated, err := h.setCount.Process(ctx, token, core.NewScopedUpdateRequest(location, locationID, count))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

func (h *handler) SetCountAtShop(c echo.Context) error {
	return h.setCountAtLocation(c, core.KindShop, "Stock.Handler.SetCountAtShop")
}

func (h *handler) SetCountAtWarehouse(c echo.Context) error {
	return h.setCountAtLocation(c, core.KindWarehouse, "Stock.Handler.SetCountAtWarehouse")
}

func (h *handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Stock.Handler.Delete")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	if _, err := h.delete.Process(ctx, token, core.NewDeleteRequest[core.ProductCount](id)); err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
