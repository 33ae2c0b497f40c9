package customer

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookden/bookden/core"
	"github.com/bookden/bookden/x/dispatch"
)

// Handler is the interface for handling HTTP requests.
// Registration lives in the auth flow; here a customer reads and
// edits their own profile, and directors may read any profile.
type Handler interface {
	Get(c echo.Context) error
	Update(c echo.Context) error
}

type handler struct {
	get    *dispatch.Processor[*core.GetByIDRequest[core.Customer], core.Customer]
	update *dispatch.Processor[*core.UpdateRequest[core.Customer], core.Customer]
}

// NewHandler binds one processor per request type
func NewHandler(service Service, policy core.PolicyService) Handler {
	return &handler{
		get: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.GetByIDRequest[core.Customer], core.Customer](
			func(ctx context.Context, req *core.GetByIDRequest[core.Customer]) (core.Customer, error) {
				return service.Get(ctx, req.ID)
			})),
		update: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.UpdateRequest[core.Customer], core.Customer](
			func(ctx context.Context, req *core.UpdateRequest[core.Customer]) (core.Customer, error) {
				return service.Update(ctx, req.ID, req.Payload)
			})),
	}
}

func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Customer.Handler.Get")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	customer, err := h.get.Process(ctx, token, core.NewGetByIDRequest[core.Customer](id))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": customer})
}

func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Customer.Handler.Update")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	var customer core.Customer
	if err := c.Bind(&customer); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	updated, err := h.update.Process(ctx, token, core.NewUpdateRequest(id, customer))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}
