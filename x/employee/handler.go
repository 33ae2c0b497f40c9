package employee

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookden/bookden/core"
	"github.com/bookden/bookden/x/dispatch"
)

// Handler is the interface for handling HTTP requests.
// There is no read route: staff records are only exposed through
// the directory mutations and the login flow.
type Handler interface {
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	create *dispatch.Processor[*core.AddRequest[core.Employee], core.Employee]
	update *dispatch.Processor[*core.UpdateRequest[core.Employee], core.Employee]
	delete *dispatch.Processor[*core.DeleteRequest[core.Employee], struct{}]
}

// NewHandler binds one processor per request type
func NewHandler(service Service, policy core.PolicyService) Handler {
	return &handler{
		create: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.AddRequest[core.Employee], core.Employee](
			func(ctx context.Context, req *core.AddRequest[core.Employee]) (core.Employee, error) {
				return service.Create(ctx, req.Payload)
			})),
		update: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.UpdateRequest[core.Employee], core.Employee](
			func(ctx context.Context, req *core.UpdateRequest[core.Employee]) (core.Employee, error) {
				return service.Update(ctx, req.ID, req.Payload)
			})),
		delete: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.DeleteRequest[core.Employee], struct{}](
			func(ctx context.Context, req *core.DeleteRequest[core.Employee]) (struct{}, error) {
				return struct{}{}, service.Delete(ctx, req.ID)
			})),
	}
}

func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Employee.Handler.Create")
	defer span.End()

	var employee core.Employee
	if err := c.Bind(&employee); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	created, err := h.create.Process(ctx, token, core.NewAddRequest(employee))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Employee.Handler.Update")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	var employee core.Employee
	if err := c.Bind(&employee); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	updated, err := h.update.Process(ctx, token, core.NewUpdateRequest(id, employee))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Employee.Handler.Delete")
	defer span.End()

	id, err := core.ParseUintParam(c.Param("id"))
	if err != nil {
		return core.JSONError(c, err)
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	if _, err := h.delete.Process(ctx, token, core.NewDeleteRequest[core.Employee](id)); err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
