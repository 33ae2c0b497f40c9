package address

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookden/bookden/core"
	"github.com/bookden/bookden/x/dispatch"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	GetOrAdd(c echo.Context) error
}

type handler struct {
	getOrAdd *dispatch.Processor[*core.GetOrAddRequest[core.Address], core.Address]
}

// NewHandler binds one processor per request type
func NewHandler(service Service, policy core.PolicyService) Handler {
	return &handler{
		getOrAdd: dispatch.NewProcessor(policy, dispatch.HandlerFunc[*core.GetOrAddRequest[core.Address], core.Address](
			func(ctx context.Context, req *core.GetOrAddRequest[core.Address]) (core.Address, error) {
				return service.GetOrAdd(ctx, req.Payload)
			})),
	}
}

func (h handler) GetOrAdd(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Address.Handler.GetOrAdd")
	defer span.End()

	var address core.Address
	if err := c.Bind(&address); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, _ := c.Get(core.TokenCtxKey).(string)
	resolved, err := h.getOrAdd.Process(ctx, token, core.NewGetOrAddRequest(address))
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": resolved})
}
