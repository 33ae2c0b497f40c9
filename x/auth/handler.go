// Package auth issues, revokes and recognizes identity tokens
package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookden/bookden/core"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	LoginEmployee(c echo.Context) error
	LoginCustomer(c echo.Context) error
	Register(c echo.Context) error
	Logout(c echo.Context) error
}

type handler struct {
	service Service
}

// NewHandler creates a new auth handler
func NewHandler(service Service) Handler {
	return &handler{service}
}

type employeeLoginRequest struct {
	Login string `json:"login"`
}

type customerLoginRequest struct {
	Email string `json:"email"`
}

func (h *handler) LoginEmployee(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Auth.Handler.LoginEmployee")
	defer span.End()

	var request employeeLoginRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, err := h.service.LoginEmployee(ctx, request.Login)
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": echo.Map{"token": token}})
}

func (h *handler) LoginCustomer(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Auth.Handler.LoginCustomer")
	defer span.End()

	var request customerLoginRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	token, err := h.service.LoginCustomer(ctx, request.Email)
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": echo.Map{"token": token}})
}

func (h *handler) Register(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Auth.Handler.Register")
	defer span.End()

	var profile core.Customer
	if err := c.Bind(&profile); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	created, token, err := h.service.RegisterCustomer(ctx, profile)
	if err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": echo.Map{"customer": created, "token": token}})
}

func (h *handler) Logout(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Auth.Handler.Logout")
	defer span.End()

	token, _ := c.Get(core.TokenCtxKey).(string)
	if err := h.service.Logout(ctx, token); err != nil {
		span.RecordError(err)
		return core.JSONError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
