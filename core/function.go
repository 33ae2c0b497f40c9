package core

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// JSONError maps the error taxonomy onto HTTP responses. Anything
// outside the taxonomy bubbles up to echo's default handling.
func JSONError(c echo.Context, err error) error {
	switch err.(type) {
	case ErrorAuthentication:
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Authentication Failed", "message": err.Error()})
	case ErrorPermissionDenied:
		return c.JSON(http.StatusForbidden, echo.Map{"error": "you are not authorized to perform this action"})
	case ErrorNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Not Found"})
	case ErrorInvalidArgument:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	case ErrorAlreadyExists:
		return c.JSON(http.StatusConflict, echo.Map{"error": "Already Exists"})
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Not Found"})
	}

	if errors.Is(err, context.Canceled) {
		// client went away; nothing useful to write
		return err
	}

	return err
}

// Pagination reads limit/offset query parameters with defaults
func Pagination(c echo.Context) (int, int) {
	limit := 50
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}

// ParseUintParam reads a positive decimal path or query parameter
func ParseUintParam(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, NewErrorInvalidArgument("malformed id")
	}
	return uint(v), nil
}
