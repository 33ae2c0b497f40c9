package auth

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/bookden/bookden/core"
)

// IdentifyRequester pulls the bearer token out of the request and
// stashes it in the echo context. Malformed headers and logged-out
// tokens are treated as anonymous; the processors decide whether a
// route needs a token at all.
func (s *service) IdentifyRequester(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.IdentifyRequester")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")

		if authHeader != "" {
			split := strings.Split(authHeader, " ")
			if len(split) != 2 {
				span.RecordError(fmt.Errorf("invalid authentication header"))
				goto skip
			}

			{
				authType, token := split[0], split[1]
				if authType != "Bearer" {
					span.RecordError(fmt.Errorf("only Bearer is acceptable"))
					goto skip
				}

				denied, err := s.repository.IsTokenDenied(ctx, token)
				if err != nil {
					span.RecordError(err)
					goto skip
				}
				if denied {
					span.SetAttributes(attribute.Bool("tokenDenied", true))
					goto skip
				}

				c.Set(core.TokenCtxKey, token)

				if principal, err := s.token.Decode(ctx, token); err == nil {
					c.Set(core.RequesterCtxKey, principal)
					span.SetAttributes(attribute.String("requester", principal.String()))
				}
			}
		}

	skip:
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
