// Package dispatch fronts every domain operation with a uniform
// pre-check: shape validation, then policy authorization, then exactly
// one handler call. One processor instance exists per request type.
package dispatch

import (
	"context"
	"reflect"

	"go.opentelemetry.io/otel"

	"github.com/bookden/bookden/core"
)

var tracer = otel.Tracer("dispatch")

func isNilRequest(request any) bool {
	if request == nil {
		return true
	}
	v := reflect.ValueOf(request)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Handler executes the domain operation once the request has been
// validated and authorized. One implementation per request type.
type Handler[Req core.Request, Res any] interface {
	Handle(ctx context.Context, request Req) (Res, error)
}

// HandlerFunc adapts a plain function to Handler
type HandlerFunc[Req core.Request, Res any] func(ctx context.Context, request Req) (Res, error)

func (f HandlerFunc[Req, Res]) Handle(ctx context.Context, request Req) (Res, error) {
	return f(ctx, request)
}

// Processor is the authorized variant. Authorization completes before
// the handler runs; the handler is never reached on a deny.
type Processor[Req core.Request, Res any] struct {
	policy  core.PolicyService
	handler Handler[Req, Res]
}

func NewProcessor[Req core.Request, Res any](policy core.PolicyService, handler Handler[Req, Res]) *Processor[Req, Res] {
	return &Processor[Req, Res]{policy: policy, handler: handler}
}

func (p *Processor[Req, Res]) Process(ctx context.Context, tokenString string, request Req) (Res, error) {
	ctx, span := tracer.Start(ctx, "Dispatch.Processor.Process")
	defer span.End()

	var empty Res

	if err := ctx.Err(); err != nil {
		return empty, err
	}

	if isNilRequest(request) {
		return empty, core.NewErrorInvalidArgument("request is required")
	}

	if tokenString == "" {
		return empty, core.NewErrorAuthentication("token is required")
	}

	if v, ok := any(request).(core.Validatable); ok {
		if err := v.Validate(); err != nil {
			span.RecordError(err)
			return empty, err
		}
	}

	if err := p.policy.CheckRule(ctx, tokenString, request.Descriptor()); err != nil {
		span.RecordError(err)
		return empty, err
	}

	return p.handler.Handle(ctx, request)
}

// PublicProcessor skips authorization entirely. Used only for the
// public storefront reads.
type PublicProcessor[Req core.Request, Res any] struct {
	handler Handler[Req, Res]
}

func NewPublicProcessor[Req core.Request, Res any](handler Handler[Req, Res]) *PublicProcessor[Req, Res] {
	return &PublicProcessor[Req, Res]{handler: handler}
}

func (p *PublicProcessor[Req, Res]) Process(ctx context.Context, request Req) (Res, error) {
	ctx, span := tracer.Start(ctx, "Dispatch.PublicProcessor.Process")
	defer span.End()

	var empty Res

	if err := ctx.Err(); err != nil {
		return empty, err
	}

	if isNilRequest(request) {
		return empty, core.NewErrorInvalidArgument("request is required")
	}

	if v, ok := any(request).(core.Validatable); ok {
		if err := v.Validate(); err != nil {
			span.RecordError(err)
			return empty, err
		}
	}

	return p.handler.Handle(ctx, request)
}
