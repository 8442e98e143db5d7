// Package mediator routes a typed request to the single handler registered for
// its kind, running the request's rule sets first.
package mediator

import (
	"carpetstore/internal/apperr"
	"carpetstore/internal/validation"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrNoHandler is returned when no handler is registered for a request kind.
	ErrNoHandler = errors.New("no handler registered")
	// ErrResultType is returned when the caller expects a different result type than the handler produces.
	ErrResultType = errors.New("unexpected handler result type")
)

// Kind identifies a request shape.
type Kind string

// Request is implemented by every command and query.
type Request interface {
	Kind() Kind
}

// HandlerFunc handles one request kind.
type HandlerFunc[Req Request, Res any] func(ctx context.Context, req Req) (Res, error)

type entry struct {
	handle func(ctx context.Context, req Request) (any, error)
}

// Mediator holds the kind → handler registry.
type Mediator struct {
	handlers map[Kind]entry
	log      *zap.Logger
}

// New creates an empty Mediator.
func New(log *zap.Logger) *Mediator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mediator{
		handlers: make(map[Kind]entry),
		log:      log.Named("mediator"),
	}
}

// Register binds handler to the kind of Req, guarded by rules. Registering the
// same kind twice panics.
func Register[Req Request, Res any](m *Mediator, handler HandlerFunc[Req, Res], rules ...validation.RuleSet[Req]) {
	var zero Req
	kind := zero.Kind()
	if _, exists := m.handlers[kind]; exists {
		panic(fmt.Sprintf("mediator: handler for %s already registered", kind))
	}

	guarded := validation.Guard[Req, Res](rules, handler)
	m.handlers[kind] = entry{
		handle: func(ctx context.Context, req Request) (any, error) {
			typed, ok := req.(Req)
			if !ok {
				return nil, fmt.Errorf("%s: got request of type %T", kind, req)
			}
			res, err := guarded(ctx, typed)
			if err != nil {
				return nil, err
			}
			return res, nil
		},
	}
}

// Registered reports whether a handler exists for kind.
func (m *Mediator) Registered(kind Kind) bool {
	_, ok := m.handlers[kind]
	return ok
}

// Send dispatches req to its handler and returns the handler's result as Res.
func Send[Res any](ctx context.Context, m *Mediator, req Request) (Res, error) {
	var zero Res

	kind := req.Kind()
	e, ok := m.handlers[kind]
	if !ok {
		return zero, fmt.Errorf("%s: %w", kind, ErrNoHandler)
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	start := time.Now()
	out, err := e.handle(ctx, req)
	m.logOutcome(kind, time.Since(start), err)
	if err != nil {
		return zero, err
	}

	res, ok := out.(Res)
	if !ok {
		return zero, fmt.Errorf("%s returned %T: %w", kind, out, ErrResultType)
	}
	return res, nil
}

func (m *Mediator) logOutcome(kind Kind, took time.Duration, err error) {
	fields := []zap.Field{zap.String("kind", string(kind)), zap.Duration("took", took)}

	switch {
	case err == nil:
		m.log.Debug("request handled", fields...)
	case apperr.IsValidation(err),
		errors.Is(err, apperr.ErrNotFound),
		errors.Is(err, apperr.ErrConflict),
		errors.Is(err, context.Canceled):
		m.log.Warn("request rejected", append(fields, zap.Error(err))...)
	default:
		m.log.Error("request failed", append(fields, zap.Error(err))...)
	}
}
