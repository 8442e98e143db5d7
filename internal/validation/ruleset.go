package validation

import (
	"carpetstore/internal/apperr"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RuleSet is a named group of field rules applicable to one request type.
// Check returns the violated rules; a non-nil error means the check itself
// could not run (storage failure, cancellation).
type RuleSet[T any] interface {
	Name() string
	Check(ctx context.Context, req T) ([]apperr.FieldFailure, error)
}

type ruleFunc[T any] struct {
	name string
	fn   func(context.Context, T) ([]apperr.FieldFailure, error)
}

func (r ruleFunc[T]) Name() string { return r.name }

func (r ruleFunc[T]) Check(ctx context.Context, req T) ([]apperr.FieldFailure, error) {
	return r.fn(ctx, req)
}

// Rules adapts a function to a RuleSet.
func Rules[T any](name string, fn func(context.Context, T) ([]apperr.FieldFailure, error)) RuleSet[T] {
	return ruleFunc[T]{name: name, fn: fn}
}

// Struct returns a rule set checking the validate tags of the value picked from the request.
func Struct[T any](v *Validator, name string, pick func(T) any) RuleSet[T] {
	return Rules(name, func(ctx context.Context, req T) ([]apperr.FieldFailure, error) {
		return v.Struct(ctx, pick(req))
	})
}

// Run evaluates every rule set concurrently and merges their failures in
// registration order. No rule sets means no failures.
func Run[T any](ctx context.Context, req T, rules []RuleSet[T]) ([]apperr.FieldFailure, error) {
	if len(rules) == 0 {
		return nil, nil
	}

	results := make([][]apperr.FieldFailure, len(rules))
	g, gctx := errgroup.WithContext(ctx)
	for i, rs := range rules {
		i, rs := i, rs
		g.Go(func() error {
			failures, err := rs.Check(gctx, req)
			if err != nil {
				return fmt.Errorf("rule set %s: %w", rs.Name(), err)
			}
			results[i] = failures
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []apperr.FieldFailure
	for _, failures := range results {
		merged = append(merged, failures...)
	}
	return merged, nil
}

// Guard wraps next so it only runs once every rule set has passed. All
// failures are returned together as an *apperr.ValidationError.
func Guard[T, R any](rules []RuleSet[T], next func(context.Context, T) (R, error)) func(context.Context, T) (R, error) {
	return func(ctx context.Context, req T) (R, error) {
		var zero R

		failures, err := Run(ctx, req, rules)
		if err != nil {
			return zero, err
		}
		if len(failures) > 0 {
			return zero, apperr.NewValidationError(failures)
		}
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		return next(ctx, req)
	}
}
