package validation_test

import (
	"carpetstore/internal/apperr"
	"carpetstore/internal/dto"
	"carpetstore/internal/validation"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failing(name, field string, delay time.Duration) validation.RuleSet[string] {
	return validation.Rules(name, func(ctx context.Context, _ string) ([]apperr.FieldFailure, error) {
		time.Sleep(delay)
		return []apperr.FieldFailure{{Field: field, Tag: name, Message: field + " failed"}}, nil
	})
}

func TestRun_NoRuleSetsPasses(t *testing.T) {
	failures, err := validation.Run[string](context.Background(), "req", nil)
	assert.NoError(t, err)
	assert.Empty(t, failures)
}

func TestRun_MergesInRegistrationOrder(t *testing.T) {
	// The first rule set finishes last; its failures still come first.
	rules := []validation.RuleSet[string]{
		failing("slow", "A", 30*time.Millisecond),
		failing("fast", "B", 0),
		validation.Rules("clean", func(context.Context, string) ([]apperr.FieldFailure, error) { return nil, nil }),
		failing("medium", "C", 10*time.Millisecond),
	}

	failures, err := validation.Run(context.Background(), "req", rules)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, fields(failures))
}

func TestRun_PropagatesCheckErrors(t *testing.T) {
	boom := errors.New("database is down")
	rules := []validation.RuleSet[string]{
		failing("ok", "A", 0),
		validation.Rules("lookup", func(context.Context, string) ([]apperr.FieldFailure, error) { return nil, boom }),
	}

	failures, err := validation.Run(context.Background(), "req", rules)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "rule set lookup")
	assert.Nil(t, failures)
}

func TestGuard_BlocksHandlerOnFailure(t *testing.T) {
	v := newValidator(t)
	var calls atomic.Int32

	handle := validation.Guard(
		[]validation.RuleSet[dto.CreateCategoryDto]{
			validation.Struct(v, "create-category", func(d dto.CreateCategoryDto) any { return d }),
		},
		func(context.Context, dto.CreateCategoryDto) (string, error) {
			calls.Add(1)
			return "created", nil
		},
	)

	out, err := handle(context.Background(), dto.CreateCategoryDto{Name: ""})
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"Name"}, ve.Fields())
	assert.Empty(t, out)
	assert.Equal(t, int32(0), calls.Load())

	out, err = handle(context.Background(), dto.CreateCategoryDto{Name: "Persian"})
	require.NoError(t, err)
	assert.Equal(t, "created", out)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGuard_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	handle := validation.Guard(nil, func(context.Context, string) (int, error) {
		called = true
		return 1, nil
	})

	_, err := handle(ctx, "req")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
