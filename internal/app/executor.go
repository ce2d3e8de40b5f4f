package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/quoteboard/internal/platform/logging"
)

// Writes go through three steps: Validate → Build → Store.
// Nothing is persisted unless the first two succeed.

// Step names a stage of a write operation.
type Step string

const (
	StepValidate Step = "validate"
	StepBuild    Step = "build"
	StepStore    Step = "store"
)

// StepError records which step failed. It unwraps to the cause so domain
// checks such as domain.IsValidation still work.
type StepError struct {
	Step  Step
	Cause error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Cause)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}

// FailedStep extracts the step from err.
func FailedStep(err error) (Step, bool) {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Step, true
	}

	return "", false
}

// Operation describes one write. Validate and Store are optional; Build is not.
type Operation[I, O any] struct {
	Name     string
	Validate func(ctx context.Context, input I) error
	Build    func(ctx context.Context, input I) (O, error)
	Store    func(ctx context.Context, built O) error
}

// Execute runs op against input, logging each step at debug level.
func Execute[I, O any](ctx context.Context, fallback *slog.Logger, op Operation[I, O], input I) (O, error) {
	var zero O

	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = fallback
	}

	logger = logger.With(slog.String("operation", op.Name))
	start := time.Now()

	if op.Validate != nil {
		if err := op.Validate(ctx, input); err != nil {
			logger.WarnContext(ctx, "validation failed", slog.Any("error", err))
			return zero, &StepError{Step: StepValidate, Cause: err}
		}
	}

	built, err := op.Build(ctx, input)
	if err != nil {
		logger.ErrorContext(ctx, "build failed", slog.Any("error", err))
		return zero, &StepError{Step: StepBuild, Cause: err}
	}

	if op.Store != nil {
		if err := op.Store(ctx, built); err != nil {
			logger.ErrorContext(ctx, "store failed", slog.Any("error", err))
			return zero, &StepError{Step: StepStore, Cause: err}
		}
	}

	logger.DebugContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return built, nil
}
