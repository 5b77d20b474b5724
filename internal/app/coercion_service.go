package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/attrd/internal/app/fanout"
	"github.com/jsamuelsen11/attrd/internal/domain"
	"github.com/jsamuelsen11/attrd/internal/domain/attr"
	"github.com/jsamuelsen11/attrd/internal/domain/coerce"
	"github.com/jsamuelsen11/attrd/internal/ports"
)

// Compile-time check that CoercionService implements ports.CoercionService.
var _ ports.CoercionService = (*CoercionService)(nil)

// CoercionService implements ports.CoercionService. Items are converted
// concurrently by a bounded worker pool; nothing is stored.
type CoercionService struct {
	engine   *coerce.Engine
	workers  int
	maxBatch int
	recorder attr.Recorder
	logger   *slog.Logger
}

// CoercionOption configures a CoercionService.
type CoercionOption func(*CoercionService)

// WithWorkers bounds the number of concurrent conversions.
func WithWorkers(n int) CoercionOption {
	return func(s *CoercionService) { s.workers = n }
}

// WithMaxBatch bounds the number of items per request.
func WithMaxBatch(n int) CoercionOption {
	return func(s *CoercionService) { s.maxBatch = n }
}

// WithCoercionRecorder reports every conversion outcome to r.
func WithCoercionRecorder(r attr.Recorder) CoercionOption {
	return func(s *CoercionService) { s.recorder = r }
}

// NewCoercionService creates a CoercionService with 4 workers and batches of
// up to 100 items unless configured otherwise.
func NewCoercionService(engine *coerce.Engine, logger *slog.Logger, opts ...CoercionOption) *CoercionService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &CoercionService{
		engine:   engine,
		workers:  4,
		maxBatch: 100,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Coerce converts every item and returns one outcome per item in order.
func (s *CoercionService) Coerce(ctx context.Context, items []ports.CoercionItem) ([]ports.CoercionOutcome, error) {
	s.logger.InfoContext(ctx, "coercing batch", slog.Int("items", len(items)))

	if len(items) == 0 {
		return nil, &domain.ValidationError{Fields: map[string]string{"items": "at least one item is required"}}
	}
	if len(items) > s.maxBatch {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"items": fmt.Sprintf("at most %d items are allowed, got %d", s.maxBatch, len(items)),
		}}
	}

	results := fanout.Map(ctx, s.workers, items, func(ctx context.Context, it ports.CoercionItem) (coerce.Result, error) {
		if !it.Tag.IsValid() {
			return coerce.Result{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, it.Tag)
		}
		res, err := s.engine.Convert(it.Value, it.Tag)
		if s.recorder != nil {
			s.recorder.RecordCoercion(ctx, it.Tag, attr.OutcomeOf(res, err))
		}
		if err != nil {
			s.logger.ErrorContext(ctx, fmt.Sprintf("error parsing '%s' into a %s", coerce.Text(it.Value), it.Tag),
				slog.String("operation", "Coerce"),
				slog.String("type", it.Tag.String()),
				slog.Any("error", err),
			)
		}
		return res, err
	})

	out := make([]ports.CoercionOutcome, len(results))
	rejected := 0
	for i, r := range results {
		if r.Err != nil {
			rejected++
		}
		out[i] = ports.CoercionOutcome{
			Value:    r.Value.Value,
			Fallback: r.Value.Fallback,
			Err:      r.Err,
		}
	}

	if rejected > 0 {
		s.logger.InfoContext(ctx, "batch coerced with rejections",
			slog.Int("items", len(items)),
			slog.Int("rejected", rejected),
		)
	}
	return out, nil
}
