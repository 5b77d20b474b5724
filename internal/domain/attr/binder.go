package attr

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/jsamuelsen11/attrd/internal/domain"
	"github.com/jsamuelsen11/attrd/internal/domain/coerce"
)

// Outcome classifies a single coercion for metrics.
type Outcome string

const (
	// OutcomeOK means the input was converted as given.
	OutcomeOK Outcome = "ok"
	// OutcomeFallback means a zero value was substituted for unreadable input.
	OutcomeFallback Outcome = "fallback"
	// OutcomeAbsent means the stored value is absent.
	OutcomeAbsent Outcome = "absent"
	// OutcomeRejected means the write failed and nothing was stored.
	OutcomeRejected Outcome = "rejected"
)

// OutcomeOf classifies a coercion result.
func OutcomeOf(res coerce.Result, err error) Outcome {
	switch {
	case err != nil:
		return OutcomeRejected
	case res.Absent():
		return OutcomeAbsent
	case res.Fallback:
		return OutcomeFallback
	default:
		return OutcomeOK
	}
}

// Recorder receives one call per coercion attempted by a Binder.
type Recorder interface {
	RecordCoercion(ctx context.Context, tag coerce.Tag, outcome Outcome)
}

// Binder owns the schemas of a process and the engine their writes go
// through. It is safe for concurrent use.
type Binder struct {
	engine   *coerce.Engine
	logger   *slog.Logger
	recorder Recorder

	mu      sync.RWMutex
	schemas map[string]*Schema
}

// Option configures a Binder.
type Option func(*Binder)

// WithLogger sets the sink for rejected-write diagnostics. A nil logger
// drops them.
func WithLogger(l *slog.Logger) Option {
	return func(b *Binder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithRecorder sets the coercion outcome recorder.
func WithRecorder(r Recorder) Option {
	return func(b *Binder) {
		b.recorder = r
	}
}

// NewBinder returns a Binder that coerces writes with engine.
func NewBinder(engine *coerce.Engine, opts ...Option) *Binder {
	b := &Binder{
		engine:  engine,
		logger:  slog.New(slog.DiscardHandler),
		schemas: make(map[string]*Schema),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Engine returns the engine writes are coerced with.
func (b *Binder) Engine() *coerce.Engine {
	return b.engine
}

// Schema returns the schema registered under name, creating an empty one if
// none exists yet.
func (b *Binder) Schema(name string) *Schema {
	b.mu.Lock()
	defer b.mu.Unlock()

	if s, ok := b.schemas[name]; ok {
		return s
	}
	s := newSchema(name, b)
	b.schemas[name] = s
	return s
}

// Define registers a new schema from a declaration table. Attributes are
// declared in name order. Every tag is checked before anything is
// registered, so one unsupported tag fails the whole definition.
func (b *Binder) Define(name string, decls map[string]coerce.Tag) (*Schema, error) {
	if name == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"name": "schema name is required"}}
	}

	names := slices.Sorted(maps.Keys(decls))
	for _, attrName := range names {
		if err := checkDeclaration(name, attrName, decls[attrName]); err != nil {
			return nil, err
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.schemas[name]; ok {
		return nil, fmt.Errorf("schema %q: %w", name, domain.ErrConflict)
	}
	s := newSchema(name, b)
	for _, attrName := range names {
		s.bind(attrName, decls[attrName])
	}
	b.schemas[name] = s
	return s, nil
}

// Lookup returns the schema registered under name.
func (b *Binder) Lookup(name string) (*Schema, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	s, ok := b.schemas[name]
	if !ok {
		return nil, &domain.NotFoundError{Kind: "schema", Key: name}
	}
	return s, nil
}

// Schemas returns every registered schema ordered by name.
func (b *Binder) Schemas() []*Schema {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*Schema, 0, len(b.schemas))
	for _, name := range slices.Sorted(maps.Keys(b.schemas)) {
		out = append(out, b.schemas[name])
	}
	return out
}

// convert runs one write through the engine, reporting the outcome and
// logging rejected input.
func (b *Binder) convert(ctx context.Context, schema string, a Attribute, raw any) (coerce.Result, error) {
	res, err := b.engine.Convert(raw, a.Tag)
	if b.recorder != nil {
		b.recorder.RecordCoercion(ctx, a.Tag, OutcomeOf(res, err))
	}
	if err != nil {
		b.logger.ErrorContext(ctx, fmt.Sprintf("error parsing '%s' into a %s", coerce.Text(raw), a.Tag),
			slog.String("schema", schema),
			slog.String("attribute", a.Name),
			slog.String("type", a.Tag.String()),
			slog.Any("error", err),
		)
		return coerce.Result{}, &WriteError{Schema: schema, Attribute: a.Name, Tag: a.Tag, Err: err}
	}
	if res.Fallback {
		b.logger.DebugContext(ctx, "coercion fell back",
			slog.String("schema", schema),
			slog.String("attribute", a.Name),
			slog.String("type", a.Tag.String()),
		)
	}
	return res, nil
}
