package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/growshop/pkg/logger"
)

var tracer = otel.Tracer("jsonstore")

// Collection is a typed view over one JSON file. The file is read once and
// cached for the lifetime of the process; appends rewrite the whole file.
type Collection[T any] struct {
	store *Store
	file  string

	mu     sync.Mutex
	loaded bool
	items  []T
}

// NewCollection binds a collection to file inside the store directory
func NewCollection[T any](store *Store, file string) *Collection[T] {
	return &Collection[T]{store: store, file: file}
}

// Name returns the backing file name
func (c *Collection[T]) Name() string {
	return c.file
}

// Load returns the collection contents. Read failures never surface as
// errors: a missing, unreadable or malformed file yields an empty collection.
func (c *Collection[T]) Load(ctx context.Context) []T {
	ctx, span := tracer.Start(ctx, "jsonstore.Load",
		trace.WithAttributes(attribute.String("jsonstore.file", c.file)),
	)
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	span.SetAttributes(attribute.Bool("jsonstore.cached", c.loaded))
	c.ensureLoaded(ctx)
	span.SetAttributes(attribute.Int("result.count", len(c.items)))

	return c.snapshot()
}

// Append adds record to the collection and rewrites the file. The in-memory
// cache is updated before the write, so a failed write leaves the cache ahead
// of the disk until the process restarts.
func (c *Collection[T]) Append(ctx context.Context, record T) error {
	_, err := c.AppendWith(ctx, func([]T) (T, error) { return record, nil })
	return err
}

// AppendWith builds a record from the current contents and appends it while
// holding the collection lock, so derived values such as sequential ids
// cannot collide within the process.
func (c *Collection[T]) AppendWith(ctx context.Context, build func(current []T) (T, error)) (T, error) {
	ctx, span := tracer.Start(ctx, "jsonstore.Append",
		trace.WithAttributes(attribute.String("jsonstore.file", c.file)),
	)
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.ensureLoaded(ctx)

	record, err := build(c.snapshot())
	if err != nil {
		var zero T
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return zero, err
	}

	c.items = append(c.items, record)

	if err := c.write(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error(ctx).
			Err(err).
			Str("file", c.store.Path(c.file)).
			Msg("Failed to write collection")
		return record, err
	}

	span.SetAttributes(attribute.Int("result.count", len(c.items)))
	return record, nil
}

// Find returns the first record matching pred
func (c *Collection[T]) Find(ctx context.Context, pred func(T) bool) (T, bool) {
	for _, item := range c.Load(ctx) {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns every record matching pred, in file order
func (c *Collection[T]) Filter(ctx context.Context, pred func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range c.Load(ctx) {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Invalidate drops the cache; the next Load reads the file again
func (c *Collection[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.items = nil
}

func (c *Collection[T]) ensureLoaded(ctx context.Context) {
	if c.loaded {
		return
	}
	c.items = c.read(ctx)
	c.loaded = true
}

func (c *Collection[T]) read(ctx context.Context) []T {
	path := c.store.Path(c.file)

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error(ctx).
			Err(err).
			Str("file", path).
			Msg("Collection file not readable, using empty collection")
		return []T{}
	}

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Error(ctx).
			Err(err).
			Str("file", path).
			Msg("Collection file is not valid JSON, using empty collection")
		return []T{}
	}

	if !isArray(raw) {
		logger.Warn(ctx).
			Str("file", path).
			Msg("Collection file is not an array, using empty collection")
		return []T{}
	}

	items := make([]T, 0)
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Error(ctx).
			Err(err).
			Str("file", path).
			Msg("Failed to decode collection, using empty collection")
		return []T{}
	}

	logger.Debug(ctx).
		Str("file", path).
		Int("count", len(items)).
		Msg("Collection loaded")
	return items
}

func (c *Collection[T]) write() error {
	data, err := json.MarshalIndent(c.items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.file, err)
	}
	if err := os.WriteFile(c.store.Path(c.file), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.file, err)
	}
	return nil
}

func (c *Collection[T]) snapshot() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func isArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
