// Package content loads the typed content categories from their backing
// documents, validates them and caches them for the life of the process.
//
// Each category is parsed at most once per successful load: the first
// accessor call reads the document, checks it against the category schema,
// runs the category gate and the per-record rules, and only then publishes
// the records. A failed load publishes nothing and the next call retries.
package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/site-content/internal/logging"
	"github.com/jonathan/site-content/internal/schemas"
	"github.com/jonathan/site-content/internal/types"
)

// Category describes one kind of content and where it is stored.
type Category[T types.Record] struct {
	// Name identifies the category and its embedded schema.
	Name string
	// File is the backing document name within the Source.
	File string
	// Facet extracts the field matched by Facet filters. Nil when the
	// category cannot be faceted.
	Facet func(T) string
	// Gate runs before per-record validation and rejects the whole category
	// on the first violation.
	Gate func(category string, records []T) error
}

// LoadObserver is notified of every load attempt.
type LoadObserver interface {
	ObserveLoad(category string, records int, elapsed time.Duration, err error)
}

// Option configures stores and catalogs.
type Option func(*options)

type options struct {
	logger   logging.Logger
	observer LoadObserver
}

// WithLogger sets the logger used to report loads.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObserver sets a load observer, typically the metrics recorder.
func WithObserver(obs LoadObserver) Option {
	return func(o *options) { o.observer = obs }
}

func buildOptions(opts []Option) options {
	o := options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Store is the cached, validated content of one category.
type Store[T types.Record] struct {
	category Category[T]
	source   Source
	opts     options

	group singleflight.Group

	mu      sync.RWMutex
	loaded  bool
	records []T
	index   map[string]int
}

// NewStore creates a store for category reading from source. Nothing is read
// until the first accessor call.
func NewStore[T types.Record](category Category[T], source Source, opts ...Option) *Store[T] {
	return &Store[T]{
		category: category,
		source:   source,
		opts:     buildOptions(opts),
	}
}

// Name returns the category name.
func (s *Store[T]) Name() string {
	return s.category.Name
}

// Loaded reports whether the category has been populated.
func (s *Store[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Load returns every record in backing-document order.
func (s *Store[T]) Load() ([]T, error) {
	records, _, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return slices.Clone(records), nil
}

// Get returns the record with the given slug. An unknown slug is not an
// error: ok is false.
func (s *Store[T]) Get(slug string) (record T, ok bool, err error) {
	records, index, err := s.snapshot()
	if err != nil {
		return record, false, err
	}
	i, ok := index[slug]
	if !ok {
		return record, false, nil
	}
	return records[i], true, nil
}

// List returns the records matching facet, preserving order. AllFacets
// returns the same records as Load.
func (s *Store[T]) List(facet Facet) ([]T, error) {
	if facet.IsAll() {
		return s.Load()
	}
	if s.category.Facet == nil {
		if _, _, err := s.snapshot(); err != nil {
			return nil, err
		}
		return []T{}, nil
	}
	value, _ := facet.Value()
	return s.Where(func(record T) bool {
		return s.category.Facet(record) == value
	})
}

// Where returns the records satisfying keep, preserving order.
func (s *Store[T]) Where(keep func(T) bool) ([]T, error) {
	records, _, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(records))
	for _, record := range records {
		if keep(record) {
			out = append(out, record)
		}
	}
	return out, nil
}

// snapshot returns the cached records, populating them on first use.
func (s *Store[T]) snapshot() ([]T, map[string]int, error) {
	s.mu.RLock()
	if s.loaded {
		records, index := s.records, s.index
		s.mu.RUnlock()
		return records, index, nil
	}
	s.mu.RUnlock()

	_, err, _ := s.group.Do(s.category.Name, func() (any, error) {
		if s.Loaded() {
			return nil, nil
		}
		records, index, err := s.populate()
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.records, s.index, s.loaded = records, index, true
		s.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records, s.index, nil
}

func (s *Store[T]) populate() (records []T, index map[string]int, err error) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		if s.opts.observer != nil {
			s.opts.observer.ObserveLoad(s.category.Name, len(records), elapsed, err)
		}
		if err == nil {
			s.opts.logger.Info("content category loaded",
				logging.String("category", s.category.Name),
				logging.String("file", s.category.File),
				logging.Int("records", len(records)),
				logging.Duration("elapsed", elapsed),
			)
		}
	}()

	records, err = decodeDocument[[]T](s.category.Name, s.category.File, s.source)
	if err != nil {
		return nil, nil, err
	}
	if records == nil {
		records = []T{}
	}

	if s.category.Gate != nil {
		if err := s.category.Gate(s.category.Name, records); err != nil {
			return nil, nil, err
		}
	}

	index, err = indexRecords(s.category.Name, records)
	if err != nil {
		return nil, nil, err
	}
	return records, index, nil
}

// decodeDocument reads, schema-checks and decodes one backing document.
func decodeDocument[D any](category, file string, source Source) (D, error) {
	var doc D

	data, err := source.ReadFile(file)
	if err != nil {
		msg := "backing document is unreadable"
		if IsNotFound(err) {
			msg = "backing document not found"
		}
		return doc, &LoadError{Category: category, File: file, Message: msg, Cause: err}
	}

	if !json.Valid(data) {
		return doc, &LoadError{Category: category, File: file, Message: "backing document is malformed JSON"}
	}

	if err := schemas.ValidateDocument(category, data); err != nil {
		return doc, &LoadError{Category: category, File: file, Message: "schema validation failed", Cause: err}
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, &LoadError{Category: category, File: file, Message: "backing document is malformed", Cause: err}
	}
	return doc, nil
}

// indexRecords applies the per-record rules and builds the slug index.
func indexRecords[T types.Record](category string, records []T) (map[string]int, error) {
	index := make(map[string]int, len(records))
	for i, record := range records {
		if err := types.ValidateStruct(record); err != nil {
			return nil, recordError(category, i, record.Key(), err)
		}
		if first, dup := index[record.Key()]; dup {
			return nil, &ValidationError{
				Category: category,
				Slug:     record.Key(),
				Index:    i,
				Field:    "slug",
				Message:  fmt.Sprintf("duplicate of record %d", first),
			}
		}
		index[record.Key()] = i
	}
	return index, nil
}

func recordError(category string, i int, slug string, err error) error {
	verr := &ValidationError{Category: category, Slug: slug, Index: i, Field: "(record)", Message: err.Error()}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		verr.Field = fieldPath(fe.Namespace())
		verr.Message = fmt.Sprintf("failed %q rule", fe.Tag())
		if fe.Param() != "" {
			verr.Message = fmt.Sprintf("failed %q rule (%s)", fe.Tag(), fe.Param())
		}
	}
	return verr
}

// fieldPath drops the leading struct name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
