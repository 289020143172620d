package content

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/site-content/internal/logging"
	"github.com/jonathan/site-content/internal/types"
)

// Singleton is a cached single-object document such as the site config.
// It follows the same populate-once rules as Store.
type Singleton[T any] struct {
	name   string
	file   string
	source Source
	opts   options

	group singleflight.Group

	mu     sync.RWMutex
	loaded bool
	value  T
}

// NewSingleton creates a singleton document reader.
func NewSingleton[T any](name, file string, source Source, opts ...Option) *Singleton[T] {
	return &Singleton[T]{name: name, file: file, source: source, opts: buildOptions(opts)}
}

// Name returns the document name.
func (s *Singleton[T]) Name() string {
	return s.name
}

// Loaded reports whether the document has been populated.
func (s *Singleton[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Get returns the document, loading it on first use.
func (s *Singleton[T]) Get() (T, error) {
	s.mu.RLock()
	if s.loaded {
		v := s.value
		s.mu.RUnlock()
		return v, nil
	}
	s.mu.RUnlock()

	_, err, _ := s.group.Do(s.name, func() (any, error) {
		if s.Loaded() {
			return nil, nil
		}
		start := time.Now()
		value, err := s.populate()
		if s.opts.observer != nil {
			s.opts.observer.ObserveLoad(s.name, 1, time.Since(start), err)
		}
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.value, s.loaded = value, true
		s.mu.Unlock()
		s.opts.logger.Info("content document loaded",
			logging.String("category", s.name),
			logging.String("file", s.file),
			logging.Duration("elapsed", time.Since(start)),
		)
		return nil, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, nil
}

func (s *Singleton[T]) populate() (T, error) {
	value, err := decodeDocument[T](s.name, s.file, s.source)
	if err != nil {
		return value, err
	}
	if err := types.ValidateStruct(value); err != nil {
		return value, recordError(s.name, 0, s.name, err)
	}
	return value, nil
}
