// Package breaker guards a VocabularyStore with a circuit breaker so a dead
// database fails fast instead of stalling every lookup of a document.
package breaker

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"thesaurus/internal/domain"
	"thesaurus/internal/repository"
)

var _ repository.VocabularyStore = (*Store)(nil)

var errUnhealthy = errors.New("store is unhealthy")

// Store decorates a repository.VocabularyStore with a circuit breaker
type Store struct {
	inner  repository.VocabularyStore
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger
}

// New wraps inner. The breaker opens after maxFailures consecutive failed
// calls and lets a probe through once openTimeout has passed.
func New(inner repository.VocabularyStore, maxFailures uint32, openTimeout time.Duration, logger *zap.Logger) *Store {
	s := &Store{
		inner:  inner,
		logger: logger,
	}

	s.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "vocabulary-store",
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return s
}

// isSuccessful keeps caller-side outcomes from tripping the breaker
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, domain.ErrWordNotFound)
}

// Open reports whether calls are currently rejected
func (s *Store) Open() bool {
	return s.cb.State() == gobreaker.StateOpen
}

func execute[T any](s *Store, fn func() (T, error)) (T, error) {
	result, err := s.cb.Execute(func() (interface{}, error) {
		v, err := fn()
		return v, err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}

func executeErr(s *Store, fn func() error) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	return err
}

func (s *Store) GetLanguages(ctx context.Context) ([]string, error) {
	return execute(s, func() ([]string, error) {
		return s.inner.GetLanguages(ctx)
	})
}

func (s *Store) GetLangID(ctx context.Context, tag string) (int, error) {
	return execute(s, func() (int, error) {
		return s.inner.GetLangID(ctx, tag)
	})
}

func (s *Store) AddLanguage(ctx context.Context, tag string) (int, error) {
	return execute(s, func() (int, error) {
		return s.inner.AddLanguage(ctx, tag)
	})
}

func (s *Store) GetTranslations(ctx context.Context, word string, foreignLangID, nativeLangID int) ([]string, error) {
	return execute(s, func() ([]string, error) {
		return s.inner.GetTranslations(ctx, word, foreignLangID, nativeLangID)
	})
}

func (s *Store) ListTranslations(ctx context.Context, word string, foreignLangID, nativeLangID int) ([]domain.Word, error) {
	return execute(s, func() ([]domain.Word, error) {
		return s.inner.ListTranslations(ctx, word, foreignLangID, nativeLangID)
	})
}

func (s *Store) Translate(ctx context.Context, nativeWord string, nativeLangID int, foreignWord string, foreignLangID int) error {
	return executeErr(s, func() error {
		return s.inner.Translate(ctx, nativeWord, nativeLangID, foreignWord, foreignLangID)
	})
}

func (s *Store) Untranslate(ctx context.Context, nativeWord string, nativeLangID int, foreignWord string, foreignLangID int) error {
	return executeErr(s, func() error {
		return s.inner.Untranslate(ctx, nativeWord, nativeLangID, foreignWord, foreignLangID)
	})
}

func (s *Store) GetWordID(ctx context.Context, word string, langID int) (int, error) {
	return execute(s, func() (int, error) {
		return s.inner.GetWordID(ctx, word, langID)
	})
}

func (s *Store) Update(ctx context.Context, wordID int, text string) error {
	return executeErr(s, func() error {
		return s.inner.Update(ctx, wordID, text)
	})
}

func (s *Store) Remove(ctx context.Context, wordID int) error {
	return executeErr(s, func() error {
		return s.inner.Remove(ctx, wordID)
	})
}

// IsHealthy probes the wrapped store through the breaker. An open breaker
// reports unhealthy without touching the database.
func (s *Store) IsHealthy(ctx context.Context) bool {
	err := executeErr(s, func() error {
		if !s.inner.IsHealthy(ctx) {
			return errUnhealthy
		}
		return nil
	})
	return err == nil
}
