package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"thesaurus/internal/cache"
	"thesaurus/internal/domain"
	"thesaurus/internal/render"
	"thesaurus/internal/repository"
	"thesaurus/internal/tokenizer"
)

// ModeObserver is notified after the engine switched modes
type ModeObserver func(from, to domain.Mode)

// Engine owns one document and its translation cache and moves it between
// editing and the rendered translation view. All methods are safe for
// concurrent use.
type Engine struct {
	mu sync.Mutex

	tokenizer *tokenizer.Tokenizer
	resolver  *Resolver
	renderer  *render.Renderer
	store     repository.VocabularyStore
	cache     *cache.TranslationCache
	logger    *zap.Logger

	mode      domain.Mode
	document  domain.Document
	analysis  domain.Analysis
	cachePair domain.LanguagePair
	observers []ModeObserver
}

// NewEngine creates a new engine in edit mode. resolver must write to the
// same cache the engine is given.
func NewEngine(
	tokenizer *tokenizer.Tokenizer,
	resolver *Resolver,
	renderer *render.Renderer,
	store repository.VocabularyStore,
	cache *cache.TranslationCache,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		tokenizer: tokenizer,
		resolver:  resolver,
		renderer:  renderer,
		store:     store,
		cache:     cache,
		logger:    logger,
		mode:      domain.ModeEdit,
	}
}

// NewReadingEngine creates an engine with its own cache and resolver
func NewReadingEngine(store repository.VocabularyStore, tokenizer *tokenizer.Tokenizer, renderer *render.Renderer, logger *zap.Logger) *Engine {
	c := cache.NewTranslationCache()
	return NewEngine(tokenizer, NewResolver(store, c, logger), renderer, store, c, logger)
}

// OnModeChange registers an observer for mode transitions
func (e *Engine) OnModeChange(observer ModeObserver) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, observer)
}

// Mode returns the current mode
func (e *Engine) Mode() domain.Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Document returns a copy of the current document
func (e *Engine) Document() domain.Document {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc := e.document
	doc.Tokens = append([]domain.Token(nil), e.document.Tokens...)
	return doc
}

// Statistics returns the statistics of the last render pass
func (e *Engine) Statistics() domain.Statistics {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.analysis.Stats
}

// Analysis returns the current rendered view, empty in edit mode
func (e *Engine) Analysis() domain.Analysis {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.analysis
}

// Analyze tokenizes, resolves and renders rawText, which becomes the
// document's original text, and switches to translate mode. On error the
// mode and document are left unchanged.
func (e *Engine) Analyze(ctx context.Context, rawText string, pair domain.LanguagePair) (*domain.Analysis, error) {
	analysis, from, err := e.analyze(ctx, rawText, pair, true)
	if err != nil {
		return nil, err
	}
	e.notify(from, domain.ModeTranslate)
	return analysis, nil
}

// AnalyzeTags resolves the language tags once and analyzes rawText
func (e *Engine) AnalyzeTags(ctx context.Context, rawText, foreignTag, nativeTag string) (*domain.Analysis, error) {
	pair, err := e.resolver.ResolveLanguagePair(ctx, foreignTag, nativeTag)
	if err != nil {
		return nil, err
	}
	return e.Analyze(ctx, rawText, pair)
}

// Refresh analyzes the original text again, bypassing the cache
func (e *Engine) Refresh(ctx context.Context) (*domain.Analysis, error) {
	e.mu.Lock()
	doc := e.document
	e.mu.Unlock()

	if doc.Pair.IsZero() {
		return nil, domain.NewConfigurationError("refresh", domain.ErrNoDocument)
	}

	analysis, from, err := e.analyze(ctx, doc.OriginalText, doc.Pair, false)
	if err != nil {
		return nil, err
	}
	e.notify(from, domain.ModeTranslate)
	return analysis, nil
}

// ResetToOriginal discards the rendered view, switches to edit mode and
// returns the original text verbatim
func (e *Engine) ResetToOriginal() string {
	e.mu.Lock()
	from := e.mode
	e.mode = domain.ModeEdit
	e.analysis = domain.Analysis{}
	e.document.Tokens = nil
	text := e.document.OriginalText
	e.mu.Unlock()

	e.notify(from, domain.ModeEdit)
	return text
}

// AddTranslation stores translation for word in both directions and adds
// it to the cache. In translate mode the original text is analyzed again
// and the new view is returned.
func (e *Engine) AddTranslation(ctx context.Context, word, translation string) (*domain.Analysis, error) {
	const op = "add translation"

	word, translation, err := cleanPair(word, translation)
	if err != nil {
		return nil, err
	}

	return e.mutate(ctx, op, func(pair domain.LanguagePair) error {
		if err := e.store.Translate(ctx, translation, pair.NativeID, word, pair.ForeignID); err != nil {
			return storeError(op, err)
		}
		e.cache.AddTranslation(word, translation)
		return nil
	})
}

// RemoveTranslation deletes the link between word and translation and
// removes translation from the cache. In translate mode the original text
// is analyzed again and the new view is returned.
func (e *Engine) RemoveTranslation(ctx context.Context, word, translation string) (*domain.Analysis, error) {
	const op = "remove translation"

	word, translation, err := cleanPair(word, translation)
	if err != nil {
		return nil, err
	}

	return e.mutate(ctx, op, func(pair domain.LanguagePair) error {
		if err := e.store.Untranslate(ctx, translation, pair.NativeID, word, pair.ForeignID); err != nil {
			return storeError(op, err)
		}
		e.cache.RemoveTranslation(word, translation)
		return nil
	})
}

// Translations lists the stored native translations of word with their ids
func (e *Engine) Translations(ctx context.Context, word string) ([]domain.Word, error) {
	const op = "list translations"

	word = strings.TrimSpace(word)
	if word == "" {
		return nil, domain.ErrEmptyWord
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	pair := e.document.Pair
	if pair.IsZero() {
		return nil, domain.NewConfigurationError(op, domain.ErrNoDocument)
	}

	words, err := e.store.ListTranslations(ctx, word, pair.ForeignID, pair.NativeID)
	if err != nil {
		return nil, storeError(op, err)
	}
	return words, nil
}

// UpdateWord changes the text of a stored word. Cached translations can not
// be mapped back to word ids, so the cache is cleared.
func (e *Engine) UpdateWord(ctx context.Context, wordID int, text string) (*domain.Analysis, error) {
	const op = "update word"

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyWord
	}

	return e.mutate(ctx, op, func(domain.LanguagePair) error {
		if err := e.store.Update(ctx, wordID, text); err != nil {
			return storeError(op, err)
		}
		e.cache.Clear()
		return nil
	})
}

// RemoveWord deletes a stored word with all its translations and clears
// the cache
func (e *Engine) RemoveWord(ctx context.Context, wordID int) (*domain.Analysis, error) {
	const op = "remove word"

	return e.mutate(ctx, op, func(domain.LanguagePair) error {
		if err := e.store.Remove(ctx, wordID); err != nil {
			return storeError(op, err)
		}
		e.cache.Clear()
		return nil
	})
}

func (e *Engine) analyze(ctx context.Context, rawText string, pair domain.LanguagePair, useCache bool) (*domain.Analysis, domain.Mode, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	from := e.mode
	analysis, err := e.run(ctx, rawText, pair, useCache)
	return analysis, from, err
}

// mutate applies fn to the store and cache of the current document and
// renders again when a translation view is shown
func (e *Engine) mutate(ctx context.Context, op string, fn func(pair domain.LanguagePair) error) (*domain.Analysis, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pair := e.document.Pair
	if pair.IsZero() {
		return nil, domain.NewConfigurationError(op, domain.ErrNoDocument)
	}

	e.useCacheFor(pair)
	if err := fn(pair); err != nil {
		return nil, err
	}

	if e.mode != domain.ModeTranslate {
		return nil, nil
	}
	return e.run(ctx, e.document.OriginalText, pair, true)
}

// run performs a full analysis. The caller holds e.mu.
func (e *Engine) run(ctx context.Context, rawText string, pair domain.LanguagePair, useCache bool) (*domain.Analysis, error) {
	const op = "analyze"

	if pair.ForeignID == 0 {
		return nil, domain.NewConfigurationError(op, domain.ErrForeignLanguageNotSet)
	}
	if pair.NativeID == 0 {
		return nil, domain.NewConfigurationError(op, domain.ErrNativeLanguageNotSet)
	}

	e.useCacheFor(pair)

	tokens := e.tokenizer.Tokenize(rawText)
	resolved, err := e.resolver.Resolve(ctx, tokens, pair, useCache)
	if err != nil {
		return nil, err
	}

	analysis := e.renderer.Render(resolved)

	e.document = domain.Document{
		OriginalText: rawText,
		Tokens:       resolved,
		Pair:         pair,
	}
	e.analysis = analysis
	e.mode = domain.ModeTranslate

	e.logger.Debug("Document analyzed",
		zap.Int("tokens", len(resolved)),
		zap.Int("known", analysis.Stats.Known),
		zap.Int("unknown", analysis.Stats.Unknown),
		zap.Int("lines", len(analysis.Lines)),
	)

	result := analysis
	return &result, nil
}

// useCacheFor clears the cache when it holds translations of another
// language pair. The caller holds e.mu.
func (e *Engine) useCacheFor(pair domain.LanguagePair) {
	if e.cachePair.SameLanguages(pair) {
		return
	}
	if e.cache.Len() > 0 {
		e.logger.Info("Language pair changed, clearing translation cache",
			zap.String("foreign", pair.ForeignTag),
			zap.String("native", pair.NativeTag),
			zap.Int("entries", e.cache.Len()),
		)
	}
	e.cache.Clear()
	e.cachePair = pair
}

func (e *Engine) notify(from, to domain.Mode) {
	if from == to {
		return
	}

	e.mu.Lock()
	observers := append([]ModeObserver(nil), e.observers...)
	e.mu.Unlock()

	for _, observer := range observers {
		observer(from, to)
	}
}

func cleanPair(word, translation string) (string, string, error) {
	word = strings.TrimSpace(word)
	translation = strings.TrimSpace(translation)

	if word == "" {
		return "", "", domain.ErrEmptyWord
	}
	if translation == "" {
		return "", "", domain.ErrEmptyTranslation
	}
	return word, translation, nil
}

// storeError classifies a failed store call. A missing word is reported as
// is; everything else is a store query failure.
func storeError(op string, err error) error {
	if errors.Is(err, domain.ErrWordNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return domain.NewStoreQueryError(op, err)
}
