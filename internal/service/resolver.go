package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"thesaurus/internal/cache"
	"thesaurus/internal/domain"
	"thesaurus/internal/repository"
)

// Resolver attaches vocabulary store translations to word tokens
type Resolver struct {
	store  repository.VocabularyStore
	cache  *cache.TranslationCache
	logger *zap.Logger
}

// NewResolver creates a new translation resolver
func NewResolver(store repository.VocabularyStore, cache *cache.TranslationCache, logger *zap.Logger) *Resolver {
	return &Resolver{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// ResolveLanguagePair looks up the store ids of a foreign and a native tag
func (r *Resolver) ResolveLanguagePair(ctx context.Context, foreignTag, nativeTag string) (domain.LanguagePair, error) {
	const op = "resolve language pair"

	if foreignTag == "" {
		return domain.LanguagePair{}, domain.NewConfigurationError(op, domain.ErrForeignLanguageNotSet)
	}
	if nativeTag == "" {
		return domain.LanguagePair{}, domain.NewConfigurationError(op, domain.ErrNativeLanguageNotSet)
	}

	foreignTag, foreignID, err := r.languageID(ctx, op, foreignTag)
	if err != nil {
		return domain.LanguagePair{}, err
	}
	nativeTag, nativeID, err := r.languageID(ctx, op, nativeTag)
	if err != nil {
		return domain.LanguagePair{}, err
	}

	return domain.LanguagePair{
		ForeignID:  foreignID,
		NativeID:   nativeID,
		ForeignTag: foreignTag,
		NativeTag:  nativeTag,
	}, nil
}

func (r *Resolver) languageID(ctx context.Context, op, tag string) (string, int, error) {
	normalized, err := domain.NormalizeTag(tag)
	if err != nil {
		return "", 0, domain.NewConfigurationError(op, err)
	}

	id, err := r.store.GetLangID(ctx, normalized)
	if err != nil {
		return "", 0, domain.NewStoreQueryError(op, err)
	}
	// 0 is the store's "not found" answer; stored ids start at 1
	if id == 0 {
		return "", 0, domain.NewConfigurationError(op, fmt.Errorf("%w: %q", domain.ErrLanguageNotFound, normalized))
	}

	return normalized, id, nil
}

// Resolve returns a copy of tokens with translations attached to every word.
// With useCache the session cache is consulted first; store results that are
// not empty are written back to it.
func (r *Resolver) Resolve(ctx context.Context, tokens []domain.Token, pair domain.LanguagePair, useCache bool) ([]domain.Token, error) {
	resolved := make([]domain.Token, len(tokens))
	queries := 0

	for i, token := range tokens {
		resolved[i] = token
		if !token.IsWord() {
			continue
		}

		if useCache {
			if translations, ok := r.cache.Lookup(token.Text); ok {
				resolved[i].Translations = translations
				continue
			}
		}

		translations, err := r.store.GetTranslations(ctx, token.Text, pair.ForeignID, pair.NativeID)
		if err != nil {
			return nil, domain.NewStoreQueryError("resolve", err)
		}
		queries++

		resolved[i].Translations = translations
		r.cache.Put(token.Text, translations)
	}

	r.logger.Debug("Tokens resolved",
		zap.Int("tokens", len(tokens)),
		zap.Int("store_queries", queries),
		zap.Bool("use_cache", useCache),
	)

	return resolved, nil
}
