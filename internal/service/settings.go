package service

import (
	"context"
	"fmt"

	"thesaurus/internal/domain"
	"thesaurus/internal/repository"
)

// SettingsService manages the reading languages of a user
type SettingsService struct {
	userRepo       repository.UserRepository
	store          repository.VocabularyStore
	defaultForeign string
	defaultNative  string
}

// NewSettingsService creates a new settings service. The defaults apply to
// users who never picked a language.
func NewSettingsService(userRepo repository.UserRepository, store repository.VocabularyStore, defaultForeign, defaultNative string) *SettingsService {
	return &SettingsService{
		userRepo:       userRepo,
		store:          store,
		defaultForeign: defaultForeign,
		defaultNative:  defaultNative,
	}
}

// Languages returns the foreign and native language tags of a user
func (s *SettingsService) Languages(ctx context.Context, userID int64) (string, string, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return "", "", err
	}

	foreign, native := s.defaultForeign, s.defaultNative
	if user != nil {
		if user.ForeignLang != "" {
			foreign = user.ForeignLang
		}
		if user.NativeLang != "" {
			native = user.NativeLang
		}
	}
	return foreign, native, nil
}

// AvailableLanguages lists the languages known to the vocabulary store
func (s *SettingsService) AvailableLanguages(ctx context.Context) ([]string, error) {
	languages, err := s.store.GetLanguages(ctx)
	if err != nil {
		return nil, domain.NewStoreQueryError("list languages", err)
	}
	return languages, nil
}

// SetForeignLanguage stores the language the user reads
func (s *SettingsService) SetForeignLanguage(ctx context.Context, userID int64, tag string) (string, error) {
	normalized, err := s.knownLanguage(ctx, "set foreign language", tag)
	if err != nil {
		return "", err
	}
	if err := s.userRepo.SetForeignLanguage(ctx, userID, normalized); err != nil {
		return "", err
	}
	return normalized, nil
}

// SetNativeLanguage stores the language translations are shown in
func (s *SettingsService) SetNativeLanguage(ctx context.Context, userID int64, tag string) (string, error) {
	normalized, err := s.knownLanguage(ctx, "set native language", tag)
	if err != nil {
		return "", err
	}
	if err := s.userRepo.SetNativeLanguage(ctx, userID, normalized); err != nil {
		return "", err
	}
	return normalized, nil
}

func (s *SettingsService) knownLanguage(ctx context.Context, op, tag string) (string, error) {
	normalized, err := domain.NormalizeTag(tag)
	if err != nil {
		return "", domain.NewConfigurationError(op, err)
	}

	id, err := s.store.GetLangID(ctx, normalized)
	if err != nil {
		return "", domain.NewStoreQueryError(op, err)
	}
	if id == 0 {
		return "", domain.NewConfigurationError(op, fmt.Errorf("%w: %q", domain.ErrLanguageNotFound, normalized))
	}
	return normalized, nil
}
