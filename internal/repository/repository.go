package repository

import (
	"context"

	"thesaurus/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(ctx context.Context, userID int64) (bool, error)
	AuthorizeUser(ctx context.Context, userID int64) error
	EnsureUserExists(ctx context.Context, userID int64) error
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
	SetForeignLanguage(ctx context.Context, userID int64, tag string) error
	SetNativeLanguage(ctx context.Context, userID int64, tag string) error
}

// VocabularyStore defines vocabulary data operations.
// Lookups return 0 ids and empty slices when nothing matches; errors are
// reserved for failed queries.
type VocabularyStore interface {
	GetLanguages(ctx context.Context) ([]string, error)
	GetLangID(ctx context.Context, tag string) (int, error)
	AddLanguage(ctx context.Context, tag string) (int, error)
	GetTranslations(ctx context.Context, word string, foreignLangID, nativeLangID int) ([]string, error)
	ListTranslations(ctx context.Context, word string, foreignLangID, nativeLangID int) ([]domain.Word, error)
	Translate(ctx context.Context, nativeWord string, nativeLangID int, foreignWord string, foreignLangID int) error
	Untranslate(ctx context.Context, nativeWord string, nativeLangID int, foreignWord string, foreignLangID int) error
	GetWordID(ctx context.Context, word string, langID int) (int, error)
	Update(ctx context.Context, wordID int, text string) error
	Remove(ctx context.Context, wordID int) error
	IsHealthy(ctx context.Context) bool
}
