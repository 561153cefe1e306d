package testutil

import (
	"context"

	"thesaurus/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SetForeignLanguage(ctx context.Context, userID int64, tag string) error {
	args := m.Called(ctx, userID, tag)
	return args.Error(0)
}

func (m *MockUserRepository) SetNativeLanguage(ctx context.Context, userID int64, tag string) error {
	args := m.Called(ctx, userID, tag)
	return args.Error(0)
}

// MockVocabularyStore is a mock for VocabularyStore
type MockVocabularyStore struct {
	mock.Mock
}

func (m *MockVocabularyStore) GetLanguages(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockVocabularyStore) GetLangID(ctx context.Context, tag string) (int, error) {
	args := m.Called(ctx, tag)
	return args.Int(0), args.Error(1)
}

func (m *MockVocabularyStore) AddLanguage(ctx context.Context, tag string) (int, error) {
	args := m.Called(ctx, tag)
	return args.Int(0), args.Error(1)
}

func (m *MockVocabularyStore) GetTranslations(ctx context.Context, word string, foreignLangID, nativeLangID int) ([]string, error) {
	args := m.Called(ctx, word, foreignLangID, nativeLangID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockVocabularyStore) ListTranslations(ctx context.Context, word string, foreignLangID, nativeLangID int) ([]domain.Word, error) {
	args := m.Called(ctx, word, foreignLangID, nativeLangID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockVocabularyStore) Translate(ctx context.Context, nativeWord string, nativeLangID int, foreignWord string, foreignLangID int) error {
	args := m.Called(ctx, nativeWord, nativeLangID, foreignWord, foreignLangID)
	return args.Error(0)
}

func (m *MockVocabularyStore) Untranslate(ctx context.Context, nativeWord string, nativeLangID int, foreignWord string, foreignLangID int) error {
	args := m.Called(ctx, nativeWord, nativeLangID, foreignWord, foreignLangID)
	return args.Error(0)
}

func (m *MockVocabularyStore) GetWordID(ctx context.Context, word string, langID int) (int, error) {
	args := m.Called(ctx, word, langID)
	return args.Int(0), args.Error(1)
}

func (m *MockVocabularyStore) Update(ctx context.Context, wordID int, text string) error {
	args := m.Called(ctx, wordID, text)
	return args.Error(0)
}

func (m *MockVocabularyStore) Remove(ctx context.Context, wordID int) error {
	args := m.Called(ctx, wordID)
	return args.Error(0)
}

func (m *MockVocabularyStore) IsHealthy(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}
