package service

import (
	"context"
	"fmt"
	"testing"

	"thesaurus/internal/cache"
	"thesaurus/internal/domain"
	"thesaurus/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolver_ResolveLanguagePair(t *testing.T) {
	tests := []struct {
		name          string
		foreignTag    string
		nativeTag     string
		setupMock     func(*testutil.MockVocabularyStore)
		expected      domain.LanguagePair
		expectedKind  domain.ErrorKind
		expectedCause error
	}{
		{
			name:       "tags normalized and resolved",
			foreignTag: "DE",
			nativeTag:  "en_US",
			setupMock: func(m *testutil.MockVocabularyStore) {
				m.On("GetLangID", mock.Anything, "de").Return(1, nil)
				m.On("GetLangID", mock.Anything, "en").Return(2, nil)
			},
			expected: domain.LanguagePair{ForeignID: 1, NativeID: 2, ForeignTag: "de", NativeTag: "en"},
		},
		{
			name:          "native language not set",
			foreignTag:    "de",
			nativeTag:     "",
			setupMock:     func(m *testutil.MockVocabularyStore) {},
			expectedKind:  domain.KindConfiguration,
			expectedCause: domain.ErrNativeLanguageNotSet,
		},
		{
			name:          "foreign language not set",
			foreignTag:    "",
			nativeTag:     "en",
			setupMock:     func(m *testutil.MockVocabularyStore) {},
			expectedKind:  domain.KindConfiguration,
			expectedCause: domain.ErrForeignLanguageNotSet,
		},
		{
			name:       "unknown language",
			foreignTag: "de",
			nativeTag:  "fr",
			setupMock: func(m *testutil.MockVocabularyStore) {
				m.On("GetLangID", mock.Anything, "de").Return(1, nil)
				m.On("GetLangID", mock.Anything, "fr").Return(0, nil)
			},
			expectedKind:  domain.KindConfiguration,
			expectedCause: domain.ErrLanguageNotFound,
		},
		{
			name:          "invalid tag",
			foreignTag:    "??",
			nativeTag:     "en",
			setupMock:     func(m *testutil.MockVocabularyStore) {},
			expectedKind:  domain.KindConfiguration,
			expectedCause: domain.ErrInvalidLanguageTag,
		},
		{
			name:       "store failure",
			foreignTag: "de",
			nativeTag:  "en",
			setupMock: func(m *testutil.MockVocabularyStore) {
				m.On("GetLangID", mock.Anything, "de").Return(0, fmt.Errorf("connection reset"))
			},
			expectedKind: domain.KindStoreQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(testutil.MockVocabularyStore)
			tt.setupMock(store)

			resolver := NewResolver(store, cache.NewTranslationCache(), testutil.NewTestLogger())

			pair, err := resolver.ResolveLanguagePair(context.Background(), tt.foreignTag, tt.nativeTag)

			if tt.expectedKind != 0 {
				require.Error(t, err)
				assert.True(t, domain.IsKind(err, tt.expectedKind))
				if tt.expectedCause != nil {
					assert.ErrorIs(t, err, tt.expectedCause)
				}
				assert.True(t, pair.IsZero())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, pair)
			}

			store.AssertExpectations(t)
		})
	}
}

func TestResolver_Resolve(t *testing.T) {
	store := new(testutil.MockVocabularyStore)
	store.On("GetTranslations", mock.Anything, "Hund", 1, 2).Return([]string{"dog"}, nil).Once()
	store.On("GetTranslations", mock.Anything, "bellt", 1, 2).Return([]string{}, nil).Once()

	c := cache.NewTranslationCache()
	resolver := NewResolver(store, c, testutil.NewTestLogger())

	tokens := []domain.Token{
		domain.NewWord("Hund"),
		domain.NewSeparator(" "),
		domain.NewWord("bellt"),
		domain.NewSeparator("."),
	}

	resolved, err := resolver.Resolve(context.Background(), tokens, testutil.NewTestPair(), true)

	require.NoError(t, err)
	assert.Equal(t, []domain.Token{
		{Text: "Hund", Kind: domain.KindWord, Translations: []string{"dog"}},
		{Text: " ", Kind: domain.KindSeparator},
		{Text: "bellt", Kind: domain.KindWord, Translations: []string{}},
		{Text: ".", Kind: domain.KindSeparator},
	}, resolved)
	assert.Nil(t, tokens[0].Translations)

	cached, ok := c.Lookup("Hund")
	assert.True(t, ok)
	assert.Equal(t, []string{"dog"}, cached)

	_, ok = c.Lookup("bellt")
	assert.False(t, ok)

	store.AssertExpectations(t)
}

func TestResolver_Resolve_CacheHit(t *testing.T) {
	store := new(testutil.MockVocabularyStore)

	c := cache.NewTranslationCache()
	c.Put("Hund", []string{"dog", "hound"})
	resolver := NewResolver(store, c, testutil.NewTestLogger())

	resolved, err := resolver.Resolve(context.Background(), []domain.Token{domain.NewWord("Hund")}, testutil.NewTestPair(), true)

	require.NoError(t, err)
	assert.Equal(t, []string{"dog", "hound"}, resolved[0].Translations)
	store.AssertNotCalled(t, "GetTranslations", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolver_Resolve_WithoutCache(t *testing.T) {
	store := new(testutil.MockVocabularyStore)
	store.On("GetTranslations", mock.Anything, "Hund", 1, 2).Return([]string{"dog"}, nil)

	c := cache.NewTranslationCache()
	c.Put("Hund", []string{"stale"})
	resolver := NewResolver(store, c, testutil.NewTestLogger())

	tokens := []domain.Token{domain.NewWord("Hund"), domain.NewSeparator(" "), domain.NewWord("Hund")}

	resolved, err := resolver.Resolve(context.Background(), tokens, testutil.NewTestPair(), false)

	require.NoError(t, err)
	assert.Equal(t, []string{"dog"}, resolved[0].Translations)
	assert.Equal(t, []string{"dog"}, resolved[2].Translations)
	store.AssertNumberOfCalls(t, "GetTranslations", 2)

	cached, _ := c.Lookup("Hund")
	assert.Equal(t, []string{"dog"}, cached)
}

func TestResolver_Resolve_StoreError(t *testing.T) {
	store := new(testutil.MockVocabularyStore)
	store.On("GetTranslations", mock.Anything, "Hund", 1, 2).Return(nil, fmt.Errorf("connection reset"))

	resolver := NewResolver(store, cache.NewTranslationCache(), testutil.NewTestLogger())

	resolved, err := resolver.Resolve(context.Background(), []domain.Token{domain.NewWord("Hund")}, testutil.NewTestPair(), true)

	assert.Nil(t, resolved)
	assert.True(t, domain.IsKind(err, domain.KindStoreQuery))
}
