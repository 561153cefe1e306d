package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"thesaurus/internal/testutil"
)

func TestTranslator_T(t *testing.T) {
	tr := NewTranslator("ru", testutil.NewTestLogger())

	tests := []struct {
		name     string
		locale   string
		key      string
		data     map[string]any
		expected string
	}{
		{
			name:     "english message",
			locale:   "en",
			key:      "auth_wrong_password",
			expected: "Wrong password",
		},
		{
			name:     "russian message",
			locale:   "ru",
			key:      "auth_wrong_password",
			expected: "Неверный пароль",
		},
		{
			name:     "unsupported locale falls back to default",
			locale:   "fr",
			key:      "auth_wrong_password",
			expected: "Неверный пароль",
		},
		{
			name:     "empty locale uses default",
			locale:   "",
			key:      "word_removed",
			expected: "Слово удалено",
		},
		{
			name:     "template data",
			locale:   "en",
			key:      "translation_added",
			data:     map[string]any{"Word": "Haus", "Translation": "house"},
			expected: "Added: Haus → house",
		},
		{
			name:     "unknown key renders as key",
			locale:   "en",
			key:      "no_such_message",
			expected: "no_such_message",
		},
		{
			name:     "empty key",
			locale:   "en",
			key:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tr.T(tt.locale, tt.key, tt.data))
		})
	}
}

func TestTranslator_CatalogsHaveSameKeys(t *testing.T) {
	tr := NewTranslator("en", testutil.NewTestLogger())

	keys := []string{
		"error_generic", "store_unavailable", "start_password", "auth_granted",
		"menu_title", "lang_choose_foreign", "lang_choose_native", "analysis_caption",
		"edit_mode", "translations_header", "word_usage_rename",
	}
	for _, key := range keys {
		assert.NotEqual(t, key, tr.T("ru", key, nil), "ru: %s", key)
		assert.NotEqual(t, key, tr.T("en", key, nil), "en: %s", key)
	}
}

func TestNewTranslator_InvalidDefaultLocale(t *testing.T) {
	tr := NewTranslator("not a locale!", testutil.NewTestLogger())
	assert.Equal(t, "Wrong password", tr.T("", "auth_wrong_password", nil))
}
