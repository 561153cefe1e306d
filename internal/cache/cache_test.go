package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslationCache_Lifecycle(t *testing.T) {
	c := NewTranslationCache()

	c.AddTranslation("Hund", "dog")
	translations, ok := c.Lookup("Hund")
	assert.True(t, ok)
	assert.Contains(t, translations, "dog")

	c.RemoveTranslation("Hund", "dog")
	_, ok = c.Lookup("Hund")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestTranslationCache_Put(t *testing.T) {
	tests := []struct {
		name         string
		translations []string
		expected     []string
		expectedHit  bool
	}{
		{
			name:         "ordered list",
			translations: []string{"dog", "hound"},
			expected:     []string{"dog", "hound"},
			expectedHit:  true,
		},
		{
			name:         "duplicates removed keeping first",
			translations: []string{"dog", "hound", "dog"},
			expected:     []string{"dog", "hound"},
			expectedHit:  true,
		},
		{
			name:         "empty list ignored",
			translations: []string{},
			expected:     nil,
			expectedHit:  false,
		},
		{
			name:         "nil list ignored",
			translations: nil,
			expected:     nil,
			expectedHit:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewTranslationCache()
			c.Put("Hund", tt.translations)

			result, ok := c.Lookup("Hund")
			assert.Equal(t, tt.expectedHit, ok)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTranslationCache_AddTranslation(t *testing.T) {
	c := NewTranslationCache()
	c.Put("Hund", []string{"dog"})

	c.AddTranslation("Hund", "hound")
	c.AddTranslation("Hund", "dog")

	result, _ := c.Lookup("Hund")
	assert.Equal(t, []string{"dog", "hound"}, result)
}

func TestTranslationCache_RemoveTranslation(t *testing.T) {
	c := NewTranslationCache()
	c.Put("Hund", []string{"dog", "hound"})

	c.RemoveTranslation("Hund", "dog")
	result, ok := c.Lookup("Hund")
	assert.True(t, ok)
	assert.Equal(t, []string{"hound"}, result)

	c.RemoveTranslation("Hund", "cat")
	result, _ = c.Lookup("Hund")
	assert.Equal(t, []string{"hound"}, result)

	c.RemoveTranslation("Katze", "cat")
	assert.Equal(t, 1, c.Len())
}

func TestTranslationCache_LookupReturnsCopy(t *testing.T) {
	c := NewTranslationCache()
	c.Put("Hund", []string{"dog"})

	result, _ := c.Lookup("Hund")
	result[0] = "cat"

	again, _ := c.Lookup("Hund")
	assert.Equal(t, []string{"dog"}, again)
}

func TestTranslationCache_ExactMatch(t *testing.T) {
	c := NewTranslationCache()
	c.Put("Hund", []string{"dog"})

	_, ok := c.Lookup("hund")
	assert.False(t, ok)
}

func TestTranslationCache_Clear(t *testing.T) {
	c := NewTranslationCache()
	c.Put("Hund", []string{"dog"})
	c.Put("Katze", []string{"cat"})

	c.Clear()

	assert.Equal(t, 0, c.Len())
	_, ok := c.Lookup("Hund")
	assert.False(t, ok)
}
