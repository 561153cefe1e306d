package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKind(t *testing.T) {
	configErr := NewConfigurationError("resolve language pair", ErrLanguageNotFound)
	storeErr := NewStoreQueryError("get translations", errors.New("connection reset"))
	wrapped := fmt.Errorf("analyze: %w", storeErr)

	assert.True(t, IsKind(configErr, KindConfiguration))
	assert.False(t, IsKind(configErr, KindStoreQuery))
	assert.True(t, IsKind(wrapped, KindStoreQuery))
	assert.False(t, IsKind(errors.New("plain"), KindStoreQuery))
	assert.ErrorIs(t, configErr, ErrLanguageNotFound)
}

func TestError_Error(t *testing.T) {
	err := NewConfigurationError("resolve language pair", ErrNativeLanguageNotSet)
	assert.Equal(t, "resolve language pair: configuration error: native language is not set", err.Error())

	alignment := NewAlignmentError(2, 3)
	assert.ErrorIs(t, alignment, ErrLineCountMismatch)
	assert.Contains(t, alignment.Error(), "2 foreign, 3 native")
}
