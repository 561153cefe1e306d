// Package i18n holds the bot's message catalogs.
package i18n

import (
	"embed"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

var catalogs = []string{"active.ru.toml", "active.en.toml"}

// T renders localized messages
type T interface {
	T(locale, key string, data map[string]any) string
}

var _ T = (*Translator)(nil)

// Translator is a thin wrapper around a go-i18n bundle
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	logger          *zap.Logger
}

// NewTranslator loads the embedded catalogs. Messages missing in a
// requested locale fall back to defaultLocale.
func NewTranslator(defaultLocale string, logger *zap.Logger) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		logger.Warn("Unknown default locale, using English",
			zap.String("locale", defaultLocale),
			zap.Error(err),
		)
		tag = language.English
	}

	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range catalogs {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Error("Failed to load message catalog",
				zap.String("file", file),
				zap.Error(err),
			)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		logger:          logger,
	}
}

// T renders the message key for locale. Unknown keys render as the key.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := make([]string, 0, 2)
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Warn("Failed to localize message",
			zap.String("key", key),
			zap.Strings("locales", languages),
			zap.Error(err),
		)
		return key
	}
	return msg
}
