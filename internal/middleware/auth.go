package middleware

import (
	"context"
	"strings"
	"time"

	"thesaurus/internal/i18n"
	"thesaurus/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const authTimeout = 5 * time.Second

// AuthMiddleware lets authorized users through. Unauthorized users may
// only use /start and send plain text, which is checked as the password.
func AuthMiddleware(authService *service.AuthService, tr i18n.T, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
			defer cancel()

			// Ensure user exists
			if err := authService.EnsureUserExists(ctx, sender.ID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return c.Send(tr.T(sender.LanguageCode, "error_generic", nil))
			}

			// Check authorization
			authorized, err := authService.IsAuthorized(ctx, sender.ID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send(tr.T(sender.LanguageCode, "error_generic", nil))
			}

			if authorized || passwordAttempt(c) {
				return next(c)
			}

			logger.Debug("Rejected unauthorized update", zap.Int64("user_id", sender.ID))
			if c.Callback() != nil {
				return c.Respond(&tele.CallbackResponse{
					Text:      tr.T(sender.LanguageCode, "auth_required", nil),
					ShowAlert: true,
				})
			}
			return c.Send(tr.T(sender.LanguageCode, "auth_required", nil))
		}
	}
}

// passwordAttempt reports whether c is /start or a plain text message
func passwordAttempt(c tele.Context) bool {
	if c.Callback() != nil || c.Message() == nil {
		return false
	}
	text := strings.TrimSpace(c.Text())
	if text == "" {
		return false
	}
	return text == "/start" || !strings.HasPrefix(text, "/")
}
