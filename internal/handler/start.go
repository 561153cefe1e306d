package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	ctx, cancel := requestContext()
	defer cancel()

	// Ensure user exists in database
	if err := h.authService.EnsureUserExists(ctx, userID); err != nil {
		return h.sendError(c, "ensure user", err)
	}

	// Check if authorized
	authorized, err := h.authService.IsAuthorized(ctx, userID)
	if err != nil {
		return h.sendError(c, "check authorization", err)
	}

	h.ResetState(userID)
	if !authorized {
		return c.Send(h.t(c, "start_password", nil))
	}

	return h.showMenu(c)
}

// showMenu shows the main menu with the user's languages
func (h *Handler) showMenu(c tele.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	foreign, native, err := h.settingsService.Languages(ctx, c.Sender().ID)
	if err != nil {
		return h.sendError(c, "load languages", err)
	}

	text := h.t(c, "menu_title", map[string]any{
		"Foreign": orDash(foreign),
		"Native":  orDash(native),
	})

	if c.Callback() != nil {
		if err := c.Edit(text, h.mainMenuMarkup(c)); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil
			}
			return c.Send(text, h.mainMenuMarkup(c))
		}
		return c.Respond()
	}
	return c.Send(text, h.mainMenuMarkup(c))
}

func orDash(tag string) string {
	if tag == "" {
		return "-"
	}
	return tag
}
