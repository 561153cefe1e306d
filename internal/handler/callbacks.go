package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	foreignLangPrefix = "lang_f_"
	nativeLangPrefix  = "lang_n_"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Message was already edited by another callback
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Static buttons whose Unique did not come through
	switch data {
	case btnForeign.Unique:
		return h.handleChooseForeign(c)
	case btnNative.Unique:
		return h.handleChooseNative(c)
	case btnCancel.Unique:
		return h.handleCancel(c)
	case btnMainMenu.Unique:
		return h.handleStart(c)
	}

	// Handle by Data prefix (dynamic buttons)
	switch {
	case strings.HasPrefix(data, foreignLangPrefix):
		return h.handleLanguageSelection(c, strings.TrimPrefix(data, foreignLangPrefix), true)
	case strings.HasPrefix(data, nativeLangPrefix):
		return h.handleLanguageSelection(c, strings.TrimPrefix(data, nativeLangPrefix), false)
	case strings.HasPrefix(data, wordRemovePrefix):
		return h.handleWordRemoval(c, data)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleLanguageMenu handles /lang. "/lang de en" sets both languages
// directly; without arguments the main menu is shown.
func (h *Handler) handleLanguageMenu(c tele.Context) error {
	fields := strings.Fields(c.Message().Payload)
	if len(fields) == 0 {
		return h.showMenu(c)
	}

	ctx, cancel := requestContext()
	defer cancel()

	userID := c.Sender().ID
	foreign, err := h.settingsService.SetForeignLanguage(ctx, userID, fields[0])
	if err != nil {
		return h.sendLanguageError(c, fields[0], err)
	}
	if err := c.Send(h.t(c, "lang_foreign_set", map[string]any{"Tag": foreign})); err != nil {
		return err
	}

	if len(fields) > 1 {
		native, err := h.settingsService.SetNativeLanguage(ctx, userID, fields[1])
		if err != nil {
			return h.sendLanguageError(c, fields[1], err)
		}
		return c.Send(h.t(c, "lang_native_set", map[string]any{"Tag": native}))
	}
	return nil
}

// handleNative handles "/native [tag]"
func (h *Handler) handleNative(c tele.Context) error {
	tag := strings.TrimSpace(c.Message().Payload)
	if tag == "" {
		return h.handleChooseNative(c)
	}

	ctx, cancel := requestContext()
	defer cancel()

	native, err := h.settingsService.SetNativeLanguage(ctx, c.Sender().ID, tag)
	if err != nil {
		return h.sendLanguageError(c, tag, err)
	}
	return c.Send(h.t(c, "lang_native_set", map[string]any{"Tag": native}))
}

func (h *Handler) handleChooseForeign(c tele.Context) error {
	return h.showLanguages(c, "lang_choose_foreign", foreignLangPrefix)
}

func (h *Handler) handleChooseNative(c tele.Context) error {
	return h.showLanguages(c, "lang_choose_native", nativeLangPrefix)
}

// showLanguages lists the store's languages as buttons
func (h *Handler) showLanguages(c tele.Context, titleKey, prefix string) error {
	ctx, cancel := requestContext()
	defer cancel()

	languages, err := h.settingsService.AvailableLanguages(ctx)
	if err != nil {
		if c.Callback() != nil {
			if ackErr := c.Respond(); ackErr != nil {
				h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
			}
		}
		return h.sendError(c, "list languages", err)
	}

	if len(languages) == 0 {
		if c.Callback() == nil {
			return c.Send(h.t(c, "lang_none", nil))
		}
		return c.Respond(&tele.CallbackResponse{
			Text:      h.t(c, "lang_none", nil),
			ShowAlert: true,
		})
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	row := tele.Row{}
	for _, tag := range languages {
		row = append(row, markup.Data(tag, prefix+tag))
		if len(row) == 4 {
			rows = append(rows, row)
			row = tele.Row{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, markup.Row(h.button(c, markup, btnMainMenu, "menu_back")))
	markup.Inline(rows...)

	text := h.t(c, titleKey, nil)
	if c.Callback() == nil {
		return c.Send(text, markup)
	}
	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleLanguageSelection stores the chosen language and returns to the menu
func (h *Handler) handleLanguageSelection(c tele.Context, tag string, foreign bool) error {
	ctx, cancel := requestContext()
	defer cancel()

	userID := c.Sender().ID

	var (
		normalized string
		err        error
	)
	if foreign {
		normalized, err = h.settingsService.SetForeignLanguage(ctx, userID, tag)
	} else {
		normalized, err = h.settingsService.SetNativeLanguage(ctx, userID, tag)
	}
	if err != nil {
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return h.sendLanguageError(c, tag, err)
	}

	h.logger.Info("Language changed",
		zap.Int64("user_id", userID),
		zap.String("tag", normalized),
		zap.Bool("foreign", foreign),
	)

	return h.showMenu(c)
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.showMenu(c)
}

func (h *Handler) sendLanguageError(c tele.Context, tag string, err error) error {
	if errorKey(err) == "lang_missing" {
		return c.Send(h.t(c, "lang_unknown", map[string]any{"Tag": tag}))
	}
	return h.sendError(c, "set language", err)
}
