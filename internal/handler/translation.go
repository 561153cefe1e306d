package handler

import (
	"fmt"
	"strconv"
	"strings"

	"thesaurus/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const wordRemovePrefix = "word_rm_"

// handleAdd handles "/add word = translation". Without a translation the
// bot waits for it in the next message.
func (h *Handler) handleAdd(c tele.Context) error {
	word, translation, ok := h.parseTranslation(c.Message().Payload)
	if !ok {
		return c.Send(h.t(c, "translation_usage_add", nil))
	}
	if translation == "" {
		h.SetState(c.Sender().ID, &domain.StateData{
			State:       domain.StateWaitingTranslation,
			CurrentWord: word,
		})
		return c.Send(h.t(c, "translation_ask", map[string]any{"Word": word}), h.cancelMarkup(c))
	}
	return h.addTranslation(c, word, translation)
}

// handleRemove handles "/remove word = translation"
func (h *Handler) handleRemove(c tele.Context) error {
	word, translation, ok := h.parseTranslation(c.Message().Payload)
	if !ok {
		return c.Send(h.t(c, "translation_usage_remove", nil))
	}
	if translation == "" {
		h.SetState(c.Sender().ID, &domain.StateData{
			State:       domain.StateWaitingRemoval,
			CurrentWord: word,
		})
		return c.Send(h.t(c, "translation_ask_removal", map[string]any{"Word": word}), h.cancelMarkup(c))
	}
	return h.removeTranslation(c, word, translation)
}

func (h *Handler) addTranslation(c tele.Context, word, translation string) error {
	ctx, cancel := requestContext()
	defer cancel()

	analysis, err := h.Engine(c.Sender().ID).AddTranslation(ctx, word, translation)
	if err != nil {
		return h.sendError(c, "add translation", err)
	}

	h.logger.Info("Translation added",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("word", word),
		zap.String("translation", translation),
	)

	data := map[string]any{"Word": word, "Translation": strings.TrimSpace(translation)}
	return h.sendMutation(c, h.t(c, "translation_added", data), analysis)
}

func (h *Handler) removeTranslation(c tele.Context, word, translation string) error {
	ctx, cancel := requestContext()
	defer cancel()

	analysis, err := h.Engine(c.Sender().ID).RemoveTranslation(ctx, word, translation)
	if err != nil {
		return h.sendError(c, "remove translation", err)
	}

	h.logger.Info("Translation removed",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("word", word),
		zap.String("translation", translation),
	)

	data := map[string]any{"Word": word, "Translation": strings.TrimSpace(translation)}
	return h.sendMutation(c, h.t(c, "translation_removed", data), analysis)
}

// handleWords handles "/words word": lists stored translations with a
// remove button for each
func (h *Handler) handleWords(c tele.Context) error {
	word := h.cleanWord(c.Message().Payload)
	if word == "" {
		return c.Send(h.t(c, "word_usage_list", nil))
	}

	ctx, cancel := requestContext()
	defer cancel()

	words, err := h.Engine(c.Sender().ID).Translations(ctx, word)
	if err != nil {
		return h.sendError(c, "list translations", err)
	}

	if len(words) == 0 {
		return c.Send(h.t(c, "translations_none", map[string]any{"Word": word}))
	}

	var text strings.Builder
	text.WriteString(h.t(c, "translations_header", map[string]any{"Word": word}))
	text.WriteString("\n\n")

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, w := range words {
		fmt.Fprintf(&text, "%d. %s\n", w.ID, w.Text)
		btn := markup.Data("🗑 "+w.Text, fmt.Sprintf("%s%d", wordRemovePrefix, w.ID))
		rows = append(rows, markup.Row(btn))
	}
	markup.Inline(rows...)

	return c.Send(text.String(), markup)
}

// handleRename handles "/rename id text"
func (h *Handler) handleRename(c tele.Context) error {
	wordID, text, ok := parseRename(c.Message().Payload)
	if !ok {
		return c.Send(h.t(c, "word_usage_rename", nil))
	}

	ctx, cancel := requestContext()
	defer cancel()

	analysis, err := h.Engine(c.Sender().ID).UpdateWord(ctx, wordID, text)
	if err != nil {
		return h.sendError(c, "update word", err)
	}
	return h.sendMutation(c, h.t(c, "word_updated", nil), analysis)
}

// handleWordRemoval removes the word behind a "word_rm_<id>" button
func (h *Handler) handleWordRemoval(c tele.Context, data string) error {
	wordID, err := strconv.Atoi(strings.TrimPrefix(data, wordRemovePrefix))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: h.t(c, "word_not_found", nil)})
	}

	ctx, cancel := requestContext()
	defer cancel()

	analysis, err := h.Engine(c.Sender().ID).RemoveWord(ctx, wordID)
	if err != nil {
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return h.sendError(c, "remove word", err)
	}

	if err := c.Respond(&tele.CallbackResponse{Text: h.t(c, "word_removed", nil)}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	if analysis == nil {
		return nil
	}
	return h.sendAnalysis(c, *analysis)
}

// parseTranslation splits "word = translation" and strips punctuation
// around both sides. The translation may be empty; the word may not.
func (h *Handler) parseTranslation(payload string) (string, string, bool) {
	left, right, _ := strings.Cut(payload, "=")
	word := h.cleanWord(left)
	if word == "" {
		return "", "", false
	}
	return word, h.tokenizer.TrimSeparators(strings.TrimSpace(right)), true
}

// cleanWord extracts the first word of user input
func (h *Handler) cleanWord(input string) string {
	return h.tokenizer.WordAt(strings.TrimSpace(input), 0)
}

// parseRename splits "id text"
func parseRename(payload string) (int, string, bool) {
	idStr, text, found := strings.Cut(strings.TrimSpace(payload), " ")
	if !found {
		return 0, "", false
	}
	wordID, err := strconv.Atoi(idStr)
	if err != nil || wordID <= 0 {
		return 0, "", false
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, "", false
	}
	return wordID, text, true
}
