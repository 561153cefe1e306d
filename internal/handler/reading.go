package handler

import (
	"bytes"
	"fmt"
	"strings"

	"thesaurus/internal/domain"
	"thesaurus/internal/render"
	"thesaurus/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const pageFileName = "reading.html"

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := c.Text()

	// Ignore commands (starting with /)
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return nil
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := h.authService.EnsureUserExists(ctx, userID); err != nil {
		return h.sendError(c, "ensure user", err)
	}

	authorized, err := h.authService.IsAuthorized(ctx, userID)
	if err != nil {
		return h.sendError(c, "check authorization", err)
	}

	// If not authorized, check password
	if !authorized {
		if !h.authService.CheckPassword(strings.TrimSpace(text)) {
			return c.Send(h.t(c, "auth_wrong_password", nil))
		}

		if err := h.authService.AuthorizeUser(ctx, userID); err != nil {
			return h.sendError(c, "authorize user", err)
		}

		h.logger.Info("User authorized", zap.Int64("user_id", userID))
		h.ResetState(userID)
		if err := c.Send(h.t(c, "auth_granted", nil)); err != nil {
			return err
		}
		return h.showMenu(c)
	}

	// User is authorized, handle based on state
	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingTranslation:
		h.ResetState(userID)
		return h.addTranslation(c, state.CurrentWord, h.tokenizer.TrimSeparators(text))

	case domain.StateWaitingRemoval:
		h.ResetState(userID)
		return h.removeTranslation(c, state.CurrentWord, h.tokenizer.TrimSeparators(text))

	default:
		return h.analyzeText(c, text)
	}
}

// analyzeText renders text with the user's languages and sends the page
func (h *Handler) analyzeText(c tele.Context, text string) error {
	userID := c.Sender().ID

	ctx, cancel := requestContext()
	defer cancel()

	foreign, native, err := h.settingsService.Languages(ctx, userID)
	if err != nil {
		return h.sendError(c, "load languages", err)
	}

	analysis, err := h.Engine(userID).AnalyzeTags(ctx, text, foreign, native)
	if err != nil {
		return h.sendError(c, "analyze", err)
	}

	h.logger.Info("Text analyzed",
		zap.Int64("user_id", userID),
		zap.Int("known", analysis.Stats.Known),
		zap.Int("unknown", analysis.Stats.Unknown),
	)

	return h.sendAnalysis(c, *analysis)
}

// sendAnalysis sends the rendered view as an HTML page with the statistics
// as caption
func (h *Handler) sendAnalysis(c tele.Context, analysis domain.Analysis) error {
	stats := analysis.Stats
	caption := h.t(c, "analysis_caption", map[string]any{
		"Known":          stats.Known,
		"KnownPercent":   fmt.Sprintf("%.2f", stats.KnownPercent()),
		"Unknown":        stats.Unknown,
		"UnknownPercent": fmt.Sprintf("%.2f", stats.UnknownPercent()),
	})

	var page bytes.Buffer
	statistics := service.FormatStatistics(stats, h.renderer.Styler())
	if err := render.WritePage(&page, h.t(c, "analysis_title", nil), analysis, statistics); err != nil {
		return h.sendError(c, "write page", err)
	}

	return c.Send(&tele.Document{
		File:     tele.FromReader(&page),
		FileName: pageFileName,
		MIME:     "text/html",
		Caption:  caption,
	})
}

// sendMutation confirms a vocabulary change and resends the view when the
// change re-rendered it
func (h *Handler) sendMutation(c tele.Context, message string, analysis *domain.Analysis) error {
	if err := c.Send(message); err != nil {
		return err
	}
	if analysis == nil {
		return nil
	}
	return h.sendAnalysis(c, *analysis)
}

// handleEdit handles /edit: drops the view and returns the original text
func (h *Handler) handleEdit(c tele.Context) error {
	userID := c.Sender().ID
	h.ResetState(userID)

	original := h.Engine(userID).ResetToOriginal()
	if original == "" {
		return c.Send(h.t(c, "edit_empty", nil))
	}

	if err := c.Send(h.t(c, "edit_mode", nil)); err != nil {
		return err
	}
	return c.Send(original)
}

// handleRefresh handles /refresh: renders the document again from the store
func (h *Handler) handleRefresh(c tele.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	analysis, err := h.Engine(c.Sender().ID).Refresh(ctx)
	if err != nil {
		return h.sendError(c, "refresh", err)
	}
	return h.sendAnalysis(c, *analysis)
}
