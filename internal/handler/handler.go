package handler

import (
	"context"
	"errors"
	"sync"
	"time"

	"thesaurus/internal/domain"
	"thesaurus/internal/i18n"
	"thesaurus/internal/render"
	"thesaurus/internal/repository"
	"thesaurus/internal/service"
	"thesaurus/internal/tokenizer"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// requestTimeout bounds the store calls made for one update
const requestTimeout = 15 * time.Second

// Handler manages all bot interactions
type Handler struct {
	bot             *tele.Bot
	authService     *service.AuthService
	settingsService *service.SettingsService
	store           repository.VocabularyStore
	tokenizer       *tokenizer.Tokenizer
	renderer        *render.Renderer
	tr              i18n.T
	logger          *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// One reading session per user
	engines   map[int64]*service.Engine
	engineMux sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	settingsService *service.SettingsService,
	store repository.VocabularyStore,
	tokenizer *tokenizer.Tokenizer,
	tr i18n.T,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:             bot,
		authService:     authService,
		settingsService: settingsService,
		store:           store,
		tokenizer:       tokenizer,
		renderer:        render.New(render.NewCellMeasurer(), render.NewHTMLStyler()),
		tr:              tr,
		logger:          logger,
		states:          make(map[int64]*domain.StateData),
		engines:         make(map[int64]*service.Engine),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/lang", h.handleLanguageMenu)
	h.bot.Handle("/native", h.handleNative)
	h.bot.Handle("/edit", h.handleEdit)
	h.bot.Handle("/refresh", h.handleRefresh)
	h.bot.Handle("/add", h.handleAdd)
	h.bot.Handle("/remove", h.handleRemove)
	h.bot.Handle("/words", h.handleWords)
	h.bot.Handle("/rename", h.handleRename)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnForeign, h.handleChooseForeign)
	h.bot.Handle(&btnNative, h.handleChooseNative)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// Engine returns the reading engine of a user, creating it on first use
func (h *Handler) Engine(userID int64) *service.Engine {
	h.engineMux.Lock()
	defer h.engineMux.Unlock()

	engine, exists := h.engines[userID]
	if !exists {
		engine = service.NewReadingEngine(h.store, h.tokenizer, h.renderer, h.logger)
		engine.OnModeChange(func(from, to domain.Mode) {
			h.logger.Debug("Reading mode changed",
				zap.Int64("user_id", userID),
				zap.String("from", string(from)),
				zap.String("to", string(to)),
			)
		})
		h.engines[userID] = engine
	}
	return engine
}

// Inline keyboard buttons. Texts are localized when the markup is built.
var (
	btnForeign  = tele.Btn{Unique: "lang_foreign"}
	btnNative   = tele.Btn{Unique: "lang_native"}
	btnCancel   = tele.Btn{Unique: "cancel"}
	btnMainMenu = tele.Btn{Unique: "main_menu"}
)

// t renders a message in the sender's language
func (h *Handler) t(c tele.Context, key string, data map[string]any) string {
	return h.tr.T(locale(c), key, data)
}

func (h *Handler) button(c tele.Context, markup *tele.ReplyMarkup, btn tele.Btn, key string) tele.Btn {
	return markup.Data(h.t(c, key, nil), btn.Unique)
}

// mainMenuMarkup returns the main menu keyboard
func (h *Handler) mainMenuMarkup(c tele.Context) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(h.button(c, menu, btnForeign, "menu_foreign")),
		menu.Row(h.button(c, menu, btnNative, "menu_native")),
	)
	return menu
}

// cancelMarkup returns a keyboard with a single cancel button
func (h *Handler) cancelMarkup(c tele.Context) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(h.button(c, menu, btnCancel, "menu_cancel")))
	return menu
}

// sendError logs err and tells the user what went wrong
func (h *Handler) sendError(c tele.Context, op string, err error) error {
	key := errorKey(err)
	if key == "error_generic" || key == "store_unavailable" {
		h.logger.Error("Request failed",
			zap.String("op", op),
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
	}
	return c.Send(h.t(c, key, nil))
}

// errorKey maps a failure to the message shown to the user
func errorKey(err error) string {
	switch {
	case errors.Is(err, domain.ErrForeignLanguageNotSet), errors.Is(err, domain.ErrNativeLanguageNotSet):
		return "lang_not_set"
	case errors.Is(err, domain.ErrLanguageNotFound), errors.Is(err, domain.ErrInvalidLanguageTag):
		return "lang_missing"
	case errors.Is(err, domain.ErrNoDocument):
		return "analysis_no_document"
	case errors.Is(err, domain.ErrWordNotFound):
		return "word_not_found"
	case errors.Is(err, domain.ErrEmptyWord), errors.Is(err, domain.ErrEmptyTranslation):
		return "translation_empty"
	case errors.Is(err, domain.ErrStoreUnavailable), domain.IsKind(err, domain.KindStoreQuery):
		return "store_unavailable"
	default:
		return "error_generic"
	}
}

func locale(c tele.Context) string {
	if sender := c.Sender(); sender != nil {
		return sender.LanguageCode
	}
	return ""
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}
