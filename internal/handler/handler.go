package handler

import (
	"sync"

	"flashcards/internal/controller"
	"flashcards/internal/middleware"
	"flashcards/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	cards       *service.FlashcardService
	logger      *zap.Logger

	// One controller per chat
	chats   map[int64]*chatSession
	chatMux sync.Mutex
}

type chatSession struct {
	view       *chatView
	controller *controller.Controller
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	cards *service.FlashcardService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		authService: authService,
		cards:       cards,
		logger:      logger,
		chats:       make(map[int64]*chatSession),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Inline buttons, authorized users only
	buttons := h.bot.Group()
	buttons.Use(middleware.AuthMiddleware(h.authService, h.logger))
	buttons.Handle(&btnAdd, h.handleAdd)
	buttons.Handle(&btnList, h.handleList)
	buttons.Handle(&btnSearch, h.handleSearch)
	buttons.Handle(&btnQuiz, h.handleQuiz)
	buttons.Handle(&btnCancel, h.handleCancel)
}

// session returns the chat's session bound to the current update
func (h *Handler) session(c tele.Context) *chatSession {
	chatID := c.Chat().ID

	h.chatMux.Lock()
	defer h.chatMux.Unlock()

	s, exists := h.chats[chatID]
	if !exists {
		view := newChatView(h.logger.With(zap.Int64("chat_id", chatID)))
		s = &chatSession{
			view:       view,
			controller: controller.New(h.cards, view, h.logger),
		}
		h.chats[chatID] = s
	}
	s.view.bind(c)
	return s
}

// Inline keyboard buttons
var (
	btnAdd = tele.Btn{
		Unique: "add",
		Text:   "➕ Add Flashcard",
	}
	btnList = tele.Btn{
		Unique: "list",
		Text:   "📋 View All Flashcards",
	}
	btnSearch = tele.Btn{
		Unique: "search",
		Text:   "🔍 Search Word",
	}
	btnQuiz = tele.Btn{
		Unique: "quiz",
		Text:   "🎯 Take Quiz",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnAdd, btnList),
		menu.Row(btnSearch, btnQuiz),
	)
	return menu
}

// cancelMarkup is attached to every prompt
func cancelMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnCancel))
	return menu
}

const (
	msgMainMenu         = "🏠 Main menu\n\nChoose an action:"
	msgAccessGranted    = "✅ Access granted!\n\n" + msgMainMenu
	msgWrongPassword    = "Wrong password."
	msgPasswordRequired = middleware.MsgPasswordRequired
)
