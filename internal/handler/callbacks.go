package handler

import (
	"flashcards/internal/controller"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func (h *Handler) handleAdd(c tele.Context) error {
	return h.runAction(c, "add", (*controller.Controller).AddFlashcard)
}

func (h *Handler) handleList(c tele.Context) error {
	return h.runAction(c, "list", (*controller.Controller).ViewAll)
}

func (h *Handler) handleSearch(c tele.Context) error {
	return h.runAction(c, "search", (*controller.Controller).SearchWord)
}

func (h *Handler) handleQuiz(c tele.Context) error {
	return h.runAction(c, "quiz", (*controller.Controller).TakeQuiz)
}

// runAction starts an action from scratch, dropping any pending prompt
func (h *Handler) runAction(c tele.Context, name string, action func(*controller.Controller)) error {
	h.logger.Debug("Action requested",
		zap.String("action", name),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Always acknowledge callback before sending new messages
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	session := h.session(c)
	session.view.reset()
	action(session.controller)

	return h.finishStep(c, session)
}

// handleCancel answers the pending prompt with a cancel
func (h *Handler) handleCancel(c tele.Context) error {
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	session := h.session(c)
	if !session.view.resume("", false) {
		return c.Send(msgMainMenu, mainMenuMarkup())
	}
	return h.finishStep(c, session)
}
