package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages: password first, then prompt answers
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if !h.authService.IsAuthorized(userID) {
		if !h.authService.CheckPassword(text) {
			return c.Send(msgWrongPassword)
		}

		h.authService.AuthorizeUser(userID)
		h.logger.Info("User authorized", zap.Int64("user_id", userID))
		return c.Send(msgAccessGranted, mainMenuMarkup())
	}

	session := h.session(c)
	if !session.view.resume(text, true) {
		// Nothing asked, show what can be done
		return c.Send(msgMainMenu, mainMenuMarkup())
	}

	return h.finishStep(c, session)
}

// finishStep shows the main menu once the current action has nothing left to ask
func (h *Handler) finishStep(c tele.Context, session *chatSession) error {
	if session.view.waiting() {
		return nil
	}
	return c.Send(msgMainMenu, mainMenuMarkup())
}
