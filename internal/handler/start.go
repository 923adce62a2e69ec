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

	if !h.authService.IsAuthorized(userID) {
		return c.Send(msgPasswordRequired)
	}

	// Drop any half-finished action
	h.session(c).view.reset()
	return c.Send(msgMainMenu, mainMenuMarkup())
}
