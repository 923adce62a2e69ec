package middleware

import (
	"flashcards/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// MsgPasswordRequired asks an unknown user for the bot password
const MsgPasswordRequired = "Hi! Send the password to use your flashcards:"

// AuthMiddleware creates authentication middleware
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if authService.IsAuthorized(userID) {
				return next(c)
			}

			logger.Warn("Unauthorized request rejected", zap.Int64("user_id", userID))

			if c.Callback() != nil {
				return c.Respond(&tele.CallbackResponse{
					Text:      MsgPasswordRequired,
					ShowAlert: true,
				})
			}
			return c.Send(MsgPasswordRequired)
		}
	}
}
