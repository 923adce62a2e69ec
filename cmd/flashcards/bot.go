package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"flashcards/internal/handler"
	"flashcards/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func newBotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Serve the flashcards through a Telegram bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(a)
		},
	}
}

func runBot(a *app) error {
	logger := a.logger

	if err := a.cfg.ValidateBot(); err != nil {
		return err
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:  a.cfg.Bot.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Bot handler failed", zap.Error(err))
		},
	})
	if err != nil {
		logger.Error("Failed to create bot", zap.Error(err))
		return err
	}

	logger.Info("Telegram bot initialized")

	authService := service.NewAuthService(a.cfg.Bot.Password)
	h := handler.NewHandler(bot, authService, a.cards, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")
	bot.Stop()
	logger.Info("Bot stopped gracefully")

	return nil
}
