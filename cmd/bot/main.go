package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/davletovm/quizmaster-bot/internal/client"
	"github.com/davletovm/quizmaster-bot/internal/config"
	"github.com/davletovm/quizmaster-bot/internal/delivery/telegram"
	"github.com/davletovm/quizmaster-bot/internal/logger"
	"github.com/davletovm/quizmaster-bot/internal/service"
	"github.com/davletovm/quizmaster-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.ValidateBot(); err != nil {
		log.Fatal(err)
	}

	logg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logg.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		logg.Fatal("failed to create bot", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Start the bot",
		},
		{
			Command:     "quiz",
			Description: "Start a quiz (usage: /quiz <topic> <number>)",
		},
		{
			Command:     "help",
			Description: "Show help",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		logg.Warn("failed to set bot commands", zap.Error(err))
	}

	logg.Info("authorized on account",
		zap.String("username", bot.Self.UserName),
		zap.String("quiz_api_url", cfg.Bot.QuizAPIURL),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions := storage.NewSessionStore()
	messages := storage.NewMessageStore()

	provider := client.NewQuizAPIClient(cfg.Bot.QuizAPIURL, cfg.Bot.RequestTimeout)
	presenter := telegram.NewPresenter(bot, logg, messages)

	quizService := service.NewQuizService(sessions, provider, presenter, logg, cfg.Bot.NextQuestionDelay)

	handler := telegram.NewHandler(bot, logg, quizService, messages)
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		logg.Fatal("telegram handler failed", zap.Error(err))
	}

	logg.Info("shutdown signal received")
}
