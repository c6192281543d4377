package main

import (
	"go.uber.org/zap"

	"sitekit/internal/adapters/discord"
	"sitekit/internal/adapters/httpapi"
	"sitekit/internal/adapters/slack"
	"sitekit/internal/adapters/telegram"
	"sitekit/internal/application"
	"sitekit/internal/config"
	"sitekit/internal/domain"
	"sitekit/internal/infrastructure/i18n"
	"sitekit/internal/pagedata"
	"sitekit/internal/ports/output"
	"sitekit/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if err := logger.Init(cfg.Environment); err != nil {
		logger.Fatal("init logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	notifier, err := buildNotifier(cfg)
	if err != nil {
		logger.Fatal("build notifier", zap.String("backend", cfg.Backend), zap.Error(err))
	}
	if notifier == nil {
		logger.Warn("feedback relay credentials missing, submissions will be rejected",
			zap.String("backend", cfg.Backend))
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale)
	feedbackSvc := application.NewFeedbackService(notifier, translator)

	router := httpapi.NewRouter(cfg, feedbackSvc, pagedata.Store())
	logger.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("backend", cfg.Backend),
		zap.Strings("allowedOrigins", cfg.AllowedOrigins),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// buildNotifier constructs the notifier for the configured backend, or nil
// when its credentials are absent (the handler then answers 500 per POST).
func buildNotifier(cfg *config.Config) (output.Notifier, error) {
	if !cfg.RelayConfigured() {
		return nil, nil
	}
	switch cfg.Backend {
	case config.BackendTelegram:
		return telegram.New(cfg.TelegramToken, cfg.TelegramChatID)
	case config.BackendDiscord:
		return discord.New(cfg.DiscordToken, cfg.DiscordChannelID)
	case config.BackendSlack:
		return slack.New(cfg.SlackToken, cfg.SlackChannelID), nil
	}
	return nil, domain.ErrUnsupportedBackend
}
