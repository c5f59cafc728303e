package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-quickadd/config"
	_ "task-quickadd/docs" // Swagger docs
	"task-quickadd/internal/httpserver"
	"task-quickadd/internal/middleware"
	taskHTTP "task-quickadd/internal/task/delivery/http"
	tgDelivery "task-quickadd/internal/task/delivery/telegram"
	"task-quickadd/internal/task/repository"
	memoryRepo "task-quickadd/internal/task/repository/memory"
	memosRepo "task-quickadd/internal/task/repository/memos"
	"task-quickadd/internal/task/usecase"
	"task-quickadd/pkg/datemath"
	"task-quickadd/pkg/gcalendar"
	"task-quickadd/pkg/log"
	"task-quickadd/pkg/segment"
	"task-quickadd/pkg/telegram"
)

// @title       Task Quick-Add API
// @description Turns free-form text into dated tasks and subtasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Quick-Add...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Parsing engine
	segment.SetNative(cfg.QuickAdd.NativeSegmentation)

	var parserOpts []datemath.Option
	if hour := cfg.QuickAdd.DefaultHour; hour > 0 {
		parserOpts = append(parserOpts, datemath.WithNearestHour(func(time.Time) int { return hour }))
	}
	dateMathParser, err := datemath.NewParser(cfg.QuickAdd.Timezone, parserOpts...)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.QuickAdd.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC", parserOpts...)
	}

	// 4. Task store
	var taskRepo repository.Repository
	switch cfg.Storage.Driver {
	case config.StorageMemos:
		memosClient := memosRepo.NewClient(cfg.Storage.Memos.URL, cfg.Storage.Memos.AccessToken)
		taskRepo = memosRepo.New(memosClient, cfg.Storage.Memos.ExternalURL, logger)
		logger.Infof(ctx, "Task store: memos at %s", cfg.Storage.Memos.URL)
	default:
		taskRepo = memoryRepo.New(logger)
		logger.Info(ctx, "Task store: in-memory")
	}

	// 5. Google Calendar (optional)
	var calendar usecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClient(ctx, gcalendar.Config{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			TokenPath:       cfg.GoogleCalendar.TokenPath,
			CalendarID:      cfg.GoogleCalendar.CalendarID,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `quickadd gcal-auth` to generate a token file")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Task UseCase
	taskUC := usecase.New(logger, taskRepo, calendar, dateMathParser, usecase.Options{
		PrefixMode:    cfg.QuickAdd.PrefixMode,
		EventDuration: cfg.QuickAdd.EventDuration,
	})

	// 7. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, taskUC, telegramBot, cfg.Telegram.WebhookSecret)
		registerWebhook(ctx, logger, telegramBot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: telegram.bot_token is not set")
	}

	// 8. HTTP Server
	mw := middleware.New(logger, middleware.Config{
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		Burst:             cfg.RateLimit.Burst,
		MaxClients:        cfg.RateLimit.MaxClients,
		ClientTTL:         cfg.RateLimit.ClientTTL,
	})
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		Middleware:         mw,
		TaskHandler:        taskHTTP.New(logger, taskUC),
		TelegramHandler:    telegramHandler,
		TelegramAllowedIPs: cfg.Telegram.AllowedIPs,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this service, discovering the public URL
// through ngrok when none is configured.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPI != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPI)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}
	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook not registered: no telegram.webhook_url or telegram.ngrok_api")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.WebhookSecret); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
