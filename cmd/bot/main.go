package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"table-finder/config"
	telegram "table-finder/internal/api"
	"table-finder/internal/container"
	"table-finder/internal/domain/outline"
	"table-finder/internal/infrastructure/storage"
	"table-finder/internal/infrastructure/trace"
	"table-finder/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Хранилища пользователей и истории проверок
	repos, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer repos.Close()

	var tracer outline.Tracer
	if cfg.Trace {
		tracer = trace.NewLogTracer(nil, false)
	}

	detector := vision.NewGoCVDetector(cfg.KernelDivisor, cfg.MinSegmentLength)
	finder := outline.NewFinder(cfg.Params(), tracer)

	// Собираем сервисы приложения
	appContainer := container.New(repos.Users, repos.Scans, detector, detector, finder)

	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer.UserService, appContainer.ScanService)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	log.Println("Bot is running...")
	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Bot error: %v", err)
	}
	log.Println("Bot stopped")
}
