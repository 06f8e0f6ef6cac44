package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"skin-vision/config"
	telegram "skin-vision/internal/api"
	"skin-vision/internal/container"
	"skin-vision/internal/infrastructure/storage"
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

	normalizer, err := container.NewNormalizer(cfg.NormalizerBackend)
	if err != nil {
		log.Fatalf("Failed to create normalizer: %v", err)
	}

	models, closeModels, err := container.LoadModels(cfg)
	if err != nil {
		log.Fatalf("Failed to load models: %v", err)
	}
	defer func() {
		if err := closeModels(); err != nil {
			log.Printf("Error closing models: %v", err)
		}
	}()

	// Создаём хранилище пользователей и собираем сервисы приложения
	appContainer := container.New(container.Options{
		Users:      storage.NewMemoryUserRepository(),
		Normalizer: normalizer,
		Models:     models,
	})

	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
	if err != nil {
		// log.Fatalf не вызывает defer, модели закрываем явно
		_ = closeModels()
		log.Fatalf("Failed to create bot: %v", err)
	}

	log.Println("Bot is running...")
	if err := bot.Run(ctx); err != nil {
		log.Printf("Bot error: %v", err)
	}
}
