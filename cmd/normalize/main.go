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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	normalizer, err := container.NewNormalizer(cfg.NormalizerBackend)
	if err != nil {
		log.Fatalf("Failed to create normalizer: %v", err)
	}

	src := storage.NewFileImageRepository(cfg.SourceDir, cfg.InputPattern, cfg.JPEGQuality)
	dst := storage.NewFileImageRepository(cfg.OutputDir, cfg.InputPattern, cfg.JPEGQuality)
	if err := dst.EnsureDir(); err != nil {
		log.Fatalf("Failed to create output dir: %v", err)
	}

	opts := container.Options{
		Normalizer:  normalizer,
		Workers:     cfg.NormalizeWorkers,
		ProgressLog: cfg.ProgressEvery,
	}
	if cfg.NotifyEnabled() {
		notifier, err := telegram.NewNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("Telegram notifications disabled: %v", err)
		} else {
			opts.Reporter = notifier
		}
	}
	services := container.New(opts)

	if _, err := services.NormalizeService.Run(ctx, src, dst); err != nil {
		log.Fatalf("Normalization failed: %v", err)
	}
}
