package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"skin-vision/config"
	telegram "skin-vision/internal/api"
	app "skin-vision/internal/application"
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

	models, closeModels, err := container.LoadModels(cfg)
	if err != nil {
		log.Fatalf("Failed to load models: %v", err)
	}
	defer func() {
		if err := closeModels(); err != nil {
			log.Printf("Error closing models: %v", err)
		}
	}()

	opts := container.Options{
		Dataset: storage.NewFileImageRepository("", "", cfg.JPEGQuality),
		Models:  models,
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

	tally, err := services.EvaluationService.Evaluate(ctx, app.EvaluationSet{
		AtopicDir: cfg.AtopicPath(),
		OtherDir:  cfg.OtherPath(),
	})
	if err != nil {
		// log.Fatalf не вызывает defer, модели закрываем явно
		_ = closeModels()
		log.Fatalf("Evaluation failed: %v", err)
	}

	for _, line := range tally.Lines() {
		fmt.Println(line)
	}
}
