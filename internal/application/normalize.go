package app

import (
	"context"
	"fmt"
	"image"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"skin-vision/internal/domain/entity"
	"skin-vision/internal/domain/port"
)

// DefaultProgressEvery как часто печатать путь текущего изображения.
const DefaultProgressEvery = 100

// NormalizeService пакетная нормализация яркости.
type NormalizeService struct {
	normalizer    port.ImageNormalizer
	reporter      port.Reporter
	workers       int
	progressEvery int
}

// NewNormalizeService создаёт сервис. workers — число воркеров (по умолчанию один),
// reporter может быть nil.
func NewNormalizeService(normalizer port.ImageNormalizer, reporter port.Reporter, workers, progressEvery int) *NormalizeService {
	if workers < 1 {
		workers = 1
	}
	if progressEvery < 1 {
		progressEvery = DefaultProgressEvery
	}
	return &NormalizeService{
		normalizer:    normalizer,
		reporter:      reporter,
		workers:       workers,
		progressEvery: progressEvery,
	}
}

// Run нормализует все изображения из src и пишет их в dst под теми же именами.
// Пакет делится на непрерывные части по числу воркеров; Run ждёт завершения всех.
// Первая ошибка останавливает весь пакет.
func (s *NormalizeService) Run(ctx context.Context, src, dst port.ImageRepository) (*entity.BatchSummary, error) {
	if s.normalizer == nil {
		return nil, ErrNormalizerNotConfigured
	}
	start := time.Now()

	paths, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inputs: %w", err)
	}
	log.Printf("Normalizing %d images into %s (workers: %d)", len(paths), dst.Location(), s.workers)

	g, gctx := errgroup.WithContext(ctx)
	offset := 0
	for _, chunk := range splitChunks(paths, s.workers) {
		start := offset
		g.Go(func() error {
			return s.prepImages(gctx, src, dst, start, chunk)
		})
		offset += len(chunk)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := entity.BatchSummary{
		Processed: len(paths),
		OutputDir: dst.Location(),
		Elapsed:   time.Since(start),
	}
	log.Printf("Normalized %d images in %s", summary.Processed, summary.Elapsed.Round(time.Millisecond))

	if s.reporter != nil {
		if err := s.reporter.NormalizeFinished(ctx, summary); err != nil {
			log.Printf("Error sending normalize report: %v", err)
		}
	}
	return &summary, nil
}

// NormalizeImage нормализует одно изображение.
func (s *NormalizeService) NormalizeImage(ctx context.Context, img image.Image) (image.Image, error) {
	if s.normalizer == nil {
		return nil, ErrNormalizerNotConfigured
	}
	return s.normalizer.Normalize(ctx, img)
}

// prepImages обрабатывает часть пакета; offset — индекс первого пути части во всём пакете.
func (s *NormalizeService) prepImages(ctx context.Context, src, dst port.ImageRepository, offset int, paths []string) error {
	for count, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if (offset+count)%s.progressEvery == 0 {
			log.Println(path)
		}

		img, err := src.Load(ctx, path)
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		norm, err := s.normalizer.Normalize(ctx, img)
		if err != nil {
			return fmt.Errorf("normalize %s: %w", path, err)
		}
		if err := dst.Save(ctx, path, norm); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}
	return nil
}

// splitChunks делит paths на не более чем n непрерывных частей.
func splitChunks(paths []string, n int) [][]string {
	if len(paths) == 0 {
		return nil
	}
	if n > len(paths) {
		n = len(paths)
	}
	size := (len(paths) + n - 1) / n
	chunks := make([][]string, 0, n)
	for start := 0; start < len(paths); start += size {
		end := min(start+size, len(paths))
		chunks = append(chunks, paths[start:end])
	}
	return chunks
}
