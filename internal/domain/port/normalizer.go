package port

import (
	"context"
	"image"
)

// ImageNormalizer интерфейс нормализатора яркости
type ImageNormalizer interface {
	// Normalize возвращает новое изображение с нормализованным каналом яркости
	Normalize(ctx context.Context, src image.Image) (image.Image, error)
}
