package port

import (
	"context"
	"errors"
	"image"
)

// ErrNotFound возвращается, если изображение отсутствует в хранилище.
var ErrNotFound = errors.New("image not found")

// ImageLoader загружает изображение по имени.
type ImageLoader interface {
	Load(ctx context.Context, name string) (image.Image, error)
}

// ImageRepository интерфейс хранилища изображений
type ImageRepository interface {
	ImageLoader

	// List возвращает имена входных изображений в естественном порядке
	List(ctx context.Context) ([]string, error)

	// Save сохраняет изображение под базовым именем name
	Save(ctx context.Context, name string, img image.Image) error

	// Location описывает, куда пишет хранилище (для логов и отчётов)
	Location() string
}

// DatasetWalker обходит дерево размеченных тестовых изображений.
type DatasetWalker interface {
	ImageLoader

	// Walk вызывает fn для каждого не скрытого файла под root
	Walk(ctx context.Context, root string, fn func(name string) error) error
}
