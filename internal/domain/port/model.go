package port

import (
	"context"
	"image"
)

// Model интерфейс обученной модели классификации
type Model interface {
	// Predict возвращает оценки классов для одного входного тензора
	Predict(ctx context.Context, input []float32) ([]float32, error)

	// Close освобождает ресурсы модели
	Close() error
}

// TensorEncoder интерфейс подготовки изображения к подаче в модель
type TensorEncoder interface {
	// Encode масштабирует изображение и раскладывает пиксели в тензор
	Encode(img image.Image) ([]float32, error)
}
