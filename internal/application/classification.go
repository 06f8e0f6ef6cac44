package app

import (
	"context"
	"fmt"
	"image"
	"log"

	"skin-vision/internal/domain/entity"
	"skin-vision/internal/domain/port"
)

// ClassificationService каскад из двух моделей: первая отделяет атопический
// дерматит от прочего, вторая уточняет подкласс прочего.
type ClassificationService struct {
	loader          port.ImageLoader
	encoder         port.TensorEncoder
	primary         port.Model
	secondary       port.Model
	primaryLabels   []string
	secondaryLabels []string
}

// NewClassificationService создаёт сервис классификации.
func NewClassificationService(loader port.ImageLoader, encoder port.TensorEncoder, primary, secondary port.Model) *ClassificationService {
	return &ClassificationService{
		loader:          loader,
		encoder:         encoder,
		primary:         primary,
		secondary:       secondary,
		primaryLabels:   entity.PrimaryLabels,
		secondaryLabels: entity.SecondaryLabels,
	}
}

// WithLabels заменяет подписи классов (например, на classes из описания модели).
// Пустой список оставляет подписи по умолчанию.
func (s *ClassificationService) WithLabels(primary, secondary []string) *ClassificationService {
	if len(primary) > 0 {
		s.primaryLabels = primary
	}
	if len(secondary) > 0 {
		s.secondaryLabels = secondary
	}
	return s
}

// ClassifyFile загружает изображение и классифицирует его.
func (s *ClassificationService) ClassifyFile(ctx context.Context, name string) (*entity.Prediction, error) {
	if s.loader == nil {
		return nil, ErrLoaderNotConfigured
	}
	img, err := s.loader.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.ClassifyImage(ctx, img)
}

// ClassifyImage прогоняет изображение через каскад.
// Если первая модель выбрала атопический дерматит, вторая не вызывается.
func (s *ClassificationService) ClassifyImage(ctx context.Context, img image.Image) (*entity.Prediction, error) {
	if s.primary == nil || s.encoder == nil {
		return nil, ErrModelNotConfigured
	}

	x, err := s.encoder.Encode(img)
	if err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}

	scores, err := s.primary.Predict(ctx, x)
	if err != nil {
		return nil, fmt.Errorf("primary model: %w", err)
	}
	answer, err := entity.Argmax(scores)
	if err != nil {
		return nil, fmt.Errorf("primary model: %w", err)
	}

	pred := &entity.Prediction{
		Primary: answer,
		Class:   answer,
		Label:   entity.LabelAt(s.primaryLabels, answer),
	}
	log.Printf("Label: %s", pred.Label)
	if answer != entity.ClassOther {
		return pred, nil
	}

	if s.secondary == nil {
		return nil, ErrModelNotConfigured
	}
	scores, err = s.secondary.Predict(ctx, x)
	if err != nil {
		return nil, fmt.Errorf("secondary model: %w", err)
	}
	sub, err := entity.Argmax(scores)
	if err != nil {
		return nil, fmt.Errorf("secondary model: %w", err)
	}

	pred.HasSecondary = true
	pred.Secondary = sub
	pred.Class = sub
	pred.Label = entity.LabelAt(s.secondaryLabels, sub)
	log.Printf("Label: %s", pred.Label)
	return pred, nil
}
