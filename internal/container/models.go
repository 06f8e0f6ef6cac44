package container

import (
	"errors"
	"fmt"
	"log"

	"skin-vision/config"
	"skin-vision/internal/domain/entity"
	"skin-vision/internal/domain/port"
	"skin-vision/internal/infrastructure/inference"
	"skin-vision/internal/infrastructure/vision"
)

// NewNormalizer выбирает бэкенд нормализации по имени из конфигурации.
func NewNormalizer(backend string) (port.ImageNormalizer, error) {
	params := entity.DefaultNormalizeParams()
	switch backend {
	case config.BackendGo:
		return vision.NewLumaNormalizer(params), nil
	case config.BackendGoCV:
		return vision.NewGoCVNormalizer(params), nil
	default:
		return nil, fmt.Errorf("unknown normalizer backend %q", backend)
	}
}

// LoadModels поднимает onnxruntime и загружает обе модели каскада.
// Возвращённый close освобождает модели и окружение.
func LoadModels(cfg *config.Config) (Models, func() error, error) {
	rt, err := inference.NewRuntime(cfg.OnnxRuntimeLib)
	if err != nil {
		return Models{}, nil, err
	}

	log.Printf("Loading model from: %s", cfg.Model1Path)
	primary, err := rt.LoadModel(cfg.Model1Path, cfg.Model1Metadata)
	if err != nil {
		return Models{}, nil, errors.Join(err, rt.Close())
	}

	log.Printf("Loading model from: %s", cfg.Model2Path)
	secondary, err := rt.LoadModel(cfg.Model2Path, cfg.Model2Metadata)
	if err != nil {
		return Models{}, nil, errors.Join(err, primary.Close(), rt.Close())
	}

	size := cfg.ImageSize
	if primary.Metadata.ImageSize > 0 {
		size = primary.Metadata.ImageSize
	}
	layout, err := vision.ParseLayout(cfg.TensorLayout)
	if err != nil {
		return Models{}, nil, errors.Join(err, secondary.Close(), primary.Close(), rt.Close())
	}
	encoder := vision.NewTensorEncoder(size, layout, float32(cfg.PixelScale))
	if err := checkInputLen(encoder, primary.Metadata, secondary.Metadata); err != nil {
		return Models{}, nil, errors.Join(err, secondary.Close(), primary.Close(), rt.Close())
	}
	log.Printf("Classes: %v / %v", primary.Metadata.Classes, secondary.Metadata.Classes)

	closeAll := func() error {
		return errors.Join(secondary.Close(), primary.Close(), rt.Close())
	}
	return Models{
		Encoder:         encoder,
		Primary:         primary,
		Secondary:       secondary,
		PrimaryLabels:   primary.Metadata.Classes,
		SecondaryLabels: secondary.Metadata.Classes,
	}, closeAll, nil
}

// checkInputLen сверяет размер тензора кодировщика со входом каждой модели каскада.
func checkInputLen(encoder *vision.TensorEncoder, metas ...inference.Metadata) error {
	for i, meta := range metas {
		if meta.InputLen() != encoder.Len() {
			return fmt.Errorf("model %d input expects %d values, encoder produces %d", i+1, meta.InputLen(), encoder.Len())
		}
	}
	return nil
}
